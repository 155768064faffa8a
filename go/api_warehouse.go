package stockroomserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	warehousehttpmapper "github.com/stockroom/stockroom-api/internal/domains/warehouse/adapters/http/mapper"
	warehouseports "github.com/stockroom/stockroom-api/internal/domains/warehouse/ports"
)

// WarehouseAPI wires HTTP transport with the warehouse bounded context service.
type WarehouseAPI struct {
	service warehouseports.Service
}

// NewWarehouseAPI creates a WarehouseAPI backed by the provided service.
func NewWarehouseAPI(service warehouseports.Service) WarehouseAPI {
	return WarehouseAPI{service: service}
}

// Post /v1/locations
// Register a storage location
func (api *WarehouseAPI) AddLocation(c *gin.Context) {
	var payload warehousehttpmapper.StorageLocation
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	location, err := warehousehttpmapper.ToDomainLocation(payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	saved, err := api.service.AddLocation(c.Request.Context(), location)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, warehousehttpmapper.FromDomainLocation(saved))
}

// Get /v1/locations
// List storage locations
func (api *WarehouseAPI) ListLocations(c *gin.Context) {
	locations, err := api.service.ListLocations(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, warehousehttpmapper.FromDomainLocations(locations))
}

// Get /v1/locations/:locationId
// Find storage location by ID
func (api *WarehouseAPI) GetLocationById(c *gin.Context) {
	id, ok := requireParam(c, "locationId")
	if !ok {
		return
	}
	location, err := api.service.GetLocationByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, warehousehttpmapper.FromDomainLocation(location))
}

// Put /v1/locations/:locationId
// Update a storage location
func (api *WarehouseAPI) UpdateLocation(c *gin.Context) {
	id, ok := requireParam(c, "locationId")
	if !ok {
		return
	}
	var payload warehousehttpmapper.StorageLocation
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	location, err := warehousehttpmapper.ToDomainLocation(payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	updated, err := api.service.UpdateLocation(c.Request.Context(), id, location)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, warehousehttpmapper.FromDomainLocation(updated))
}

// Delete /v1/locations/:locationId
// Remove a storage location and its placements
func (api *WarehouseAPI) DeleteLocation(c *gin.Context) {
	id, ok := requireParam(c, "locationId")
	if !ok {
		return
	}
	if err := api.service.DeleteLocation(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Put /v1/locations/:locationId/products/:productId
// Record that a product is stocked at a location
func (api *WarehouseAPI) AssignProduct(c *gin.Context) {
	locationID, ok := requireParam(c, "locationId")
	if !ok {
		return
	}
	productID, ok := requireParam(c, "productId")
	if !ok {
		return
	}
	if err := api.service.AssignProduct(c.Request.Context(), productID, locationID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete /v1/locations/:locationId/products/:productId
// Remove a product placement from a location
func (api *WarehouseAPI) UnassignProduct(c *gin.Context) {
	locationID, ok := requireParam(c, "locationId")
	if !ok {
		return
	}
	productID, ok := requireParam(c, "productId")
	if !ok {
		return
	}
	if err := api.service.UnassignProduct(c.Request.Context(), productID, locationID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Get /v1/products/:productId/locations
// List the locations stocking a product
func (api *WarehouseAPI) LocationsForProduct(c *gin.Context) {
	productID, ok := requireParam(c, "productId")
	if !ok {
		return
	}
	locations, err := api.service.LocationsForProduct(c.Request.Context(), productID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, warehousehttpmapper.FromDomainLocationValues(locations))
}
