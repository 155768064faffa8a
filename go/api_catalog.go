package stockroomserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	cataloghttpmapper "github.com/stockroom/stockroom-api/internal/domains/catalog/adapters/http/mapper"
	catalogports "github.com/stockroom/stockroom-api/internal/domains/catalog/ports"
)

// CatalogAPI wires HTTP transport with the catalog bounded context service.
type CatalogAPI struct {
	service catalogports.Service
}

// NewCatalogAPI creates a CatalogAPI backed by the provided service.
func NewCatalogAPI(service catalogports.Service) CatalogAPI {
	return CatalogAPI{service: service}
}

// Post /v1/products
// Add a new product to the catalog
func (api *CatalogAPI) AddProduct(c *gin.Context) {
	var payload cataloghttpmapper.Product
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	product, err := cataloghttpmapper.ToDomainProduct(payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	saved, err := api.service.AddProduct(c.Request.Context(), product)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cataloghttpmapper.FromDomainProduct(saved))
}

// Get /v1/products
// List catalog products
func (api *CatalogAPI) ListProducts(c *gin.Context) {
	products, err := api.service.ListProducts(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cataloghttpmapper.FromDomainProducts(products))
}

// Get /v1/products/:productId
// Find product by ID
func (api *CatalogAPI) GetProductById(c *gin.Context) {
	id, ok := requireParam(c, "productId")
	if !ok {
		return
	}
	product, err := api.service.GetProductByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cataloghttpmapper.FromDomainProduct(product))
}

// Put /v1/products/:productId
// Update an existing product
func (api *CatalogAPI) UpdateProduct(c *gin.Context) {
	id, ok := requireParam(c, "productId")
	if !ok {
		return
	}
	var payload cataloghttpmapper.Product
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	product, err := cataloghttpmapper.ToDomainProduct(payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	updated, err := api.service.UpdateProduct(c.Request.Context(), id, product)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cataloghttpmapper.FromDomainProduct(updated))
}

// Delete /v1/products/:productId
// Remove a product from the catalog
func (api *CatalogAPI) DeleteProduct(c *gin.Context) {
	id, ok := requireParam(c, "productId")
	if !ok {
		return
	}
	if err := api.service.DeleteProduct(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func requireParam(c *gin.Context, name string) (string, bool) {
	value := strings.TrimSpace(c.Param(name))
	if value == "" {
		respondError(c, http.StatusBadRequest, errors.New(name+" is required"))
		return "", false
	}
	return value, true
}
