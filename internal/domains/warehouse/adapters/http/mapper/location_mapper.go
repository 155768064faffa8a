package mapper

import (
	warehousedomain "github.com/stockroom/stockroom-api/internal/domains/warehouse/domain"
)

// StorageLocation is the HTTP representation of a warehouse location.
type StorageLocation struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Address  string `json:"address,omitempty"`
	Capacity *int32 `json:"capacity,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// ToDomainLocation converts a transport location into the warehouse domain model.
func ToDomainLocation(input StorageLocation) (*warehousedomain.StorageLocation, error) {
	return warehousedomain.NewStorageLocation(input.ID, input.Name, input.Address, input.Capacity, input.Notes)
}

// FromDomainLocation converts a domain location to the transport representation.
func FromDomainLocation(location *warehousedomain.StorageLocation) StorageLocation {
	if location == nil {
		return StorageLocation{}
	}
	return StorageLocation{
		ID:       location.ID,
		Name:     location.Name,
		Address:  location.Address,
		Capacity: location.Capacity,
		Notes:    location.Notes,
	}
}

// FromDomainLocationValues converts a slice of location values.
func FromDomainLocationValues(locations []warehousedomain.StorageLocation) []StorageLocation {
	result := make([]StorageLocation, 0, len(locations))
	for i := range locations {
		result = append(result, FromDomainLocation(&locations[i]))
	}
	return result
}

// FromDomainLocations converts a slice of location pointers.
func FromDomainLocations(locations []*warehousedomain.StorageLocation) []StorageLocation {
	result := make([]StorageLocation, 0, len(locations))
	for _, location := range locations {
		result = append(result, FromDomainLocation(location))
	}
	return result
}
