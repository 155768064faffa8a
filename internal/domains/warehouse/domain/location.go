package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName       = errors.New("location name is required")
	ErrInvalidCapacity = errors.New("capacity must be greater than zero when set")
)

// StorageLocation models a physical place where product stock is kept.
type StorageLocation struct {
	ID       string
	Name     string
	Address  string
	Capacity *int32
	Notes    string
}

// NewStorageLocation validates and constructs a StorageLocation.
func NewStorageLocation(id, name, address string, capacity *int32, notes string) (*StorageLocation, error) {
	location := &StorageLocation{
		ID:      strings.TrimSpace(id),
		Address: strings.TrimSpace(address),
		Notes:   strings.TrimSpace(notes),
	}
	if err := location.Rename(name); err != nil {
		return nil, err
	}
	if err := location.SetCapacity(capacity); err != nil {
		return nil, err
	}
	return location, nil
}

// Rename trims and validates the human-readable name.
func (l *StorageLocation) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	l.Name = name
	return nil
}

// SetCapacity replaces the optional capacity; nil clears it.
func (l *StorageLocation) SetCapacity(capacity *int32) error {
	if capacity != nil && *capacity <= 0 {
		return ErrInvalidCapacity
	}
	l.Capacity = capacity
	return nil
}

// Validate re-applies core invariants for persistence.
func (l *StorageLocation) Validate() error {
	if err := l.Rename(l.Name); err != nil {
		return err
	}
	return l.SetCapacity(l.Capacity)
}
