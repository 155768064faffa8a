package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName     = errors.New("product name is required")
	ErrNegativePrice = errors.New("unit price must not be negative")
)

// Product models a sellable catalog item.
type Product struct {
	ID        string
	Name      string
	SKU       string
	UnitPrice decimal.Decimal
	Tags      []string
}

// NewProduct validates and constructs a Product.
func NewProduct(id, name, sku string, unitPrice decimal.Decimal) (*Product, error) {
	product := &Product{
		ID:        strings.TrimSpace(id),
		SKU:       strings.TrimSpace(sku),
		UnitPrice: unitPrice,
	}
	if err := product.Rename(name); err != nil {
		return nil, err
	}
	if err := product.Reprice(unitPrice); err != nil {
		return nil, err
	}
	return product, nil
}

// Rename trims and validates the display name.
func (p *Product) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	p.Name = name
	return nil
}

// Reprice replaces the unit price, rejecting negative amounts.
func (p *Product) Reprice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return ErrNegativePrice
	}
	p.UnitPrice = unitPrice
	return nil
}

// ReplaceTags swaps the tag set, discarding blank entries.
func (p *Product) ReplaceTags(tags []string) {
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			cleaned = append(cleaned, tag)
		}
	}
	p.Tags = cleaned
}

// Validate re-applies core invariants for persistence.
func (p *Product) Validate() error {
	if err := p.Rename(p.Name); err != nil {
		return err
	}
	return p.Reprice(p.UnitPrice)
}
