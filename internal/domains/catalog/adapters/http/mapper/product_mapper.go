package mapper

import (
	"github.com/shopspring/decimal"

	catalogdomain "github.com/stockroom/stockroom-api/internal/domains/catalog/domain"
)

// Product is the HTTP representation of a catalog item.
type Product struct {
	ID        string   `json:"id,omitempty"`
	Name      string   `json:"name"`
	SKU       string   `json:"sku,omitempty"`
	UnitPrice string   `json:"unitPrice"`
	Tags      []string `json:"tags,omitempty"`
}

// ToDomainProduct converts a transport product into the catalog domain model.
func ToDomainProduct(input Product) (*catalogdomain.Product, error) {
	price := decimal.Zero
	if input.UnitPrice != "" {
		parsed, err := decimal.NewFromString(input.UnitPrice)
		if err != nil {
			return nil, err
		}
		price = parsed
	}
	product, err := catalogdomain.NewProduct(input.ID, input.Name, input.SKU, price)
	if err != nil {
		return nil, err
	}
	product.ReplaceTags(input.Tags)
	return product, nil
}

// FromDomainProduct converts a domain product to the transport representation.
func FromDomainProduct(product *catalogdomain.Product) Product {
	if product == nil {
		return Product{}
	}
	return Product{
		ID:        product.ID,
		Name:      product.Name,
		SKU:       product.SKU,
		UnitPrice: product.UnitPrice.StringFixed(2),
		Tags:      product.Tags,
	}
}

// FromDomainProducts converts a slice of domain products.
func FromDomainProducts(products []*catalogdomain.Product) []Product {
	result := make([]Product, 0, len(products))
	for _, product := range products {
		result = append(result, FromDomainProduct(product))
	}
	return result
}
