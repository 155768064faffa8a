package application

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/stockroom/stockroom-api/internal/domains/catalog/domain"
	"github.com/stockroom/stockroom-api/internal/domains/catalog/ports"
)

type fakeProductRepo struct {
	products map[string]*domain.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*domain.Product{}}
}

func (f *fakeProductRepo) Save(_ context.Context, product *domain.Product) (*domain.Product, error) {
	clone := *product
	f.products[product.ID] = &clone
	return &clone, nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	if p, ok := f.products[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, ports.ErrNotFound
}

func (f *fakeProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.products[id]; !ok {
		return ports.ErrNotFound
	}
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) List(_ context.Context) ([]*domain.Product, error) {
	var list []*domain.Product
	for _, p := range f.products {
		clone := *p
		list = append(list, &clone)
	}
	return list, nil
}

func TestAddProduct_AssignsIDWhenEmpty(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewService(repo)

	product, err := domain.NewProduct("", "Widget", "WID-001", decimal.NewFromFloat(9.99))
	require.NoError(t, err)

	saved, err := svc.AddProduct(context.Background(), product)
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)
	require.Equal(t, "Widget", saved.Name)
}

func TestAddProduct_RejectsEmptyName(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewService(repo)

	product := &domain.Product{ID: "P1", UnitPrice: decimal.NewFromInt(1)}
	_, err := svc.AddProduct(context.Background(), product)
	require.ErrorIs(t, err, domain.ErrEmptyName)
}

func TestUpdateProduct_MissingProduct(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewService(repo)

	product, err := domain.NewProduct("P1", "Widget", "WID-001", decimal.NewFromInt(5))
	require.NoError(t, err)

	_, err = svc.UpdateProduct(context.Background(), "missing", product)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestUpdateProduct_KeepsIdentifier(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewService(repo)

	original, err := domain.NewProduct("P1", "Widget", "WID-001", decimal.NewFromInt(5))
	require.NoError(t, err)
	_, err = svc.AddProduct(context.Background(), original)
	require.NoError(t, err)

	updated, err := domain.NewProduct("ignored", "Widget Deluxe", "WID-001", decimal.NewFromInt(7))
	require.NoError(t, err)
	saved, err := svc.UpdateProduct(context.Background(), "P1", updated)
	require.NoError(t, err)
	require.Equal(t, "P1", saved.ID)
	require.Equal(t, "Widget Deluxe", saved.Name)
}
