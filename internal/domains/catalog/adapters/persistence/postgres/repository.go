package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/stockroom/stockroom-api/internal/domains/catalog/domain"
	"github.com/stockroom/stockroom-api/internal/domains/catalog/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists products in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// productRecord maps the product aggregate to a relational table.
type productRecord struct {
	ID        string          `gorm:"primaryKey;column:id;size:64"`
	Name      string          `gorm:"column:name;index"`
	SKU       string          `gorm:"column:sku;uniqueIndex"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price;type:numeric(12,2)"`
	Tags      pq.StringArray  `gorm:"column:tags;type:text[]"`
	CreatedAt time.Time       `gorm:"column:created_at"`
	UpdatedAt time.Time       `gorm:"column:updated_at"`
}

func (productRecord) TableName() string { return "products" }

// Save inserts or updates a product keyed by id.
func (r *Repository) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.New("product is nil")
	}
	record := toRecord(product)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"name":       record.Name,
				"sku":        record.SKU,
				"unit_price": record.UnitPrice,
				"tags":       record.Tags,
				"updated_at": gorm.Expr("NOW()"),
			}),
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches a product by identifier.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record productRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// Delete removes a product by identifier.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&productRecord{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// List returns all products.
func (r *Repository) List(ctx context.Context) ([]*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []productRecord
	if err := r.db.WithContext(ctx).Order("name").Find(&records).Error; err != nil {
		return nil, err
	}
	products := make([]*domain.Product, 0, len(records))
	for i := range records {
		products = append(products, records[i].toDomain())
	}
	return products, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres product repository not configured")
	}
	return nil
}

func toRecord(product *domain.Product) productRecord {
	return productRecord{
		ID:        product.ID,
		Name:      product.Name,
		SKU:       product.SKU,
		UnitPrice: product.UnitPrice,
		Tags:      pq.StringArray(product.Tags),
	}
}

func (r productRecord) toDomain() *domain.Product {
	return &domain.Product{
		ID:        r.ID,
		Name:      r.Name,
		SKU:       r.SKU,
		UnitPrice: r.UnitPrice,
		Tags:      []string(r.Tags),
	}
}
