package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/stockroom/stockroom-api/internal/domains/warehouse/domain"
	"github.com/stockroom/stockroom-api/internal/domains/warehouse/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists storage locations and stock placements in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// locationRecord maps the storage location to a relational table.
type locationRecord struct {
	ID        string    `gorm:"primaryKey;column:id;size:64"`
	Name      string    `gorm:"column:name;index"`
	Address   string    `gorm:"column:address"`
	Capacity  *int32    `gorm:"column:capacity"`
	Notes     string    `gorm:"column:notes"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (locationRecord) TableName() string { return "storage_locations" }

// placementRecord associates a product with a location that stocks it.
type placementRecord struct {
	ProductID  string    `gorm:"primaryKey;column:product_id;size:64;index"`
	LocationID string    `gorm:"primaryKey;column:location_id;size:64;index"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (placementRecord) TableName() string { return "stock_placements" }

// Save inserts or updates a storage location keyed by id.
func (r *Repository) Save(ctx context.Context, location *domain.StorageLocation) (*domain.StorageLocation, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if location == nil {
		return nil, errors.New("location is nil")
	}
	record := toRecord(location)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"name":       record.Name,
				"address":    record.Address,
				"capacity":   record.Capacity,
				"notes":      record.Notes,
				"updated_at": gorm.Expr("NOW()"),
			}),
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches a storage location by identifier.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.StorageLocation, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record locationRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// Delete removes a storage location and its placements.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&locationRecord{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ports.ErrNotFound
		}
		return tx.Delete(&placementRecord{}, "location_id = ?", id).Error
	})
}

// List returns all storage locations.
func (r *Repository) List(ctx context.Context) ([]*domain.StorageLocation, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []locationRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	locations := make([]*domain.StorageLocation, 0, len(records))
	for i := range records {
		locations = append(locations, records[i].toDomain())
	}
	return locations, nil
}

// AssignProduct records that a product is stocked at a location. Idempotent.
func (r *Repository) AssignProduct(ctx context.Context, productID, locationID string) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&locationRecord{}).Where("id = ?", locationID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ports.ErrNotFound
	}
	record := placementRecord{ProductID: productID, LocationID: locationID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&record).Error
}

// UnassignProduct removes a product/location placement.
func (r *Repository) UnassignProduct(ctx context.Context, productID, locationID string) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Delete(&placementRecord{}, "product_id = ? AND location_id = ?", productID, locationID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrPlacementNotFound
	}
	return nil
}

// LocationsForProduct returns every location currently stocking the product.
func (r *Repository) LocationsForProduct(ctx context.Context, productID string) ([]domain.StorageLocation, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []locationRecord
	err := r.db.WithContext(ctx).
		Joins("JOIN stock_placements ON stock_placements.location_id = storage_locations.id").
		Where("stock_placements.product_id = ?", productID).
		Order("storage_locations.id").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	locations := make([]domain.StorageLocation, 0, len(records))
	for i := range records {
		locations = append(locations, *records[i].toDomain())
	}
	return locations, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres warehouse repository not configured")
	}
	return nil
}

func toRecord(location *domain.StorageLocation) locationRecord {
	return locationRecord{
		ID:       location.ID,
		Name:     location.Name,
		Address:  location.Address,
		Capacity: location.Capacity,
		Notes:    location.Notes,
	}
}

func (r locationRecord) toDomain() *domain.StorageLocation {
	return &domain.StorageLocation{
		ID:       r.ID,
		Name:     r.Name,
		Address:  r.Address,
		Capacity: r.Capacity,
		Notes:    r.Notes,
	}
}
