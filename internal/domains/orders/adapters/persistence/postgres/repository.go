package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/stockroom/stockroom-api/internal/domains/orders/domain"
	"github.com/stockroom/stockroom-api/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists orders and line items in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// orderRecord maps the order aggregate to a relational table.
type orderRecord struct {
	ID          string            `gorm:"primaryKey;column:id;size:64"`
	CustomerRef string            `gorm:"column:customer_ref;index"`
	PlacedAt    time.Time         `gorm:"column:placed_at;index"`
	Total       decimal.Decimal   `gorm:"column:total;type:numeric(12,2)"`
	Status      string            `gorm:"column:status;type:varchar(32);index"`
	Items       []orderItemRecord `gorm:"foreignKey:OrderID;references:ID"`
	CreatedAt   time.Time         `gorm:"column:created_at"`
	UpdatedAt   time.Time         `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }

// orderItemRecord maps a single line item; position preserves line order.
type orderItemRecord struct {
	OrderID   string `gorm:"primaryKey;column:order_id;size:64;index"`
	Position  int    `gorm:"primaryKey;column:position"`
	ProductID string `gorm:"column:product_id;size:64;index"`
	Quantity  int32  `gorm:"column:quantity"`
}

func (orderItemRecord) TableName() string { return "order_items" }

// Save upserts the order and rewrites its line items in one transaction.
func (r *Repository) Save(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	record := toRecord(order)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").
			Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "id"}},
				DoUpdates: clause.Assignments(map[string]any{
					"customer_ref": record.CustomerRef,
					"placed_at":    record.PlacedAt,
					"total":        record.Total,
					"status":       record.Status,
					"updated_at":   gorm.Expr("NOW()"),
				}),
			}).Create(&record).Error; err != nil {
			return err
		}
		if err := tx.Delete(&orderItemRecord{}, "order_id = ?", record.ID).Error; err != nil {
			return err
		}
		if len(record.Items) == 0 {
			return nil
		}
		return tx.Create(&record.Items).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches an order with its items in line position order.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// Delete removes an order and its items.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&orderItemRecord{}, "order_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&orderRecord{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ports.ErrNotFound
		}
		return nil
	})
}

// List returns all orders with their items.
func (r *Repository) List(ctx context.Context) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Order("placed_at").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	orders := make([]*domain.Order, 0, len(records))
	for i := range records {
		orders = append(orders, records[i].toDomain())
	}
	return orders, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}

func toRecord(order *domain.Order) orderRecord {
	record := orderRecord{
		ID:          order.ID,
		CustomerRef: order.CustomerRef,
		PlacedAt:    order.PlacedAt,
		Total:       order.Total,
		Status:      string(order.Status),
	}
	for i, item := range order.Items {
		record.Items = append(record.Items, orderItemRecord{
			OrderID:   order.ID,
			Position:  i,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return record
}

func (r orderRecord) toDomain() *domain.Order {
	order := &domain.Order{
		ID:          r.ID,
		CustomerRef: r.CustomerRef,
		PlacedAt:    r.PlacedAt,
		Total:       r.Total,
		Status:      domain.Status(r.Status),
	}
	for _, item := range r.Items {
		order.Items = append(order.Items, domain.OrderItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return order
}
