package migrations

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Intended to replace adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&productRecord{},
		&locationRecord{},
		&placementRecord{},
		&orderRecord{},
		&orderItemRecord{},
		&userRecord{},
		&sessionRecord{},
	)
}

// Product schema mirrors the catalog Postgres adapter.
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

// Storage location schema mirrors the warehouse Postgres adapter.
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

type placementRecord struct {
	ProductID  string    `gorm:"primaryKey;column:product_id;size:64;index"`
	LocationID string    `gorm:"primaryKey;column:location_id;size:64;index"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (placementRecord) TableName() string { return "stock_placements" }

// Order schema mirrors the orders Postgres adapter.
type orderRecord struct {
	ID          string          `gorm:"primaryKey;column:id;size:64"`
	CustomerRef string          `gorm:"column:customer_ref;index"`
	PlacedAt    time.Time       `gorm:"column:placed_at;index"`
	Total       decimal.Decimal `gorm:"column:total;type:numeric(12,2)"`
	Status      string          `gorm:"column:status;type:varchar(32);index"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }

type orderItemRecord struct {
	OrderID   string `gorm:"primaryKey;column:order_id;size:64;index"`
	Position  int    `gorm:"primaryKey;column:position"`
	ProductID string `gorm:"column:product_id;size:64;index"`
	Quantity  int32  `gorm:"column:quantity"`
}

func (orderItemRecord) TableName() string { return "order_items" }

// User schema mirrors the users Postgres adapter.
type userRecord struct {
	ID           int64     `gorm:"primaryKey;column:id;autoIncrement"`
	Username     string    `gorm:"column:username;uniqueIndex"`
	FirstName    string    `gorm:"column:first_name"`
	LastName     string    `gorm:"column:last_name"`
	Email        string    `gorm:"column:email"`
	PasswordHash string    `gorm:"column:password_hash;size:128"`
	Phone        string    `gorm:"column:phone"`
	Active       bool      `gorm:"column:active"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userRecord) TableName() string { return "users" }

// Session schema mirrors the session store.
type sessionRecord struct {
	Token     string     `gorm:"primaryKey;column:token;size:512"`
	Username  string     `gorm:"column:username;index"`
	ExpiresAt *time.Time `gorm:"column:expires_at;index"`
	CreatedAt time.Time  `gorm:"column:created_at;index"`
	UpdatedAt time.Time  `gorm:"column:updated_at;index"`
}

func (sessionRecord) TableName() string { return "user_sessions" }
