package models

import (
	"time"

	"github.com/lib/pq"

	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/enums"
)

// Product represents a catalog listing. Integer IDs are stable across the
// seed catalog; cart entries snapshot the full row so cart display never
// depends on the catalog being reachable.
type Product struct {
	ID        int                   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string                `gorm:"column:name;not null" json:"name"`
	Price     int                   `gorm:"column:price;not null" json:"price"`
	Unit      enums.ProductUnit     `gorm:"column:unit;not null" json:"unit"`
	Organic   bool                  `gorm:"column:organic;not null" json:"organic"`
	Category  enums.ProductCategory `gorm:"column:category;not null" json:"category"`
	Tags      pq.StringArray        `gorm:"column:tags;type:text[]" json:"tags,omitempty"`
	ImageURL  *string               `gorm:"column:image_url" json:"image_url,omitempty"`
	// No gorm default tags on the booleans: with a default tag GORM omits
	// zero values on insert, so a false flag would be stored as the column
	// default. Column defaults live in the migration instead.
	IsActive  bool                  `gorm:"column:is_active;not null" json:"is_active"`
	CreatedAt time.Time             `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time             `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName pins the table used by GORM.
func (Product) TableName() string {
	return "products"
}
