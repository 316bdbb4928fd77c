package catalog

import (
	"time"
)

// Category groups products. The association is shared reference data:
// products are attached by id, never copied.
type Category struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"column:name;size:50;not null;index" json:"name"`
	Retired   bool       `gorm:"column:retired;not null;default:false" json:"retired"`
	Products  []*Product `gorm:"many2many:category_product" json:"products,omitempty"`
	CreatedAt time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (Category) TableName() string { return "category" }

// CategoryProduct is the explicit join row for category/product attachment.
// Modelled explicitly so attaches can be idempotent (insert, do nothing on
// conflict) instead of relying on association append semantics.
type CategoryProduct struct {
	CategoryID uint `gorm:"primaryKey;column:category_id"`
	ProductID  uint `gorm:"primaryKey;column:product_id"`
}

func (CategoryProduct) TableName() string { return "category_product" }
