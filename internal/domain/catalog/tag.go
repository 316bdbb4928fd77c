package catalog

import (
	"time"
)

// Tag is a free-form label over products, attached the same way categories
// are.
type Tag struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"column:name;size:50;not null;index" json:"name"`
	Retired   bool       `gorm:"column:retired;not null;default:false" json:"retired"`
	Products  []*Product `gorm:"many2many:product_tag" json:"products,omitempty"`
	CreatedAt time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (Tag) TableName() string { return "tag" }

// ProductTag is the explicit join row for tag/product attachment.
type ProductTag struct {
	TagID     uint `gorm:"primaryKey;column:tag_id"`
	ProductID uint `gorm:"primaryKey;column:product_id"`
}

func (ProductTag) TableName() string { return "product_tag" }
