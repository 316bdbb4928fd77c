package catalog

import (
	"time"

	"github.com/ovenlight/mealdesk-backend/internal/domain/money"
)

// Product is a sellable menu item. Name uniqueness is enforced by a
// partial unique index over non-retired rows only, so a retired product's
// name can be reused.
type Product struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"column:name;size:50;not null;index" json:"name"`
	Price       money.Amount `gorm:"column:price;type:numeric(12,2);not null" json:"price"`
	Description string       `gorm:"column:description;size:200" json:"description,omitempty"`
	Stock       int          `gorm:"column:stock;not null;default:0" json:"stock"`
	Calories    int          `gorm:"column:calories;not null;default:0" json:"calories"`
	Retired     bool         `gorm:"column:retired;not null;default:false" json:"retired"`
	CreatedAt   time.Time    `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"not null;default:now()" json:"updated_at"`
}

func (Product) TableName() string { return "product" }
