package orders

import (
	"time"

	"github.com/ovenlight/mealdesk-backend/internal/domain/catalog"
	"github.com/ovenlight/mealdesk-backend/internal/domain/money"
)

// LineItem associates an order with a product. SubTotal freezes
// quantity x unit price at the time of the mutation; later product price
// changes do not rewrite it.
type LineItem struct {
	OrderID   uint             `gorm:"primaryKey;column:order_id" json:"-"`
	ProductID uint             `gorm:"primaryKey;column:product_id" json:"product_id"`
	Product   *catalog.Product `gorm:"foreignKey:ProductID;references:ID" json:"product,omitempty"`
	Quantity  int              `gorm:"column:quantity;not null" json:"quantity"`
	SubTotal  money.Amount     `gorm:"column:sub_total;type:numeric(12,2);not null" json:"sub_total"`
	CreatedAt time.Time        `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time        `gorm:"not null;default:now()" json:"updated_at"`
}

func (LineItem) TableName() string { return "line_item" }
