package orders

import (
	"time"

	"github.com/ovenlight/mealdesk-backend/internal/domain/catalog"
	"github.com/ovenlight/mealdesk-backend/internal/domain/money"
)

// Order owns its line items exclusively (cascade delete). Total is always
// derived from the lines; it is never settable by a client.
type Order struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Address   string          `gorm:"column:address;size:200;not null" json:"address"`
	StatusID  uint            `gorm:"column:status_id;not null;index" json:"-"`
	Status    *catalog.Status `gorm:"foreignKey:StatusID;references:ID" json:"status,omitempty"`
	Total     money.Amount    `gorm:"column:total;type:numeric(12,2);not null;default:0" json:"total"`
	Lines     []*LineItem     `gorm:"constraint:OnDelete:CASCADE;foreignKey:OrderID;references:ID" json:"items"`
	CreatedAt time.Time       `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null;default:now()" json:"updated_at"`
}

func (Order) TableName() string { return "orders" }
