package orders

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ovenlight/mealdesk-backend/internal/domain/money"
	types "github.com/ovenlight/mealdesk-backend/internal/domain/orders"
	"github.com/ovenlight/mealdesk-backend/internal/platform/logger"
)

type LineItemRepo interface {
	GetByOrder(ctx context.Context, tx *gorm.DB, orderID uint) ([]*types.LineItem, error)
	GetByOrderAndProduct(ctx context.Context, tx *gorm.DB, orderID, productID uint) (*types.LineItem, error)
	// Upsert creates the (order, product) line or overwrites its quantity
	// and sub-total in place. Never increments.
	Upsert(ctx context.Context, tx *gorm.DB, row *types.LineItem) error
	DeleteByOrderAndProduct(ctx context.Context, tx *gorm.DB, orderID, productID uint) (int64, error)
	// SumSubTotals computes the derived order total inside the current
	// unit of work.
	SumSubTotals(ctx context.Context, tx *gorm.DB, orderID uint) (money.Amount, error)
	CountByProduct(ctx context.Context, tx *gorm.DB, productID uint) (int64, error)
}

type lineItemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLineItemRepo(db *gorm.DB, baseLog *logger.Logger) LineItemRepo {
	return &lineItemRepo{db: db, log: baseLog.With("repo", "LineItemRepo")}
}

func (r *lineItemRepo) GetByOrder(ctx context.Context, tx *gorm.DB, orderID uint) ([]*types.LineItem, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.LineItem
	if orderID == 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("product_id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *lineItemRepo) GetByOrderAndProduct(ctx context.Context, tx *gorm.DB, orderID, productID uint) (*types.LineItem, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if orderID == 0 || productID == 0 {
		return nil, nil
	}
	var out []*types.LineItem
	if err := t.WithContext(ctx).
		Where("order_id = ? AND product_id = ?", orderID, productID).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *lineItemRepo) Upsert(ctx context.Context, tx *gorm.DB, row *types.LineItem) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	row.UpdatedAt = time.Now().UTC()
	return t.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}, {Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity", "sub_total", "updated_at"}),
		}).
		Create(row).Error
}

func (r *lineItemRepo) DeleteByOrderAndProduct(ctx context.Context, tx *gorm.DB, orderID, productID uint) (int64, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if orderID == 0 || productID == 0 {
		return 0, nil
	}
	res := t.WithContext(ctx).
		Where("order_id = ? AND product_id = ?", orderID, productID).
		Delete(&types.LineItem{})
	return res.RowsAffected, res.Error
}

func (r *lineItemRepo) SumSubTotals(ctx context.Context, tx *gorm.DB, orderID uint) (money.Amount, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if orderID == 0 {
		return money.Zero(), nil
	}
	var sum decimal.Decimal
	if err := t.WithContext(ctx).
		Model(&types.LineItem{}).
		Select("COALESCE(SUM(sub_total), 0)").
		Where("order_id = ?", orderID).
		Scan(&sum).Error; err != nil {
		return money.Zero(), err
	}
	return money.New(sum).Round2(), nil
}

func (r *lineItemRepo) CountByProduct(ctx context.Context, tx *gorm.DB, productID uint) (int64, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if productID == 0 {
		return 0, nil
	}
	var n int64
	if err := t.WithContext(ctx).
		Model(&types.LineItem{}).
		Where("product_id = ?", productID).
		Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
