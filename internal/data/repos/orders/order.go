package orders

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/ovenlight/mealdesk-backend/internal/domain/orders"
	"github.com/ovenlight/mealdesk-backend/internal/platform/logger"
)

type OrderRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.Order) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Order, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Order, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id uint, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
}

type orderRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOrderRepo(db *gorm.DB, baseLog *logger.Logger) OrderRepo {
	return &orderRepo{db: db, log: baseLog.With("repo", "OrderRepo")}
}

func (r *orderRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Order) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	return t.WithContext(ctx).Omit(clause.Associations).Create(row).Error
}

func (r *orderRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Order, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == 0 {
		return nil, nil
	}
	var out []*types.Order
	if err := t.WithContext(ctx).
		Preload("Status").
		Preload("Lines", func(q *gorm.DB) *gorm.DB { return q.Order("line_item.product_id ASC") }).
		Preload("Lines.Product").
		Where("id = ?", id).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *orderRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Order, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Order
	if err := t.WithContext(ctx).
		Preload("Status").
		Preload("Lines", func(q *gorm.DB) *gorm.DB { return q.Order("line_item.product_id ASC") }).
		Preload("Lines.Product").
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uint, updates map[string]interface{}) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == 0 {
		return nil
	}
	if updates == nil {
		updates = map[string]interface{}{}
	}
	if _, ok := updates["updated_at"]; !ok {
		updates["updated_at"] = time.Now().UTC()
	}
	return t.WithContext(ctx).
		Model(&types.Order{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *orderRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == 0 {
		return nil
	}
	if err := t.WithContext(ctx).Where("order_id = ?", id).Delete(&types.LineItem{}).Error; err != nil {
		return err
	}
	return t.WithContext(ctx).Delete(&types.Order{}, id).Error
}
