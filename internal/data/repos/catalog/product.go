package catalog

import (
	"context"
	"time"

	"gorm.io/gorm"

	types "github.com/ovenlight/mealdesk-backend/internal/domain/catalog"
	"github.com/ovenlight/mealdesk-backend/internal/platform/logger"
)

type ProductRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.Product) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Product, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uint) ([]*types.Product, error)
	List(ctx context.Context, tx *gorm.DB, includeRetired bool) ([]*types.Product, error)
	Update(ctx context.Context, tx *gorm.DB, row *types.Product) error
	UpdateFields(ctx context.Context, tx *gorm.DB, id uint, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
}

type productRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProductRepo(db *gorm.DB, baseLog *logger.Logger) ProductRepo {
	return &productRepo{db: db, log: baseLog.With("repo", "ProductRepo")}
}

func (r *productRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Product) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	return t.WithContext(ctx).Create(row).Error
}

func (r *productRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Product, error) {
	if id == 0 {
		return nil, nil
	}
	rows, err := r.GetByIDs(ctx, tx, []uint{id})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *productRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uint) ([]*types.Product, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Product
	if len(ids) == 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *productRepo) List(ctx context.Context, tx *gorm.DB, includeRetired bool) ([]*types.Product, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Product
	q := t.WithContext(ctx).Order("id ASC")
	if !includeRetired {
		q = q.Where("retired = ?", false)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *productRepo) Update(ctx context.Context, tx *gorm.DB, row *types.Product) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	row.UpdatedAt = time.Now().UTC()
	return t.WithContext(ctx).Save(row).Error
}

func (r *productRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uint, updates map[string]interface{}) error {
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
		Model(&types.Product{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *productRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == 0 {
		return nil
	}
	return t.WithContext(ctx).Delete(&types.Product{}, id).Error
}
