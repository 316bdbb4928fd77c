package catalog

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/ovenlight/mealdesk-backend/internal/domain/catalog"
	"github.com/ovenlight/mealdesk-backend/internal/platform/logger"
)

type CategoryRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.Category) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Category, error)
	List(ctx context.Context, tx *gorm.DB, includeRetired bool) ([]*types.Category, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id uint, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error

	Attach(ctx context.Context, tx *gorm.DB, categoryID uint, productIDs []uint) error
	Detach(ctx context.Context, tx *gorm.DB, categoryID, productID uint) (int64, error)
}

type categoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCategoryRepo(db *gorm.DB, baseLog *logger.Logger) CategoryRepo {
	return &categoryRepo{db: db, log: baseLog.With("repo", "CategoryRepo")}
}

func (r *categoryRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Category) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	return t.WithContext(ctx).Omit(clause.Associations).Create(row).Error
}

func (r *categoryRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Category, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == 0 {
		return nil, nil
	}
	var out []*types.Category
	if err := t.WithContext(ctx).Preload("Products").Where("id = ?", id).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *categoryRepo) List(ctx context.Context, tx *gorm.DB, includeRetired bool) ([]*types.Category, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Category
	q := t.WithContext(ctx).Preload("Products").Order("id ASC")
	if !includeRetired {
		q = q.Where("retired = ?", false)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *categoryRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uint, updates map[string]interface{}) error {
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
		Model(&types.Category{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *categoryRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == 0 {
		return nil
	}
	if err := t.WithContext(ctx).Where("category_id = ?", id).Delete(&types.CategoryProduct{}).Error; err != nil {
		return err
	}
	return t.WithContext(ctx).Delete(&types.Category{}, id).Error
}

// Attach inserts join rows, skipping ids already attached. Idempotent per
// product.
func (r *categoryRepo) Attach(ctx context.Context, tx *gorm.DB, categoryID uint, productIDs []uint) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if categoryID == 0 || len(productIDs) == 0 {
		return nil
	}
	rows := make([]*types.CategoryProduct, 0, len(productIDs))
	for _, pid := range productIDs {
		rows = append(rows, &types.CategoryProduct{CategoryID: categoryID, ProductID: pid})
	}
	return t.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}

func (r *categoryRepo) Detach(ctx context.Context, tx *gorm.DB, categoryID, productID uint) (int64, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if categoryID == 0 || productID == 0 {
		return 0, nil
	}
	res := t.WithContext(ctx).
		Where("category_id = ? AND product_id = ?", categoryID, productID).
		Delete(&types.CategoryProduct{})
	return res.RowsAffected, res.Error
}
