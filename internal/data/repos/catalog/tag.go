package catalog

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/ovenlight/mealdesk-backend/internal/domain/catalog"
	"github.com/ovenlight/mealdesk-backend/internal/platform/logger"
)

type TagRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.Tag) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Tag, error)
	List(ctx context.Context, tx *gorm.DB, includeRetired bool) ([]*types.Tag, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id uint, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error

	Attach(ctx context.Context, tx *gorm.DB, tagID uint, productIDs []uint) error
	Detach(ctx context.Context, tx *gorm.DB, tagID, productID uint) (int64, error)
}

type tagRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTagRepo(db *gorm.DB, baseLog *logger.Logger) TagRepo {
	return &tagRepo{db: db, log: baseLog.With("repo", "TagRepo")}
}

func (r *tagRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Tag) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	return t.WithContext(ctx).Omit(clause.Associations).Create(row).Error
}

func (r *tagRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Tag, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == 0 {
		return nil, nil
	}
	var out []*types.Tag
	if err := t.WithContext(ctx).Preload("Products").Where("id = ?", id).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *tagRepo) List(ctx context.Context, tx *gorm.DB, includeRetired bool) ([]*types.Tag, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Tag
	q := t.WithContext(ctx).Preload("Products").Order("id ASC")
	if !includeRetired {
		q = q.Where("retired = ?", false)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *tagRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uint, updates map[string]interface{}) error {
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
		Model(&types.Tag{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *tagRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == 0 {
		return nil
	}
	if err := t.WithContext(ctx).Where("tag_id = ?", id).Delete(&types.ProductTag{}).Error; err != nil {
		return err
	}
	return t.WithContext(ctx).Delete(&types.Tag{}, id).Error
}

func (r *tagRepo) Attach(ctx context.Context, tx *gorm.DB, tagID uint, productIDs []uint) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if tagID == 0 || len(productIDs) == 0 {
		return nil
	}
	rows := make([]*types.ProductTag, 0, len(productIDs))
	for _, pid := range productIDs {
		rows = append(rows, &types.ProductTag{TagID: tagID, ProductID: pid})
	}
	return t.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}

func (r *tagRepo) Detach(ctx context.Context, tx *gorm.DB, tagID, productID uint) (int64, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if tagID == 0 || productID == 0 {
		return 0, nil
	}
	res := t.WithContext(ctx).
		Where("tag_id = ? AND product_id = ?", tagID, productID).
		Delete(&types.ProductTag{})
	return res.RowsAffected, res.Error
}
