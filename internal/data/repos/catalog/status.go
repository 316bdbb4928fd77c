package catalog

import (
	"context"

	"gorm.io/gorm"

	types "github.com/ovenlight/mealdesk-backend/internal/domain/catalog"
	"github.com/ovenlight/mealdesk-backend/internal/platform/logger"
)

type StatusRepo interface {
	GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Status, error)
	// Ensure returns the status with the given name, creating it when it
	// does not exist yet. Idempotent.
	Ensure(ctx context.Context, tx *gorm.DB, name string) (*types.Status, error)
}

type statusRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStatusRepo(db *gorm.DB, baseLog *logger.Logger) StatusRepo {
	return &statusRepo{db: db, log: baseLog.With("repo", "StatusRepo")}
}

func (r *statusRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Status, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if name == "" {
		return nil, nil
	}
	var out []*types.Status
	if err := t.WithContext(ctx).Where("name = ?", name).Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *statusRepo) Ensure(ctx context.Context, tx *gorm.DB, name string) (*types.Status, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if name == "" {
		return nil, nil
	}
	row := &types.Status{Name: name}
	if err := t.WithContext(ctx).Where("name = ?", name).FirstOrCreate(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}
