package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/ovenlight/mealdesk-backend/internal/domain/catalog"
	"github.com/ovenlight/mealdesk-backend/internal/domain/orders"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		// Catalog reference data
		&catalog.Product{},
		&catalog.Category{},
		&catalog.CategoryProduct{},
		&catalog.Tag{},
		&catalog.ProductTag{},
		&catalog.Status{},

		// Orders + owned lines
		&orders.Order{},
		&orders.LineItem{},
	)
}

// EnsureCatalogIndexes creates the partial unique name indexes. Name
// uniqueness holds among non-retired rows only, so a retired entity's name
// can be reused by a fresh row.
func EnsureCatalogIndexes(db *gorm.DB) error {
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_product_name_active
		ON product(name)
		WHERE retired = false;
	`).Error; err != nil {
		return fmt.Errorf("create idx_product_name_active: %w", err)
	}
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_category_name_active
		ON category(name)
		WHERE retired = false;
	`).Error; err != nil {
		return fmt.Errorf("create idx_category_name_active: %w", err)
	}
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_tag_name_active
		ON tag(name)
		WHERE retired = false;
	`).Error; err != nil {
		return fmt.Errorf("create idx_tag_name_active: %w", err)
	}
	return nil
}

// EnsureOrderIndexes speeds up the per-order line scans behind total
// recomputation.
func EnsureOrderIndexes(db *gorm.DB) error {
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_line_item_product
		ON line_item(product_id);
	`).Error; err != nil {
		return fmt.Errorf("create idx_line_item_product: %w", err)
	}
	return nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	if err := AutoMigrateAll(s.db); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	if err := EnsureCatalogIndexes(s.db); err != nil {
		s.log.Error("Catalog index migration failed", "error", err)
		return err
	}
	if err := EnsureOrderIndexes(s.db); err != nil {
		s.log.Error("Order index migration failed", "error", err)
		return err
	}
	return nil
}
