package testutil

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/ovenlight/mealdesk-backend/internal/domain/catalog"
	"github.com/ovenlight/mealdesk-backend/internal/domain/money"
	"github.com/ovenlight/mealdesk-backend/internal/domain/orders"
)

// MustAmount parses a decimal literal or fails the test.
func MustAmount(tb testing.TB, s string) money.Amount {
	tb.Helper()
	a, err := money.FromString(s)
	if err != nil {
		tb.Fatalf("parse amount %q: %v", s, err)
	}
	return a
}

func SeedProduct(tb testing.TB, ctx context.Context, tx *gorm.DB, name, price string, stock int) *catalog.Product {
	tb.Helper()
	p := &catalog.Product{
		Name:        name,
		Price:       MustAmount(tb, price),
		Description: "seeded",
		Stock:       stock,
		Calories:    100,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed product: %v", err)
	}
	return p
}

func SeedRetiredProduct(tb testing.TB, ctx context.Context, tx *gorm.DB, name, price string) *catalog.Product {
	tb.Helper()
	p := SeedProduct(tb, ctx, tx, name, price, 10)
	if err := tx.WithContext(ctx).Model(&catalog.Product{}).Where("id = ?", p.ID).Update("retired", true).Error; err != nil {
		tb.Fatalf("retire seeded product: %v", err)
	}
	p.Retired = true
	return p
}

func SeedCategory(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *catalog.Category {
	tb.Helper()
	c := &catalog.Category{Name: name}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed category: %v", err)
	}
	return c
}

func SeedTag(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *catalog.Tag {
	tb.Helper()
	t := &catalog.Tag{Name: name}
	if err := tx.WithContext(ctx).Create(t).Error; err != nil {
		tb.Fatalf("seed tag: %v", err)
	}
	return t
}

func SeedStatus(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *catalog.Status {
	tb.Helper()
	st := &catalog.Status{Name: name}
	if err := tx.WithContext(ctx).Where(catalog.Status{Name: name}).FirstOrCreate(st).Error; err != nil {
		tb.Fatalf("seed status: %v", err)
	}
	return st
}

func SeedOrder(tb testing.TB, ctx context.Context, tx *gorm.DB, address string) *orders.Order {
	tb.Helper()
	st := SeedStatus(tb, ctx, tx, catalog.StatusPending)
	o := &orders.Order{Address: address, StatusID: st.ID}
	if err := tx.WithContext(ctx).Create(o).Error; err != nil {
		tb.Fatalf("seed order: %v", err)
	}
	return o
}
