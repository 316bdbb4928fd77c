package orders_test

import (
	"context"
	"testing"

	orderrepo "github.com/ovenlight/mealdesk-backend/internal/data/repos/orders"
	"github.com/ovenlight/mealdesk-backend/internal/data/repos/testutil"
	"github.com/ovenlight/mealdesk-backend/internal/domain/orders"
)

func TestUpsertOverwrites(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	repo := orderrepo.NewLineItemRepo(tx, testutil.Logger(t))

	product := testutil.SeedProduct(t, ctx, tx, "Waffle", "1.25", 10)
	order := testutil.SeedOrder(t, ctx, tx, "Main Street 1")

	first := &orders.LineItem{
		OrderID:   order.ID,
		ProductID: product.ID,
		Quantity:  2,
		SubTotal:  testutil.MustAmount(t, "2.50"),
	}
	if err := repo.Upsert(ctx, nil, first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second := &orders.LineItem{
		OrderID:   order.ID,
		ProductID: product.ID,
		Quantity:  5,
		SubTotal:  testutil.MustAmount(t, "6.25"),
	}
	if err := repo.Upsert(ctx, nil, second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	rows, err := repo.GetByOrder(ctx, nil, order.ID)
	if err != nil {
		t.Fatalf("get by order: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].Quantity != 5 {
		t.Fatalf("quantity = %d, want overwrite to 5", rows[0].Quantity)
	}
	if got := rows[0].SubTotal.String(); got != "6.25" {
		t.Fatalf("sub total = %s, want 6.25", got)
	}
}

func TestSumSubTotals(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	repo := orderrepo.NewLineItemRepo(tx, testutil.Logger(t))

	waffle := testutil.SeedProduct(t, ctx, tx, "Waffle", "1.25", 10)
	coffee := testutil.SeedProduct(t, ctx, tx, "Coffee", "0.70", 10)
	order := testutil.SeedOrder(t, ctx, tx, "Main Street 1")

	for _, line := range []*orders.LineItem{
		{OrderID: order.ID, ProductID: waffle.ID, Quantity: 2, SubTotal: testutil.MustAmount(t, "2.50")},
		{OrderID: order.ID, ProductID: coffee.ID, Quantity: 2, SubTotal: testutil.MustAmount(t, "1.40")},
	} {
		if err := repo.Upsert(ctx, nil, line); err != nil {
			t.Fatalf("upsert: %v", err)
		}
	}

	total, err := repo.SumSubTotals(ctx, nil, order.ID)
	if err != nil {
		t.Fatalf("sum: %v", err)
	}
	if got := total.String(); got != "3.90" {
		t.Fatalf("total = %s, want 3.90", got)
	}
}

func TestSumSubTotalsEmptyOrder(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	repo := orderrepo.NewLineItemRepo(tx, testutil.Logger(t))

	order := testutil.SeedOrder(t, ctx, tx, "Main Street 1")
	total, err := repo.SumSubTotals(ctx, nil, order.ID)
	if err != nil {
		t.Fatalf("sum: %v", err)
	}
	if got := total.String(); got != "0.00" {
		t.Fatalf("empty order total = %s, want 0.00", got)
	}
}

func TestGetByOrderAndProduct(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	repo := orderrepo.NewLineItemRepo(tx, testutil.Logger(t))

	product := testutil.SeedProduct(t, ctx, tx, "Waffle", "1.25", 10)
	order := testutil.SeedOrder(t, ctx, tx, "Main Street 1")

	row, err := repo.GetByOrderAndProduct(ctx, nil, order.ID, product.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if row != nil {
		t.Fatalf("expected nil for absent line, got %+v", row)
	}

	line := &orders.LineItem{OrderID: order.ID, ProductID: product.ID, Quantity: 3, SubTotal: testutil.MustAmount(t, "3.75")}
	if err := repo.Upsert(ctx, nil, line); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	row, err = repo.GetByOrderAndProduct(ctx, nil, order.ID, product.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if row == nil || row.Quantity != 3 {
		t.Fatalf("row = %+v, want quantity 3", row)
	}
	if got := row.SubTotal.String(); got != "3.75" {
		t.Fatalf("sub total = %s, want 3.75", got)
	}
}

func TestDeleteByOrderAndProductReportsMisses(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	repo := orderrepo.NewLineItemRepo(tx, testutil.Logger(t))

	product := testutil.SeedProduct(t, ctx, tx, "Waffle", "1.25", 10)
	order := testutil.SeedOrder(t, ctx, tx, "Main Street 1")

	line := &orders.LineItem{OrderID: order.ID, ProductID: product.ID, Quantity: 1, SubTotal: testutil.MustAmount(t, "1.25")}
	if err := repo.Upsert(ctx, nil, line); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	deleted, err := repo.DeleteByOrderAndProduct(ctx, nil, order.ID, product.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("deleted = %d, want 1", deleted)
	}

	deleted, err = repo.DeleteByOrderAndProduct(ctx, nil, order.ID, product.ID)
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if deleted != 0 {
		t.Fatalf("deleted = %d, want 0", deleted)
	}
}

func TestCountByProduct(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	repo := orderrepo.NewLineItemRepo(tx, testutil.Logger(t))

	product := testutil.SeedProduct(t, ctx, tx, "Waffle", "1.25", 10)
	order := testutil.SeedOrder(t, ctx, tx, "Main Street 1")

	count, err := repo.CountByProduct(ctx, nil, product.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("count = %d, want 0", count)
	}

	line := &orders.LineItem{OrderID: order.ID, ProductID: product.ID, Quantity: 1, SubTotal: testutil.MustAmount(t, "1.25")}
	if err := repo.Upsert(ctx, nil, line); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	count, err = repo.CountByProduct(ctx, nil, product.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
}
