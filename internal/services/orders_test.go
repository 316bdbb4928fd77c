package services

import (
	"context"
	"encoding/json"
	"testing"

	"gorm.io/gorm"

	orderrepo "github.com/ovenlight/mealdesk-backend/internal/data/repos/orders"
	"github.com/ovenlight/mealdesk-backend/internal/domain/failure"
	types "github.com/ovenlight/mealdesk-backend/internal/domain/orders"
	"github.com/ovenlight/mealdesk-backend/internal/platform/logger"
)

// stubOrderRepo satisfies the existence check that precedes validation;
// everything else panics via the embedded nil interface.
type stubOrderRepo struct {
	orderrepo.OrderRepo
}

func (stubOrderRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Order, error) {
	return &types.Order{ID: id, Address: "Main Street 1"}, nil
}

func newOrderServiceForValidation(t *testing.T) OrderService {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	// Validation failures return before the aggregate is ever touched.
	return NewOrderService(log, nil, stubOrderRepo{})
}

func decodeCreateInput(t *testing.T, raw string) CreateOrderInput {
	t.Helper()
	var in CreateOrderInput
	if err := json.Unmarshal([]byte(raw), &in); err != nil {
		t.Fatalf("decode input: %v", err)
	}
	return in
}

func TestCreateOrderValidationFieldNames(t *testing.T) {
	svc := newOrderServiceForValidation(t)

	in := decodeCreateInput(t, `{
		"address": "Main Street 1",
		"items": [
			{"product_id": "banana", "quantity": 1},
			{"product_id": 2, "quantity": -4},
			{"quantity": 1}
		]
	}`)
	_, err := svc.CreateOrder(context.Background(), in)
	f, ok := failure.As(err)
	if !ok || f.Kind != failure.KindValidation {
		t.Fatalf("want validation failure, got %v", err)
	}
	if len(f.Fields) != 3 {
		t.Fatalf("fields = %+v", f.Fields)
	}
	wantFields := []string{"items.0.product_id", "items.1.quantity", "items.2.product_id"}
	for i, want := range wantFields {
		if f.Fields[i].Field != want {
			t.Fatalf("field %d = %q, want %q", i, f.Fields[i].Field, want)
		}
	}
}

func TestCreateOrderMissingAddress(t *testing.T) {
	svc := newOrderServiceForValidation(t)

	in := decodeCreateInput(t, `{"items": []}`)
	_, err := svc.CreateOrder(context.Background(), in)
	f, ok := failure.As(err)
	if !ok || f.Kind != failure.KindValidation {
		t.Fatalf("want validation failure, got %v", err)
	}
	if len(f.Fields) != 1 || f.Fields[0].Field != "address" {
		t.Fatalf("fields = %+v", f.Fields)
	}
	if f.Fields[0].Message != "address is required" {
		t.Fatalf("message = %q", f.Fields[0].Message)
	}
}

func TestCreateOrderTypeMismatchIsFieldError(t *testing.T) {
	svc := newOrderServiceForValidation(t)

	// An object where the address string belongs is a validation failure,
	// not a parse failure.
	in := decodeCreateInput(t, `{"address": {"street": 12}, "items": []}`)
	_, err := svc.CreateOrder(context.Background(), in)
	f, ok := failure.As(err)
	if !ok || f.Kind != failure.KindValidation {
		t.Fatalf("want validation failure, got %v", err)
	}
	if len(f.Fields) != 1 || f.Fields[0].Field != "address" {
		t.Fatalf("fields = %+v", f.Fields)
	}
	if f.Fields[0].Message != "address may only contain letters, digits, spaces, commas and hyphens" {
		t.Fatalf("message = %q", f.Fields[0].Message)
	}
}

func TestUpdateOrderRejectsEmptyStatus(t *testing.T) {
	svc := newOrderServiceForValidation(t)

	var in UpdateOrderInput
	if err := json.Unmarshal([]byte(`{"status": "   "}`), &in); err != nil {
		t.Fatalf("decode input: %v", err)
	}
	_, err := svc.UpdateOrder(context.Background(), 1, in)
	f, ok := failure.As(err)
	if !ok || f.Kind != failure.KindValidation {
		t.Fatalf("want validation failure, got %v", err)
	}
	if len(f.Fields) != 1 || f.Fields[0].Field != "status" {
		t.Fatalf("fields = %+v", f.Fields)
	}
}

func TestSetLineRejectsBadQuantity(t *testing.T) {
	svc := newOrderServiceForValidation(t)

	var in SetLineInput
	if err := json.Unmarshal([]byte(`{"quantity": "many"}`), &in); err != nil {
		t.Fatalf("decode input: %v", err)
	}
	_, err := svc.SetLine(context.Background(), 1, 2, in)
	f, ok := failure.As(err)
	if !ok || f.Kind != failure.KindValidation {
		t.Fatalf("want validation failure, got %v", err)
	}
	if len(f.Fields) != 1 || f.Fields[0].Field != "quantity" {
		t.Fatalf("fields = %+v", f.Fields)
	}
}
