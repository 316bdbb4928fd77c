package failure

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	err := New(KindUniquenessConflict, "catalog.product.create", "This name already exists", nil)
	if got := KindOf(err); got != KindUniquenessConflict {
		t.Fatalf("KindOf = %q, want %q", got, KindUniquenessConflict)
	}
	if KindOf(errors.New("plain")) != "" {
		t.Fatalf("KindOf on plain error should be empty")
	}
	if KindOf(nil) != "" {
		t.Fatalf("KindOf on nil should be empty")
	}
}

func TestKindSurvivesWrapping(t *testing.T) {
	inner := NotFound("order.get", "order", 42)
	wrapped := fmt.Errorf("handler: %w", inner)
	if !IsKind(wrapped, KindNotFound) {
		t.Fatalf("kind lost through wrapping")
	}
	f, ok := As(wrapped)
	if !ok {
		t.Fatalf("As failed on wrapped error")
	}
	if f.Detail != "order with id 42 does not exist" {
		t.Fatalf("unexpected detail: %q", f.Detail)
	}
	if f.Nested {
		t.Fatalf("by-id not-found should not be nested")
	}
}

func TestNotFoundNested(t *testing.T) {
	err := NotFoundNested("order.update_fields", "status Shipped does not exist")
	f, ok := As(err)
	if !ok {
		t.Fatalf("As failed")
	}
	if !f.Nested {
		t.Fatalf("nested flag not set")
	}
	if f.Kind != KindNotFound {
		t.Fatalf("kind = %q, want %q", f.Kind, KindNotFound)
	}
}

func TestRetirementModes(t *testing.T) {
	already, _ := As(Retirement("catalog.product.retire", AlreadyRetired))
	if already.Mode != AlreadyRetired || already.Detail != "already retired" {
		t.Fatalf("unexpected already-retired failure: %+v", already)
	}
	must, _ := As(Retirement("catalog.product.update", MustUnretireFirst))
	if must.Mode != MustUnretireFirst || must.Detail != "retired, unretire before updating" {
		t.Fatalf("unexpected must-unretire failure: %+v", must)
	}
}

func TestValidationKeepsFieldOrder(t *testing.T) {
	fields := []FieldError{
		{Field: "name", Message: "name must not be empty"},
		{Field: "price", Message: "price must be a non-negative number"},
	}
	f, ok := As(Validation("catalog.product.create", fields))
	if !ok {
		t.Fatalf("As failed")
	}
	if len(f.Fields) != 2 || f.Fields[0].Field != "name" || f.Fields[1].Field != "price" {
		t.Fatalf("field order not preserved: %+v", f.Fields)
	}
}

func TestMalformedDefaultsDetail(t *testing.T) {
	f, _ := As(Malformed("order.create", nil))
	if f.Detail != "request body could not be parsed" {
		t.Fatalf("unexpected default detail: %q", f.Detail)
	}
	cause := errors.New("unexpected EOF")
	f, _ = As(Malformed("order.create", cause))
	if f.Detail != "unexpected EOF" {
		t.Fatalf("cause detail not used: %q", f.Detail)
	}
	if !errors.Is(Malformed("order.create", cause), cause) {
		t.Fatalf("cause not reachable via Unwrap")
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(KindInternal, "op", nil) != nil {
		t.Fatalf("wrapping nil should stay nil")
	}
}
