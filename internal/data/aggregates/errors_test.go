package aggregates

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/ovenlight/mealdesk-backend/internal/domain/failure"
)

func TestMapErrorNil(t *testing.T) {
	if MapError("op", nil) != nil {
		t.Fatalf("nil should map to nil")
	}
}

func TestMapErrorPassesThroughFailures(t *testing.T) {
	in := failure.Retirement("catalog.product.retire", failure.AlreadyRetired)
	out := MapError("catalog.product.retire", in)
	if out != in {
		t.Fatalf("domain failure rewritten: %v", out)
	}
}

func TestMapErrorRecordNotFound(t *testing.T) {
	out := MapError("order.get", gorm.ErrRecordNotFound)
	if !failure.IsKind(out, failure.KindNotFound) {
		t.Fatalf("kind = %q", failure.KindOf(out))
	}
}

func TestMapErrorContextCancellation(t *testing.T) {
	for _, err := range []error{context.Canceled, context.DeadlineExceeded} {
		out := MapError("order.create", err)
		if !failure.IsKind(out, failure.KindInternal) {
			t.Fatalf("%v mapped to %q", err, failure.KindOf(out))
		}
	}
}

func TestMapErrorUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "idx_product_name_active"}
	out := MapError("catalog.product.create", pgErr)
	if !failure.IsKind(out, failure.KindUniquenessConflict) {
		t.Fatalf("kind = %q", failure.KindOf(out))
	}
	f, _ := failure.As(out)
	if f.Detail != "This name already exists" {
		t.Fatalf("detail = %q", f.Detail)
	}
}

func TestMapErrorUniqueViolationOtherConstraint(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "line_items_pkey"}
	out := MapError("order.add_or_update_line", pgErr)
	if !failure.IsKind(out, failure.KindUniquenessConflict) {
		t.Fatalf("kind = %q", failure.KindOf(out))
	}
	f, _ := failure.As(out)
	if f.Detail == "This name already exists" {
		t.Fatalf("non-name constraint reported as a name conflict")
	}
}

func TestMapErrorForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503"}
	out := MapError("catalog.product.delete", pgErr)
	if !failure.IsKind(out, failure.KindReferentialConflict) {
		t.Fatalf("kind = %q", failure.KindOf(out))
	}
}

func TestMapErrorMessageSniffing(t *testing.T) {
	out := MapError("catalog.tag.create", errors.New(`ERROR: duplicate key value violates unique constraint "idx_tag_name_active"`))
	if !failure.IsKind(out, failure.KindUniquenessConflict) {
		t.Fatalf("kind = %q", failure.KindOf(out))
	}
	f, _ := failure.As(out)
	if f.Detail != "This name already exists" {
		t.Fatalf("detail = %q", f.Detail)
	}
}

func TestMapErrorUnknownIsInternal(t *testing.T) {
	out := MapError("order.create", errors.New("connection reset by peer"))
	if !failure.IsKind(out, failure.KindInternal) {
		t.Fatalf("kind = %q", failure.KindOf(out))
	}
}
