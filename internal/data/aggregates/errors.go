package aggregates

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/ovenlight/mealdesk-backend/internal/domain/failure"
)

// MapError maps infrastructure failures into the failure taxonomy. Domain
// failures produced inside the unit of work pass through untouched.
func MapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := failure.As(err); ok {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return failure.Wrap(failure.KindNotFound, op, err)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return failure.Wrap(failure.KindInternal, op, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch strings.TrimSpace(pgErr.Code) {
		case "23505":
			return uniqueness(op, pgErr.ConstraintName, err) // unique_violation
		case "23503":
			return failure.Wrap(failure.KindReferentialConflict, op, err) // foreign_key_violation
		}
	}

	msg := strings.ToLower(strings.TrimSpace(err.Error()))
	switch {
	case strings.Contains(msg, "duplicate key"), strings.Contains(msg, "unique constraint"):
		return uniqueness(op, msg, err)
	default:
		return failure.Wrap(failure.KindInternal, op, err)
	}
}

// uniqueness keeps the name-conflict wording for the active-name indexes;
// any other unique violation gets a neutral detail instead of claiming a
// name collision it did not see.
func uniqueness(op, constraint string, err error) error {
	if strings.Contains(constraint, "_name_") || strings.HasSuffix(constraint, "_name") {
		return failure.New(failure.KindUniquenessConflict, op, "This name already exists", err)
	}
	return failure.New(failure.KindUniquenessConflict, op, "duplicate value violates a unique constraint", err)
}
