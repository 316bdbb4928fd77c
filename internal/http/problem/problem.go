// Package problem is the single translation point between the failure
// taxonomy and the wire. Every failed operation, whatever its origin,
// leaves the API as exactly one of these payloads.
package problem

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ovenlight/mealdesk-backend/internal/domain/failure"
	"github.com/ovenlight/mealdesk-backend/internal/platform/ctxutil"
)

// Problem is the uniform error payload, stable across all endpoints.
type Problem struct {
	Detail  string      `json:"detail"`
	Title   string      `json:"title"`
	Status  int         `json:"status"`
	Type    string      `json:"type"`
	Errors  interface{} `json:"errors,omitempty"`
	TraceID string      `json:"traceId,omitempty"`
}

const (
	titleParsing       = "Parsing JSON Error"
	titleNotFoundByID  = "Object was not Found"
	titleNotFoundOther = "Not Found"
	titleValidation    = "Validation Error"
	titleUniqueness    = "This name already exists"
	titleGone          = "Gone"
	titleConflict      = "Conflict"
	titleStock         = "Insufficient Stock"
	titleNotInOrder    = "Item not in order"
	titleInternal      = "Internal Server Error"
)

// FromError maps any error into a Problem. The mapping is total: unknown
// errors come out as opaque 500s.
func FromError(ctx context.Context, err error) Problem {
	p := build(err)
	p.Type = fmt.Sprintf("https://httpstatuses.io/%d", p.Status)
	if ctx != nil {
		if td := ctxutil.GetTraceData(ctx); td != nil {
			p.TraceID = td.TraceID
		}
	}
	return p
}

func build(err error) Problem {
	f, ok := failure.As(err)
	if !ok {
		return Problem{Status: http.StatusInternalServerError, Title: titleInternal, Detail: "something went wrong"}
	}
	switch f.Kind {
	case failure.KindMalformedInput:
		return Problem{Status: http.StatusBadRequest, Title: titleParsing, Detail: f.Detail}
	case failure.KindNotFound:
		title := titleNotFoundByID
		if f.Nested {
			title = titleNotFoundOther
		}
		return Problem{Status: http.StatusNotFound, Title: title, Detail: f.Detail}
	case failure.KindValidation:
		return Problem{Status: http.StatusBadRequest, Title: titleValidation, Detail: f.Detail, Errors: f.Fields}
	case failure.KindUniquenessConflict:
		return Problem{Status: http.StatusBadRequest, Title: titleUniqueness, Detail: f.Detail}
	case failure.KindRetirementConflict:
		return Problem{Status: http.StatusGone, Title: titleGone, Detail: f.Detail}
	case failure.KindReferentialConflict:
		return Problem{Status: http.StatusConflict, Title: titleConflict, Detail: f.Detail}
	case failure.KindInsufficientStock:
		return Problem{Status: http.StatusBadRequest, Title: titleStock, Detail: f.Detail}
	case failure.KindLineNotInOrder:
		return Problem{Status: http.StatusBadRequest, Title: titleNotInOrder, Detail: f.Detail}
	default:
		return Problem{Status: http.StatusInternalServerError, Title: titleInternal, Detail: "something went wrong"}
	}
}

// Respond writes the problem payload for err onto the gin context.
func Respond(c *gin.Context, err error) {
	p := FromError(c.Request.Context(), err)
	c.JSON(p.Status, p)
}
