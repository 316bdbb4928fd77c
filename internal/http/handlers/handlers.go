package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ovenlight/mealdesk-backend/internal/domain/failure"
	"github.com/ovenlight/mealdesk-backend/internal/http/problem"
)

// parseID reads a positive integer path parameter. A garbage id responds
// as a by-primary-key miss.
func parseID(c *gin.Context, param, op string) (uint, bool) {
	raw := c.Param(param)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		problem.Respond(c, failure.New(failure.KindNotFound, op, "invalid id in path", err))
		return 0, false
	}
	return uint(id), true
}

// bindJSON decodes the request body. A body that cannot be parsed is a
// MalformedInput failure; it takes precedence over any validation that
// would have followed.
func bindJSON(c *gin.Context, op string, out interface{}) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		problem.Respond(c, failure.Malformed(op, err))
		return false
	}
	return true
}

func respondOK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

func respondCreated(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusCreated, payload)
}

func respondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func includeRetired(c *gin.Context) bool {
	return c.Query("include_retired") == "true"
}
