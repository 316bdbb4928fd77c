package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ovenlight/mealdesk-backend/internal/http/problem"
	"github.com/ovenlight/mealdesk-backend/internal/services"
	"github.com/ovenlight/mealdesk-backend/internal/validate"
)

type TagHandler struct {
	svc services.CatalogService
}

func NewTagHandler(svc services.CatalogService) *TagHandler {
	return &TagHandler{svc: svc}
}

// GET /api/tags
func (h *TagHandler) List(c *gin.Context) {
	rows, err := h.svc.ListTags(c.Request.Context(), includeRetired(c))
	if err != nil {
		problem.Respond(c, err)
		return
	}
	respondOK(c, gin.H{"tags": rows})
}

// GET /api/tags/:id
func (h *TagHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id", "catalog.tag.get")
	if !ok {
		return
	}
	row, err := h.svc.GetTag(c.Request.Context(), id)
	if err != nil {
		problem.Respond(c, err)
		return
	}
	respondOK(c, row)
}

// POST /api/tags
func (h *TagHandler) Create(c *gin.Context) {
	var in validate.NamedInput
	if !bindJSON(c, "catalog.tag.create", &in) {
		return
	}
	row, err := h.svc.CreateTag(c.Request.Context(), in)
	if err != nil {
		problem.Respond(c, err)
		return
	}
	respondCreated(c, row)
}

// PUT /api/tags/:id
func (h *TagHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id", "catalog.tag.update")
	if !ok {
		return
	}
	var in validate.NamedInput
	if !bindJSON(c, "catalog.tag.update", &in) {
		return
	}
	row, err := h.svc.UpdateTag(c.Request.Context(), id, in)
	if err != nil {
		problem.Respond(c, err)
		return
	}
	respondOK(c, row)
}

// POST /api/tags/:id/retire
func (h *TagHandler) Retire(c *gin.Context) {
	id, ok := parseID(c, "id", "catalog.tag.retire")
	if !ok {
		return
	}
	row, err := h.svc.RetireTag(c.Request.Context(), id)
	if err != nil {
		problem.Respond(c, err)
		return
	}
	respondOK(c, row)
}

// POST /api/tags/:id/unretire
func (h *TagHandler) Unretire(c *gin.Context) {
	id, ok := parseID(c, "id", "catalog.tag.unretire")
	if !ok {
		return
	}
	row, err := h.svc.UnretireTag(c.Request.Context(), id)
	if err != nil {
		problem.Respond(c, err)
		return
	}
	respondOK(c, row)
}

// DELETE /api/tags/:id
func (h *TagHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", "catalog.tag.delete")
	if !ok {
		return
	}
	if err := h.svc.DeleteTag(c.Request.Context(), id); err != nil {
		problem.Respond(c, err)
		return
	}
	respondNoContent(c)
}

// POST /api/tags/:id/products
func (h *TagHandler) AttachProducts(c *gin.Context) {
	id, ok := parseID(c, "id", "catalog.tag.attach")
	if !ok {
		return
	}
	var in attachProductsInput
	if !bindJSON(c, "catalog.tag.attach", &in) {
		return
	}
	row, err := h.svc.AttachProductsToTag(c.Request.Context(), id, in.ProductIDs)
	if err != nil {
		problem.Respond(c, err)
		return
	}
	respondOK(c, row)
}

// DELETE /api/tags/:id/products/:productId
func (h *TagHandler) DetachProduct(c *gin.Context) {
	id, ok := parseID(c, "id", "catalog.tag.detach")
	if !ok {
		return
	}
	productID, ok := parseID(c, "productId", "catalog.tag.detach")
	if !ok {
		return
	}
	row, err := h.svc.DetachProductFromTag(c.Request.Context(), id, productID)
	if err != nil {
		problem.Respond(c, err)
		return
	}
	respondOK(c, row)
}
