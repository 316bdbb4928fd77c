package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ovenlight/mealdesk-backend/internal/http/problem"
	"github.com/ovenlight/mealdesk-backend/internal/services"
	"github.com/ovenlight/mealdesk-backend/internal/validate"
)

type CategoryHandler struct {
	svc services.CatalogService
}

func NewCategoryHandler(svc services.CatalogService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

type attachProductsInput struct {
	ProductIDs []uint `json:"product_ids"`
}

// GET /api/categories
func (h *CategoryHandler) List(c *gin.Context) {
	rows, err := h.svc.ListCategories(c.Request.Context(), includeRetired(c))
	if err != nil {
		problem.Respond(c, err)
		return
	}
	respondOK(c, gin.H{"categories": rows})
}

// GET /api/categories/:id
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id", "catalog.category.get")
	if !ok {
		return
	}
	row, err := h.svc.GetCategory(c.Request.Context(), id)
	if err != nil {
		problem.Respond(c, err)
		return
	}
	respondOK(c, row)
}

// POST /api/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var in validate.NamedInput
	if !bindJSON(c, "catalog.category.create", &in) {
		return
	}
	row, err := h.svc.CreateCategory(c.Request.Context(), in)
	if err != nil {
		problem.Respond(c, err)
		return
	}
	respondCreated(c, row)
}

// PUT /api/categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id", "catalog.category.update")
	if !ok {
		return
	}
	var in validate.NamedInput
	if !bindJSON(c, "catalog.category.update", &in) {
		return
	}
	row, err := h.svc.UpdateCategory(c.Request.Context(), id, in)
	if err != nil {
		problem.Respond(c, err)
		return
	}
	respondOK(c, row)
}

// POST /api/categories/:id/retire
func (h *CategoryHandler) Retire(c *gin.Context) {
	id, ok := parseID(c, "id", "catalog.category.retire")
	if !ok {
		return
	}
	row, err := h.svc.RetireCategory(c.Request.Context(), id)
	if err != nil {
		problem.Respond(c, err)
		return
	}
	respondOK(c, row)
}

// POST /api/categories/:id/unretire
func (h *CategoryHandler) Unretire(c *gin.Context) {
	id, ok := parseID(c, "id", "catalog.category.unretire")
	if !ok {
		return
	}
	row, err := h.svc.UnretireCategory(c.Request.Context(), id)
	if err != nil {
		problem.Respond(c, err)
		return
	}
	respondOK(c, row)
}

// DELETE /api/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", "catalog.category.delete")
	if !ok {
		return
	}
	if err := h.svc.DeleteCategory(c.Request.Context(), id); err != nil {
		problem.Respond(c, err)
		return
	}
	respondNoContent(c)
}

// POST /api/categories/:id/products
// Unresolvable or retired product ids are skipped, not failed.
func (h *CategoryHandler) AttachProducts(c *gin.Context) {
	id, ok := parseID(c, "id", "catalog.category.attach")
	if !ok {
		return
	}
	var in attachProductsInput
	if !bindJSON(c, "catalog.category.attach", &in) {
		return
	}
	row, err := h.svc.AttachProducts(c.Request.Context(), id, in.ProductIDs)
	if err != nil {
		problem.Respond(c, err)
		return
	}
	respondOK(c, row)
}

// DELETE /api/categories/:id/products/:productId
func (h *CategoryHandler) DetachProduct(c *gin.Context) {
	id, ok := parseID(c, "id", "catalog.category.detach")
	if !ok {
		return
	}
	productID, ok := parseID(c, "productId", "catalog.category.detach")
	if !ok {
		return
	}
	row, err := h.svc.DetachProduct(c.Request.Context(), id, productID)
	if err != nil {
		problem.Respond(c, err)
		return
	}
	respondOK(c, row)
}
