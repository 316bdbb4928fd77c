package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ovenlight/mealdesk-backend/internal/http/problem"
	"github.com/ovenlight/mealdesk-backend/internal/services"
	"github.com/ovenlight/mealdesk-backend/internal/validate"
)

type ProductHandler struct {
	svc services.CatalogService
}

func NewProductHandler(svc services.CatalogService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// GET /api/products
func (h *ProductHandler) List(c *gin.Context) {
	rows, err := h.svc.ListProducts(c.Request.Context(), includeRetired(c))
	if err != nil {
		problem.Respond(c, err)
		return
	}
	respondOK(c, gin.H{"products": rows})
}

// GET /api/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id", "catalog.product.get")
	if !ok {
		return
	}
	row, err := h.svc.GetProduct(c.Request.Context(), id)
	if err != nil {
		problem.Respond(c, err)
		return
	}
	respondOK(c, row)
}

// POST /api/products
func (h *ProductHandler) Create(c *gin.Context) {
	var in validate.ProductInput
	if !bindJSON(c, "catalog.product.create", &in) {
		return
	}
	row, err := h.svc.CreateProduct(c.Request.Context(), in)
	if err != nil {
		problem.Respond(c, err)
		return
	}
	respondCreated(c, row)
}

// PUT /api/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id", "catalog.product.update")
	if !ok {
		return
	}
	var in validate.ProductInput
	if !bindJSON(c, "catalog.product.update", &in) {
		return
	}
	row, err := h.svc.UpdateProduct(c.Request.Context(), id, in)
	if err != nil {
		problem.Respond(c, err)
		return
	}
	respondOK(c, row)
}

// POST /api/products/:id/retire
func (h *ProductHandler) Retire(c *gin.Context) {
	id, ok := parseID(c, "id", "catalog.product.retire")
	if !ok {
		return
	}
	row, err := h.svc.RetireProduct(c.Request.Context(), id)
	if err != nil {
		problem.Respond(c, err)
		return
	}
	respondOK(c, row)
}

// POST /api/products/:id/unretire
func (h *ProductHandler) Unretire(c *gin.Context) {
	id, ok := parseID(c, "id", "catalog.product.unretire")
	if !ok {
		return
	}
	row, err := h.svc.UnretireProduct(c.Request.Context(), id)
	if err != nil {
		problem.Respond(c, err)
		return
	}
	respondOK(c, row)
}

// DELETE /api/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", "catalog.product.delete")
	if !ok {
		return
	}
	if err := h.svc.DeleteProduct(c.Request.Context(), id); err != nil {
		problem.Respond(c, err)
		return
	}
	respondNoContent(c)
}
