package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ovenlight/mealdesk-backend/internal/http/problem"
	"github.com/ovenlight/mealdesk-backend/internal/services"
)

type OrderHandler struct {
	svc services.OrderService
}

func NewOrderHandler(svc services.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// GET /api/orders
func (h *OrderHandler) List(c *gin.Context) {
	rows, err := h.svc.ListOrders(c.Request.Context())
	if err != nil {
		problem.Respond(c, err)
		return
	}
	respondOK(c, gin.H{"orders": rows})
}

// GET /api/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id", "order.get")
	if !ok {
		return
	}
	row, err := h.svc.GetOrder(c.Request.Context(), id)
	if err != nil {
		problem.Respond(c, err)
		return
	}
	respondOK(c, row)
}

// POST /api/orders
func (h *OrderHandler) Create(c *gin.Context) {
	var in services.CreateOrderInput
	if !bindJSON(c, "order.create", &in) {
		return
	}
	row, err := h.svc.CreateOrder(c.Request.Context(), in)
	if err != nil {
		problem.Respond(c, err)
		return
	}
	respondCreated(c, row)
}

// PUT /api/orders/:id
// Absent fields are left unchanged; total is never client-settable.
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id", "order.update_fields")
	if !ok {
		return
	}
	var in services.UpdateOrderInput
	if !bindJSON(c, "order.update_fields", &in) {
		return
	}
	row, err := h.svc.UpdateOrder(c.Request.Context(), id, in)
	if err != nil {
		problem.Respond(c, err)
		return
	}
	respondOK(c, row)
}

// PUT /api/orders/:id/items/:productId
// Quantity zero removes the line.
func (h *OrderHandler) SetLine(c *gin.Context) {
	orderID, ok := parseID(c, "id", "order.add_or_update_line")
	if !ok {
		return
	}
	productID, ok := parseID(c, "productId", "order.add_or_update_line")
	if !ok {
		return
	}
	var in services.SetLineInput
	if !bindJSON(c, "order.add_or_update_line", &in) {
		return
	}
	row, err := h.svc.SetLine(c.Request.Context(), orderID, productID, in)
	if err != nil {
		problem.Respond(c, err)
		return
	}
	respondOK(c, row)
}

// DELETE /api/orders/:id/items/:productId
func (h *OrderHandler) RemoveLine(c *gin.Context) {
	orderID, ok := parseID(c, "id", "order.remove_line")
	if !ok {
		return
	}
	productID, ok := parseID(c, "productId", "order.remove_line")
	if !ok {
		return
	}
	row, err := h.svc.RemoveLine(c.Request.Context(), orderID, productID)
	if err != nil {
		problem.Respond(c, err)
		return
	}
	respondOK(c, row)
}

// DELETE /api/orders/:id
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", "order.delete")
	if !ok {
		return
	}
	if err := h.svc.DeleteOrder(c.Request.Context(), id); err != nil {
		problem.Respond(c, err)
		return
	}
	respondNoContent(c)
}
