package services

import (
	"context"
	"fmt"

	"github.com/ovenlight/mealdesk-backend/internal/data/aggregates"
	orderrepo "github.com/ovenlight/mealdesk-backend/internal/data/repos/orders"
	"github.com/ovenlight/mealdesk-backend/internal/domain/failure"
	types "github.com/ovenlight/mealdesk-backend/internal/domain/orders"
	"github.com/ovenlight/mealdesk-backend/internal/platform/logger"
	"github.com/ovenlight/mealdesk-backend/internal/validate"
)

// CreateOrderInput is the raw create-order request body.
type CreateOrderInput struct {
	Address validate.RawValue `json:"address"`
	Items   []LineInput       `json:"items"`
}

// LineInput is one raw requested line.
type LineInput struct {
	ProductID validate.RawValue `json:"product_id"`
	Quantity  validate.RawValue `json:"quantity"`
}

// UpdateOrderInput carries the optional order field updates.
type UpdateOrderInput struct {
	Address validate.RawValue `json:"address"`
	Status  validate.RawValue `json:"status"`
}

// SetLineInput is the body of a line quantity update.
type SetLineInput struct {
	Quantity validate.RawValue `json:"quantity"`
}

// OrderService orchestrates order operations: validation, then the order
// aggregate, then either a hydrated order or a typed failure.
type OrderService interface {
	ListOrders(ctx context.Context) ([]*types.Order, error)
	GetOrder(ctx context.Context, id uint) (*types.Order, error)
	CreateOrder(ctx context.Context, in CreateOrderInput) (*types.Order, error)
	UpdateOrder(ctx context.Context, id uint, in UpdateOrderInput) (*types.Order, error)
	SetLine(ctx context.Context, orderID, productID uint, in SetLineInput) (*types.Order, error)
	RemoveLine(ctx context.Context, orderID, productID uint) (*types.Order, error)
	DeleteOrder(ctx context.Context, id uint) error
}

type orderService struct {
	log    *logger.Logger
	agg    *aggregates.OrderAggregate
	orders orderrepo.OrderRepo
}

func NewOrderService(baseLog *logger.Logger, agg *aggregates.OrderAggregate, orders orderrepo.OrderRepo) OrderService {
	return &orderService{
		log:    baseLog.With("service", "OrderService"),
		agg:    agg,
		orders: orders,
	}
}

func (s *orderService) ListOrders(ctx context.Context) ([]*types.Order, error) {
	rows, err := s.orders.List(ctx, nil)
	if err != nil {
		return nil, aggregates.MapError("order.list", err)
	}
	return rows, nil
}

func (s *orderService) GetOrder(ctx context.Context, id uint) (*types.Order, error) {
	const op = "order.get"
	row, err := s.orders.GetByID(ctx, nil, id)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	if row == nil {
		return nil, failure.NotFound(op, "order", id)
	}
	return row, nil
}

func (s *orderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*types.Order, error) {
	const op = "order.create"
	address, fields := validate.OrderAddress(in.Address)
	lines := make([]aggregates.LineInput, 0, len(in.Items))
	for i, item := range in.Items {
		productID, reason := validate.NonNegativeInt(item.ProductID.Raw)
		if !item.ProductID.Set || reason != "" || productID == 0 {
			fields = append(fields, failure.FieldError{
				Field:   fmt.Sprintf("items.%d.product_id", i),
				Message: "product_id must be a positive integer",
			})
			continue
		}
		quantity, qfields := validate.LineQuantity(item.Quantity)
		if len(qfields) > 0 {
			for _, f := range qfields {
				fields = append(fields, failure.FieldError{
					Field:   fmt.Sprintf("items.%d.%s", i, f.Field),
					Message: f.Message,
				})
			}
			continue
		}
		lines = append(lines, aggregates.LineInput{ProductID: uint(productID), Quantity: quantity})
	}
	if len(fields) > 0 {
		return nil, failure.Validation(op, fields)
	}
	return s.agg.CreateOrder(ctx, address, lines)
}

func (s *orderService) UpdateOrder(ctx context.Context, id uint, in UpdateOrderInput) (*types.Order, error) {
	const op = "order.update_fields"
	// Absent target outranks field validation.
	if err := s.requireOrder(ctx, op, id); err != nil {
		return nil, err
	}
	var updates aggregates.OrderFieldUpdates
	var fields []failure.FieldError
	if in.Address.Set {
		address, afields := validate.OrderAddress(in.Address)
		if len(afields) > 0 {
			fields = append(fields, afields...)
		} else {
			updates.Address = &address
		}
	}
	if in.Status.Set {
		statusName := validate.NormalizeText(in.Status.Raw)
		if statusName == "" {
			fields = append(fields, failure.FieldError{Field: "status", Message: "status must not be empty"})
		} else {
			updates.StatusName = &statusName
		}
	}
	if len(fields) > 0 {
		return nil, failure.Validation(op, fields)
	}
	return s.agg.UpdateOrderFields(ctx, id, updates)
}

func (s *orderService) SetLine(ctx context.Context, orderID, productID uint, in SetLineInput) (*types.Order, error) {
	const op = "order.add_or_update_line"
	if err := s.requireOrder(ctx, op, orderID); err != nil {
		return nil, err
	}
	quantity, fields := validate.LineQuantity(in.Quantity)
	if len(fields) > 0 {
		return nil, failure.Validation(op, fields)
	}
	return s.agg.AddOrUpdateLine(ctx, orderID, productID, quantity)
}

func (s *orderService) RemoveLine(ctx context.Context, orderID, productID uint) (*types.Order, error) {
	return s.agg.RemoveLine(ctx, orderID, productID)
}

func (s *orderService) DeleteOrder(ctx context.Context, id uint) error {
	return s.agg.DeleteOrder(ctx, id)
}

func (s *orderService) requireOrder(ctx context.Context, op string, id uint) error {
	row, err := s.orders.GetByID(ctx, nil, id)
	if err != nil {
		return aggregates.MapError(op, err)
	}
	if row == nil {
		return failure.NotFound(op, "order", id)
	}
	return nil
}
