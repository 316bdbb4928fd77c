package aggregates

import (
	"context"
	"fmt"

	catalogrepo "github.com/ovenlight/mealdesk-backend/internal/data/repos/catalog"
	orderrepo "github.com/ovenlight/mealdesk-backend/internal/data/repos/orders"
	catalogtypes "github.com/ovenlight/mealdesk-backend/internal/domain/catalog"
	"github.com/ovenlight/mealdesk-backend/internal/domain/failure"
	ordertypes "github.com/ovenlight/mealdesk-backend/internal/domain/orders"
	"github.com/ovenlight/mealdesk-backend/internal/platform/dbctx"
)

// LineInput is one requested (product, quantity) pair.
type LineInput struct {
	ProductID uint
	Quantity  int
}

// OrderFieldUpdates carries the optional mutable order fields. Nil means
// "leave unchanged". Total is deliberately absent: it is derived state.
type OrderFieldUpdates struct {
	Address    *string
	StatusName *string
}

// OrderAggregate owns the invariant total == sum(line sub-totals) and the
// line item mutation rules. Every write runs in one transaction; the total
// is recomputed inside that same transaction after every line mutation.
type OrderAggregate struct {
	deps   BaseDeps
	orders orderrepo.OrderRepo
	lines  orderrepo.LineItemRepo
	prods  catalogrepo.ProductRepo
	status catalogrepo.StatusRepo
}

func NewOrderAggregate(deps BaseDeps, orders orderrepo.OrderRepo, lines orderrepo.LineItemRepo, prods catalogrepo.ProductRepo, status catalogrepo.StatusRepo) *OrderAggregate {
	return &OrderAggregate{deps: deps, orders: orders, lines: lines, prods: prods, status: status}
}

// CreateOrder creates an order in StatusPending with the given initial
// lines. All-or-nothing: any unresolvable, retired or under-stocked line
// fails the whole creation and nothing is persisted.
func (a *OrderAggregate) CreateOrder(ctx context.Context, address string, lines []LineInput) (*ordertypes.Order, error) {
	const op = "order.create"
	var out *ordertypes.Order
	err := executeWrite(ctx, a.deps, op, func(dbc dbctx.Context) error {
		st, err := a.status.Ensure(dbc.Ctx, dbc.Tx, catalogtypes.StatusPending)
		if err != nil {
			return err
		}
		order := &ordertypes.Order{Address: address, StatusID: st.ID}
		if err := a.orders.Create(dbc.Ctx, dbc.Tx, order); err != nil {
			return err
		}
		for _, line := range lines {
			if line.Quantity == 0 {
				continue
			}
			product, err := a.resolveProduct(dbc, op, line.ProductID)
			if err != nil {
				return err
			}
			if line.Quantity > product.Stock {
				return failure.New(failure.KindInsufficientStock, op,
					fmt.Sprintf("quantity %d exceeds available stock for product %s", line.Quantity, product.Name), nil)
			}
			item := &ordertypes.LineItem{
				OrderID:   order.ID,
				ProductID: product.ID,
				Quantity:  line.Quantity,
				SubTotal:  product.Price.MulInt(line.Quantity),
			}
			if err := a.lines.Upsert(dbc.Ctx, dbc.Tx, item); err != nil {
				return err
			}
		}
		if err := a.recomputeTotal(dbc, order.ID); err != nil {
			return err
		}
		out, err = a.orders.GetByID(dbc.Ctx, dbc.Tx, order.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AddOrUpdateLine sets the quantity for (order, product), creating the
// line when absent and overwriting (never incrementing) when present. A
// zero quantity removes the line.
func (a *OrderAggregate) AddOrUpdateLine(ctx context.Context, orderID, productID uint, quantity int) (*ordertypes.Order, error) {
	const op = "order.add_or_update_line"
	if quantity == 0 {
		return a.RemoveLine(ctx, orderID, productID)
	}
	var out *ordertypes.Order
	err := executeWrite(ctx, a.deps, op, func(dbc dbctx.Context) error {
		if err := a.requireOrder(dbc, op, orderID); err != nil {
			return err
		}
		product, err := a.resolveProduct(dbc, op, productID)
		if err != nil {
			return err
		}
		item := &ordertypes.LineItem{
			OrderID:   orderID,
			ProductID: product.ID,
			Quantity:  quantity,
			SubTotal:  product.Price.MulInt(quantity),
		}
		if err := a.lines.Upsert(dbc.Ctx, dbc.Tx, item); err != nil {
			return err
		}
		if err := a.recomputeTotal(dbc, orderID); err != nil {
			return err
		}
		out, err = a.orders.GetByID(dbc.Ctx, dbc.Tx, orderID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveLine deletes the (order, product) line and recomputes the total.
func (a *OrderAggregate) RemoveLine(ctx context.Context, orderID, productID uint) (*ordertypes.Order, error) {
	const op = "order.remove_line"
	var out *ordertypes.Order
	err := executeWrite(ctx, a.deps, op, func(dbc dbctx.Context) error {
		if err := a.requireOrder(dbc, op, orderID); err != nil {
			return err
		}
		line, err := a.lines.GetByOrderAndProduct(dbc.Ctx, dbc.Tx, orderID, productID)
		if err != nil {
			return err
		}
		if line == nil {
			return failure.New(failure.KindLineNotInOrder, op, "Item not in order", nil)
		}
		if _, err := a.lines.DeleteByOrderAndProduct(dbc.Ctx, dbc.Tx, orderID, productID); err != nil {
			return err
		}
		if err := a.recomputeTotal(dbc, orderID); err != nil {
			return err
		}
		out, err = a.orders.GetByID(dbc.Ctx, dbc.Tx, orderID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateOrderFields updates address and/or status. A status name that does
// not resolve to an existing Status fails the whole update as not-found.
func (a *OrderAggregate) UpdateOrderFields(ctx context.Context, orderID uint, updates OrderFieldUpdates) (*ordertypes.Order, error) {
	const op = "order.update_fields"
	var out *ordertypes.Order
	err := executeWrite(ctx, a.deps, op, func(dbc dbctx.Context) error {
		if err := a.requireOrder(dbc, op, orderID); err != nil {
			return err
		}
		fields := map[string]interface{}{}
		if updates.Address != nil {
			fields["address"] = *updates.Address
		}
		if updates.StatusName != nil {
			st, err := a.status.GetByName(dbc.Ctx, dbc.Tx, *updates.StatusName)
			if err != nil {
				return err
			}
			if st == nil {
				return failure.NotFoundNested(op, fmt.Sprintf("status %s does not exist", *updates.StatusName))
			}
			fields["status_id"] = st.ID
		}
		if len(fields) > 0 {
			if err := a.orders.UpdateFields(dbc.Ctx, dbc.Tx, orderID, fields); err != nil {
				return err
			}
		}
		var err error
		out, err = a.orders.GetByID(dbc.Ctx, dbc.Tx, orderID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteOrder removes the order and its lines.
func (a *OrderAggregate) DeleteOrder(ctx context.Context, orderID uint) error {
	const op = "order.delete"
	return executeWrite(ctx, a.deps, op, func(dbc dbctx.Context) error {
		if err := a.requireOrder(dbc, op, orderID); err != nil {
			return err
		}
		return a.orders.Delete(dbc.Ctx, dbc.Tx, orderID)
	})
}

// recomputeTotal is the single source of truth for order.total. It runs
// inside the mutating transaction so it observes every line change made
// earlier in the same unit of work.
func (a *OrderAggregate) recomputeTotal(dbc dbctx.Context, orderID uint) error {
	total, err := a.lines.SumSubTotals(dbc.Ctx, dbc.Tx, orderID)
	if err != nil {
		return err
	}
	return a.orders.UpdateFields(dbc.Ctx, dbc.Tx, orderID, map[string]interface{}{"total": total})
}

func (a *OrderAggregate) requireOrder(dbc dbctx.Context, op string, orderID uint) error {
	order, err := a.orders.GetByID(dbc.Ctx, dbc.Tx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return failure.NotFound(op, "order", orderID)
	}
	return nil
}

// resolveProduct looks up a product referenced by a line mutation. Unknown
// products are a nested not-found; retired products are gone.
func (a *OrderAggregate) resolveProduct(dbc dbctx.Context, op string, productID uint) (*catalogtypes.Product, error) {
	product, err := a.prods.GetByID(dbc.Ctx, dbc.Tx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, failure.NotFoundNested(op, fmt.Sprintf("product %d does not exist", productID))
	}
	if product.Retired {
		return nil, failure.New(failure.KindRetirementConflict, op,
			fmt.Sprintf("product %s is retired", product.Name), nil)
	}
	return product, nil
}
