package aggregates

import (
	"context"

	catalogrepo "github.com/ovenlight/mealdesk-backend/internal/data/repos/catalog"
	orderrepo "github.com/ovenlight/mealdesk-backend/internal/data/repos/orders"
	catalogtypes "github.com/ovenlight/mealdesk-backend/internal/domain/catalog"
	"github.com/ovenlight/mealdesk-backend/internal/domain/failure"
	"github.com/ovenlight/mealdesk-backend/internal/platform/dbctx"
	"github.com/ovenlight/mealdesk-backend/internal/validate"
)

// CatalogAggregate enforces the catalog lifecycle rules: name uniqueness
// at the store boundary, retirement guards, and the referential guard that
// keeps products alive while order lines reference them.
type CatalogAggregate struct {
	deps       BaseDeps
	products   catalogrepo.ProductRepo
	categories catalogrepo.CategoryRepo
	tags       catalogrepo.TagRepo
	lines      orderrepo.LineItemRepo
}

func NewCatalogAggregate(deps BaseDeps, products catalogrepo.ProductRepo, categories catalogrepo.CategoryRepo, tags catalogrepo.TagRepo, lines orderrepo.LineItemRepo) *CatalogAggregate {
	return &CatalogAggregate{deps: deps, products: products, categories: categories, tags: tags, lines: lines}
}

// CreateProduct persists a validated product record. Duplicate names
// surface as uniqueness conflicts straight from the partial unique index,
// atomically with the insert.
func (a *CatalogAggregate) CreateProduct(ctx context.Context, rec validate.ProductRecord) (*catalogtypes.Product, error) {
	const op = "catalog.product.create"
	var out *catalogtypes.Product
	err := executeWrite(ctx, a.deps, op, func(dbc dbctx.Context) error {
		row := &catalogtypes.Product{
			Name:        rec.Name,
			Price:       rec.Price,
			Description: rec.Description,
			Stock:       rec.Stock,
			Calories:    rec.Calories,
		}
		if err := a.products.Create(dbc.Ctx, dbc.Tx, row); err != nil {
			return err
		}
		out = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateProduct overwrites a product's fields. Retired products must be
// unretired first.
func (a *CatalogAggregate) UpdateProduct(ctx context.Context, id uint, rec validate.ProductRecord) (*catalogtypes.Product, error) {
	const op = "catalog.product.update"
	var out *catalogtypes.Product
	err := executeWrite(ctx, a.deps, op, func(dbc dbctx.Context) error {
		row, err := a.products.GetByID(dbc.Ctx, dbc.Tx, id)
		if err != nil {
			return err
		}
		if row == nil {
			return failure.NotFound(op, "product", id)
		}
		if row.Retired {
			return failure.Retirement(op, failure.MustUnretireFirst)
		}
		row.Name = rec.Name
		row.Price = rec.Price
		row.Description = rec.Description
		row.Stock = rec.Stock
		row.Calories = rec.Calories
		if err := a.products.Update(dbc.Ctx, dbc.Tx, row); err != nil {
			return err
		}
		out = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RetireProduct flips the retirement flag. Retiring twice fails.
func (a *CatalogAggregate) RetireProduct(ctx context.Context, id uint) (*catalogtypes.Product, error) {
	const op = "catalog.product.retire"
	var out *catalogtypes.Product
	err := executeWrite(ctx, a.deps, op, func(dbc dbctx.Context) error {
		row, err := a.products.GetByID(dbc.Ctx, dbc.Tx, id)
		if err != nil {
			return err
		}
		if row == nil {
			return failure.NotFound(op, "product", id)
		}
		if row.Retired {
			return failure.Retirement(op, failure.AlreadyRetired)
		}
		if err := a.products.UpdateFields(dbc.Ctx, dbc.Tx, id, map[string]interface{}{"retired": true}); err != nil {
			return err
		}
		out, err = a.products.GetByID(dbc.Ctx, dbc.Tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UnretireProduct clears the retirement flag. Unretiring an active product
// is a no-op.
func (a *CatalogAggregate) UnretireProduct(ctx context.Context, id uint) (*catalogtypes.Product, error) {
	const op = "catalog.product.unretire"
	var out *catalogtypes.Product
	err := executeWrite(ctx, a.deps, op, func(dbc dbctx.Context) error {
		row, err := a.products.GetByID(dbc.Ctx, dbc.Tx, id)
		if err != nil {
			return err
		}
		if row == nil {
			return failure.NotFound(op, "product", id)
		}
		if !row.Retired {
			out = row
			return nil
		}
		if err := a.products.UpdateFields(dbc.Ctx, dbc.Tx, id, map[string]interface{}{"retired": false}); err != nil {
			return err
		}
		out, err = a.products.GetByID(dbc.Ctx, dbc.Tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteProduct physically removes a product. Blocked while any order
// line references it; the lifecycle operation for a referenced product is
// retirement.
func (a *CatalogAggregate) DeleteProduct(ctx context.Context, id uint) error {
	const op = "catalog.product.delete"
	return executeWrite(ctx, a.deps, op, func(dbc dbctx.Context) error {
		row, err := a.products.GetByID(dbc.Ctx, dbc.Tx, id)
		if err != nil {
			return err
		}
		if row == nil {
			return failure.NotFound(op, "product", id)
		}
		refs, err := a.lines.CountByProduct(dbc.Ctx, dbc.Tx, id)
		if err != nil {
			return err
		}
		if refs > 0 {
			return failure.New(failure.KindReferentialConflict, op,
				"product is referenced by order line items, retire it instead", nil)
		}
		return a.products.Delete(dbc.Ctx, dbc.Tx, id)
	})
}

// CreateCategory persists a validated category.
func (a *CatalogAggregate) CreateCategory(ctx context.Context, name string) (*catalogtypes.Category, error) {
	const op = "catalog.category.create"
	var out *catalogtypes.Category
	err := executeWrite(ctx, a.deps, op, func(dbc dbctx.Context) error {
		row := &catalogtypes.Category{Name: name}
		if err := a.categories.Create(dbc.Ctx, dbc.Tx, row); err != nil {
			return err
		}
		out = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RenameCategory updates a category's name, guarded like product updates.
func (a *CatalogAggregate) RenameCategory(ctx context.Context, id uint, name string) (*catalogtypes.Category, error) {
	const op = "catalog.category.update"
	var out *catalogtypes.Category
	err := executeWrite(ctx, a.deps, op, func(dbc dbctx.Context) error {
		row, err := a.categories.GetByID(dbc.Ctx, dbc.Tx, id)
		if err != nil {
			return err
		}
		if row == nil {
			return failure.NotFound(op, "category", id)
		}
		if row.Retired {
			return failure.Retirement(op, failure.MustUnretireFirst)
		}
		if err := a.categories.UpdateFields(dbc.Ctx, dbc.Tx, id, map[string]interface{}{"name": name}); err != nil {
			return err
		}
		out, err = a.categories.GetByID(dbc.Ctx, dbc.Tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RetireCategory flips the retirement flag, failing when already retired.
func (a *CatalogAggregate) RetireCategory(ctx context.Context, id uint) (*catalogtypes.Category, error) {
	const op = "catalog.category.retire"
	var out *catalogtypes.Category
	err := executeWrite(ctx, a.deps, op, func(dbc dbctx.Context) error {
		row, err := a.categories.GetByID(dbc.Ctx, dbc.Tx, id)
		if err != nil {
			return err
		}
		if row == nil {
			return failure.NotFound(op, "category", id)
		}
		if row.Retired {
			return failure.Retirement(op, failure.AlreadyRetired)
		}
		if err := a.categories.UpdateFields(dbc.Ctx, dbc.Tx, id, map[string]interface{}{"retired": true}); err != nil {
			return err
		}
		out, err = a.categories.GetByID(dbc.Ctx, dbc.Tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UnretireCategory clears the retirement flag.
func (a *CatalogAggregate) UnretireCategory(ctx context.Context, id uint) (*catalogtypes.Category, error) {
	const op = "catalog.category.unretire"
	var out *catalogtypes.Category
	err := executeWrite(ctx, a.deps, op, func(dbc dbctx.Context) error {
		row, err := a.categories.GetByID(dbc.Ctx, dbc.Tx, id)
		if err != nil {
			return err
		}
		if row == nil {
			return failure.NotFound(op, "category", id)
		}
		if row.Retired {
			if err := a.categories.UpdateFields(dbc.Ctx, dbc.Tx, id, map[string]interface{}{"retired": false}); err != nil {
				return err
			}
		}
		out, err = a.categories.GetByID(dbc.Ctx, dbc.Tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteCategory removes the category and its join rows. Categories are
// never referenced by order lines, so no referential guard applies.
func (a *CatalogAggregate) DeleteCategory(ctx context.Context, id uint) error {
	const op = "catalog.category.delete"
	return executeWrite(ctx, a.deps, op, func(dbc dbctx.Context) error {
		row, err := a.categories.GetByID(dbc.Ctx, dbc.Tx, id)
		if err != nil {
			return err
		}
		if row == nil {
			return failure.NotFound(op, "category", id)
		}
		return a.categories.Delete(dbc.Ctx, dbc.Tx, id)
	})
}

// AttachProducts attaches the resolvable, non-retired product ids to the
// category and silently skips the rest. Attaching an already-attached
// product is a no-op. This partial-skip behavior intentionally differs
// from order creation's all-or-nothing rule.
func (a *CatalogAggregate) AttachProducts(ctx context.Context, categoryID uint, productIDs []uint) (*catalogtypes.Category, error) {
	const op = "catalog.category.attach"
	var out *catalogtypes.Category
	err := executeWrite(ctx, a.deps, op, func(dbc dbctx.Context) error {
		row, err := a.categories.GetByID(dbc.Ctx, dbc.Tx, categoryID)
		if err != nil {
			return err
		}
		if row == nil {
			return failure.NotFound(op, "category", categoryID)
		}
		attachable, err := a.attachableProductIDs(dbc, productIDs)
		if err != nil {
			return err
		}
		if err := a.categories.Attach(dbc.Ctx, dbc.Tx, categoryID, attachable); err != nil {
			return err
		}
		out, err = a.categories.GetByID(dbc.Ctx, dbc.Tx, categoryID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DetachProduct removes one product from the category.
func (a *CatalogAggregate) DetachProduct(ctx context.Context, categoryID, productID uint) (*catalogtypes.Category, error) {
	const op = "catalog.category.detach"
	var out *catalogtypes.Category
	err := executeWrite(ctx, a.deps, op, func(dbc dbctx.Context) error {
		row, err := a.categories.GetByID(dbc.Ctx, dbc.Tx, categoryID)
		if err != nil {
			return err
		}
		if row == nil {
			return failure.NotFound(op, "category", categoryID)
		}
		removed, err := a.categories.Detach(dbc.Ctx, dbc.Tx, categoryID, productID)
		if err != nil {
			return err
		}
		if removed == 0 {
			return failure.NotFoundNested(op, "product is not attached to this category")
		}
		out, err = a.categories.GetByID(dbc.Ctx, dbc.Tx, categoryID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTag persists a validated tag.
func (a *CatalogAggregate) CreateTag(ctx context.Context, name string) (*catalogtypes.Tag, error) {
	const op = "catalog.tag.create"
	var out *catalogtypes.Tag
	err := executeWrite(ctx, a.deps, op, func(dbc dbctx.Context) error {
		row := &catalogtypes.Tag{Name: name}
		if err := a.tags.Create(dbc.Ctx, dbc.Tx, row); err != nil {
			return err
		}
		out = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RenameTag updates a tag's name, guarded like product updates.
func (a *CatalogAggregate) RenameTag(ctx context.Context, id uint, name string) (*catalogtypes.Tag, error) {
	const op = "catalog.tag.update"
	var out *catalogtypes.Tag
	err := executeWrite(ctx, a.deps, op, func(dbc dbctx.Context) error {
		row, err := a.tags.GetByID(dbc.Ctx, dbc.Tx, id)
		if err != nil {
			return err
		}
		if row == nil {
			return failure.NotFound(op, "tag", id)
		}
		if row.Retired {
			return failure.Retirement(op, failure.MustUnretireFirst)
		}
		if err := a.tags.UpdateFields(dbc.Ctx, dbc.Tx, id, map[string]interface{}{"name": name}); err != nil {
			return err
		}
		out, err = a.tags.GetByID(dbc.Ctx, dbc.Tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RetireTag flips the retirement flag, failing when already retired.
func (a *CatalogAggregate) RetireTag(ctx context.Context, id uint) (*catalogtypes.Tag, error) {
	const op = "catalog.tag.retire"
	var out *catalogtypes.Tag
	err := executeWrite(ctx, a.deps, op, func(dbc dbctx.Context) error {
		row, err := a.tags.GetByID(dbc.Ctx, dbc.Tx, id)
		if err != nil {
			return err
		}
		if row == nil {
			return failure.NotFound(op, "tag", id)
		}
		if row.Retired {
			return failure.Retirement(op, failure.AlreadyRetired)
		}
		if err := a.tags.UpdateFields(dbc.Ctx, dbc.Tx, id, map[string]interface{}{"retired": true}); err != nil {
			return err
		}
		out, err = a.tags.GetByID(dbc.Ctx, dbc.Tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UnretireTag clears the retirement flag.
func (a *CatalogAggregate) UnretireTag(ctx context.Context, id uint) (*catalogtypes.Tag, error) {
	const op = "catalog.tag.unretire"
	var out *catalogtypes.Tag
	err := executeWrite(ctx, a.deps, op, func(dbc dbctx.Context) error {
		row, err := a.tags.GetByID(dbc.Ctx, dbc.Tx, id)
		if err != nil {
			return err
		}
		if row == nil {
			return failure.NotFound(op, "tag", id)
		}
		if row.Retired {
			if err := a.tags.UpdateFields(dbc.Ctx, dbc.Tx, id, map[string]interface{}{"retired": false}); err != nil {
				return err
			}
		}
		out, err = a.tags.GetByID(dbc.Ctx, dbc.Tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteTag removes the tag and its join rows.
func (a *CatalogAggregate) DeleteTag(ctx context.Context, id uint) error {
	const op = "catalog.tag.delete"
	return executeWrite(ctx, a.deps, op, func(dbc dbctx.Context) error {
		row, err := a.tags.GetByID(dbc.Ctx, dbc.Tx, id)
		if err != nil {
			return err
		}
		if row == nil {
			return failure.NotFound(op, "tag", id)
		}
		return a.tags.Delete(dbc.Ctx, dbc.Tx, id)
	})
}

// AttachProductsToTag mirrors category attachment semantics for tags.
func (a *CatalogAggregate) AttachProductsToTag(ctx context.Context, tagID uint, productIDs []uint) (*catalogtypes.Tag, error) {
	const op = "catalog.tag.attach"
	var out *catalogtypes.Tag
	err := executeWrite(ctx, a.deps, op, func(dbc dbctx.Context) error {
		row, err := a.tags.GetByID(dbc.Ctx, dbc.Tx, tagID)
		if err != nil {
			return err
		}
		if row == nil {
			return failure.NotFound(op, "tag", tagID)
		}
		attachable, err := a.attachableProductIDs(dbc, productIDs)
		if err != nil {
			return err
		}
		if err := a.tags.Attach(dbc.Ctx, dbc.Tx, tagID, attachable); err != nil {
			return err
		}
		out, err = a.tags.GetByID(dbc.Ctx, dbc.Tx, tagID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DetachProductFromTag removes one product from the tag.
func (a *CatalogAggregate) DetachProductFromTag(ctx context.Context, tagID, productID uint) (*catalogtypes.Tag, error) {
	const op = "catalog.tag.detach"
	var out *catalogtypes.Tag
	err := executeWrite(ctx, a.deps, op, func(dbc dbctx.Context) error {
		row, err := a.tags.GetByID(dbc.Ctx, dbc.Tx, tagID)
		if err != nil {
			return err
		}
		if row == nil {
			return failure.NotFound(op, "tag", tagID)
		}
		removed, err := a.tags.Detach(dbc.Ctx, dbc.Tx, tagID, productID)
		if err != nil {
			return err
		}
		if removed == 0 {
			return failure.NotFoundNested(op, "product is not attached to this tag")
		}
		out, err = a.tags.GetByID(dbc.Ctx, dbc.Tx, tagID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// attachableProductIDs filters the requested ids down to existing,
// non-retired products, preserving request order.
func (a *CatalogAggregate) attachableProductIDs(dbc dbctx.Context, productIDs []uint) ([]uint, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}
	rows, err := a.products.GetByIDs(dbc.Ctx, dbc.Tx, productIDs)
	if err != nil {
		return nil, err
	}
	active := make(map[uint]bool, len(rows))
	for _, p := range rows {
		if !p.Retired {
			active[p.ID] = true
		}
	}
	var out []uint
	seen := make(map[uint]bool, len(productIDs))
	for _, id := range productIDs {
		if active[id] && !seen[id] {
			out = append(out, id)
			seen[id] = true
		}
	}
	return out, nil
}
