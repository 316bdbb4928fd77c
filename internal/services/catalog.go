package services

import (
	"context"

	"github.com/ovenlight/mealdesk-backend/internal/clients/redis"
	"github.com/ovenlight/mealdesk-backend/internal/data/aggregates"
	catalogrepo "github.com/ovenlight/mealdesk-backend/internal/data/repos/catalog"
	types "github.com/ovenlight/mealdesk-backend/internal/domain/catalog"
	"github.com/ovenlight/mealdesk-backend/internal/domain/failure"
	"github.com/ovenlight/mealdesk-backend/internal/platform/logger"
	"github.com/ovenlight/mealdesk-backend/internal/validate"
)

// CatalogService orchestrates catalog reads and writes: record validation
// first, then the aggregate, with the product cache kept coherent on the
// side.
type CatalogService interface {
	ListProducts(ctx context.Context, includeRetired bool) ([]*types.Product, error)
	GetProduct(ctx context.Context, id uint) (*types.Product, error)
	CreateProduct(ctx context.Context, in validate.ProductInput) (*types.Product, error)
	UpdateProduct(ctx context.Context, id uint, in validate.ProductInput) (*types.Product, error)
	RetireProduct(ctx context.Context, id uint) (*types.Product, error)
	UnretireProduct(ctx context.Context, id uint) (*types.Product, error)
	DeleteProduct(ctx context.Context, id uint) error

	ListCategories(ctx context.Context, includeRetired bool) ([]*types.Category, error)
	GetCategory(ctx context.Context, id uint) (*types.Category, error)
	CreateCategory(ctx context.Context, in validate.NamedInput) (*types.Category, error)
	UpdateCategory(ctx context.Context, id uint, in validate.NamedInput) (*types.Category, error)
	RetireCategory(ctx context.Context, id uint) (*types.Category, error)
	UnretireCategory(ctx context.Context, id uint) (*types.Category, error)
	DeleteCategory(ctx context.Context, id uint) error
	AttachProducts(ctx context.Context, categoryID uint, productIDs []uint) (*types.Category, error)
	DetachProduct(ctx context.Context, categoryID, productID uint) (*types.Category, error)

	ListTags(ctx context.Context, includeRetired bool) ([]*types.Tag, error)
	GetTag(ctx context.Context, id uint) (*types.Tag, error)
	CreateTag(ctx context.Context, in validate.NamedInput) (*types.Tag, error)
	UpdateTag(ctx context.Context, id uint, in validate.NamedInput) (*types.Tag, error)
	RetireTag(ctx context.Context, id uint) (*types.Tag, error)
	UnretireTag(ctx context.Context, id uint) (*types.Tag, error)
	DeleteTag(ctx context.Context, id uint) error
	AttachProductsToTag(ctx context.Context, tagID uint, productIDs []uint) (*types.Tag, error)
	DetachProductFromTag(ctx context.Context, tagID, productID uint) (*types.Tag, error)
}

type catalogService struct {
	log        *logger.Logger
	agg        *aggregates.CatalogAggregate
	products   catalogrepo.ProductRepo
	categories catalogrepo.CategoryRepo
	tags       catalogrepo.TagRepo
	cache      redis.ProductCache
}

func NewCatalogService(baseLog *logger.Logger, agg *aggregates.CatalogAggregate, products catalogrepo.ProductRepo, categories catalogrepo.CategoryRepo, tags catalogrepo.TagRepo, cache redis.ProductCache) CatalogService {
	if cache == nil {
		cache = redis.NewNoopProductCache()
	}
	return &catalogService{
		log:        baseLog.With("service", "CatalogService"),
		agg:        agg,
		products:   products,
		categories: categories,
		tags:       tags,
		cache:      cache,
	}
}

func (s *catalogService) ListProducts(ctx context.Context, includeRetired bool) ([]*types.Product, error) {
	rows, err := s.products.List(ctx, nil, includeRetired)
	if err != nil {
		return nil, aggregates.MapError("catalog.product.list", err)
	}
	return rows, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id uint) (*types.Product, error) {
	const op = "catalog.product.get"
	if row, ok := s.cache.Get(ctx, id); ok {
		return row, nil
	}
	row, err := s.products.GetByID(ctx, nil, id)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	if row == nil {
		return nil, failure.NotFound(op, "product", id)
	}
	s.cache.Set(ctx, row)
	return row, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, in validate.ProductInput) (*types.Product, error) {
	const op = "catalog.product.create"
	rec, fields := validate.Product(in)
	if len(fields) > 0 {
		return nil, failure.Validation(op, fields)
	}
	return s.agg.CreateProduct(ctx, rec)
}

func (s *catalogService) UpdateProduct(ctx context.Context, id uint, in validate.ProductInput) (*types.Product, error) {
	const op = "catalog.product.update"
	// Absent target outranks field validation.
	if err := s.requireProduct(ctx, op, id); err != nil {
		return nil, err
	}
	rec, fields := validate.Product(in)
	if len(fields) > 0 {
		return nil, failure.Validation(op, fields)
	}
	row, err := s.agg.UpdateProduct(ctx, id, rec)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, id)
	return row, nil
}

func (s *catalogService) RetireProduct(ctx context.Context, id uint) (*types.Product, error) {
	row, err := s.agg.RetireProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, id)
	return row, nil
}

func (s *catalogService) UnretireProduct(ctx context.Context, id uint) (*types.Product, error) {
	row, err := s.agg.UnretireProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, id)
	return row, nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.agg.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, id)
	return nil
}

func (s *catalogService) ListCategories(ctx context.Context, includeRetired bool) ([]*types.Category, error) {
	rows, err := s.categories.List(ctx, nil, includeRetired)
	if err != nil {
		return nil, aggregates.MapError("catalog.category.list", err)
	}
	return rows, nil
}

func (s *catalogService) GetCategory(ctx context.Context, id uint) (*types.Category, error) {
	const op = "catalog.category.get"
	row, err := s.categories.GetByID(ctx, nil, id)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	if row == nil {
		return nil, failure.NotFound(op, "category", id)
	}
	return row, nil
}

func (s *catalogService) CreateCategory(ctx context.Context, in validate.NamedInput) (*types.Category, error) {
	const op = "catalog.category.create"
	name, fields := validate.Named(in)
	if len(fields) > 0 {
		return nil, failure.Validation(op, fields)
	}
	return s.agg.CreateCategory(ctx, name)
}

func (s *catalogService) UpdateCategory(ctx context.Context, id uint, in validate.NamedInput) (*types.Category, error) {
	const op = "catalog.category.update"
	if err := s.requireCategory(ctx, op, id); err != nil {
		return nil, err
	}
	name, fields := validate.Named(in)
	if len(fields) > 0 {
		return nil, failure.Validation(op, fields)
	}
	return s.agg.RenameCategory(ctx, id, name)
}

func (s *catalogService) RetireCategory(ctx context.Context, id uint) (*types.Category, error) {
	return s.agg.RetireCategory(ctx, id)
}

func (s *catalogService) UnretireCategory(ctx context.Context, id uint) (*types.Category, error) {
	return s.agg.UnretireCategory(ctx, id)
}

func (s *catalogService) DeleteCategory(ctx context.Context, id uint) error {
	return s.agg.DeleteCategory(ctx, id)
}

func (s *catalogService) AttachProducts(ctx context.Context, categoryID uint, productIDs []uint) (*types.Category, error) {
	return s.agg.AttachProducts(ctx, categoryID, productIDs)
}

func (s *catalogService) DetachProduct(ctx context.Context, categoryID, productID uint) (*types.Category, error) {
	return s.agg.DetachProduct(ctx, categoryID, productID)
}

func (s *catalogService) ListTags(ctx context.Context, includeRetired bool) ([]*types.Tag, error) {
	rows, err := s.tags.List(ctx, nil, includeRetired)
	if err != nil {
		return nil, aggregates.MapError("catalog.tag.list", err)
	}
	return rows, nil
}

func (s *catalogService) GetTag(ctx context.Context, id uint) (*types.Tag, error) {
	const op = "catalog.tag.get"
	row, err := s.tags.GetByID(ctx, nil, id)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	if row == nil {
		return nil, failure.NotFound(op, "tag", id)
	}
	return row, nil
}

func (s *catalogService) CreateTag(ctx context.Context, in validate.NamedInput) (*types.Tag, error) {
	const op = "catalog.tag.create"
	name, fields := validate.Named(in)
	if len(fields) > 0 {
		return nil, failure.Validation(op, fields)
	}
	return s.agg.CreateTag(ctx, name)
}

func (s *catalogService) UpdateTag(ctx context.Context, id uint, in validate.NamedInput) (*types.Tag, error) {
	const op = "catalog.tag.update"
	if err := s.requireTag(ctx, op, id); err != nil {
		return nil, err
	}
	name, fields := validate.Named(in)
	if len(fields) > 0 {
		return nil, failure.Validation(op, fields)
	}
	return s.agg.RenameTag(ctx, id, name)
}

func (s *catalogService) RetireTag(ctx context.Context, id uint) (*types.Tag, error) {
	return s.agg.RetireTag(ctx, id)
}

func (s *catalogService) UnretireTag(ctx context.Context, id uint) (*types.Tag, error) {
	return s.agg.UnretireTag(ctx, id)
}

func (s *catalogService) DeleteTag(ctx context.Context, id uint) error {
	return s.agg.DeleteTag(ctx, id)
}

func (s *catalogService) AttachProductsToTag(ctx context.Context, tagID uint, productIDs []uint) (*types.Tag, error) {
	return s.agg.AttachProductsToTag(ctx, tagID, productIDs)
}

func (s *catalogService) DetachProductFromTag(ctx context.Context, tagID, productID uint) (*types.Tag, error) {
	return s.agg.DetachProductFromTag(ctx, tagID, productID)
}

func (s *catalogService) requireProduct(ctx context.Context, op string, id uint) error {
	row, err := s.products.GetByID(ctx, nil, id)
	if err != nil {
		return aggregates.MapError(op, err)
	}
	if row == nil {
		return failure.NotFound(op, "product", id)
	}
	return nil
}

func (s *catalogService) requireCategory(ctx context.Context, op string, id uint) error {
	row, err := s.categories.GetByID(ctx, nil, id)
	if err != nil {
		return aggregates.MapError(op, err)
	}
	if row == nil {
		return failure.NotFound(op, "category", id)
	}
	return nil
}

func (s *catalogService) requireTag(ctx context.Context, op string, id uint) error {
	row, err := s.tags.GetByID(ctx, nil, id)
	if err != nil {
		return aggregates.MapError(op, err)
	}
	if row == nil {
		return failure.NotFound(op, "tag", id)
	}
	return nil
}
