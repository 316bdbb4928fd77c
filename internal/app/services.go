package app

import (
	"gorm.io/gorm"

	"github.com/ovenlight/mealdesk-backend/internal/data/aggregates"
	"github.com/ovenlight/mealdesk-backend/internal/platform/logger"
	"github.com/ovenlight/mealdesk-backend/internal/services"
)

type Services struct {
	Catalog services.CatalogService
	Orders  services.OrderService
}

func wireServices(db *gorm.DB, log *logger.Logger, repos Repos, clients Clients) Services {
	log.Info("Wiring services...")
	deps := aggregates.BaseDeps{
		DB:    db,
		Log:   log,
		Hooks: aggregates.NewLogHooks(log),
	}
	catalogAgg := aggregates.NewCatalogAggregate(deps, repos.Product, repos.Category, repos.Tag, repos.LineItem)
	orderAgg := aggregates.NewOrderAggregate(deps, repos.Order, repos.LineItem, repos.Product, repos.Status)

	return Services{
		Catalog: services.NewCatalogService(log, catalogAgg, repos.Product, repos.Category, repos.Tag, clients.ProductCache),
		Orders:  services.NewOrderService(log, orderAgg, repos.Order),
	}
}
