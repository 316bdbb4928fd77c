package app

import (
	"github.com/ovenlight/mealdesk-backend/internal/data/db"
	"github.com/ovenlight/mealdesk-backend/internal/http/handlers"
	"github.com/ovenlight/mealdesk-backend/internal/platform/logger"
)

type Handlers struct {
	Product  *handlers.ProductHandler
	Category *handlers.CategoryHandler
	Tag      *handlers.TagHandler
	Order    *handlers.OrderHandler
	Health   *handlers.HealthHandler
}

func wireHandlers(log *logger.Logger, svcs Services, pg *db.PostgresService) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Product:  handlers.NewProductHandler(svcs.Catalog),
		Category: handlers.NewCategoryHandler(svcs.Catalog),
		Tag:      handlers.NewTagHandler(svcs.Catalog),
		Order:    handlers.NewOrderHandler(svcs.Orders),
		Health:   handlers.NewHealthHandler(pg),
	}
}
