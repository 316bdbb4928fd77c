package app

import (
	"gorm.io/gorm"

	catalogrepo "github.com/ovenlight/mealdesk-backend/internal/data/repos/catalog"
	orderrepo "github.com/ovenlight/mealdesk-backend/internal/data/repos/orders"
	"github.com/ovenlight/mealdesk-backend/internal/platform/logger"
)

type Repos struct {
	Product  catalogrepo.ProductRepo
	Category catalogrepo.CategoryRepo
	Tag      catalogrepo.TagRepo
	Status   catalogrepo.StatusRepo
	Order    orderrepo.OrderRepo
	LineItem orderrepo.LineItemRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Product:  catalogrepo.NewProductRepo(db, log),
		Category: catalogrepo.NewCategoryRepo(db, log),
		Tag:      catalogrepo.NewTagRepo(db, log),
		Status:   catalogrepo.NewStatusRepo(db, log),
		Order:    orderrepo.NewOrderRepo(db, log),
		LineItem: orderrepo.NewLineItemRepo(db, log),
	}
}
