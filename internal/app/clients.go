package app

import (
	"github.com/ovenlight/mealdesk-backend/internal/clients/redis"
	"github.com/ovenlight/mealdesk-backend/internal/platform/logger"
)

type Clients struct {
	ProductCache redis.ProductCache
}

// wireClients sets up optional external clients. A missing or unreachable
// Redis degrades to a noop cache rather than failing startup.
func wireClients(log *logger.Logger) Clients {
	log.Info("Wiring clients...")
	cache, err := redis.NewProductCache(log)
	if err != nil {
		log.Warn("Product cache disabled", "error", err)
		cache = redis.NewNoopProductCache()
	}
	return Clients{ProductCache: cache}
}
