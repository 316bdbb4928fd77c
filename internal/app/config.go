package app

import (
	"strings"

	"github.com/ovenlight/mealdesk-backend/internal/platform/envutil"
	"github.com/ovenlight/mealdesk-backend/internal/platform/logger"
)

type Config struct {
	Port           string
	GinMode        string
	AllowedOrigins []string
	AutoMigrate    bool
}

func LoadConfig(log *logger.Logger) Config {
	port := envutil.GetEnv("PORT", "8080", log)
	ginMode := envutil.GetEnv("GIN_MODE", "debug", log)
	rawOrigins := envutil.GetEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173", log)
	autoMigrate := envutil.GetEnvAsBool("DB_AUTO_MIGRATE", true, log)

	var origins []string
	for _, o := range strings.Split(rawOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return Config{
		Port:           port,
		GinMode:        ginMode,
		AllowedOrigins: origins,
		AutoMigrate:    autoMigrate,
	}
}
