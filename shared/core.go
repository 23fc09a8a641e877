// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package shared

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/lmittmann/tint"
)

type Server = *echo.Echo
type MiddlewareFunc = echo.MiddlewareFunc
type Context = echo.Context

// InitLogger initializes the logger with a tint handler.
// tint is a simple logging library that allows to add colors to the log output.
func InitLogger() {
	w := os.Stderr

	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      slog.LevelDebug,
			AddSource:  true,
			TimeFormat: time.Kitchen,
		}),
	))
}

func LoadConfig() error {
	return godotenv.Load()
}

var V = validator.New()

func GetEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// MaxVexDocumentSize caps uploaded vex documents and remote vex feed responses.
const MaxVexDocumentSize = 16 << 20

type ServerConfig struct {
	Port string
	// how many inventories are kept in memory
	InventoryCacheSize int
	InventoryTTL       time.Duration

	// remote vex feed, another cryptoguard instance or anything serving a vex collection
	VexSourceURL string
	// sent as bearer token to the remote vex feed
	VexSourceToken string
	// directory containing <inventory id>.json vex files
	VexSourceDir string
	// requests per second against the remote vex feed
	VexRateLimit float64

	FrontendURL string
	Environment string
}

// ServerConfigFromEnv reads the configuration. Unparsable numbers fall back to the default.
func ServerConfigFromEnv() ServerConfig {
	return ServerConfig{
		Port:               GetEnvOrDefault("PORT", "8080"),
		InventoryCacheSize: envInt("INVENTORY_CACHE_SIZE", 256),
		InventoryTTL:       envDuration("INVENTORY_TTL", 24*time.Hour),
		VexSourceURL:       os.Getenv("VEX_SOURCE_URL"),
		VexSourceToken:     os.Getenv("VEX_SOURCE_TOKEN"),
		VexSourceDir:       os.Getenv("VEX_SOURCE_DIR"),
		VexRateLimit:       envFloat("VEX_RATE_LIMIT", 5),
		FrontendURL:        GetEnvOrDefault("FRONTEND_URL", "http://localhost:3000"),
		Environment:        GetEnvOrDefault("ENVIRONMENT", "dev"),
	}
}

func envInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		if os.Getenv(key) != "" {
			slog.Warn("invalid config value, using default", "key", key, "default", def)
		}
		return def
	}
	return v
}

func envFloat(key string, def float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil || v <= 0 {
		if os.Getenv(key) != "" {
			slog.Warn("invalid config value, using default", "key", key, "default", def)
		}
		return def
	}
	return v
}

func envDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		if os.Getenv(key) != "" {
			slog.Warn("invalid config value, using default", "key", key, "default", def)
		}
		return def
	}
	return v
}
