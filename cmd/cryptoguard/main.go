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

package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/l3montree-dev/cryptoguard/cmd/cryptoguard/api"
	"github.com/l3montree-dev/cryptoguard/controllers"
	"github.com/l3montree-dev/cryptoguard/database/repositories"
	"github.com/l3montree-dev/cryptoguard/router"
	"github.com/l3montree-dev/cryptoguard/services"
	"github.com/l3montree-dev/cryptoguard/shared"
	"go.uber.org/fx"
)

var release string // Will be filled at build time

//	@title			cryptoguard API
//	@version		v1
//	@description	cryptographic bill of materials and vex enrichment

//	@license.name	AGPL-3

// @host		localhost:8080
// @BasePath	/api/v1
func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	config := shared.ServerConfigFromEnv()

	if os.Getenv("ERROR_TRACKING_DSN") != "" {
		initSentry(config.Environment)

		// Catch panics
		defer func() {
			if err := recover(); err != nil {
				sentry.CurrentHub().Recover(err)
				// Wait for events to be send to server
				sentry.Flush(time.Second * 5)
			}
		}()
	}

	fx.New(
		fx.Supply(config),
		fx.Provide(api.NewServer),
		repositories.Module,
		services.Module,
		controllers.ControllerModule,
		router.RouterModule,

		// we need to invoke all routers to register their routes
		fx.Invoke(func(InventoryRouter router.InventoryRouter) {}),
		fx.Invoke(func(server shared.Server) {}),
	).Run()
}

func initSentry(environment string) {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         os.Getenv("ERROR_TRACKING_DSN"),
		Environment: environment,
		Release:     release,

		// In debug mode, the debug information is printed to stdout to help you
		// understand what Sentry is doing.
		Debug: environment == "dev",

		AttachStacktrace: true,

		SendDefaultPII: false,
	})
	if err != nil {
		slog.Error("Failed to init sentry", "err", err)
	}
}
