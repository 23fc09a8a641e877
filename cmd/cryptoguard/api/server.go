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

package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/l3montree-dev/cryptoguard/middlewares"
	"github.com/l3montree-dev/cryptoguard/shared"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// NewServer creates the echo server and binds it to the fx lifecycle.
func NewServer(lc fx.Lifecycle, config shared.ServerConfig) shared.Server {
	server := middlewares.Server(config)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				slog.Info("starting server", "port", config.Port)
				if err := server.Start(":" + config.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
					slog.Error("server stopped", "err", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			slog.Info("shutting down server")
			return server.Shutdown(ctx)
		},
	})

	return server
}
