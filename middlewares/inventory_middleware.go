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

package middlewares

import (
	"github.com/l3montree-dev/cryptoguard/shared"
	"github.com/labstack/echo/v4"
)

// InventoryMiddleware loads the inventory referenced by the inventoryID path parameter into the request context.
func InventoryMiddleware(inventoryService shared.InventoryService) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			inventoryID := shared.GetParam(ctx, "inventoryID")
			if inventoryID == "" {
				return echo.NewHTTPError(400, "invalid inventory id")
			}

			inv, err := inventoryService.Read(inventoryID)
			if err != nil {
				return echo.NewHTTPError(404, "could not find inventory").WithInternal(err)
			}

			shared.SetInventory(ctx, inv)

			return next(ctx)
		}
	}
}
