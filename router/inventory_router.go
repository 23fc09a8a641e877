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

package router

import (
	"github.com/l3montree-dev/cryptoguard/controllers"
	"github.com/l3montree-dev/cryptoguard/middlewares"
	"github.com/l3montree-dev/cryptoguard/shared"
	"github.com/labstack/echo/v4"
)

type InventoryRouter struct {
	*echo.Group
}

func NewInventoryRouter(
	apiV1Group APIV1Router,
	inventoryController *controllers.InventoryController,
	vexController *controllers.VexController,
	inventoryService shared.InventoryService,
) InventoryRouter {
	inventoriesRouter := apiV1Group.Group.Group("/inventories")
	inventoriesRouter.GET("/", inventoryController.List)
	inventoriesRouter.POST("/", inventoryController.Create)

	/**
	Inventory scoped router
	All routes below this line are scoped to a specific inventory.
	*/
	inventoryRouter := inventoriesRouter.Group("/:inventoryID", middlewares.InventoryMiddleware(inventoryService))
	inventoryRouter.GET("/", inventoryController.Read)
	inventoryRouter.GET("/graph/", inventoryController.Graph)
	inventoryRouter.GET("/stats/", inventoryController.Stats)
	inventoryRouter.GET("/export.json/", inventoryController.ExportJSON)
	inventoryRouter.GET("/export.csv/", inventoryController.ExportCSV)
	inventoryRouter.GET("/cyclonedx.json/", inventoryController.CycloneDXJSON)
	inventoryRouter.GET("/cyclonedx.xml/", inventoryController.CycloneDXXML)
	inventoryRouter.GET("/openvex.json/", inventoryController.OpenVeX)

	inventoryRouter.GET("/vex/", vexController.List)
	inventoryRouter.POST("/vex/", vexController.Upload)
	inventoryRouter.GET("/adjusted-risk/", vexController.AdjustedRisks)
	inventoryRouter.GET("/assets/:assetID/adjusted-risk/", vexController.AdjustedRisk)

	return InventoryRouter{Group: inventoryRouter}
}
