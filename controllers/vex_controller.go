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

package controllers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/l3montree-dev/cryptoguard/cbom"
	"github.com/l3montree-dev/cryptoguard/dtos"
	"github.com/l3montree-dev/cryptoguard/services"
	"github.com/l3montree-dev/cryptoguard/shared"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type VexController struct {
	vexService            shared.VexService
	vexDocumentRepository shared.VexDocumentRepository
}

func NewVexController(vexService shared.VexService, vexDocumentRepository shared.VexDocumentRepository) *VexController {
	return &VexController{
		vexService:            vexService,
		vexDocumentRepository: vexDocumentRepository,
	}
}

// @Summary Upload vex documents for an inventory
// @Description Accepts a native document array or collection, OpenVEX or CycloneDX VEX
// @Tags VEX
// @Accept json
// @Produce json
// @Param inventoryID path string true "Inventory ID"
// @Success 201 {array} dtos.VexDocument
// @Router /inventories/{inventoryID}/vex/ [post]
func (c *VexController) Upload(ctx shared.Context) error {
	inv := shared.GetInventory(ctx)

	raw, err := io.ReadAll(io.LimitReader(ctx.Request().Body, shared.MaxVexDocumentSize+1))
	if err != nil {
		return echo.NewHTTPError(400, "could not read request body").WithInternal(err)
	}
	if len(raw) > shared.MaxVexDocumentSize {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "vex document too large")
	}

	docs, err := c.vexService.UploadVexDocuments(inv.ID, raw)
	if err != nil {
		if errors.Is(err, services.ErrInvalidVexDocument) {
			return echo.NewHTTPError(400, err.Error()).WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not store vex documents").WithInternal(err)
	}

	return ctx.JSON(http.StatusCreated, docs)
}

// List only returns the uploaded documents. Configured feeds are not consulted,
// which keeps instances pointing at each other from looping.
func (c *VexController) List(ctx shared.Context) error {
	inv := shared.GetInventory(ctx)

	docs, err := c.vexDocumentRepository.FindByCBOMID(inv.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not read vex documents").WithInternal(err)
	}

	collection := dtos.VexCollection{
		CBOMID:    inv.ID,
		Documents: docs,
	}
	for _, d := range docs {
		if d.UpdatedAt.After(collection.LastUpdated) {
			collection.LastUpdated = d.UpdatedAt
		}
	}
	return ctx.JSON(200, collection)
}

func (c *VexController) fetchDocsOrNone(ctx shared.Context, cbomID string) []dtos.VexDocument {
	docs, err := c.vexService.FetchVexDocuments(ctx.Request().Context(), cbomID)
	if err != nil {
		slog.Warn("could not fetch vex documents, adjusting without vex data", "inventoryID", cbomID, "err", err)
		return nil
	}
	return docs
}

// @Summary Adjusted risk of a single asset
// @Tags VEX
// @Produce json
// @Param inventoryID path string true "Inventory ID"
// @Param assetID path string true "Asset ID"
// @Success 200 {object} dtos.AdjustedRisk
// @Router /inventories/{inventoryID}/assets/{assetID}/adjusted-risk/ [get]
func (c *VexController) AdjustedRisk(ctx shared.Context) error {
	inv := shared.GetInventory(ctx)
	assetID := shared.GetParam(ctx, "assetID")

	for _, a := range inv.Assets() {
		if a.ID == assetID {
			return ctx.JSON(200, cbom.AdjustRisk(a, c.fetchDocsOrNone(ctx, inv.ID)))
		}
	}
	return echo.NewHTTPError(404, "could not find asset")
}

func (c *VexController) AdjustedRisks(ctx shared.Context) error {
	inv := shared.GetInventory(ctx)
	return ctx.JSON(200, cbom.AdjustRiskForInventory(inv, c.fetchDocsOrNone(ctx, inv.ID)))
}
