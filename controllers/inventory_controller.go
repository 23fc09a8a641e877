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
	"fmt"
	"io"
	"log/slog"
	"net/http"

	cdx "github.com/CycloneDX/cyclonedx-go"
	"github.com/l3montree-dev/cryptoguard/cbom"
	"github.com/l3montree-dev/cryptoguard/dtos"
	"github.com/l3montree-dev/cryptoguard/normalize"
	"github.com/l3montree-dev/cryptoguard/shared"
	"github.com/l3montree-dev/cryptoguard/transformer"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// scan results above this size are rejected
const maxScanResultSize = 64 << 20

type InventoryController struct {
	inventoryService shared.InventoryService
	vexService       shared.VexService
}

func NewInventoryController(inventoryService shared.InventoryService, vexService shared.VexService) *InventoryController {
	return &InventoryController{
		inventoryService: inventoryService,
		vexService:       vexService,
	}
}

func setAttachment(ctx shared.Context, contentType, fileName string) {
	ctx.Response().Header().Set(echo.HeaderContentType, contentType)
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
}

func withVex(ctx shared.Context) bool {
	return ctx.QueryParam("vex") == "true"
}

// @Summary Build an inventory from a scan result container
// @Tags Inventories
// @Accept json
// @Produce json
// @Success 201 {object} dtos.CBOMInventory
// @Failure 400 {object} object{message=string}
// @Router /inventories/ [post]
func (c *InventoryController) Create(ctx shared.Context) error {
	raw, err := io.ReadAll(io.LimitReader(ctx.Request().Body, maxScanResultSize+1))
	if err != nil {
		return echo.NewHTTPError(400, "could not read request body").WithInternal(err)
	}
	if len(raw) > maxScanResultSize {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "scan result too large")
	}

	inv, err := c.inventoryService.BuildInventory(raw)
	if err != nil {
		if errors.Is(err, cbom.ErrMalformedScanResult) {
			return echo.NewHTTPError(400, err.Error()).WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not build inventory").WithInternal(err)
	}

	return ctx.JSON(http.StatusCreated, inv)
}

// @Summary List inventories
// @Tags Inventories
// @Produce json
// @Success 200 {array} dtos.InventoryListItemDTO
// @Router /inventories/ [get]
func (c *InventoryController) List(ctx shared.Context) error {
	items, err := c.inventoryService.List()
	if err != nil {
		return echo.NewHTTPError(500, "could not list inventories").WithInternal(err)
	}
	return ctx.JSON(200, items)
}

// @Summary Get an inventory
// @Tags Inventories
// @Produce json
// @Param inventoryID path string true "Inventory ID"
// @Param vex query bool false "apply vex documents"
// @Success 200 {object} dtos.CBOMInventory
// @Router /inventories/{inventoryID}/ [get]
func (c *InventoryController) Read(ctx shared.Context) error {
	inv := shared.GetInventory(ctx)
	if withVex(ctx) {
		return ctx.JSON(200, c.vexService.EnhanceInventory(ctx.Request().Context(), inv))
	}
	return ctx.JSON(200, inv)
}

func (c *InventoryController) Graph(ctx shared.Context) error {
	inv := shared.GetInventory(ctx)
	if withVex(ctx) {
		inv = c.vexService.EnhanceInventory(ctx.Request().Context(), inv).Inventory
	}

	graph := cbom.BuildInventoryGraph(inv)
	return ctx.JSON(200, dtos.AssetGraphDTO{
		AssetGraph: graph,
		Stats:      graph.Stats(),
	})
}

// Stats falls back to the summaries without vex data if the documents can not be fetched.
func (c *InventoryController) Stats(ctx shared.Context) error {
	inv := shared.GetInventory(ctx)

	docs, err := c.vexService.FetchVexDocuments(ctx.Request().Context(), inv.ID)
	if err != nil {
		slog.Warn("could not fetch vex documents for stats", "inventoryID", inv.ID, "err", err)
		docs = nil
	}

	return ctx.JSON(200, cbom.Stats(inv, docs))
}

func (c *InventoryController) ExportJSON(ctx shared.Context) error {
	inv := shared.GetInventory(ctx)
	if withVex(ctx) {
		inv = c.vexService.EnhanceInventory(ctx.Request().Context(), inv).Inventory
	}

	setAttachment(ctx, echo.MIMEApplicationJSON, transformer.ExportFileName(inv, ".json"))
	ctx.Response().WriteHeader(200)
	return transformer.InventoryToJSON(ctx.Response().Writer, inv)
}

func (c *InventoryController) ExportCSV(ctx shared.Context) error {
	inv := shared.GetInventory(ctx)

	setAttachment(ctx, "text/csv; charset=utf-8", transformer.ExportFileName(inv, ".csv"))
	ctx.Response().WriteHeader(200)
	return transformer.InventoryToCSV(ctx.Response().Writer, inv)
}

func (c *InventoryController) buildCycloneDX(ctx shared.Context) (*cdx.BOM, error) {
	inv := shared.GetInventory(ctx)
	meta := normalize.BOMMetadata{
		Name:    ctx.QueryParam("name"),
		Version: ctx.QueryParam("version"),
	}
	if !withVex(ctx) {
		return normalize.InventoryToCycloneDX(inv, meta), nil
	}

	docs, err := c.vexService.FetchVexDocuments(ctx.Request().Context(), inv.ID)
	if err != nil {
		return nil, err
	}
	return normalize.BuildCycloneDXVex(inv, docs, meta), nil
}

// @Summary Export the inventory as CycloneDX 1.6 CBOM
// @Tags Inventories
// @Produce json
// @Param inventoryID path string true "Inventory ID"
// @Param vex query bool false "include the vex documents as analysed vulnerabilities"
// @Router /inventories/{inventoryID}/cyclonedx.json/ [get]
func (c *InventoryController) CycloneDXJSON(ctx shared.Context) error {
	bom, err := c.buildCycloneDX(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "could not fetch vex documents").WithInternal(err)
	}

	setAttachment(ctx, "application/vnd.cyclonedx+json", transformer.ExportFileName(shared.GetInventory(ctx), ".cdx.json"))
	ctx.Response().WriteHeader(200)
	return normalize.WriteCycloneDX(ctx.Response().Writer, bom)
}

func (c *InventoryController) CycloneDXXML(ctx shared.Context) error {
	bom, err := c.buildCycloneDX(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "could not fetch vex documents").WithInternal(err)
	}

	setAttachment(ctx, "application/vnd.cyclonedx+xml", transformer.ExportFileName(shared.GetInventory(ctx), ".cdx.xml"))
	ctx.Response().WriteHeader(200)
	return cdx.NewBOMEncoder(ctx.Response().Writer, cdx.BOMFileFormatXML).Encode(bom)
}

func (c *InventoryController) OpenVeX(ctx shared.Context) error {
	inv := shared.GetInventory(ctx)

	docs, err := c.vexService.FetchVexDocuments(ctx.Request().Context(), inv.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "could not fetch vex documents").WithInternal(err)
	}

	author := ctx.QueryParam("author")
	if author == "" {
		author = "cryptoguard"
	}
	return ctx.JSON(200, normalize.BuildOpenVeX(inv, docs, author))
}
