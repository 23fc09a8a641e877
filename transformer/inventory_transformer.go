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

package transformer

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gosimple/slug"
	"github.com/l3montree-dev/cryptoguard/cbom"
	"github.com/l3montree-dev/cryptoguard/dtos"
	"github.com/l3montree-dev/cryptoguard/utils"
	"github.com/pkg/errors"
)

const (
	ColumnComponent      = "Component"
	ColumnAsset          = "Asset"
	ColumnType           = "Type"
	ColumnFilePath       = "File Path"
	ColumnLineNumber     = "Line Number"
	ColumnVulnerability  = "Vulnerability"
	ColumnRisk           = "Risk"
	ColumnContext        = "Context"
	ColumnDescription    = "Description"
	ColumnRecommendation = "Recommendation"
	ColumnID             = "ID"
)

var CSVHeader = []string{
	ColumnComponent,
	ColumnAsset,
	ColumnType,
	ColumnFilePath,
	ColumnLineNumber,
	ColumnVulnerability,
	ColumnRisk,
	ColumnContext,
	ColumnDescription,
	ColumnRecommendation,
	ColumnID,
}

// InventoryToJSON writes the full inventory, pretty printed.
func InventoryToJSON(w io.Writer, inv dtos.CBOMInventory) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(inv)
}

func assetToCSVRow(componentName string, a dtos.CryptographicAsset) []string {
	filePath, line := "", ""
	if a.Location != nil {
		filePath = a.Location.FilePath
		if a.Location.LineNumber != nil {
			line = strconv.Itoa(*a.Location.LineNumber)
		}
	}
	return []string{
		componentName,
		a.Name,
		string(a.Type),
		filePath,
		line,
		string(a.VulnerabilityType),
		string(a.RiskLevel),
		string(a.ImplementationContext),
		a.Description,
		a.Recommendation,
		a.ID,
	}
}

// InventoryToCSV writes one row per asset. Fields containing a separator, quote or
// newline are quoted with embedded quotes doubled.
func InventoryToCSV(w io.Writer, inv dtos.CBOMInventory) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(CSVHeader); err != nil {
		return errors.Wrap(err, "could not write csv header")
	}
	for _, c := range inv.Components {
		for _, a := range c.Assets {
			if err := writer.Write(assetToCSVRow(c.Name, a)); err != nil {
				return errors.Wrap(err, "could not write csv row")
			}
		}
	}
	writer.Flush()
	return writer.Error()
}

// ParseCSV reads assets back from a csv export. The ID column is kept if present,
// otherwise the id is derived the same way the classifier derives it, using the row index.
func ParseCSV(r io.Reader) ([]dtos.CryptographicAsset, error) {
	rows, err := utils.ReadCSV(r)
	if err != nil {
		return nil, errors.Wrap(err, "could not read csv")
	}

	assets := make([]dtos.CryptographicAsset, 0, len(rows))
	for i, row := range rows {
		assets = append(assets, csvRowToAsset(i, row))
	}
	return assets, nil
}

func csvRowToAsset(index int, row map[string]string) dtos.CryptographicAsset {
	name := strings.TrimSpace(row[ColumnAsset])
	if name == "" {
		name = "Unknown"
	}
	filePath := strings.TrimSpace(row[ColumnFilePath])

	var line *int
	if n, err := strconv.Atoi(strings.TrimSpace(row[ColumnLineNumber])); err == nil {
		line = &n
	}

	component := strings.TrimSpace(row[ColumnComponent])
	if component == "" {
		component = cbom.ComponentKey(filePath)
	}

	assetType := dtos.AssetType(strings.TrimSpace(row[ColumnType]))
	if assetType == "" {
		assetType = cbom.ClassifyAssetType(name, "")
	}

	id := strings.TrimSpace(row[ColumnID])
	if id == "" {
		id = cbom.NewAssetID(index, name, filePath, line)
	}

	asset := dtos.CryptographicAsset{
		ID:                    id,
		Name:                  name,
		Type:                  assetType,
		RiskLevel:             cbom.NormalizeRiskLevel(row[ColumnRisk]),
		VulnerabilityType:     cbom.NormalizeVulnerabilityType(row[ColumnVulnerability]),
		ComponentID:           component,
		ImplementationContext: dtos.ImplementationContext(strings.TrimSpace(row[ColumnContext])),
		Description:           row[ColumnDescription],
		Recommendation:        row[ColumnRecommendation],
	}
	if filePath != "" {
		asset.Location = &dtos.AssetLocation{FilePath: filePath, LineNumber: line}
	}
	return asset
}

// InventoryFromCSV regroups the parsed assets and assembles a new inventory from them.
func InventoryFromCSV(r io.Reader) (dtos.CBOMInventory, error) {
	assets, err := ParseCSV(r)
	if err != nil {
		return dtos.CBOMInventory{}, err
	}
	inv := cbom.Assemble(cbom.Group(assets))
	graph := cbom.BuildGraph(inv.Components)
	inv.Graph = &graph
	return inv, nil
}

// InventoryToListItem is what the inventory listing shows.
func InventoryToListItem(inv dtos.CBOMInventory) dtos.InventoryListItemDTO {
	return dtos.InventoryListItemDTO{
		ID:          inv.ID,
		GeneratedAt: inv.GeneratedAt,
		Source:      inv.Source,
		TotalAssets: inv.TotalAssets,
	}
}

// ExportFileName names downloads and cli outputs, e.g. cbom-static-2026-01-02-1504.cdx.json
func ExportFileName(inv dtos.CBOMInventory, suffix string) string {
	source := inv.Source
	if source == "" {
		source = "scan"
	}
	return slug.Make(fmt.Sprintf("cbom %s %s", source, inv.GeneratedAt.Format("2006-01-02 1504"))) + suffix
}
