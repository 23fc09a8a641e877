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

package cbom

import (
	"fmt"

	"github.com/l3montree-dev/cryptoguard/dtos"
	"github.com/l3montree-dev/cryptoguard/utils"
)

const (
	ReasonFixed              = "fixed in current version"
	ReasonAffected           = "confirmed affected"
	ReasonUnderInvestigation = "under investigation"
	ReasonNoVexData          = "no VEX data available"
	ReasonNotAffected        = "not affected"
)

// indexVexDocuments maps asset ids to their document.
// If several documents reference the same asset, the first one in slice order wins.
func indexVexDocuments(docs []dtos.VexDocument) map[string]dtos.VexDocument {
	index := make(map[string]dtos.VexDocument, len(docs))
	for _, d := range docs {
		if _, ok := index[d.AssetID]; ok {
			continue
		}
		index[d.AssetID] = d
	}
	return index
}

// FindVexDocument returns the document that applies to the asset.
func FindVexDocument(assetID string, docs []dtos.VexDocument) (dtos.VexDocument, bool) {
	return utils.Find(docs, func(d dtos.VexDocument) bool {
		return d.AssetID == assetID
	})
}

// Enhance returns a copy of the inventory with vex_status and vex_document_id set on
// every asset that has a matching document. The passed inventory is left untouched.
// Assets without a document are copied as they are.
func Enhance(inv dtos.CBOMInventory, docs []dtos.VexDocument) dtos.CBOMInventory {
	index := indexVexDocuments(docs)

	components := make([]dtos.Component, len(inv.Components))
	for i, c := range inv.Components {
		assets := make([]dtos.CryptographicAsset, len(c.Assets))
		for j, a := range c.Assets {
			if d, ok := index[a.ID]; ok {
				a.VexStatus = utils.Ptr(d.Status)
				a.VexDocumentID = utils.Ptr(d.ID)
			}
			assets[j] = a
		}
		c.Assets = assets
		components[i] = c
	}

	enhanced := inv
	enhanced.Components = components
	enhanced.VexDocuments = append([]dtos.VexDocument(nil), docs...)
	graph := BuildGraph(components)
	enhanced.Graph = &graph
	return enhanced
}

// AdjustRisk recommends the risk level to display once the VEX judgement is taken into account.
// The asset itself is not modified.
func AdjustRisk(asset dtos.CryptographicAsset, docs []dtos.VexDocument) dtos.AdjustedRisk {
	return adjustRisk(asset, indexVexDocuments(docs))
}

// AdjustRiskForInventory runs AdjustRisk for every asset in component order.
func AdjustRiskForInventory(inv dtos.CBOMInventory, docs []dtos.VexDocument) []dtos.AdjustedRisk {
	index := indexVexDocuments(docs)
	return utils.Map(inv.Assets(), func(a dtos.CryptographicAsset) dtos.AdjustedRisk {
		return adjustRisk(a, index)
	})
}

func adjustRisk(asset dtos.CryptographicAsset, index map[string]dtos.VexDocument) dtos.AdjustedRisk {
	res := dtos.AdjustedRisk{
		AssetID:           asset.ID,
		OriginalRiskLevel: asset.RiskLevel,
		AdjustedRiskLevel: asset.RiskLevel,
		Reason:            ReasonNoVexData,
	}

	doc, ok := index[asset.ID]
	if !ok {
		return res
	}
	res.VexStatus = utils.Ptr(doc.Status)

	switch doc.Status {
	case dtos.VexStatusNotAffected:
		res.AdjustedRiskLevel = dtos.RiskLevelNone
		res.Reason = ReasonNotAffected
		if doc.Justification != nil {
			res.Reason = fmt.Sprintf("%s: %s", ReasonNotAffected, *doc.Justification)
		}
	case dtos.VexStatusFixed:
		res.AdjustedRiskLevel = dtos.RiskLevelNone
		res.Reason = ReasonFixed
	case dtos.VexStatusAffected:
		res.Reason = ReasonAffected
	case dtos.VexStatusUnderInvestigation:
		res.Reason = ReasonUnderInvestigation
	default:
		res.Reason = fmt.Sprintf("unrecognized VEX status %q", doc.Status)
	}
	return res
}
