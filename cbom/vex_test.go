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
	"testing"

	"github.com/l3montree-dev/cryptoguard/dtos"
	"github.com/l3montree-dev/cryptoguard/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vexStatuses(inv dtos.CBOMInventory) map[string]*dtos.VexStatus {
	res := map[string]*dtos.VexStatus{}
	for _, a := range inv.Assets() {
		res[a.ID] = a.VexStatus
	}
	return res
}

func TestEnhance(t *testing.T) {
	inv := Assemble(Group([]dtos.CryptographicAsset{
		asset("1", "a", dtos.RiskLevelCritical),
		asset("2", "a", dtos.RiskLevelHigh),
		asset("3", "b", dtos.RiskLevelLow),
	}))
	docs := []dtos.VexDocument{
		{ID: "vex-1", AssetID: "1", Status: dtos.VexStatusNotAffected},
		{ID: "vex-3", AssetID: "3", Status: dtos.VexStatusFixed},
	}

	t.Run("should annotate matching assets only", func(t *testing.T) {
		enhanced := Enhance(inv, docs)
		statuses := vexStatuses(enhanced)

		require.NotNil(t, statuses["1"])
		assert.Equal(t, dtos.VexStatusNotAffected, *statuses["1"])
		assert.Nil(t, statuses["2"])
		require.NotNil(t, statuses["3"])
		assert.Equal(t, dtos.VexStatusFixed, *statuses["3"])

		assert.Equal(t, "vex-1", *enhanced.Components[0].Assets[0].VexDocumentID)
		assert.Nil(t, enhanced.Components[0].Assets[1].VexDocumentID)
		assert.Len(t, enhanced.VexDocuments, 2)
		require.NotNil(t, enhanced.Graph)
		assert.Equal(t, dtos.VexStatusNotAffected, *enhanced.Graph.Nodes[0].VexStatus)
	})

	t.Run("should not mutate the passed inventory", func(t *testing.T) {
		_ = Enhance(inv, docs)
		for _, a := range inv.Assets() {
			assert.Nil(t, a.VexStatus)
			assert.Nil(t, a.VexDocumentID)
		}
		assert.Nil(t, inv.VexDocuments)
		// the risk level is never touched by enhancement
		assert.Equal(t, dtos.RiskLevelCritical, Enhance(inv, docs).Components[0].Assets[0].RiskLevel)
	})

	t.Run("should be idempotent", func(t *testing.T) {
		once := Enhance(inv, docs)
		twice := Enhance(once, docs)
		assert.Equal(t, vexStatuses(once), vexStatuses(twice))
		assert.Equal(t, once.Components, twice.Components)
	})

	t.Run("should let the first matching document win", func(t *testing.T) {
		enhanced := Enhance(inv, []dtos.VexDocument{
			{ID: "first", AssetID: "2", Status: dtos.VexStatusAffected},
			{ID: "second", AssetID: "2", Status: dtos.VexStatusFixed},
		})
		a := enhanced.Components[0].Assets[1]
		assert.Equal(t, dtos.VexStatusAffected, *a.VexStatus)
		assert.Equal(t, "first", *a.VexDocumentID)
	})

	t.Run("should keep summaries and totals", func(t *testing.T) {
		enhanced := Enhance(inv, docs)
		assert.Equal(t, inv.ID, enhanced.ID)
		assert.Equal(t, inv.TotalAssets, enhanced.TotalAssets)
		assert.Equal(t, inv.RiskSummary, enhanced.RiskSummary)
	})
}

func TestAdjustRisk(t *testing.T) {
	critical := asset("1", "a", dtos.RiskLevelCritical)

	cases := []struct {
		name           string
		docs           []dtos.VexDocument
		expectedLevel  dtos.RiskLevel
		expectedReason string
	}{
		{
			name:           "should lower not affected to none and cite the justification",
			docs:           []dtos.VexDocument{{ID: "v", AssetID: "1", Status: dtos.VexStatusNotAffected, Justification: utils.Ptr(dtos.JustificationVulnerableCodeNotInExecutePath)}},
			expectedLevel:  dtos.RiskLevelNone,
			expectedReason: "not affected: vulnerable_code_not_in_execute_path",
		},
		{
			name:           "should lower not affected without justification to none",
			docs:           []dtos.VexDocument{{ID: "v", AssetID: "1", Status: dtos.VexStatusNotAffected}},
			expectedLevel:  dtos.RiskLevelNone,
			expectedReason: ReasonNotAffected,
		},
		{
			name:           "should lower fixed to none",
			docs:           []dtos.VexDocument{{ID: "v", AssetID: "1", Status: dtos.VexStatusFixed}},
			expectedLevel:  dtos.RiskLevelNone,
			expectedReason: ReasonFixed,
		},
		{
			name:           "should keep the risk for affected",
			docs:           []dtos.VexDocument{{ID: "v", AssetID: "1", Status: dtos.VexStatusAffected}},
			expectedLevel:  dtos.RiskLevelCritical,
			expectedReason: ReasonAffected,
		},
		{
			name:           "should keep the risk while under investigation",
			docs:           []dtos.VexDocument{{ID: "v", AssetID: "1", Status: dtos.VexStatusUnderInvestigation}},
			expectedLevel:  dtos.RiskLevelCritical,
			expectedReason: ReasonUnderInvestigation,
		},
		{
			name:           "should keep the risk without vex data",
			docs:           []dtos.VexDocument{{ID: "v", AssetID: "other", Status: dtos.VexStatusFixed}},
			expectedLevel:  dtos.RiskLevelCritical,
			expectedReason: ReasonNoVexData,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res := AdjustRisk(critical, c.docs)
			assert.Equal(t, c.expectedLevel, res.AdjustedRiskLevel)
			assert.Equal(t, c.expectedReason, res.Reason)
			assert.Equal(t, dtos.RiskLevelCritical, res.OriginalRiskLevel)
			// the asset itself stays untouched
			assert.Equal(t, dtos.RiskLevelCritical, critical.RiskLevel)
		})
	}

	t.Run("should adjust every asset of an inventory", func(t *testing.T) {
		inv := Assemble(Group([]dtos.CryptographicAsset{critical, asset("2", "a", dtos.RiskLevelLow)}))
		res := AdjustRiskForInventory(inv, []dtos.VexDocument{{ID: "v", AssetID: "2", Status: dtos.VexStatusFixed}})
		assert.Len(t, res, 2)
		assert.Equal(t, dtos.RiskLevelCritical, res[0].AdjustedRiskLevel)
		assert.Equal(t, dtos.RiskLevelNone, res[1].AdjustedRiskLevel)
	})

	t.Run("should find the first document for an asset", func(t *testing.T) {
		doc, ok := FindVexDocument("1", []dtos.VexDocument{{ID: "a", AssetID: "1"}, {ID: "b", AssetID: "1"}})
		assert.True(t, ok)
		assert.Equal(t, "a", doc.ID)
	})
}
