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
	"math"
	"testing"

	"github.com/l3montree-dev/cryptoguard/dtos"
	"github.com/l3montree-dev/cryptoguard/utils"
	"github.com/stretchr/testify/assert"
)

func TestAggregate(t *testing.T) {
	t.Run("should have all buckets present with zero counts", func(t *testing.T) {
		risk, vuln := Aggregate(nil)
		assert.Equal(t, dtos.RiskSummary{}, risk)
		assert.Equal(t, dtos.VulnerabilitySummary{}, vuln)
	})

	t.Run("should count every asset exactly once in each histogram", func(t *testing.T) {
		assets := []dtos.CryptographicAsset{
			{RiskLevel: dtos.RiskLevelCritical, VulnerabilityType: dtos.VulnerabilityShor},
			{RiskLevel: dtos.RiskLevelCritical, VulnerabilityType: dtos.VulnerabilityShor},
			{RiskLevel: dtos.RiskLevelHigh, VulnerabilityType: dtos.VulnerabilityGrover},
			{RiskLevel: dtos.RiskLevelMedium, VulnerabilityType: dtos.VulnerabilityQuantumResistant},
			{RiskLevel: dtos.RiskLevelLow, VulnerabilityType: dtos.VulnerabilityNone},
			{RiskLevel: dtos.RiskLevelNone, VulnerabilityType: dtos.VulnerabilityUnknown},
			{RiskLevel: dtos.RiskLevelUnknown, VulnerabilityType: "Weak Hash"},
			{RiskLevel: "bogus", VulnerabilityType: ""},
		}

		risk, vuln := Aggregate(assets)

		assert.Equal(t, dtos.RiskSummary{Critical: 2, High: 1, Medium: 1, Low: 1, None: 1, Unknown: 2}, risk)
		assert.Equal(t, dtos.VulnerabilitySummary{Shor: 2, Grover: 1, QuantumResistant: 1, None: 1, Unknown: 3}, vuln)
		assert.Equal(t, len(assets), risk.Total())
		assert.Equal(t, len(assets), vuln.Total())
	})
}

func TestPercentages(t *testing.T) {
	t.Run("should return zero for an empty inventory", func(t *testing.T) {
		inv := Assemble(nil)
		p := RiskPercentage(inv, dtos.RiskLevelCritical)
		assert.Equal(t, 0.0, p)
		assert.False(t, math.IsNaN(p))
		assert.Equal(t, 0.0, QuantumVulnerablePercentage(inv))
	})

	t.Run("should compute the share of the total", func(t *testing.T) {
		inv := Assemble(Group([]dtos.CryptographicAsset{
			{ID: "1", ComponentID: "a", RiskLevel: dtos.RiskLevelCritical, VulnerabilityType: dtos.VulnerabilityShor},
			{ID: "2", ComponentID: "a", RiskLevel: dtos.RiskLevelLow, VulnerabilityType: dtos.VulnerabilityGrover},
			{ID: "3", ComponentID: "a", RiskLevel: dtos.RiskLevelLow, VulnerabilityType: dtos.VulnerabilityNone},
			{ID: "4", ComponentID: "a", RiskLevel: dtos.RiskLevelNone, VulnerabilityType: dtos.VulnerabilityNone},
		}))
		assert.Equal(t, 25.0, RiskPercentage(inv, dtos.RiskLevelCritical))
		assert.Equal(t, 50.0, RiskPercentage(inv, dtos.RiskLevelLow))
		assert.Equal(t, 50.0, QuantumVulnerablePercentage(inv))
	})
}

func TestAdjustedRiskSummary(t *testing.T) {
	inv := Assemble(Group([]dtos.CryptographicAsset{
		{ID: "1", ComponentID: "a", RiskLevel: dtos.RiskLevelCritical},
		{ID: "2", ComponentID: "a", RiskLevel: dtos.RiskLevelHigh},
		{ID: "3", ComponentID: "b", RiskLevel: dtos.RiskLevelHigh},
	}))
	docs := []dtos.VexDocument{
		{ID: "v1", AssetID: "1", Status: dtos.VexStatusNotAffected, Justification: utils.Ptr(dtos.JustificationComponentNotPresent)},
		{ID: "v2", AssetID: "2", Status: dtos.VexStatusAffected},
	}

	summary := AdjustedRiskSummary(inv, docs)
	assert.Equal(t, dtos.RiskSummary{High: 2, None: 1}, summary)
	assert.Equal(t, inv.TotalAssets, summary.Total())
}

func TestStats(t *testing.T) {
	inv := Assemble(Group([]dtos.CryptographicAsset{
		{ID: "1", ComponentID: "a", RiskLevel: dtos.RiskLevelCritical, VulnerabilityType: dtos.VulnerabilityShor, Dependencies: []string{"missing"}},
	}))
	stats := Stats(inv, nil)
	assert.Equal(t, 1, stats.TotalAssets)
	assert.Equal(t, 100.0, stats.CriticalPercentage)
	assert.Equal(t, 100.0, stats.QuantumVulnerablePercentage)
	assert.Equal(t, dtos.GraphStats{Nodes: 1, Edges: 1, DanglingEdges: 1}, stats.Graph)
}
