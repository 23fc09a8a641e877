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
	"github.com/l3montree-dev/cryptoguard/dtos"
	"github.com/l3montree-dev/cryptoguard/utils"
)

// Aggregate folds the assets into the risk and vulnerability histograms.
// Every asset lands in exactly one bucket of each.
func Aggregate(assets []dtos.CryptographicAsset) (dtos.RiskSummary, dtos.VulnerabilitySummary) {
	risk := utils.Reduce(assets, func(s dtos.RiskSummary, a dtos.CryptographicAsset) dtos.RiskSummary {
		return countRisk(s, a.RiskLevel)
	}, dtos.RiskSummary{})

	vuln := utils.Reduce(assets, countVulnerability, dtos.VulnerabilitySummary{})

	return risk, vuln
}

func countRisk(s dtos.RiskSummary, level dtos.RiskLevel) dtos.RiskSummary {
	switch level {
	case dtos.RiskLevelCritical:
		s.Critical++
	case dtos.RiskLevelHigh:
		s.High++
	case dtos.RiskLevelMedium:
		s.Medium++
	case dtos.RiskLevelLow:
		s.Low++
	case dtos.RiskLevelNone:
		s.None++
	default:
		s.Unknown++
	}
	return s
}

func countVulnerability(s dtos.VulnerabilitySummary, a dtos.CryptographicAsset) dtos.VulnerabilitySummary {
	switch a.VulnerabilityType {
	case dtos.VulnerabilityShor:
		s.Shor++
	case dtos.VulnerabilityGrover:
		s.Grover++
	case dtos.VulnerabilityQuantumResistant:
		s.QuantumResistant++
	case dtos.VulnerabilityNone:
		s.None++
	default:
		s.Unknown++
	}
	return s
}

// AdjustedRiskSummary is the risk histogram after applying AdjustRisk to every asset.
func AdjustedRiskSummary(inv dtos.CBOMInventory, docs []dtos.VexDocument) dtos.RiskSummary {
	index := indexVexDocuments(docs)
	return utils.Reduce(inv.Assets(), func(s dtos.RiskSummary, a dtos.CryptographicAsset) dtos.RiskSummary {
		return countRisk(s, adjustRisk(a, index).AdjustedRiskLevel)
	}, dtos.RiskSummary{})
}

func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

// RiskPercentage returns the share of assets with the given risk level in percent.
func RiskPercentage(inv dtos.CBOMInventory, level dtos.RiskLevel) float64 {
	return percentage(inv.RiskSummary.Count(level), inv.TotalAssets)
}

// QuantumVulnerablePercentage is the share of assets breakable by Shor's or Grover's algorithm.
func QuantumVulnerablePercentage(inv dtos.CBOMInventory) float64 {
	return percentage(inv.VulnerabilitySummary.Shor+inv.VulnerabilitySummary.Grover, inv.TotalAssets)
}

func Stats(inv dtos.CBOMInventory, docs []dtos.VexDocument) dtos.InventoryStatsDTO {
	graph := BuildGraph(inv.Components)
	return dtos.InventoryStatsDTO{
		TotalAssets:                 inv.TotalAssets,
		RiskSummary:                 inv.RiskSummary,
		VulnerabilitySummary:        inv.VulnerabilitySummary,
		AdjustedRiskSummary:         AdjustedRiskSummary(inv, docs),
		CriticalPercentage:          RiskPercentage(inv, dtos.RiskLevelCritical),
		HighPercentage:              RiskPercentage(inv, dtos.RiskLevelHigh),
		QuantumVulnerablePercentage: QuantumVulnerablePercentage(inv),
		Graph:                       graph.Stats(),
		VexDocuments:                len(docs),
	}
}
