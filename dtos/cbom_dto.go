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

package dtos

import "time"

// RawFinding is a single loosely-typed scan hit as emitted by the static scanner
// or the network analyser.
type RawFinding = map[string]any

type AssetType string

const (
	AssetTypeSymmetricKey AssetType = "SymmetricKey"
	AssetTypePublicKey    AssetType = "PublicKey"
	AssetTypeHash         AssetType = "Hash"
	AssetTypeMAC          AssetType = "MAC"
	AssetTypeKeyExchange  AssetType = "KeyExchange"
	AssetTypePostQuantum  AssetType = "PostQuantum"
	AssetTypeRandom       AssetType = "Random"
	AssetTypeOther        AssetType = "Other"
)

type RiskLevel string

const (
	RiskLevelCritical RiskLevel = "Critical"
	RiskLevelHigh     RiskLevel = "High"
	RiskLevelMedium   RiskLevel = "Medium"
	RiskLevelLow      RiskLevel = "Low"
	RiskLevelNone     RiskLevel = "None"
	RiskLevelUnknown  RiskLevel = "Unknown"
)

// RiskLevels is ordered by severity, highest first.
var RiskLevels = []RiskLevel{
	RiskLevelCritical,
	RiskLevelHigh,
	RiskLevelMedium,
	RiskLevelLow,
	RiskLevelNone,
	RiskLevelUnknown,
}

// Severity returns a rank usable for sorting. Unknown ranks below None.
func (r RiskLevel) Severity() int {
	switch r {
	case RiskLevelCritical:
		return 5
	case RiskLevelHigh:
		return 4
	case RiskLevelMedium:
		return 3
	case RiskLevelLow:
		return 2
	case RiskLevelNone:
		return 1
	}
	return 0
}

type VulnerabilityType string

const (
	VulnerabilityShor             VulnerabilityType = "Shor's Algorithm"
	VulnerabilityGrover           VulnerabilityType = "Grover's Algorithm"
	VulnerabilityQuantumResistant VulnerabilityType = "Quantum-Resistant"
	VulnerabilityNone             VulnerabilityType = "None"
	VulnerabilityUnknown          VulnerabilityType = "Unknown"
)

type ImplementationContext string

const (
	ContextAuthentication ImplementationContext = "Authentication"
	ContextDataEncryption ImplementationContext = "DataEncryption"
	ContextSignatures     ImplementationContext = "Signatures"
	ContextCommunications ImplementationContext = "Communications"
	ContextKeyManagement  ImplementationContext = "KeyManagement"
	ContextOther          ImplementationContext = "Other"
)

const UnknownComponent = "Unknown"

type AssetLocation struct {
	FilePath   string `json:"file_path"`
	LineNumber *int   `json:"line_number,omitempty"`
}

// NetworkObservation holds the handshake details of a finding which was observed on the wire.
type NetworkObservation struct {
	Protocol    string `json:"protocol,omitempty"`
	Source      string `json:"source,omitempty"`
	Destination string `json:"destination,omitempty"`
	Port        *int   `json:"port,omitempty"`
	SessionID   string `json:"session_id,omitempty"`
	CipherSuite string `json:"cipher_suite,omitempty"`
}

type CryptographicAsset struct {
	ID                    string                `json:"id"`
	Name                  string                `json:"name"`
	Type                  AssetType             `json:"type"`
	RiskLevel             RiskLevel             `json:"risk_level"`
	VulnerabilityType     VulnerabilityType     `json:"vulnerability_type"`
	Location              *AssetLocation        `json:"location,omitempty"`
	ComponentID           string                `json:"component_id"`
	Dependencies          []string              `json:"dependencies,omitempty"`
	ImplementationContext ImplementationContext `json:"implementation_context,omitempty"`
	Method                string                `json:"method,omitempty"`
	Description           string                `json:"description,omitempty"`
	Recommendation        string                `json:"recommendation,omitempty"`
	Network               *NetworkObservation   `json:"network,omitempty"`

	VexStatus     *VexStatus `json:"vex_status,omitempty"`
	VexDocumentID *string    `json:"vex_document_id,omitempty"`
}

type Component struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Assets      []CryptographicAsset `json:"assets"`
}

type RiskSummary struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
	None     int `json:"none"`
	Unknown  int `json:"unknown"`
}

func (r RiskSummary) Total() int {
	return r.Critical + r.High + r.Medium + r.Low + r.None + r.Unknown
}

// Count returns the bucket belonging to the given level.
func (r RiskSummary) Count(level RiskLevel) int {
	switch level {
	case RiskLevelCritical:
		return r.Critical
	case RiskLevelHigh:
		return r.High
	case RiskLevelMedium:
		return r.Medium
	case RiskLevelLow:
		return r.Low
	case RiskLevelNone:
		return r.None
	}
	return r.Unknown
}

type VulnerabilitySummary struct {
	Shor             int `json:"shor"`
	Grover           int `json:"grover"`
	QuantumResistant int `json:"quantum_resistant"`
	None             int `json:"none"`
	Unknown          int `json:"unknown"`
}

func (v VulnerabilitySummary) Total() int {
	return v.Shor + v.Grover + v.QuantumResistant + v.None + v.Unknown
}

type CBOMInventory struct {
	ID                   string               `json:"id"`
	GeneratedAt          time.Time            `json:"generated_at"`
	Source               string               `json:"source,omitempty"`
	Components           []Component          `json:"components"`
	TotalAssets          int                  `json:"total_assets"`
	RiskSummary          RiskSummary          `json:"risk_summary"`
	VulnerabilitySummary VulnerabilitySummary `json:"vulnerability_summary"`
	Graph                *AssetGraph          `json:"graph,omitempty"`
	VexDocuments         []VexDocument        `json:"vex_documents,omitempty"`
}

// Assets flattens all component assets in component order.
func (inv CBOMInventory) Assets() []CryptographicAsset {
	assets := make([]CryptographicAsset, 0, inv.TotalAssets)
	for _, c := range inv.Components {
		assets = append(assets, c.Assets...)
	}
	return assets
}

type InventoryListItemDTO struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	Source      string    `json:"source,omitempty"`
	TotalAssets int       `json:"total_assets"`
}

type GraphNode struct {
	ID          string     `json:"id"`
	Label       string     `json:"label"`
	Type        AssetType  `json:"type"`
	RiskLevel   RiskLevel  `json:"risk_level"`
	ComponentID string     `json:"component_id"`
	VexStatus   *VexStatus `json:"vex_status,omitempty"`
}

const EdgeLabelDependsOn = "depends_on"

type GraphEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Label  string `json:"label"`
	// Dangling is set when the target is not a node of the graph.
	Dangling bool `json:"dangling,omitempty"`
}

type AssetGraph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

type GraphStats struct {
	Nodes         int `json:"nodes"`
	Edges         int `json:"edges"`
	DanglingEdges int `json:"dangling_edges"`
}

func (g AssetGraph) Stats() GraphStats {
	dangling := 0
	for _, e := range g.Edges {
		if e.Dangling {
			dangling++
		}
	}
	return GraphStats{
		Nodes:         len(g.Nodes),
		Edges:         len(g.Edges),
		DanglingEdges: dangling,
	}
}

type AssetGraphDTO struct {
	AssetGraph
	Stats GraphStats `json:"stats"`
}

type AdjustedRisk struct {
	AssetID           string     `json:"asset_id"`
	OriginalRiskLevel RiskLevel  `json:"original_risk_level"`
	AdjustedRiskLevel RiskLevel  `json:"adjusted_risk_level"`
	Reason            string     `json:"reason"`
	VexStatus         *VexStatus `json:"vex_status,omitempty"`
}

// EnhancedInventory is the result of applying fetched VEX data. When the fetch fails
// Inventory is the unenhanced snapshot and VexError carries the reason.
type EnhancedInventory struct {
	Inventory  CBOMInventory `json:"inventory"`
	VexApplied bool          `json:"vex_applied"`
	VexError   string        `json:"vex_error,omitempty"`
}

type InventoryStatsDTO struct {
	TotalAssets                 int                  `json:"total_assets"`
	RiskSummary                 RiskSummary          `json:"risk_summary"`
	VulnerabilitySummary        VulnerabilitySummary `json:"vulnerability_summary"`
	AdjustedRiskSummary         RiskSummary          `json:"adjusted_risk_summary"`
	CriticalPercentage          float64              `json:"critical_percentage"`
	HighPercentage              float64              `json:"high_percentage"`
	QuantumVulnerablePercentage float64              `json:"quantum_vulnerable_percentage"`
	Graph                       GraphStats           `json:"graph"`
	VexDocuments                int                  `json:"vex_documents"`
}
