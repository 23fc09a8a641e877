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

package normalize

import (
	"slices"
	"time"

	cdx "github.com/CycloneDX/cyclonedx-go"
	"github.com/l3montree-dev/cryptoguard/dtos"
	"github.com/l3montree-dev/cryptoguard/utils"
)

// MapCDXToVexStatus maps a CycloneDX analysis onto a vex status.
// ok is false when the analysis carries no judgement at all.
func MapCDXToVexStatus(a *cdx.VulnerabilityAnalysis) (dtos.VexStatus, bool) {
	if a == nil {
		return "", false
	}
	switch a.State {
	case cdx.IASResolved, cdx.ImpactAnalysisState("resolved_with_pedigree"):
		return dtos.VexStatusFixed, true
	case cdx.IASFalsePositive, cdx.IASNotAffected:
		return dtos.VexStatusNotAffected, true
	case cdx.IASExploitable:
		return dtos.VexStatusAffected, true
	case cdx.IASInTriage:
		return dtos.VexStatusUnderInvestigation, true
	default:
		// fallback to response mapping if state is empty
		if a.Response != nil && len(*a.Response) > 0 {
			if slices.Contains(*a.Response, cdx.IARWillNotFix) || slices.Contains(*a.Response, cdx.IARUpdate) {
				return dtos.VexStatusAffected, true
			}
		}
		return "", false
	}
}

func MapCDXJustification(j cdx.ImpactAnalysisJustification) *dtos.VexJustification {
	switch string(j) {
	case "code_not_present":
		return utils.Ptr(dtos.JustificationVulnerableCodeNotPresent)
	case "code_not_reachable":
		return utils.Ptr(dtos.JustificationVulnerableCodeNotInExecutePath)
	case "requires_configuration", "requires_dependency", "requires_environment":
		return utils.Ptr(dtos.JustificationVulnerableCodeCannotBeControlledByAdversary)
	case "protected_by_compiler", "protected_at_runtime", "protected_at_perimeter", "protected_by_mitigating_control":
		return utils.Ptr(dtos.JustificationInlineMitigationsAlreadyExist)
	}
	return nil
}

func vexJustificationToCDX(j dtos.VexJustification) cdx.ImpactAnalysisJustification {
	switch j {
	case dtos.JustificationComponentNotPresent, dtos.JustificationVulnerableCodeNotPresent:
		return cdx.ImpactAnalysisJustification("code_not_present")
	case dtos.JustificationVulnerableCodeNotInExecutePath:
		return cdx.ImpactAnalysisJustification("code_not_reachable")
	case dtos.JustificationVulnerableCodeCannotBeControlledByAdversary:
		return cdx.ImpactAnalysisJustification("requires_environment")
	case dtos.JustificationInlineMitigationsAlreadyExist:
		return cdx.ImpactAnalysisJustification("protected_by_mitigating_control")
	}
	return ""
}

func vexStatusToImpactAnalysisState(status dtos.VexStatus) cdx.ImpactAnalysisState {
	switch status {
	case dtos.VexStatusNotAffected:
		return cdx.IASNotAffected
	case dtos.VexStatusFixed:
		return cdx.IASResolved
	case dtos.VexStatusAffected:
		return cdx.IASExploitable
	default:
		return cdx.IASInTriage
	}
}

func parseCDXTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// FromCycloneDXVex creates one document per affected reference of every analysed vulnerability.
func FromCycloneDXVex(bom *cdx.BOM, cbomID string) []dtos.VexDocument {
	docs := make([]dtos.VexDocument, 0)
	if bom == nil || bom.Vulnerabilities == nil {
		return docs
	}

	for _, v := range *bom.Vulnerabilities {
		status, ok := MapCDXToVexStatus(v.Analysis)
		if !ok || v.Affects == nil {
			continue
		}
		for _, affects := range *v.Affects {
			if affects.Ref == "" {
				continue
			}
			d := dtos.VexDocument{
				ID:              deriveVexDocumentID(bom.SerialNumber, v.BOMRef, v.ID, affects.Ref),
				AssetID:         AssetIDFromProductID(affects.Ref),
				CBOMID:          cbomID,
				Status:          status,
				ImpactStatement: v.Analysis.Detail,
				ActionStatement: v.Recommendation,
				CreatedAt:       parseCDXTime(v.Analysis.FirstIssued),
				UpdatedAt:       parseCDXTime(v.Analysis.LastUpdated),
			}
			if status == dtos.VexStatusNotAffected {
				d.Justification = MapCDXJustification(v.Analysis.Justification)
			}
			docs = append(docs, d)
		}
	}
	return docs
}

// BuildCycloneDXVex returns the inventory as CBOM with one analysed vulnerability per vex document.
func BuildCycloneDXVex(inv dtos.CBOMInventory, docs []dtos.VexDocument, meta BOMMetadata) *cdx.BOM {
	bom := InventoryToCycloneDX(inv, meta)

	assets := make(map[string]dtos.CryptographicAsset)
	for _, a := range inv.Assets() {
		assets[a.ID] = a
	}

	vulnerabilities := make([]cdx.Vulnerability, 0, len(docs))
	for _, d := range docs {
		a, ok := assets[d.AssetID]
		if !ok {
			continue
		}
		vuln := cdx.Vulnerability{
			BOMRef:         "vex:" + d.ID,
			ID:             string(a.VulnerabilityType),
			Description:    a.Description,
			Recommendation: d.ActionStatement,
			Affects: &[]cdx.Affects{{
				Ref: a.ID,
			}},
			Analysis: &cdx.VulnerabilityAnalysis{
				State:  vexStatusToImpactAnalysisState(d.Status),
				Detail: d.ImpactStatement,
			},
		}
		if !d.CreatedAt.IsZero() {
			vuln.Analysis.FirstIssued = d.CreatedAt.UTC().Format(time.RFC3339)
		}
		if !d.UpdatedAt.IsZero() {
			vuln.Analysis.LastUpdated = d.UpdatedAt.UTC().Format(time.RFC3339)
		}
		if d.Status == dtos.VexStatusNotAffected && d.Justification != nil {
			vuln.Analysis.Justification = vexJustificationToCDX(*d.Justification)
		}
		if d.Status == dtos.VexStatusFixed {
			vuln.Analysis.Response = &[]cdx.ImpactAnalysisResponse{cdx.IARUpdate}
		}
		vulnerabilities = append(vulnerabilities, vuln)
	}

	bom.Vulnerabilities = &vulnerabilities
	return bom
}
