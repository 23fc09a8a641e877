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

type VexStatus string

const (
	VexStatusNotAffected        VexStatus = "not_affected"
	VexStatusAffected           VexStatus = "affected"
	VexStatusFixed              VexStatus = "fixed"
	VexStatusUnderInvestigation VexStatus = "under_investigation"
)

// VexJustification uses the OpenVEX status justification codes.
type VexJustification string

const (
	JustificationComponentNotPresent                         VexJustification = "component_not_present"
	JustificationVulnerableCodeNotPresent                    VexJustification = "vulnerable_code_not_present"
	JustificationVulnerableCodeNotInExecutePath              VexJustification = "vulnerable_code_not_in_execute_path"
	JustificationVulnerableCodeCannotBeControlledByAdversary VexJustification = "vulnerable_code_cannot_be_controlled_by_adversary"
	JustificationInlineMitigationsAlreadyExist               VexJustification = "inline_mitigations_already_exist"
)

type VexDocument struct {
	ID                  string            `json:"id" validate:"required"`
	AssetID             string            `json:"asset_id" validate:"required"`
	CBOMID              string            `json:"cbom_id,omitempty"`
	Status              VexStatus         `json:"status" validate:"required,oneof=not_affected affected fixed under_investigation"`
	Justification       *VexJustification `json:"justification,omitempty" validate:"omitempty,oneof=component_not_present vulnerable_code_not_present vulnerable_code_not_in_execute_path vulnerable_code_cannot_be_controlled_by_adversary inline_mitigations_already_exist"`
	Impact              *RiskLevel        `json:"impact,omitempty" validate:"omitempty,oneof=Critical High Medium Low None Unknown"`
	ImpactStatement     string            `json:"impact_statement,omitempty"`
	ActionStatement     string            `json:"action_statement,omitempty"`
	RemediationDeadline *time.Time        `json:"remediation_deadline,omitempty"`
	Author              string            `json:"author,omitempty"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

type VexCollection struct {
	CBOMID      string        `json:"cbom_id"`
	Documents   []VexDocument `json:"documents" validate:"dive"`
	LastUpdated time.Time     `json:"last_updated"`
}
