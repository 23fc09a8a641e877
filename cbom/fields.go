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
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/l3montree-dev/cryptoguard/dtos"
)

// field describes where a value of a raw finding may be found and what it defaults to.
// keys are tried in order, the first non-empty one wins.
type field struct {
	keys []string
	def  string
}

// the default table for raw findings
var (
	filePathField       = field{keys: []string{"file_path", "file"}}
	nameField           = field{keys: []string{"algorithm", "algorithm_name"}, def: "Unknown"}
	methodField         = field{keys: []string{"method"}}
	vulnerabilityField  = field{keys: []string{"vulnerability_type", "vulnerability", "type"}, def: string(dtos.VulnerabilityUnknown)}
	riskField           = field{keys: []string{"risk_level", "risk"}, def: string(dtos.RiskLevelUnknown)}
	lineField           = field{keys: []string{"line_number", "line"}}
	descriptionField    = field{keys: []string{"description"}}
	recommendationField = field{keys: []string{"recommendation"}}
	dependenciesField   = field{keys: []string{"dependencies"}}

	protocolField    = field{keys: []string{"protocol"}}
	sourceField      = field{keys: []string{"source"}}
	destinationField = field{keys: []string{"destination"}}
	portField        = field{keys: []string{"port"}}
	sessionField     = field{keys: []string{"session_id"}}
	cipherSuiteField = field{keys: []string{"cipher_suite"}}
)

func (f field) lookup(finding dtos.RawFinding) (any, bool) {
	for _, k := range f.keys {
		v, ok := finding[k]
		if !ok || v == nil {
			continue
		}
		if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
			continue
		}
		return v, true
	}
	return nil, false
}

func (f field) str(finding dtos.RawFinding) string {
	v, ok := f.lookup(finding)
	if !ok {
		return f.def
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

func (f field) int(finding dtos.RawFinding) *int {
	v, ok := f.lookup(finding)
	if !ok {
		return nil
	}
	var n int
	switch t := v.(type) {
	case int:
		n = t
	case int64:
		n = int(t)
	case float64:
		n = int(t)
	case json.Number:
		i, err := t.Int64()
		if err != nil {
			return nil
		}
		n = int(i)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return nil
		}
		n = i
	default:
		return nil
	}
	return &n
}

func (f field) strs(finding dtos.RawFinding) []string {
	v, ok := f.lookup(finding)
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case []string:
		return t
	case []any:
		res := make([]string, 0, len(t))
		for _, el := range t {
			if s, ok := el.(string); ok && s != "" {
				res = append(res, s)
			}
		}
		if len(res) == 0 {
			return nil
		}
		return res
	case string:
		return []string{t}
	}
	return nil
}
