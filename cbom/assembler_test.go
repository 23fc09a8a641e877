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
	"errors"
	"strings"
	"testing"

	"github.com/l3montree-dev/cryptoguard/dtos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInventory(t *testing.T) {
	t.Run("should assemble the login example", func(t *testing.T) {
		inv, err := BuildInventory([]byte(`{
			"results": [
				{"algorithm": "RSA-1024", "risk": "Critical", "file_path": "auth/login.js", "line": 42},
				{"algorithm": "AES-256", "risk": "None", "file_path": "auth/login.js", "line": 50}
			]
		}`))
		require.NoError(t, err)

		assert.Equal(t, 2, inv.TotalAssets)
		require.Len(t, inv.Components, 1)
		assert.Equal(t, "auth", inv.Components[0].Name)
		assert.Len(t, inv.Components[0].Assets, 2)
		assert.Equal(t, dtos.RiskSummary{Critical: 1, None: 1}, inv.RiskSummary)
		assert.Equal(t, 2, inv.VulnerabilitySummary.Unknown)
		assert.Equal(t, 42, *inv.Components[0].Assets[0].Location.LineNumber)
		assert.NotEmpty(t, inv.ID)
		assert.False(t, inv.GeneratedAt.IsZero())
		require.NotNil(t, inv.Graph)
		assert.Len(t, inv.Graph.Nodes, 2)
	})

	t.Run("should keep the sum invariants", func(t *testing.T) {
		inv, err := BuildInventory([]byte(`{
			"scan_type": "file",
			"results": [
				{"algorithm": "MD5", "risk": "High", "vulnerability_type": "Grover's Algorithm", "file": "a/x.go"},
				{"algorithm": "Kyber", "vulnerability_type": "Quantum-Resistant", "file": "b/y.go"},
				{"protocol": "TLS 1.3", "algorithm": "X25519", "risk": "Medium"},
				"not-a-record",
				{}
			]
		}`))
		require.NoError(t, err)

		sum := 0
		for _, c := range inv.Components {
			sum += len(c.Assets)
		}
		assert.Equal(t, 5, inv.TotalAssets)
		assert.Equal(t, inv.TotalAssets, sum)
		assert.Equal(t, inv.TotalAssets, inv.RiskSummary.Total())
		assert.Equal(t, inv.TotalAssets, inv.VulnerabilitySummary.Total())
		assert.Equal(t, "file", inv.Source)

		for _, a := range inv.Assets() {
			assert.Contains(t, dtos.RiskLevels, a.RiskLevel)
			assert.NotEmpty(t, a.VulnerabilityType)
		}
	})

	t.Run("should accept a container with a non-string scan_type", func(t *testing.T) {
		for _, raw := range []string{
			`{"results": [{"algorithm": "RSA-2048"}], "scan_type": 5}`,
			`{"results": [{"algorithm": "RSA-2048"}], "scan_type": null}`,
		} {
			inv, err := BuildInventory([]byte(raw))
			require.NoError(t, err, raw)
			assert.Equal(t, 1, inv.TotalAssets)
			assert.Empty(t, inv.Source)
		}
	})

	t.Run("should accept an empty result set", func(t *testing.T) {
		inv, err := BuildInventory([]byte(`{"results": []}`))
		require.NoError(t, err)
		assert.Equal(t, 0, inv.TotalAssets)
		assert.NotNil(t, inv.Components)
	})

	t.Run("should reject malformed containers", func(t *testing.T) {
		for _, raw := range []string{
			`{}`,
			`{"results": {"algorithm": "AES"}}`,
			`{"results": "nope"}`,
			`[]`,
			`not json`,
			`{"results": []} trailing`,
		} {
			_, err := BuildInventory([]byte(raw))
			assert.Error(t, err, raw)
			assert.True(t, errors.Is(err, ErrMalformedScanResult), raw)
		}
	})

	t.Run("should accept the bare scanner output after wrapping it", func(t *testing.T) {
		v, err := DecodeContainer(strings.NewReader(`[{"algorithm": "SHA-1", "file": "lib/a.go", "line": 3}]`))
		require.NoError(t, err)

		inv, err := BuildInventoryFromContainer(WrapBareResults(v))
		require.NoError(t, err)
		assert.Equal(t, 1, inv.TotalAssets)
		assert.Equal(t, "lib", inv.Components[0].Name)
		assert.Equal(t, 3, *inv.Components[0].Assets[0].Location.LineNumber)
	})

	t.Run("should produce the same asset ids for the same results", func(t *testing.T) {
		raw := []byte(`{"results": [{"algorithm": "RSA", "file": "a/b.go"}]}`)
		first, err := BuildInventory(raw)
		require.NoError(t, err)
		second, err := BuildInventory(raw)
		require.NoError(t, err)
		assert.Equal(t, first.Components[0].Assets[0].ID, second.Components[0].Assets[0].ID)
		assert.NotEqual(t, first.ID, second.ID)
	})
}
