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
	"github.com/stretchr/testify/assert"
)

func asset(id, component string, risk dtos.RiskLevel) dtos.CryptographicAsset {
	return dtos.CryptographicAsset{
		ID:                id,
		Name:              id,
		Type:              dtos.AssetTypeOther,
		RiskLevel:         risk,
		VulnerabilityType: dtos.VulnerabilityUnknown,
		ComponentID:       component,
	}
}

func TestGroup(t *testing.T) {
	t.Run("should keep first seen component order and relative asset order", func(t *testing.T) {
		components := Group([]dtos.CryptographicAsset{
			asset("1", "api", dtos.RiskLevelHigh),
			asset("2", "auth", dtos.RiskLevelLow),
			asset("3", "api", dtos.RiskLevelLow),
			asset("4", "db", dtos.RiskLevelNone),
			asset("5", "auth", dtos.RiskLevelNone),
		})

		assert.Len(t, components, 3)
		assert.Equal(t, "api", components[0].Name)
		assert.Equal(t, "auth", components[1].Name)
		assert.Equal(t, "db", components[2].Name)

		assert.Equal(t, []string{"1", "3"}, ids(components[0].Assets))
		assert.Equal(t, []string{"2", "5"}, ids(components[1].Assets))
		assert.Equal(t, "2 cryptographic assets", components[0].Description)
		assert.Equal(t, "1 cryptographic asset", components[2].Description)
	})

	t.Run("should produce a partition of the input", func(t *testing.T) {
		input := []dtos.CryptographicAsset{
			asset("a", "x", dtos.RiskLevelHigh),
			asset("b", "y", dtos.RiskLevelHigh),
			asset("c", "x", dtos.RiskLevelHigh),
		}
		components := Group(input)

		seen := map[string]int{}
		for _, c := range components {
			assert.NotEmpty(t, c.Assets)
			for _, a := range c.Assets {
				seen[a.ID]++
				assert.Equal(t, c.Name, a.ComponentID)
			}
		}
		assert.Equal(t, map[string]int{"a": 1, "b": 1, "c": 1}, seen)
	})

	t.Run("should put assets without a component into unknown", func(t *testing.T) {
		components := Group([]dtos.CryptographicAsset{asset("a", "", dtos.RiskLevelHigh)})
		assert.Equal(t, dtos.UnknownComponent, components[0].Name)
		assert.Equal(t, dtos.UnknownComponent, components[0].Assets[0].ComponentID)
	})

	t.Run("should derive the same component id for the same key", func(t *testing.T) {
		a := Group([]dtos.CryptographicAsset{asset("a", "x", dtos.RiskLevelHigh)})
		b := Group([]dtos.CryptographicAsset{asset("b", "x", dtos.RiskLevelLow)})
		assert.Equal(t, a[0].ID, b[0].ID)
	})

	t.Run("should return no components for no assets", func(t *testing.T) {
		assert.Empty(t, Group(nil))
	})
}

func ids(assets []dtos.CryptographicAsset) []string {
	res := make([]string, len(assets))
	for i, a := range assets {
		res[i] = a.ID
	}
	return res
}
