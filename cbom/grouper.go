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

	"github.com/google/uuid"
	"github.com/l3montree-dev/cryptoguard/dtos"
)

var componentNamespace = uuid.MustParse("3b9e6a52-0f4d-4c8a-a1e7-6d2c5f8b9a04")

// Group partitions the assets by their component id. Components are returned in the
// order their key was first seen, assets keep their relative order.
func Group(assets []dtos.CryptographicAsset) []dtos.Component {
	keys := make([]string, 0)
	byKey := make(map[string][]dtos.CryptographicAsset)

	for _, a := range assets {
		key := a.ComponentID
		if key == "" {
			key = dtos.UnknownComponent
			a.ComponentID = key
		}
		if _, ok := byKey[key]; !ok {
			keys = append(keys, key)
		}
		byKey[key] = append(byKey[key], a)
	}

	components := make([]dtos.Component, 0, len(keys))
	for _, key := range keys {
		components = append(components, dtos.Component{
			ID:          NewComponentID(key),
			Name:        key,
			Description: describeComponent(len(byKey[key])),
			Assets:      byKey[key],
		})
	}
	return components
}

func NewComponentID(key string) string {
	return uuid.NewSHA1(componentNamespace, []byte(key)).String()
}

func describeComponent(n int) string {
	if n == 1 {
		return "1 cryptographic asset"
	}
	return fmt.Sprintf("%d cryptographic assets", n)
}
