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
)

// BuildGraph emits one node per asset and one depends_on edge per declared dependency.
// Dependencies may point outside of the current scan. Those edges are kept and marked as dangling.
func BuildGraph(components []dtos.Component) dtos.AssetGraph {
	nodes := make([]dtos.GraphNode, 0)
	known := make(map[string]struct{})

	for _, c := range components {
		for _, a := range c.Assets {
			nodes = append(nodes, dtos.GraphNode{
				ID:          a.ID,
				Label:       a.Name,
				Type:        a.Type,
				RiskLevel:   a.RiskLevel,
				ComponentID: a.ComponentID,
				VexStatus:   a.VexStatus,
			})
			known[a.ID] = struct{}{}
		}
	}

	edges := make([]dtos.GraphEdge, 0)
	for _, c := range components {
		for _, a := range c.Assets {
			for _, dep := range a.Dependencies {
				_, ok := known[dep]
				edges = append(edges, dtos.GraphEdge{
					Source:   a.ID,
					Target:   dep,
					Label:    dtos.EdgeLabelDependsOn,
					Dangling: !ok,
				})
			}
		}
	}

	return dtos.AssetGraph{
		Nodes: nodes,
		Edges: edges,
	}
}

// BuildInventoryGraph is a shortcut for BuildGraph(inv.Components).
func BuildInventoryGraph(inv dtos.CBOMInventory) dtos.AssetGraph {
	return BuildGraph(inv.Components)
}
