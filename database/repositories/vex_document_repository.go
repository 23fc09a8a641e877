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

package repositories

import (
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/l3montree-dev/cryptoguard/dtos"
	"github.com/l3montree-dev/cryptoguard/shared"
)

type vexDocumentRepository struct {
	// guards the read-merge-write in Save
	mu    sync.Mutex
	cache *expirable.LRU[string, []dtos.VexDocument]
}

func NewVexDocumentRepository(config shared.ServerConfig) *vexDocumentRepository {
	return &vexDocumentRepository{
		cache: expirable.NewLRU[string, []dtos.VexDocument](config.InventoryCacheSize, nil, config.InventoryTTL),
	}
}

func (r *vexDocumentRepository) Save(cbomID string, docs []dtos.VexDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, _ := r.cache.Get(cbomID)
	merged := make([]dtos.VexDocument, len(existing), len(existing)+len(docs))
	copy(merged, existing)

	positions := make(map[string]int, len(merged))
	for i, d := range merged {
		positions[d.ID] = i
	}
	for _, d := range docs {
		d.CBOMID = cbomID
		if i, ok := positions[d.ID]; ok {
			merged[i] = d
			continue
		}
		positions[d.ID] = len(merged)
		merged = append(merged, d)
	}

	r.cache.Add(cbomID, merged)
	return nil
}

// FindByCBOMID returns an empty slice if nothing was stored for the inventory.
func (r *vexDocumentRepository) FindByCBOMID(cbomID string) ([]dtos.VexDocument, error) {
	docs, ok := r.cache.Get(cbomID)
	if !ok {
		return []dtos.VexDocument{}, nil
	}
	result := make([]dtos.VexDocument, len(docs))
	copy(result, docs)
	return result, nil
}
