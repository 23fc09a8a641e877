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
	"log/slog"
	"slices"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/l3montree-dev/cryptoguard/dtos"
	"github.com/l3montree-dev/cryptoguard/shared"
	"github.com/pkg/errors"
)

// inventoryRepository keeps the inventory snapshots in memory. Snapshots are immutable,
// the least recently used one is evicted once the cache is full or the ttl is reached.
type inventoryRepository struct {
	cache *expirable.LRU[string, dtos.CBOMInventory]
}

func NewInventoryRepository(config shared.ServerConfig) *inventoryRepository {
	return &inventoryRepository{
		cache: expirable.NewLRU[string, dtos.CBOMInventory](config.InventoryCacheSize, func(id string, _ dtos.CBOMInventory) {
			slog.Debug("evicted inventory", "inventoryID", id)
		}, config.InventoryTTL),
	}
}

func (r *inventoryRepository) Save(inv dtos.CBOMInventory) error {
	if inv.ID == "" {
		return errors.New("inventory without id")
	}
	r.cache.Add(inv.ID, inv)
	return nil
}

func (r *inventoryRepository) Read(id string) (dtos.CBOMInventory, error) {
	inv, ok := r.cache.Get(id)
	if !ok {
		return dtos.CBOMInventory{}, errors.Wrapf(shared.ErrNotFound, "inventory %s", id)
	}
	return inv, nil
}

func (r *inventoryRepository) List() ([]dtos.CBOMInventory, error) {
	inventories := r.cache.Values()
	slices.SortStableFunc(inventories, func(a, b dtos.CBOMInventory) int {
		return b.GeneratedAt.Compare(a.GeneratedAt)
	})
	return inventories, nil
}
