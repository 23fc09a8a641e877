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

package services

import (
	"log/slog"

	"github.com/l3montree-dev/cryptoguard/cbom"
	"github.com/l3montree-dev/cryptoguard/dtos"
	"github.com/l3montree-dev/cryptoguard/monitoring"
	"github.com/l3montree-dev/cryptoguard/shared"
	"github.com/l3montree-dev/cryptoguard/transformer"
	"github.com/l3montree-dev/cryptoguard/utils"
	"github.com/pkg/errors"
)

type inventoryService struct {
	inventoryRepository shared.InventoryRepository
}

var _ shared.InventoryService = &inventoryService{}

func NewInventoryService(inventoryRepository shared.InventoryRepository) *inventoryService {
	return &inventoryService{
		inventoryRepository: inventoryRepository,
	}
}

// BuildInventory runs the cbom pipeline on a scan result container and stores the snapshot.
func (s *inventoryService) BuildInventory(raw []byte) (dtos.CBOMInventory, error) {
	inv, err := cbom.BuildInventory(raw)
	if err != nil {
		monitoring.InventoryBuildFailedAmount.Inc()
		return dtos.CBOMInventory{}, err
	}

	recordInventoryMetrics(inv)

	if err := s.inventoryRepository.Save(inv); err != nil {
		return dtos.CBOMInventory{}, errors.Wrap(err, "could not save inventory")
	}
	slog.Info("built inventory", "inventoryID", inv.ID, "components", len(inv.Components), "assets", inv.TotalAssets)
	return inv, nil
}

func recordInventoryMetrics(inv dtos.CBOMInventory) {
	monitoring.InventoriesBuiltAmount.WithLabelValues(monitoring.ScanTypeLabel(inv.Source)).Inc()
	for _, level := range dtos.RiskLevels {
		if n := inv.RiskSummary.Count(level); n > 0 {
			monitoring.AssetsClassifiedAmount.WithLabelValues(string(level)).Add(float64(n))
		}
	}
}

func (s *inventoryService) Read(id string) (dtos.CBOMInventory, error) {
	return s.inventoryRepository.Read(id)
}

func (s *inventoryService) List() ([]dtos.InventoryListItemDTO, error) {
	inventories, err := s.inventoryRepository.List()
	if err != nil {
		return nil, err
	}
	return utils.Map(inventories, transformer.InventoryToListItem), nil
}
