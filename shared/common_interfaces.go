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

package shared

import (
	"context"

	"github.com/l3montree-dev/cryptoguard/dtos"
	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("not found")

type InventoryRepository interface {
	Save(inv dtos.CBOMInventory) error
	Read(id string) (dtos.CBOMInventory, error)
	// List returns the newest inventory first
	List() ([]dtos.CBOMInventory, error)
}

type VexDocumentRepository interface {
	// Save merges the documents into the stored ones. Documents with the same id are replaced.
	Save(cbomID string, docs []dtos.VexDocument) error
	FindByCBOMID(cbomID string) ([]dtos.VexDocument, error)
}

type VexSource interface {
	FetchVexDocuments(ctx context.Context, cbomID string) (dtos.VexCollection, error)
}

type InventoryService interface {
	BuildInventory(raw []byte) (dtos.CBOMInventory, error)
	Read(id string) (dtos.CBOMInventory, error)
	List() ([]dtos.InventoryListItemDTO, error)
}

type VexService interface {
	FetchVexDocuments(ctx context.Context, cbomID string) ([]dtos.VexDocument, error)
	UploadVexDocuments(cbomID string, raw []byte) ([]dtos.VexDocument, error)
	EnhanceInventory(ctx context.Context, inv dtos.CBOMInventory) dtos.EnhancedInventory
}
