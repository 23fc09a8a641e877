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
	"context"
	"log/slog"
	"time"

	"github.com/l3montree-dev/cryptoguard/cbom"
	"github.com/l3montree-dev/cryptoguard/dtos"
	"github.com/l3montree-dev/cryptoguard/monitoring"
	"github.com/l3montree-dev/cryptoguard/normalize"
	"github.com/l3montree-dev/cryptoguard/shared"
	"github.com/l3montree-dev/cryptoguard/utils"
	"github.com/pkg/errors"
)

var ErrInvalidVexDocument = errors.New("invalid vex document")

type vexService struct {
	vexSource             shared.VexSource
	vexDocumentRepository shared.VexDocumentRepository
}

var _ shared.VexService = &vexService{}

func NewVexService(vexSource shared.VexSource, vexDocumentRepository shared.VexDocumentRepository) *vexService {
	return &vexService{
		vexSource:             vexSource,
		vexDocumentRepository: vexDocumentRepository,
	}
}

// FetchVexDocuments asks the configured source. Documents failing validation or
// belonging to another inventory are dropped.
func (s *vexService) FetchVexDocuments(ctx context.Context, cbomID string) ([]dtos.VexDocument, error) {
	start := time.Now()
	defer func() {
		monitoring.VexFetchDuration.Observe(time.Since(start).Seconds())
	}()

	collection, err := s.vexSource.FetchVexDocuments(ctx, cbomID)
	if err != nil {
		return nil, err
	}

	return utils.Filter(collection.Documents, func(d dtos.VexDocument) bool {
		if d.CBOMID != "" && d.CBOMID != cbomID {
			slog.Warn("skipping vex document of another inventory", "documentID", d.ID, "cbomID", d.CBOMID, "expected", cbomID)
			return false
		}
		if err := shared.V.Struct(d); err != nil {
			slog.Warn("skipping invalid vex document", "documentID", d.ID, "err", err)
			return false
		}
		return true
	}), nil
}

// UploadVexDocuments parses native, OpenVEX or CycloneDX VEX and stores the documents for the inventory.
// Either all documents are stored or none.
func (s *vexService) UploadVexDocuments(cbomID string, raw []byte) ([]dtos.VexDocument, error) {
	docs, err := normalize.ParseVexDocuments(raw, cbomID)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidVexDocument, err.Error())
	}

	now := time.Now().UTC()
	for i := range docs {
		docs[i].CBOMID = cbomID
		if docs[i].CreatedAt.IsZero() {
			docs[i].CreatedAt = now
		}
		if docs[i].UpdatedAt.IsZero() {
			docs[i].UpdatedAt = docs[i].CreatedAt
		}
		if err := shared.V.Struct(docs[i]); err != nil {
			return nil, errors.Wrapf(ErrInvalidVexDocument, "document %d: %s", i, err.Error())
		}
	}

	if err := s.vexDocumentRepository.Save(cbomID, docs); err != nil {
		monitoring.Alert("could not store vex documents", err, "cbomID", cbomID)
		return nil, err
	}
	monitoring.VexDocumentsStoredAmount.Add(float64(len(docs)))
	return docs, nil
}

// EnhanceInventory applies the fetched vex documents. A failing fetch never fails the
// request: the inventory is returned as it is and the reason is attached.
func (s *vexService) EnhanceInventory(ctx context.Context, inv dtos.CBOMInventory) dtos.EnhancedInventory {
	docs, err := s.FetchVexDocuments(ctx, inv.ID)
	if err != nil {
		monitoring.VexFetchFailedAmount.Inc()
		slog.Warn("could not fetch vex documents, serving inventory without vex data", "inventoryID", inv.ID, "err", err)
		return dtos.EnhancedInventory{
			Inventory:  inv,
			VexApplied: false,
			VexError:   err.Error(),
		}
	}

	return dtos.EnhancedInventory{
		Inventory:  cbom.Enhance(inv, docs),
		VexApplied: true,
	}
}
