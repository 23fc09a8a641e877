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

package normalize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	cdx "github.com/CycloneDX/cyclonedx-go"
	"github.com/google/uuid"
	"github.com/l3montree-dev/cryptoguard/dtos"
	"github.com/l3montree-dev/cryptoguard/utils"
	"github.com/openvex/go-vex/pkg/vex"
	"github.com/package-url/packageurl-go"
	"github.com/pkg/errors"
)

var vexDocumentNamespace = uuid.MustParse("c6a1f2d4-7e3b-4a95-8d10-5b9e2f7c4a68")

type VexFormat string

const (
	VexFormatNative    VexFormat = "native"
	VexFormatOpenVEX   VexFormat = "openvex"
	VexFormatCycloneDX VexFormat = "cyclonedx"
)

var ErrUnknownVexFormat = errors.New("unknown vex format")

const assetPurlQualifier = "asset_id"

// DetectVexFormat sniffs the json document. A top level array or an object with a
// documents key is the native format.
func DetectVexFormat(raw []byte) (VexFormat, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "", ErrUnknownVexFormat
	}
	if trimmed[0] == '[' {
		return VexFormatNative, nil
	}

	var shape struct {
		Context   any             `json:"@context"`
		BOMFormat string          `json:"bomFormat"`
		Documents json.RawMessage `json:"documents"`
	}
	if err := json.Unmarshal(trimmed, &shape); err != nil {
		return "", errors.Wrap(err, "could not decode vex document")
	}

	switch {
	case shape.BOMFormat == "CycloneDX":
		return VexFormatCycloneDX, nil
	case shape.Context != nil && strings.Contains(strings.ToLower(fmt.Sprint(shape.Context)), "openvex"):
		return VexFormatOpenVEX, nil
	case shape.Documents != nil:
		return VexFormatNative, nil
	}
	return "", ErrUnknownVexFormat
}

// ParseVexDocuments reads native, OpenVEX or CycloneDX VEX documents and maps them onto
// the assets of the given cbom.
func ParseVexDocuments(raw []byte, cbomID string) ([]dtos.VexDocument, error) {
	format, err := DetectVexFormat(raw)
	if err != nil {
		return nil, err
	}

	switch format {
	case VexFormatOpenVEX:
		var doc vex.VEX
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, errors.Wrap(err, "could not decode openvex document")
		}
		return FromOpenVeX(doc, cbomID), nil
	case VexFormatCycloneDX:
		var bom cdx.BOM
		if err := cdx.NewBOMDecoder(bytes.NewReader(raw), cdx.BOMFileFormatJSON).Decode(&bom); err != nil {
			return nil, errors.Wrap(err, "could not decode cyclonedx vex")
		}
		return FromCycloneDXVex(&bom, cbomID), nil
	}

	return parseNativeVex(raw, cbomID)
}

func parseNativeVex(raw []byte, cbomID string) ([]dtos.VexDocument, error) {
	var docs []dtos.VexDocument
	if bytes.HasPrefix(bytes.TrimSpace(raw), []byte("[")) {
		if err := json.Unmarshal(raw, &docs); err != nil {
			return nil, errors.Wrap(err, "could not decode vex documents")
		}
	} else {
		var collection dtos.VexCollection
		if err := json.Unmarshal(raw, &collection); err != nil {
			return nil, errors.Wrap(err, "could not decode vex collection")
		}
		docs = collection.Documents
	}
	for i := range docs {
		if docs[i].CBOMID == "" {
			docs[i].CBOMID = cbomID
		}
	}
	return docs, nil
}

func deriveVexDocumentID(parts ...string) string {
	return uuid.NewSHA1(vexDocumentNamespace, []byte(strings.Join(parts, "|"))).String()
}

// AssetIDFromProductID accepts a plain asset id, an urn:uuid or a purl carrying the asset_id qualifier.
func AssetIDFromProductID(id string) string {
	if strings.HasPrefix(id, "pkg:") {
		purl, err := packageurl.FromString(id)
		if err == nil {
			if assetID, ok := purl.Qualifiers.Map()[assetPurlQualifier]; ok {
				return assetID
			}
		}
		return id
	}
	return strings.TrimPrefix(id, "urn:uuid:")
}

// AssetPurl identifies an asset inside a component as a generic package url.
func AssetPurl(component string, asset dtos.CryptographicAsset) string {
	return packageurl.NewPackageURL(
		"generic",
		component,
		asset.Name,
		"",
		packageurl.QualifiersFromMap(map[string]string{assetPurlQualifier: asset.ID}),
		"",
	).ToString()
}

func FromOpenVeX(doc vex.VEX, cbomID string) []dtos.VexDocument {
	docs := make([]dtos.VexDocument, 0, len(doc.Statements))
	for i, st := range doc.Statements {
		created := firstTime(st.Timestamp, doc.Timestamp)
		updated := firstTime(st.LastUpdated, st.Timestamp, doc.Timestamp)

		for j, p := range st.Products {
			productID := p.ID
			if productID == "" {
				productID = p.Identifiers[vex.PURL]
			}
			if productID == "" {
				continue
			}

			id := st.ID
			if id == "" || len(st.Products) > 1 {
				id = deriveVexDocumentID(doc.ID, fmt.Sprint(i), fmt.Sprint(j), productID)
			}
			d := dtos.VexDocument{
				ID:              id,
				AssetID:         AssetIDFromProductID(productID),
				CBOMID:          cbomID,
				Status:          dtos.VexStatus(st.Status),
				ImpactStatement: st.ImpactStatement,
				ActionStatement: st.ActionStatement,
				Author:          doc.Author,
				CreatedAt:       created,
				UpdatedAt:       updated,
			}
			if st.Justification != "" {
				d.Justification = utils.Ptr(dtos.VexJustification(st.Justification))
			}
			docs = append(docs, d)
		}
	}
	return docs
}

func firstTime(ts ...*time.Time) time.Time {
	for _, t := range ts {
		if t != nil && !t.IsZero() {
			return *t
		}
	}
	return time.Time{}
}

func vexStatusToOpenVexStatus(status dtos.VexStatus) vex.Status {
	switch status {
	case dtos.VexStatusNotAffected:
		return vex.StatusNotAffected
	case dtos.VexStatusAffected:
		return vex.StatusAffected
	case dtos.VexStatusFixed:
		return vex.StatusFixed
	default:
		return vex.StatusUnderInvestigation
	}
}

// BuildOpenVeX writes one statement per vex document whose asset is part of the inventory.
func BuildOpenVeX(inv dtos.CBOMInventory, docs []dtos.VexDocument, author string) vex.VEX {
	doc := vex.New()

	doc.Author = author
	doc.Timestamp = utils.Ptr(time.Now())
	doc.Statements = make([]vex.Statement, 0)

	assets := make(map[string]dtos.CryptographicAsset)
	for _, a := range inv.Assets() {
		assets[a.ID] = a
	}

	for _, d := range docs {
		a, ok := assets[d.AssetID]
		if !ok {
			continue
		}
		purl := AssetPurl(a.ComponentID, a)
		statement := vex.Statement{
			ID:              d.ID,
			Status:          vexStatusToOpenVexStatus(d.Status),
			ImpactStatement: d.ImpactStatement,
			ActionStatement: d.ActionStatement,
			Vulnerability: vex.Vulnerability{
				Name:        vex.VulnerabilityID(a.VulnerabilityType),
				Description: a.Description,
			},
			Products: []vex.Product{{
				Component: vex.Component{
					ID: "urn:uuid:" + a.ID,
					Identifiers: map[vex.IdentifierType]string{
						vex.PURL: purl,
					},
				},
			}},
		}
		if d.Justification != nil && d.Status == dtos.VexStatusNotAffected {
			statement.Justification = vex.Justification(*d.Justification)
		}
		if !d.UpdatedAt.IsZero() {
			statement.Timestamp = utils.Ptr(d.UpdatedAt)
		}
		doc.Statements = append(doc.Statements, statement)
	}

	doc.GenerateCanonicalID() // nolint:errcheck
	return doc
}
