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
	"bytes"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/cryptoguard/dtos"
	"github.com/pkg/errors"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

var ErrMalformedScanResult = errors.New("malformed scan result container")

const containerSchemaURL = "https://cryptoguard.dev/schemas/scan-result-container.json"

// only the shape of the container is checked here. the findings themselves are
// loosely typed and defaulted by Classify.
const containerSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["results"],
	"properties": {
		"results": { "type": "array" }
	}
}`

var scanResultSchema = mustCompileContainerSchema()

func mustCompileContainerSchema() *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(containerSchema))
	if err != nil {
		panic(err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(containerSchemaURL, doc); err != nil {
		panic(err)
	}
	return c.MustCompile(containerSchemaURL)
}

// Assemble composes the grouped components into a fresh inventory snapshot.
func Assemble(components []dtos.Component) dtos.CBOMInventory {
	if components == nil {
		components = []dtos.Component{}
	}
	assets := make([]dtos.CryptographicAsset, 0)
	for _, c := range components {
		assets = append(assets, c.Assets...)
	}
	risk, vuln := Aggregate(assets)

	return dtos.CBOMInventory{
		ID:                   uuid.New().String(),
		GeneratedAt:          time.Now().UTC(),
		Components:           components,
		TotalAssets:          len(assets),
		RiskSummary:          risk,
		VulnerabilitySummary: vuln,
	}
}

// DecodeContainer reads a raw scan result container. Numbers are kept as json.Number.
func DecodeContainer(r io.Reader) (any, error) {
	v, err := jsonschema.UnmarshalJSON(r)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedScanResult, err.Error())
	}
	return v, nil
}

// WrapBareResults turns the plain finding array the scanner writes into a container.
// Any other value is returned unchanged.
func WrapBareResults(v any) any {
	if arr, ok := v.([]any); ok {
		return map[string]any{"results": arr}
	}
	return v
}

// BuildInventory runs the whole pipeline on a JSON encoded scan result container.
func BuildInventory(raw []byte) (dtos.CBOMInventory, error) {
	container, err := DecodeContainer(bytes.NewReader(raw))
	if err != nil {
		return dtos.CBOMInventory{}, err
	}
	return BuildInventoryFromContainer(container)
}

// BuildInventoryFromContainer validates the container and runs the pipeline.
// The only error returned wraps ErrMalformedScanResult.
func BuildInventoryFromContainer(container any) (dtos.CBOMInventory, error) {
	if err := scanResultSchema.Validate(container); err != nil {
		return dtos.CBOMInventory{}, errors.Wrap(ErrMalformedScanResult, err.Error())
	}

	m := container.(map[string]any)
	results := m["results"].([]any)

	findings := make([]dtos.RawFinding, len(results))
	for i, r := range results {
		if f, ok := r.(map[string]any); ok {
			findings[i] = f
		} else {
			// not a record, every field falls back to its default
			findings[i] = dtos.RawFinding{}
		}
	}

	inv := Assemble(Group(ClassifyAll(findings)))
	if scanType, ok := m["scan_type"].(string); ok {
		inv.Source = scanType
	}
	graph := BuildGraph(inv.Components)
	inv.Graph = &graph
	return inv, nil
}
