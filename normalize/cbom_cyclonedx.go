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
	"io"
	"strconv"
	"strings"
	"time"

	cdx "github.com/CycloneDX/cyclonedx-go"
	"github.com/l3montree-dev/cryptoguard/dtos"
	"github.com/package-url/packageurl-go"
)

const propertyPrefix = "cryptoguard:"

const (
	PropertyRiskLevel             = propertyPrefix + "risk_level"
	PropertyVulnerabilityType     = propertyPrefix + "vulnerability_type"
	PropertyImplementationContext = propertyPrefix + "implementation_context"
	PropertyAssetType             = propertyPrefix + "asset_type"
	PropertyFilePath              = propertyPrefix + "file_path"
	PropertyLineNumber            = propertyPrefix + "line_number"
	PropertyVexStatus             = propertyPrefix + "vex_status"
	PropertyRecommendation        = propertyPrefix + "recommendation"
	PropertyProtocol              = propertyPrefix + "protocol"
	PropertyDestination           = propertyPrefix + "destination"
)

type BOMMetadata struct {
	// Name of the scanned application. Used for the root component.
	Name    string
	Version string
}

func (m BOMMetadata) rootName() string {
	if m.Name == "" {
		return "cryptoguard-scan"
	}
	return m.Name
}

// primitives as defined by the CycloneDX 1.6 cryptography schema
var primitiveByAssetType = map[dtos.AssetType]cdx.CryptoPrimitive{
	dtos.AssetTypeSymmetricKey: cdx.CryptoPrimitive("block-cipher"),
	dtos.AssetTypePublicKey:    cdx.CryptoPrimitive("pke"),
	dtos.AssetTypeHash:         cdx.CryptoPrimitive("hash"),
	dtos.AssetTypeMAC:          cdx.CryptoPrimitive("mac"),
	dtos.AssetTypeKeyExchange:  cdx.CryptoPrimitive("key-agree"),
	dtos.AssetTypePostQuantum:  cdx.CryptoPrimitive("signature"),
	dtos.AssetTypeRandom:       cdx.CryptoPrimitive("drbg"),
	dtos.AssetTypeOther:        cdx.CryptoPrimitive("other"),
}

func cryptoPrimitive(a dtos.CryptographicAsset) cdx.CryptoPrimitive {
	name := strings.ToLower(a.Name)
	switch {
	case a.Type == dtos.AssetTypeSymmetricKey && strings.Contains(name, "chacha"):
		return cdx.CryptoPrimitive("stream-cipher")
	case a.Type == dtos.AssetTypePublicKey && strings.Contains(name, "dsa"):
		return cdx.CryptoPrimitive("signature")
	case a.Type == dtos.AssetTypePostQuantum && strings.Contains(name, "kyber"):
		return cdx.CryptoPrimitive("kem")
	}
	if p, ok := primitiveByAssetType[a.Type]; ok {
		return p
	}
	return cdx.CryptoPrimitive("unknown")
}

func assetProperties(a dtos.CryptographicAsset) []cdx.Property {
	props := []cdx.Property{
		{Name: PropertyRiskLevel, Value: string(a.RiskLevel)},
		{Name: PropertyVulnerabilityType, Value: string(a.VulnerabilityType)},
		{Name: PropertyAssetType, Value: string(a.Type)},
	}
	if a.ImplementationContext != "" {
		props = append(props, cdx.Property{Name: PropertyImplementationContext, Value: string(a.ImplementationContext)})
	}
	if a.Location != nil {
		props = append(props, cdx.Property{Name: PropertyFilePath, Value: a.Location.FilePath})
		if a.Location.LineNumber != nil {
			props = append(props, cdx.Property{Name: PropertyLineNumber, Value: strconv.Itoa(*a.Location.LineNumber)})
		}
	}
	if a.Network != nil {
		if a.Network.Protocol != "" {
			props = append(props, cdx.Property{Name: PropertyProtocol, Value: a.Network.Protocol})
		}
		if a.Network.Destination != "" {
			props = append(props, cdx.Property{Name: PropertyDestination, Value: a.Network.Destination})
		}
	}
	if a.Recommendation != "" {
		props = append(props, cdx.Property{Name: PropertyRecommendation, Value: a.Recommendation})
	}
	if a.VexStatus != nil {
		props = append(props, cdx.Property{Name: PropertyVexStatus, Value: string(*a.VexStatus)})
	}
	return props
}

func componentBOMRef(c dtos.Component) string {
	return "component:" + c.ID
}

// InventoryToCycloneDX renders the inventory as CycloneDX 1.6 CBOM. Every inventory component
// becomes a library component with its assets nested as cryptographic-asset components.
func InventoryToCycloneDX(inv dtos.CBOMInventory, meta BOMMetadata) *cdx.BOM {
	rootRef := "root:" + inv.ID
	root := cdx.Component{
		BOMRef:     rootRef,
		Type:       cdx.ComponentTypeApplication,
		Name:       meta.rootName(),
		Version:    meta.Version,
		PackageURL: packageurl.NewPackageURL("generic", "cryptoguard", meta.rootName(), meta.Version, nil, "").ToString(),
	}

	known := make(map[string]struct{})
	for _, a := range inv.Assets() {
		known[a.ID] = struct{}{}
	}

	components := make([]cdx.Component, 0, len(inv.Components))
	rootDeps := make([]string, 0, len(inv.Components))
	dependencies := make([]cdx.Dependency, 0)

	for _, c := range inv.Components {
		ref := componentBOMRef(c)
		rootDeps = append(rootDeps, ref)

		assetRefs := make([]string, 0, len(c.Assets))
		nested := make([]cdx.Component, 0, len(c.Assets))
		for _, a := range c.Assets {
			assetRefs = append(assetRefs, a.ID)
			props := assetProperties(a)
			nested = append(nested, cdx.Component{
				BOMRef:      a.ID,
				Type:        cdx.ComponentTypeCryptographicAsset,
				Name:        a.Name,
				Description: a.Description,
				CryptoProperties: &cdx.CryptoProperties{
					AssetType: cdx.CryptoAssetTypeAlgorithm,
					AlgorithmProperties: &cdx.CryptoAlgorithmProperties{
						Primitive: cryptoPrimitive(a),
					},
				},
				Properties: &props,
			})

			// refs pointing outside of the inventory would make the bom invalid
			deps := make([]string, 0, len(a.Dependencies))
			for _, d := range a.Dependencies {
				if _, ok := known[d]; ok {
					deps = append(deps, d)
				}
			}
			dependencies = append(dependencies, cdx.Dependency{Ref: a.ID, Dependencies: &deps})
		}

		components = append(components, cdx.Component{
			BOMRef:      ref,
			Type:        cdx.ComponentTypeLibrary,
			Name:        c.Name,
			Description: c.Description,
			Components:  &nested,
		})
		dependencies = append(dependencies, cdx.Dependency{Ref: ref, Dependencies: &assetRefs})
	}

	dependencies = append([]cdx.Dependency{{Ref: rootRef, Dependencies: &rootDeps}}, dependencies...)

	bom := cdx.NewBOM()
	bom.SpecVersion = cdx.SpecVersion1_6
	bom.SerialNumber = "urn:uuid:" + inv.ID
	bom.Metadata = &cdx.Metadata{
		Timestamp: inv.GeneratedAt.UTC().Format(time.RFC3339),
		Component: &root,
	}
	bom.Components = &components
	bom.Dependencies = &dependencies
	return bom
}

func WriteCycloneDX(w io.Writer, bom *cdx.BOM) error {
	encoder := cdx.NewBOMEncoder(w, cdx.BOMFileFormatJSON)
	encoder.SetPretty(true)
	return encoder.Encode(bom)
}
