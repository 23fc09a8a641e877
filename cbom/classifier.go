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
	"strings"

	"github.com/google/uuid"
	"github.com/l3montree-dev/cryptoguard/dtos"
)

var assetNamespace = uuid.MustParse("8f0d3c1e-5b7a-4e2f-9c61-2a4d7e9b0c13")

type typeRule struct {
	matches func(name, method string) bool
	result  dtos.AssetType
}

// evaluated top to bottom, first match wins.
// ECDH must be caught by the key exchange rule, so nothing before it may contain "dh".
var typeRules = []typeRule{
	{matches: nameContains("aes", "3des", "blowfish", "chacha"), result: dtos.AssetTypeSymmetricKey},
	{matches: nameContains("rsa", "ecc", "dsa"), result: dtos.AssetTypePublicKey},
	{matches: nameContains("sha", "md5", "blake"), result: dtos.AssetTypeHash},
	{matches: func(name, method string) bool {
		return containsAny(name, "dh", "ecdh") || strings.Contains(method, "key exchange")
	}, result: dtos.AssetTypeKeyExchange},
	{matches: nameContains("hmac", "cmac", "poly1305"), result: dtos.AssetTypeMAC},
	{matches: nameContains("dilithium", "kyber", "sphincs"), result: dtos.AssetTypePostQuantum},
	{matches: nameContains("random", "prng", "csprng"), result: dtos.AssetTypeRandom},
}

type contextRule struct {
	tokens []string
	result dtos.ImplementationContext
}

var contextRules = []contextRule{
	{tokens: []string{"auth", "login", "password", "passwd", "credential"}, result: dtos.ContextAuthentication},
	{tokens: []string{"encrypt", "decrypt", "cipher"}, result: dtos.ContextDataEncryption},
	{tokens: []string{"sign", "verify"}, result: dtos.ContextSignatures},
	{tokens: []string{"tls", "ssl", "https", "network", "socket", "protocol"}, result: dtos.ContextCommunications},
	{tokens: []string{"key exchange", "kem", "keygen", "kyber", "dh"}, result: dtos.ContextKeyManagement},
}

func nameContains(tokens ...string) func(name, method string) bool {
	return func(name, _ string) bool {
		return containsAny(name, tokens...)
	}
}

func containsAny(s string, tokens ...string) bool {
	for _, t := range tokens {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

// ClassifyAssetType resolves the algorithm family of a name. method may be empty.
func ClassifyAssetType(name, method string) dtos.AssetType {
	name = strings.ToLower(name)
	method = strings.ToLower(method)
	for _, r := range typeRules {
		if r.matches(name, method) {
			return r.result
		}
	}
	return dtos.AssetTypeOther
}

func ClassifyContext(parts ...string) dtos.ImplementationContext {
	haystack := strings.ToLower(strings.Join(parts, " "))
	for _, r := range contextRules {
		if containsAny(haystack, r.tokens...) {
			return r.result
		}
	}
	return dtos.ContextOther
}

// NormalizeRiskLevel maps a free-form risk label onto the closed risk scale.
func NormalizeRiskLevel(s string) dtos.RiskLevel {
	for _, level := range dtos.RiskLevels {
		if strings.EqualFold(strings.TrimSpace(s), string(level)) {
			return level
		}
	}
	return dtos.RiskLevelUnknown
}

func NormalizeVulnerabilityType(s string) dtos.VulnerabilityType {
	trimmed := strings.TrimSpace(s)
	lower := strings.ToLower(trimmed)
	switch {
	case lower == "":
		return dtos.VulnerabilityUnknown
	case strings.Contains(lower, "shor"):
		return dtos.VulnerabilityShor
	case strings.Contains(lower, "grover"):
		return dtos.VulnerabilityGrover
	case strings.Contains(lower, "quantum-resistant"), strings.Contains(lower, "quantum resistant"), strings.Contains(lower, "quantum_resistant"):
		return dtos.VulnerabilityQuantumResistant
	case lower == "none":
		return dtos.VulnerabilityNone
	case lower == "unknown":
		return dtos.VulnerabilityUnknown
	}
	return dtos.VulnerabilityType(trimmed)
}

// ComponentKey returns the first path segment, ignoring leading separators and dot segments.
func ComponentKey(filePath string) string {
	segments := strings.FieldsFunc(filePath, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	for _, s := range segments {
		if s == "." || s == ".." {
			continue
		}
		return s
	}
	return dtos.UnknownComponent
}

// Classify turns one raw finding into a well-formed asset. It never fails.
// index is the position of the finding in its result set and keeps asset ids unique
// while staying stable when the same results are processed again.
func Classify(index int, finding dtos.RawFinding) dtos.CryptographicAsset {
	filePath := filePathField.str(finding)
	name := nameField.str(finding)
	method := methodField.str(finding)
	line := lineField.int(finding)
	network := networkObservation(finding)

	asset := dtos.CryptographicAsset{
		ID:                NewAssetID(index, name, filePath, line),
		Name:              name,
		Type:              ClassifyAssetType(name, method),
		RiskLevel:         NormalizeRiskLevel(riskField.str(finding)),
		VulnerabilityType: NormalizeVulnerabilityType(vulnerabilityField.str(finding)),
		ComponentID:       ComponentKey(filePath),
		Dependencies:      dependenciesField.strs(finding),
		Method:            method,
		Description:       descriptionField.str(finding),
		Recommendation:    recommendationField.str(finding),
		Network:           network,
	}

	protocol := ""
	if network != nil {
		protocol = network.Protocol
	}
	asset.ImplementationContext = ClassifyContext(name, method, filePath, protocol)

	if filePath != "" {
		asset.Location = &dtos.AssetLocation{FilePath: filePath, LineNumber: line}
	}

	return asset
}

// ClassifyAll classifies every finding, keeping input order.
func ClassifyAll(findings []dtos.RawFinding) []dtos.CryptographicAsset {
	assets := make([]dtos.CryptographicAsset, len(findings))
	for i, f := range findings {
		assets[i] = Classify(i, f)
	}
	return assets
}

func NewAssetID(index int, name, filePath string, line *int) string {
	l := -1
	if line != nil {
		l = *line
	}
	return uuid.NewSHA1(assetNamespace, fmt.Appendf(nil, "%d|%s|%s|%d", index, name, filePath, l)).String()
}

func networkObservation(finding dtos.RawFinding) *dtos.NetworkObservation {
	n := dtos.NetworkObservation{
		Protocol:    protocolField.str(finding),
		Source:      sourceField.str(finding),
		Destination: destinationField.str(finding),
		Port:        portField.int(finding),
		SessionID:   sessionField.str(finding),
		CipherSuite: cipherSuiteField.str(finding),
	}
	if n == (dtos.NetworkObservation{}) {
		return nil
	}
	return &n
}
