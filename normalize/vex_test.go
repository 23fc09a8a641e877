package normalize

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	cdx "github.com/CycloneDX/cyclonedx-go"
	"github.com/l3montree-dev/cryptoguard/dtos"
	"github.com/l3montree-dev/cryptoguard/utils"
	"github.com/openvex/go-vex/pkg/vex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectVexFormat(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		expected VexFormat
	}{
		{"native array", `[{"id":"1"}]`, VexFormatNative},
		{"native collection", `{"cbom_id":"x","documents":[]}`, VexFormatNative},
		{"openvex", `{"@context":"https://openvex.dev/ns/v0.2.0","statements":[]}`, VexFormatOpenVEX},
		{"cyclonedx", `{"bomFormat":"CycloneDX","specVersion":"1.6"}`, VexFormatCycloneDX},
	}
	for _, c := range cases {
		t.Run("should detect "+c.name, func(t *testing.T) {
			format, err := DetectVexFormat([]byte(c.raw))
			require.NoError(t, err)
			assert.Equal(t, c.expected, format)
		})
	}

	t.Run("should reject empty input", func(t *testing.T) {
		_, err := DetectVexFormat([]byte("  "))
		assert.ErrorIs(t, err, ErrUnknownVexFormat)
	})

	t.Run("should reject objects without a known marker", func(t *testing.T) {
		_, err := DetectVexFormat([]byte(`{"foo":"bar"}`))
		assert.ErrorIs(t, err, ErrUnknownVexFormat)
	})

	t.Run("should fail on invalid json", func(t *testing.T) {
		_, err := DetectVexFormat([]byte(`{"foo"`))
		assert.Error(t, err)
	})
}

func TestParseVexDocuments(t *testing.T) {
	t.Run("should fill in the cbom id of native documents", func(t *testing.T) {
		docs, err := ParseVexDocuments([]byte(`[
			{"id":"d1","asset_id":"a1","status":"fixed"},
			{"id":"d2","asset_id":"a2","cbom_id":"other","status":"affected"}
		]`), "cbom-1")
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, "cbom-1", docs[0].CBOMID)
		assert.Equal(t, "other", docs[1].CBOMID)
		assert.Equal(t, dtos.VexStatusFixed, docs[0].Status)
	})

	t.Run("should read a native collection", func(t *testing.T) {
		docs, err := ParseVexDocuments([]byte(`{"cbom_id":"cbom-1","documents":[{"id":"d1","asset_id":"a1","status":"not_affected","justification":"component_not_present"}]}`), "cbom-1")
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, dtos.JustificationComponentNotPresent, *docs[0].Justification)
	})

	t.Run("should map openvex statements onto assets", func(t *testing.T) {
		ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		doc := vex.New()
		doc.ID = "https://openvex.dev/docs/test"
		doc.Author = "security@example.com"
		doc.Timestamp = &ts
		doc.Statements = []vex.Statement{{
			ID:            "stmt-1",
			Status:        vex.StatusNotAffected,
			Justification: vex.Justification("vulnerable_code_not_in_execute_path"),
			Products: []vex.Product{{
				Component: vex.Component{ID: "urn:uuid:a1"},
			}},
		}, {
			Status: vex.StatusAffected,
			Products: []vex.Product{{
				Component: vex.Component{ID: "a2"},
			}, {
				Component: vex.Component{ID: "a3"},
			}},
		}}
		raw, err := json.Marshal(doc)
		require.NoError(t, err)

		docs, err := ParseVexDocuments(raw, "cbom-1")
		require.NoError(t, err)
		require.Len(t, docs, 3)

		assert.Equal(t, "stmt-1", docs[0].ID)
		assert.Equal(t, "a1", docs[0].AssetID)
		assert.Equal(t, dtos.VexStatusNotAffected, docs[0].Status)
		assert.Equal(t, dtos.JustificationVulnerableCodeNotInExecutePath, *docs[0].Justification)
		assert.Equal(t, "security@example.com", docs[0].Author)
		assert.True(t, ts.Equal(docs[0].CreatedAt))

		assert.Equal(t, "a2", docs[1].AssetID)
		assert.Equal(t, "a3", docs[2].AssetID)
		assert.NotEqual(t, docs[1].ID, docs[2].ID)
	})

	t.Run("should map cyclonedx analyses onto assets", func(t *testing.T) {
		bom := cdx.NewBOM()
		bom.SerialNumber = "urn:uuid:bom"
		bom.Vulnerabilities = &[]cdx.Vulnerability{{
			BOMRef: "v1",
			ID:     "Shor's Algorithm",
			Affects: &[]cdx.Affects{
				{Ref: "a1"},
				{Ref: ""},
			},
			Analysis: &cdx.VulnerabilityAnalysis{
				State:         cdx.IASNotAffected,
				Justification: cdx.ImpactAnalysisJustification("code_not_reachable"),
				Detail:        "only used in tests",
			},
		}, {
			BOMRef:   "v2",
			Affects:  &[]cdx.Affects{{Ref: "a2"}},
			Analysis: &cdx.VulnerabilityAnalysis{},
		}}
		var buf bytes.Buffer
		require.NoError(t, WriteCycloneDX(&buf, bom))

		docs, err := ParseVexDocuments(buf.Bytes(), "cbom-1")
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "a1", docs[0].AssetID)
		assert.Equal(t, dtos.VexStatusNotAffected, docs[0].Status)
		assert.Equal(t, dtos.JustificationVulnerableCodeNotInExecutePath, *docs[0].Justification)
		assert.Equal(t, "only used in tests", docs[0].ImpactStatement)
	})
}

func TestMapCDXToVexStatus(t *testing.T) {
	t.Run("should fall back to the response", func(t *testing.T) {
		status, ok := MapCDXToVexStatus(&cdx.VulnerabilityAnalysis{Response: &[]cdx.ImpactAnalysisResponse{cdx.IARWillNotFix}})
		assert.True(t, ok)
		assert.Equal(t, dtos.VexStatusAffected, status)
	})

	t.Run("should ignore nil analyses", func(t *testing.T) {
		_, ok := MapCDXToVexStatus(nil)
		assert.False(t, ok)
	})

	t.Run("should treat false positives as not affected", func(t *testing.T) {
		status, ok := MapCDXToVexStatus(&cdx.VulnerabilityAnalysis{State: cdx.IASFalsePositive})
		assert.True(t, ok)
		assert.Equal(t, dtos.VexStatusNotAffected, status)
	})
}

func TestAssetIDFromProductID(t *testing.T) {
	asset := dtos.CryptographicAsset{ID: "0b6f5a3e-1111-4d7a-9a39-6d2a6b3f9e10", Name: "RSA-1024"}

	t.Run("should read the asset id qualifier of a purl", func(t *testing.T) {
		assert.Equal(t, asset.ID, AssetIDFromProductID(AssetPurl("auth", asset)))
	})

	t.Run("should strip the urn prefix", func(t *testing.T) {
		assert.Equal(t, asset.ID, AssetIDFromProductID("urn:uuid:"+asset.ID))
	})

	t.Run("should keep plain ids", func(t *testing.T) {
		assert.Equal(t, "a1", AssetIDFromProductID("a1"))
	})
}

func TestBuildOpenVeX(t *testing.T) {
	inv := testInventory(t)
	rsa := inv.Components[0].Assets[0]
	aes := inv.Components[0].Assets[1]

	docs := []dtos.VexDocument{
		{ID: "d1", AssetID: rsa.ID, Status: dtos.VexStatusNotAffected, Justification: utils.Ptr(dtos.JustificationInlineMitigationsAlreadyExist)},
		{ID: "d2", AssetID: aes.ID, Status: dtos.VexStatusAffected, Justification: utils.Ptr(dtos.JustificationComponentNotPresent)},
		{ID: "d3", AssetID: "not-in-inventory", Status: dtos.VexStatusFixed},
	}

	doc := BuildOpenVeX(inv, docs, "cryptoguard")

	t.Run("should write one statement per known asset", func(t *testing.T) {
		require.Len(t, doc.Statements, 2)
		assert.Equal(t, "cryptoguard", doc.Author)
		assert.Equal(t, vex.StatusNotAffected, doc.Statements[0].Status)
		assert.Equal(t, "urn:uuid:"+rsa.ID, doc.Statements[0].Products[0].ID)
	})

	t.Run("should only set a justification for not affected statements", func(t *testing.T) {
		assert.Equal(t, vex.Justification("inline_mitigations_already_exist"), doc.Statements[0].Justification)
		assert.Empty(t, doc.Statements[1].Justification)
	})

	t.Run("should survive a round trip", func(t *testing.T) {
		raw, err := json.Marshal(doc)
		require.NoError(t, err)

		parsed, err := ParseVexDocuments(raw, inv.ID)
		require.NoError(t, err)
		require.Len(t, parsed, 2)
		assert.Equal(t, rsa.ID, parsed[0].AssetID)
		assert.Equal(t, dtos.VexStatusNotAffected, parsed[0].Status)
		assert.Equal(t, aes.ID, parsed[1].AssetID)
	})
}

func TestBuildCycloneDXVex(t *testing.T) {
	inv := testInventory(t)
	rsa := inv.Components[0].Assets[0]

	bom := BuildCycloneDXVex(inv, []dtos.VexDocument{
		{ID: "d1", AssetID: rsa.ID, Status: dtos.VexStatusFixed},
		{ID: "d2", AssetID: "unknown", Status: dtos.VexStatusAffected},
	}, BOMMetadata{})

	require.Len(t, *bom.Vulnerabilities, 1)
	v := (*bom.Vulnerabilities)[0]
	assert.Equal(t, "vex:d1", v.BOMRef)
	assert.Equal(t, cdx.IASResolved, v.Analysis.State)
	assert.Equal(t, []cdx.ImpactAnalysisResponse{cdx.IARUpdate}, *v.Analysis.Response)

	back := FromCycloneDXVex(bom, inv.ID)
	require.Len(t, back, 1)
	assert.Equal(t, rsa.ID, back[0].AssetID)
	assert.Equal(t, dtos.VexStatusFixed, back[0].Status)
}
