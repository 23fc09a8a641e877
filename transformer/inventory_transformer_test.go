package transformer_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/l3montree-dev/cryptoguard/cbom"
	"github.com/l3montree-dev/cryptoguard/dtos"
	"github.com/l3montree-dev/cryptoguard/transformer"
	"github.com/l3montree-dev/cryptoguard/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildInventory(t *testing.T) dtos.CBOMInventory {
	inv, err := cbom.BuildInventory([]byte(`{
		"results": [
			{"algorithm": "RSA-1024", "risk": "Critical", "file_path": "auth/login.js", "line": 42,
			 "vulnerability_type": "Shor's Algorithm",
			 "description": "RSA, used for \"login\" tokens\nis weak", "recommendation": "Use ML-KEM"},
			{"algorithm": "AES-256", "risk": "None", "file_path": "auth/login.js", "line": 50},
			{"algorithm": "SHA-1", "risk": "Medium", "file_path": "lib/hash.go"},
			{"protocol": "TLS 1.2", "algorithm": "ECDHE-RSA", "risk": "High"}
		]
	}`))
	require.NoError(t, err)
	return inv
}

func TestInventoryToCSV(t *testing.T) {
	t.Run("should write the header and one row per asset", func(t *testing.T) {
		inv := buildInventory(t)
		var buf bytes.Buffer
		require.NoError(t, transformer.InventoryToCSV(&buf, inv))

		ids := make(map[string]string)
		for _, a := range inv.Assets() {
			ids[a.Name] = a.ID
		}

		lines := strings.SplitN(buf.String(), "\n", 2)
		assert.Equal(t, "Component,Asset,Type,File Path,Line Number,Vulnerability,Risk,Context,Description,Recommendation,ID", lines[0])
		assert.Contains(t, buf.String(), `"RSA, used for ""login"" tokens`+"\n"+`is weak"`)
		assert.Contains(t, buf.String(), "auth,AES-256,SymmetricKey,auth/login.js,50,Unknown,None,Authentication,,,"+ids["AES-256"]+"\n")
		assert.Contains(t, buf.String(), "Unknown,ECDHE-RSA,PublicKey,,,Unknown,High,Communications,,,"+ids["ECDHE-RSA"]+"\n")
	})

	t.Run("should only write the header for an empty inventory", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, transformer.InventoryToCSV(&buf, cbom.Assemble(nil)))
		assert.Equal(t, strings.Join(transformer.CSVHeader, ",")+"\n", buf.String())
	})
}

func TestCSVRoundTrip(t *testing.T) {
	inv := buildInventory(t)

	var buf bytes.Buffer
	require.NoError(t, transformer.InventoryToCSV(&buf, inv))

	assets, err := transformer.ParseCSV(&buf)
	require.NoError(t, err)

	original := inv.Assets()
	require.Len(t, assets, inv.TotalAssets)
	for i := range original {
		assert.Equal(t, original[i].RiskLevel, assets[i].RiskLevel)
		assert.Equal(t, original[i].VulnerabilityType, assets[i].VulnerabilityType)
		assert.Equal(t, original[i].Name, assets[i].Name)
		assert.Equal(t, original[i].ComponentID, assets[i].ComponentID)
		assert.Equal(t, original[i].Location, assets[i].Location)
		assert.Equal(t, original[i].Description, assets[i].Description)
		assert.Equal(t, original[i].ID, assets[i].ID)
	}

	t.Run("should keep asset ids when grouping reorders the findings", func(t *testing.T) {
		inv, err := cbom.BuildInventory([]byte(`{"results": [
			{"algorithm": "RSA-2048", "file_path": "auth/a.go"},
			{"algorithm": "AES-128", "file_path": "lib/b.go"},
			{"algorithm": "SHA-1", "file_path": "auth/c.go"}
		]}`))
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, transformer.InventoryToCSV(&buf, inv))
		reimported, err := transformer.InventoryFromCSV(&buf)
		require.NoError(t, err)

		ids := make(map[string]string)
		for _, a := range reimported.Assets() {
			ids[a.Name] = a.ID
		}
		for _, a := range inv.Assets() {
			assert.Equal(t, a.ID, ids[a.Name], a.Name)
		}
	})

	t.Run("should derive ids when the ID column is missing", func(t *testing.T) {
		assets, err := transformer.ParseCSV(strings.NewReader("Component,Asset,File Path,Line Number\nauth,RSA-2048,auth/a.go,3\n"))
		require.NoError(t, err)
		require.Len(t, assets, 1)
		assert.Equal(t, cbom.NewAssetID(0, "RSA-2048", "auth/a.go", utils.Ptr(3)), assets[0].ID)
	})
}

func TestInventoryFromCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, transformer.InventoryToCSV(&buf, buildInventory(t)))

	inv, err := transformer.InventoryFromCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, 4, inv.TotalAssets)
	assert.Equal(t, dtos.RiskSummary{Critical: 1, High: 1, Medium: 1, None: 1}, inv.RiskSummary)
	assert.Len(t, inv.Components, 3)
}

func TestInventoryToJSON(t *testing.T) {
	inv := buildInventory(t)

	var buf bytes.Buffer
	require.NoError(t, transformer.InventoryToJSON(&buf, inv))
	assert.Contains(t, buf.String(), "\n  \"id\"")

	var decoded dtos.CBOMInventory
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, inv.TotalAssets, decoded.TotalAssets)
	assert.Equal(t, inv.RiskSummary, decoded.RiskSummary)
}
