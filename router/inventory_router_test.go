package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/l3montree-dev/cryptoguard/controllers"
	"github.com/l3montree-dev/cryptoguard/database/repositories"
	"github.com/l3montree-dev/cryptoguard/dtos"
	"github.com/l3montree-dev/cryptoguard/middlewares"
	"github.com/l3montree-dev/cryptoguard/services"
	"github.com/l3montree-dev/cryptoguard/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	config := shared.ServerConfig{
		InventoryCacheSize: 10,
		InventoryTTL:       time.Hour,
		VexRateLimit:       5,
		FrontendURL:        "http://localhost:3000",
		Environment:        "test",
	}

	inventoryRepository := repositories.NewInventoryRepository(config)
	vexDocumentRepository := repositories.NewVexDocumentRepository(config)
	inventoryService := services.NewInventoryService(inventoryRepository)
	vexService := services.NewVexService(services.NewVexSource(config, vexDocumentRepository), vexDocumentRepository)

	srv := middlewares.Server(config)
	apiV1 := NewAPIV1Router(srv, config, inventoryService)
	NewInventoryRouter(apiV1,
		controllers.NewInventoryController(inventoryService, vexService),
		controllers.NewVexController(vexService, vexDocumentRepository),
		inventoryService,
	)
	return srv
}

func do(t *testing.T, srv *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestInventoryRouter(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/api/v1/inventories/", `{"scan_type":"static","results":[
		{"algorithm":"RSA-1024","risk":"Critical","file_path":"auth/login.js","line":42},
		{"algorithm":"AES-256","risk":"None","file_path":"auth/login.js","line":50}
	]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var inv dtos.CBOMInventory
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &inv))
	rsa := inv.Components[0].Assets[0]
	base := "/api/v1/inventories/" + inv.ID

	t.Run("should list the inventory", func(t *testing.T) {
		rec := do(t, srv, http.MethodGet, "/api/v1/inventories/", "")
		var items []dtos.InventoryListItemDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
		require.Len(t, items, 1)
		assert.Equal(t, inv.ID, items[0].ID)
		assert.Equal(t, "static", items[0].Source)
	})

	t.Run("should return 404 for unknown inventories", func(t *testing.T) {
		rec := do(t, srv, http.MethodGet, "/api/v1/inventories/unknown/", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("should reject malformed containers", func(t *testing.T) {
		rec := do(t, srv, http.MethodPost, "/api/v1/inventories/", `{"results":"nope"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should apply uploaded vex documents", func(t *testing.T) {
		rec := do(t, srv, http.MethodPost, base+"/vex/", `[{"id":"doc-1","asset_id":"`+rsa.ID+`","status":"not_affected","justification":"vulnerable_code_not_in_execute_path"}]`)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = do(t, srv, http.MethodGet, base+"/vex/", "")
		var collection dtos.VexCollection
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &collection))
		require.Len(t, collection.Documents, 1)
		assert.Equal(t, inv.ID, collection.CBOMID)

		rec = do(t, srv, http.MethodGet, base+"/assets/"+rsa.ID+"/adjusted-risk/", "")
		var adjusted dtos.AdjustedRisk
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &adjusted))
		assert.Equal(t, dtos.RiskLevelNone, adjusted.AdjustedRiskLevel)

		rec = do(t, srv, http.MethodGet, base+"/?vex=true", "")
		var enhanced dtos.EnhancedInventory
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &enhanced))
		assert.True(t, enhanced.VexApplied)
		require.NotNil(t, enhanced.Inventory.Components[0].Assets[0].VexStatus)
		assert.Equal(t, dtos.VexStatusNotAffected, *enhanced.Inventory.Components[0].Assets[0].VexStatus)
	})

	t.Run("should reject invalid vex documents", func(t *testing.T) {
		rec := do(t, srv, http.MethodPost, base+"/vex/", `[{"id":"doc-2","asset_id":"a","status":"maybe"}]`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should serve the exports", func(t *testing.T) {
		for _, path := range []string{"/export.json/", "/export.csv/", "/cyclonedx.json/", "/cyclonedx.xml/", "/openvex.json/", "/graph/", "/stats/", "/adjusted-risk/"} {
			rec := do(t, srv, http.MethodGet, base+path, "")
			assert.Equal(t, http.StatusOK, rec.Code, path)
		}
	})

	t.Run("should add the trailing slash", func(t *testing.T) {
		rec := do(t, srv, http.MethodGet, base+"/stats", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAPIV1Router(t *testing.T) {
	srv := newTestServer(t)

	t.Run("should report health", func(t *testing.T) {
		rec := do(t, srv, http.MethodGet, "/api/v1/health/", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
	})

	t.Run("should expose the store configuration", func(t *testing.T) {
		rec := do(t, srv, http.MethodGet, "/api/v1/info/", "")
		var info InfoResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
		assert.Equal(t, 10, info.Store.CacheSize)
		assert.Equal(t, "1h0m0s", info.Store.InventoryTTL)
		assert.NotZero(t, info.Process.PID)
	})

	t.Run("should expose prometheus metrics", func(t *testing.T) {
		rec := do(t, srv, http.MethodGet, "/api/v1/metrics/", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "go_goroutines")
	})
}
