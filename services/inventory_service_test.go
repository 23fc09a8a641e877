package services

import (
	"testing"
	"time"

	"github.com/l3montree-dev/cryptoguard/cbom"
	"github.com/l3montree-dev/cryptoguard/dtos"
	"github.com/l3montree-dev/cryptoguard/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInventoryServiceBuildInventory(t *testing.T) {
	t.Run("should build and store the inventory", func(t *testing.T) {
		repo := mocks.NewInventoryRepository(t)
		repo.On("Save", mock.MatchedBy(func(inv dtos.CBOMInventory) bool {
			return inv.TotalAssets == 2 && inv.Source == "static"
		})).Return(nil)

		inv, err := NewInventoryService(repo).BuildInventory([]byte(`{"scan_type":"static","results":[
			{"algorithm":"RSA-1024","risk":"Critical","file_path":"auth/login.js"},
			{"algorithm":"AES-256","risk":"None","file_path":"auth/login.js"}
		]}`))
		require.NoError(t, err)
		assert.Equal(t, 1, inv.RiskSummary.Critical)
		assert.NotNil(t, inv.Graph)
	})

	t.Run("should not store malformed containers", func(t *testing.T) {
		repo := mocks.NewInventoryRepository(t)

		_, err := NewInventoryService(repo).BuildInventory([]byte(`{"results":"nope"}`))
		assert.ErrorIs(t, err, cbom.ErrMalformedScanResult)
	})

	t.Run("should return repository errors", func(t *testing.T) {
		repo := mocks.NewInventoryRepository(t)
		repo.On("Save", mock.Anything).Return(errors.New("full"))

		_, err := NewInventoryService(repo).BuildInventory([]byte(`{"results":[]}`))
		assert.Error(t, err)
	})
}

func TestInventoryServiceList(t *testing.T) {
	t.Run("should map the inventories to list items", func(t *testing.T) {
		now := time.Now()
		repo := mocks.NewInventoryRepository(t)
		repo.On("List").Return([]dtos.CBOMInventory{
			{ID: "a", GeneratedAt: now, Source: "static", TotalAssets: 4, Components: []dtos.Component{{ID: "c"}}},
		}, nil)

		items, err := NewInventoryService(repo).List()
		require.NoError(t, err)
		assert.Equal(t, []dtos.InventoryListItemDTO{{ID: "a", GeneratedAt: now, Source: "static", TotalAssets: 4}}, items)
	})
}
