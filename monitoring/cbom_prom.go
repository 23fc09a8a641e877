// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package monitoring

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var InventoriesBuiltAmount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "cryptoguard_inventories_built_total",
	Help: "The total number of cbom inventories built, labeled by scan type",
}, []string{"scan_type"})

// ScanTypeLabel maps the scan type of a container onto the closed label set
// file, directory, demo, network and other.
func ScanTypeLabel(scanType string) string {
	scanType = strings.ToLower(strings.TrimSpace(scanType))
	switch {
	case scanType == "file", scanType == "directory", scanType == "demo":
		return scanType
	case strings.HasPrefix(scanType, "network"), scanType == "tls_handshake":
		return "network"
	}
	return "other"
}

var InventoryBuildFailedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "cryptoguard_inventory_build_failed_total",
	Help: "The total number of scan results rejected as malformed",
})

var AssetsClassifiedAmount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "cryptoguard_assets_classified_total",
	Help: "The total number of classified cryptographic assets, labeled by risk level",
}, []string{"risk_level"})

var VexFetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "cryptoguard_vex_fetch_duration_seconds",
	Help:    "Duration of vex document retrieval in seconds",
	Buckets: prometheus.DefBuckets,
})

var VexFetchFailedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "cryptoguard_vex_fetch_failed_total",
	Help: "The total number of failed vex retrievals, the inventory was served without vex data",
})

var VexDocumentsStoredAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "cryptoguard_vex_documents_stored_total",
	Help: "The total number of vex documents accepted through the api",
})
