package router

// InfoResponse is the typed response returned by the /api/v1/info/ endpoint.
type InfoResponse struct {
	Build   BuildInfo   `json:"build"`
	Process ProcessInfo `json:"process"`
	Runtime RuntimeInfo `json:"runtime"`
	Store   StoreInfo   `json:"store"`
	VEX     VEXInfo     `json:"vex"`
}

// BuildInfo holds compiled build metadata
type BuildInfo struct {
	Version   string `json:"version,omitempty"`
	Commit    string `json:"commit,omitempty"`
	BuildDate string `json:"buildDate,omitempty"`
}

type ProcessInfo struct {
	PID           int    `json:"pid"`
	Hostname      string `json:"hostname,omitempty"`
	UptimeSeconds int    `json:"uptimeSeconds"`
}

type RuntimeInfo struct {
	GoVersion     string   `json:"goVersion,omitempty"`
	NumGoroutines int      `json:"numGoroutines,omitempty"`
	Mem           MemStats `json:"mem,omitempty"`
}

// MemStats focuses on a small, relevant subset of runtime.MemStats
type MemStats struct {
	Alloc      uint64 `json:"alloc"`
	TotalAlloc uint64 `json:"totalAlloc"`
	Sys        uint64 `json:"sys"`
	HeapAlloc  uint64 `json:"heapAlloc"`
}

// StoreInfo describes the in-memory inventory store
type StoreInfo struct {
	Inventories  int    `json:"inventories"`
	CacheSize    int    `json:"cacheSize"`
	InventoryTTL string `json:"inventoryTTL"`
}

// VEXInfo lists the configured vex feeds. Uploaded documents are always consulted.
type VEXInfo struct {
	SourceURL string  `json:"sourceURL,omitempty"`
	SourceDir string  `json:"sourceDir,omitempty"`
	RateLimit float64 `json:"rateLimit"`
}
