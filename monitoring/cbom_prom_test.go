package monitoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanTypeLabel(t *testing.T) {
	cases := map[string]string{
		"file":              "file",
		"Directory":         "directory",
		" demo ":            "demo",
		"network_pcap":      "network",
		"network_demo":      "network",
		"tls_handshake":     "network",
		"static":            "other",
		"":                  "other",
		"some-random-value": "other",
	}
	for scanType, expected := range cases {
		t.Run("should map "+scanType, func(t *testing.T) {
			assert.Equal(t, expected, ScanTypeLabel(scanType))
		})
	}
}
