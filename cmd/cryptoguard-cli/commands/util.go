package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/l3montree-dev/cryptoguard/cbom"
	"github.com/l3montree-dev/cryptoguard/dtos"
	"github.com/l3montree-dev/cryptoguard/transformer"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// readInventory accepts raw scanner results, a previously built inventory or a csv export.
func readInventory(path string) (dtos.CBOMInventory, error) {
	inv, _, err := loadInventory(path)
	return inv, err
}

// readVexInventory reads the inventory the vex documents are looked up for.
// Raw results and csv exports get a fresh id, so a feed lookup needs --inventoryID.
func readVexInventory(cmd *cobra.Command, path string) (dtos.CBOMInventory, error) {
	inventoryID, _ := cmd.Flags().GetString("inventoryID")
	vexURL, _ := cmd.Flags().GetString("vexURL")

	inv, stored, err := loadInventory(path)
	if err != nil {
		return dtos.CBOMInventory{}, err
	}

	if inventoryID != "" {
		slog.Debug("using inventory id for vex lookup", "id", inventoryID, "generated", inv.ID)
		inv.ID = inventoryID
		return inv, nil
	}
	if vexURL != "" && !stored {
		return dtos.CBOMInventory{}, fmt.Errorf("%s is not an inventory json, use --inventoryID to name the inventory the vex feed knows", path)
	}
	return inv, nil
}

// loadInventory reports whether the file was an inventory json and therefore kept its id.
func loadInventory(path string) (dtos.CBOMInventory, bool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return dtos.CBOMInventory{}, false, errors.Wrap(err, "could not read input file")
	}

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		slog.Debug("reading csv export", "path", path)
		inv, err := transformer.InventoryFromCSV(bytes.NewReader(raw))
		return inv, false, err
	}

	if isInventory(raw) {
		var inv dtos.CBOMInventory
		if err := json.Unmarshal(raw, &inv); err != nil {
			return dtos.CBOMInventory{}, false, errors.Wrap(err, "could not decode inventory")
		}
		slog.Debug("read inventory", "id", inv.ID, "assets", inv.TotalAssets)
		return inv, true, nil
	}

	container, err := cbom.DecodeContainer(bytes.NewReader(raw))
	if err != nil {
		return dtos.CBOMInventory{}, false, err
	}
	inv, err := cbom.BuildInventoryFromContainer(cbom.WrapBareResults(container))
	if err != nil {
		return dtos.CBOMInventory{}, false, err
	}
	slog.Debug("built inventory from scan results", "id", inv.ID, "assets", inv.TotalAssets)
	return inv, false, nil
}

func isInventory(raw []byte) bool {
	var shape struct {
		ID         string          `json:"id"`
		Components json.RawMessage `json:"components"`
	}
	if err := json.Unmarshal(raw, &shape); err != nil {
		return false
	}
	return shape.ID != "" && shape.Components != nil
}

// writeOutput writes to stdout if output is empty or "-". If output is a directory,
// the file is named after the inventory.
func writeOutput(cmd *cobra.Command, output string, inv dtos.CBOMInventory, suffix string, write func(w io.Writer) error) error {
	if output == "" || output == "-" {
		return write(cmd.OutOrStdout())
	}

	if info, err := os.Stat(output); err == nil && info.IsDir() {
		output = filepath.Join(output, transformer.ExportFileName(inv, suffix))
	}

	f, err := os.Create(output)
	if err != nil {
		return errors.Wrap(err, "could not create output file")
	}
	defer f.Close()

	if err := write(f); err != nil {
		return err
	}
	slog.Info("wrote output", "path", output)
	return nil
}

func writeJSON(v any) func(w io.Writer) error {
	return func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}
