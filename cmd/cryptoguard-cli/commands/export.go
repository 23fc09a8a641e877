package commands

import (
	"fmt"
	"io"

	cdx "github.com/CycloneDX/cyclonedx-go"
	"github.com/l3montree-dev/cryptoguard/normalize"
	"github.com/l3montree-dev/cryptoguard/transformer"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "export <file>",
		Short:             "Export an inventory",
		DisableAutoGenTag: true,
		Long: `Export an inventory as JSON, CSV, CycloneDX 1.6 CBOM or OpenVEX.

The input may be raw scan results, an inventory JSON or a csv export.
With --vex or --vexURL the cyclonedx formats contain the vex documents as analysed
vulnerabilities. The openvex format always consults the given vex sources.`,
		Example: `  cryptoguard-cli export inventory.json --format csv -o .
  cryptoguard-cli export results.json --format cyclonedx --name my-app --version 1.0.0
  cryptoguard-cli export inventory.json --format openvex --vex triage.json --author security@example.com`,
		Args: cobra.ExactArgs(1),
		RunE: runExport,
	}

	cmd.Flags().StringP("format", "f", "json", "output format. Options: json, csv, cyclonedx, cyclonedx-xml, openvex")
	cmd.Flags().StringP("output", "o", "", "output file or directory, stdout if empty")
	cmd.Flags().String("name", "", "name of the root component in the cyclonedx export")
	cmd.Flags().String("version", "", "version of the root component in the cyclonedx export")
	cmd.Flags().String("author", "cryptoguard", "author of the openvex document")
	addVexFlags(cmd)

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")
	name, _ := cmd.Flags().GetString("name")
	version, _ := cmd.Flags().GetString("version")
	author, _ := cmd.Flags().GetString("author")
	files, _ := cmd.Flags().GetStringArray("vex")
	vexURL, _ := cmd.Flags().GetString("vexURL")

	inv, err := readVexInventory(cmd, args[0])
	if err != nil {
		return err
	}
	meta := normalize.BOMMetadata{Name: name, Version: version}
	withVex := len(files) > 0 || vexURL != ""

	switch format {
	case "json":
		return writeOutput(cmd, output, inv, ".json", func(w io.Writer) error {
			return transformer.InventoryToJSON(w, inv)
		})
	case "csv":
		return writeOutput(cmd, output, inv, ".csv", func(w io.Writer) error {
			return transformer.InventoryToCSV(w, inv)
		})
	case "cyclonedx", "cyclonedx-xml":
		bom := normalize.InventoryToCycloneDX(inv, meta)
		if withVex {
			docs, err := fetchVexDocuments(cmd, inv)
			if err != nil {
				return errors.Wrap(err, "could not fetch vex documents")
			}
			bom = normalize.BuildCycloneDXVex(inv, docs, meta)
		}
		if format == "cyclonedx-xml" {
			return writeOutput(cmd, output, inv, ".cdx.xml", func(w io.Writer) error {
				encoder := cdx.NewBOMEncoder(w, cdx.BOMFileFormatXML)
				encoder.SetPretty(true)
				return encoder.Encode(bom)
			})
		}
		return writeOutput(cmd, output, inv, ".cdx.json", func(w io.Writer) error {
			return normalize.WriteCycloneDX(w, bom)
		})
	case "openvex":
		docs, err := fetchVexDocuments(cmd, inv)
		if err != nil {
			return errors.Wrap(err, "could not fetch vex documents")
		}
		return writeOutput(cmd, output, inv, ".openvex.json", writeJSON(normalize.BuildOpenVeX(inv, docs, author)))
	}

	return fmt.Errorf("unknown format %q, expected one of json, csv, cyclonedx, cyclonedx-xml, openvex", format)
}
