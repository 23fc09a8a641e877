package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/l3montree-dev/cryptoguard/cbom"
	"github.com/l3montree-dev/cryptoguard/dtos"
	"github.com/l3montree-dev/cryptoguard/normalize"
	"github.com/l3montree-dev/cryptoguard/services"
	"github.com/l3montree-dev/cryptoguard/shared"
	"github.com/l3montree-dev/cryptoguard/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// staticVexSource serves documents read from local files.
type staticVexSource struct {
	docs []dtos.VexDocument
}

func (s staticVexSource) FetchVexDocuments(ctx context.Context, cbomID string) (dtos.VexCollection, error) {
	return dtos.VexCollection{CBOMID: cbomID, Documents: s.docs}, nil
}

func addVexFlags(cmd *cobra.Command) {
	cmd.Flags().StringArray("vex", nil, "vex file (native, OpenVEX or CycloneDX VEX), can be repeated")
	cmd.Flags().String("vexURL", "", "base url of a vex feed serving /api/v1/inventories/<id>/vex/")
	cmd.Flags().Float64("rateLimit", 5, "requests per second against the vex feed")
	cmd.Flags().String("inventoryID", "", "id of the inventory on the vex feed, required with --vexURL unless the input is an inventory json")
	cmd.Flags().String("vexToken", "", "bearer token of the vex feed, falls back to the token stored by login")
}

func readVexFiles(paths []string, cbomID string) ([]dtos.VexDocument, error) {
	docs := make([]dtos.VexDocument, 0)
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "could not read vex file %s", path)
		}
		parsed, err := normalize.ParseVexDocuments(raw, cbomID)
		if err != nil {
			return nil, errors.Wrapf(err, "could not parse vex file %s", path)
		}
		slog.Debug("read vex file", "path", path, "documents", len(parsed))
		docs = append(docs, parsed...)
	}
	return docs, nil
}

// fetchVexDocuments collects the documents of the local files first, then the feed.
// The first document per asset wins, so local judgements override the feed.
func fetchVexDocuments(cmd *cobra.Command, inv dtos.CBOMInventory) ([]dtos.VexDocument, error) {
	files, _ := cmd.Flags().GetStringArray("vex")
	vexURL, _ := cmd.Flags().GetString("vexURL")
	rateLimit, _ := cmd.Flags().GetFloat64("rateLimit")

	local, err := readVexFiles(files, inv.ID)
	if err != nil {
		return nil, err
	}

	sources := make([]shared.VexSource, 0, 2)
	if len(files) > 0 {
		sources = append(sources, staticVexSource{docs: local})
	}
	if vexURL != "" {
		sources = append(sources, services.NewHTTPVexSource(vexURL, rateLimit).WithToken(vexToken(cmd, vexURL)))

		if !utils.RunsInCI() {
			s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
			s.Suffix = " cryptoguard: fetching vex documents from " + vexURL
			s.Start()
			defer s.Stop()
		}
	}

	return services.NewVexService(services.NewMultiVexSource(sources...), nil).FetchVexDocuments(cmd.Context(), inv.ID)
}

func NewVexCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "vex <file>",
		Short:             "Apply vex documents to an inventory",
		DisableAutoGenTag: true,
		Long: `Apply vex documents to an inventory and print the enhanced inventory or the adjusted risk.

Documents are read from local files (--vex, repeatable) and from a vex feed (--vexURL).
If several documents reference the same asset the first one wins, local files first.
A failing feed is skipped with a warning as long as local documents were given.

The feed is asked for the documents of the inventory id. Inventory json files carry it,
raw scan results and csv exports need --inventoryID to name the inventory on the feed.`,
		Example: `  cryptoguard-cli vex inventory.json --vex triage.openvex.json
  cryptoguard-cli vex inventory.json --vexURL https://cryptoguard.example.com --table
  cryptoguard-cli vex results.json --vexURL https://cryptoguard.example.com --inventoryID <id> --table --failOnRisk high`,
		Args: cobra.ExactArgs(1),
		RunE: runVex,
	}

	addVexFlags(cmd)
	cmd.Flags().Bool("table", false, "print the adjusted risk per asset as table")
	cmd.Flags().String("failOnRisk", "", "exit with an error if an adjusted risk is at or above this level. Options: low, medium, high, critical")
	cmd.Flags().StringP("output", "o", "", "output file or directory, stdout if empty")

	return cmd
}

func runVex(cmd *cobra.Command, args []string) error {
	asTable, _ := cmd.Flags().GetBool("table")
	failOnRisk, _ := cmd.Flags().GetString("failOnRisk")
	output, _ := cmd.Flags().GetString("output")

	threshold := dtos.RiskLevelUnknown
	if failOnRisk != "" {
		threshold = cbom.NormalizeRiskLevel(failOnRisk)
		if threshold == dtos.RiskLevelUnknown || threshold == dtos.RiskLevelNone {
			return fmt.Errorf("invalid failOnRisk value %q", failOnRisk)
		}
	}

	inv, err := readVexInventory(cmd, args[0])
	if err != nil {
		return err
	}

	docs, err := fetchVexDocuments(cmd, inv)
	if err != nil {
		return errors.Wrap(err, "could not fetch vex documents")
	}

	adjusted := cbom.AdjustRiskForInventory(inv, docs)

	if asTable {
		printAdjustedRisks(cmd.OutOrStdout(), inv, adjusted)
	} else {
		err = writeOutput(cmd, output, inv, ".vex.json", writeJSON(cbom.Enhance(inv, docs)))
		if err != nil {
			return err
		}
	}

	if failOnRisk == "" {
		return nil
	}
	failing := utils.Filter(adjusted, func(a dtos.AdjustedRisk) bool {
		return a.AdjustedRiskLevel.Severity() >= threshold.Severity()
	})
	if len(failing) > 0 {
		return fmt.Errorf("found %d assets with an adjusted risk of %s or above", len(failing), strings.ToLower(string(threshold)))
	}
	return nil
}

func riskColor(level dtos.RiskLevel) text.Colors {
	switch level {
	case dtos.RiskLevelCritical:
		return text.Colors{text.FgHiRed}
	case dtos.RiskLevelHigh:
		return text.Colors{text.FgRed}
	case dtos.RiskLevelMedium:
		return text.Colors{text.FgYellow}
	case dtos.RiskLevelLow:
		return text.Colors{text.FgGreen}
	}
	return text.Colors{}
}

func printAdjustedRisks(w io.Writer, inv dtos.CBOMInventory, adjusted []dtos.AdjustedRisk) {
	names := make(map[string]string, inv.TotalAssets)
	for _, a := range inv.Assets() {
		names[a.ID] = a.Name
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.SetAllowedRowLength(160)
	tw.AppendHeader(table.Row{"Asset", "Risk", "Adjusted Risk", "VEX Status", "Reason"})
	for _, a := range adjusted {
		status := ""
		if a.VexStatus != nil {
			status = string(*a.VexStatus)
		}
		tw.AppendRow(table.Row{
			names[a.AssetID],
			riskColor(a.OriginalRiskLevel).Sprint(a.OriginalRiskLevel),
			riskColor(a.AdjustedRiskLevel).Sprint(a.AdjustedRiskLevel),
			status,
			text.WrapText(a.Reason, 60),
		})
	}
	tw.Render()
}
