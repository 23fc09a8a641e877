package commands

import (
	"fmt"
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/l3montree-dev/cryptoguard/cbom"
	"github.com/l3montree-dev/cryptoguard/dtos"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func NewSummaryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "summary <file>",
		Short:             "Print risk and quantum vulnerability summaries",
		DisableAutoGenTag: true,
		Long: `Print the risk summary, the quantum vulnerability summary and the riskiest
components of an inventory. With vex sources the adjusted risk is shown next to the
original risk.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, _ := cmd.Flags().GetStringArray("vex")
			vexURL, _ := cmd.Flags().GetString("vexURL")

			inv, err := readVexInventory(cmd, args[0])
			if err != nil {
				return err
			}

			var docs []dtos.VexDocument
			if len(files) > 0 || vexURL != "" {
				docs, err = fetchVexDocuments(cmd, inv)
				if err != nil {
					return err
				}
			}

			printSummary(cmd.OutOrStdout(), inv, docs)
			return nil
		},
	}

	addVexFlags(cmd)

	return cmd
}

func printSummary(w io.Writer, inv dtos.CBOMInventory, docs []dtos.VexDocument) {
	stats := cbom.Stats(inv, docs)

	fmt.Fprintln(w, text.FgHiCyan.Sprintf("\nCBOM %s (%d assets in %d components)", inv.ID, inv.TotalAssets, len(inv.Components)))
	if inv.Source != "" {
		fmt.Fprintln(w, "Source: "+cases.Title(language.English).String(inv.Source)+" scan")
	}

	riskTable := table.NewWriter()
	riskTable.SetOutputMirror(w)
	riskTable.SetStyle(table.StyleLight)
	header := table.Row{"Risk", "Assets", "Share"}
	if docs != nil {
		header = append(header, "Adjusted")
	}
	riskTable.AppendHeader(header)
	for _, level := range dtos.RiskLevels {
		count := stats.RiskSummary.Count(level)
		row := table.Row{
			riskColor(level).Sprint(level),
			count,
			fmt.Sprintf("%.1f%%", share(count, inv.TotalAssets)),
		}
		if docs != nil {
			row = append(row, stats.AdjustedRiskSummary.Count(level))
		}
		riskTable.AppendRow(row)
	}
	riskTable.AppendFooter(table.Row{"Total", inv.TotalAssets})
	riskTable.Render()

	vulnTable := table.NewWriter()
	vulnTable.SetOutputMirror(w)
	vulnTable.SetStyle(table.StyleLight)
	vulnTable.AppendHeader(table.Row{"Quantum Vulnerability", "Assets"})
	vulnTable.AppendRows([]table.Row{
		{dtos.VulnerabilityShor, stats.VulnerabilitySummary.Shor},
		{dtos.VulnerabilityGrover, stats.VulnerabilitySummary.Grover},
		{dtos.VulnerabilityQuantumResistant, stats.VulnerabilitySummary.QuantumResistant},
		{dtos.VulnerabilityNone, stats.VulnerabilitySummary.None},
		{dtos.VulnerabilityUnknown, stats.VulnerabilitySummary.Unknown},
	})
	vulnTable.AppendFooter(table.Row{"Quantum vulnerable", fmt.Sprintf("%.1f%%", stats.QuantumVulnerablePercentage)})
	vulnTable.Render()

	printTopComponents(w, inv, 10)
}

func share(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) * 100 / float64(total)
}

func highestRisk(c dtos.Component) dtos.RiskLevel {
	highest := dtos.RiskLevelUnknown
	for _, a := range c.Assets {
		if a.RiskLevel.Severity() > highest.Severity() {
			highest = a.RiskLevel
		}
	}
	return highest
}

func printTopComponents(w io.Writer, inv dtos.CBOMInventory, limit int) {
	components := append([]dtos.Component(nil), inv.Components...)
	sort.SliceStable(components, func(i, j int) bool {
		ri, rj := highestRisk(components[i]).Severity(), highestRisk(components[j]).Severity()
		if ri != rj {
			return ri > rj
		}
		return len(components[i].Assets) > len(components[j].Assets)
	})
	if len(components) > limit {
		components = components[:limit]
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Component", "Assets", "Highest Risk"})
	for _, c := range components {
		risk := highestRisk(c)
		tw.AppendRow(table.Row{c.Name, len(c.Assets), riskColor(risk).Sprint(risk)})
	}
	tw.Render()
}
