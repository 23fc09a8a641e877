package commands

import (
	"io"

	"github.com/l3montree-dev/cryptoguard/cbom"
	"github.com/l3montree-dev/cryptoguard/transformer"
	"github.com/spf13/cobra"
)

func NewBuildCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "build <results.json>",
		Short:             "Build a CBOM inventory from scan results",
		DisableAutoGenTag: true,
		Long: `Build a CBOM inventory from the findings of a crypto scanner.

The input is either a container object with a "results" array or a plain array of
findings. The inventory including its asset graph is written as JSON.`,
		Example: `  cryptoguard-cli build results.json
  cryptoguard-cli build results.json -o inventory.json --summary`,
		Args: cobra.ExactArgs(1),
		RunE: runBuild,
	}

	cmd.Flags().StringP("output", "o", "", "output file or directory, stdout if empty")
	cmd.Flags().Bool("summary", false, "print a risk summary to stderr")

	return cmd
}

func runBuild(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	summary, _ := cmd.Flags().GetBool("summary")

	inv, err := readInventory(args[0])
	if err != nil {
		return err
	}
	if inv.Graph == nil {
		graph := cbom.BuildInventoryGraph(inv)
		inv.Graph = &graph
	}

	err = writeOutput(cmd, output, inv, ".json", func(w io.Writer) error {
		return transformer.InventoryToJSON(w, inv)
	})
	if err != nil {
		return err
	}

	if summary {
		printSummary(cmd.ErrOrStderr(), inv, nil)
	}
	return nil
}
