package commands

import (
	"github.com/l3montree-dev/cryptoguard/cbom"
	"github.com/l3montree-dev/cryptoguard/dtos"
	"github.com/spf13/cobra"
)

func NewGraphCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "graph <file>",
		Short:             "Print the asset dependency graph",
		DisableAutoGenTag: true,
		Args:              cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")

			inv, err := readInventory(args[0])
			if err != nil {
				return err
			}

			graph := cbom.BuildInventoryGraph(inv)
			return writeOutput(cmd, output, inv, ".graph.json", writeJSON(dtos.AssetGraphDTO{
				AssetGraph: graph,
				Stats:      graph.Stats(),
			}))
		},
	}

	cmd.Flags().StringP("output", "o", "", "output file or directory, stdout if empty")

	return cmd
}
