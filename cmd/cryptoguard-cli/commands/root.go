// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var cfgFile string

// Version information - set via ldflags during build
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const (
	defaultConfigFilename = ".cryptoguard"
)

var RootCmd = newRootCommand()

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		SilenceUsage:      true,
		Use:               "cryptoguard-cli",
		Short:             "Build cryptographic bills of materials from scan results",
		Version:           version,
		DisableAutoGenTag: true,
		Long: `Build cryptographic bills of materials from scan results

cryptoguard-cli turns the findings of a crypto scanner into a CBOM inventory,
applies VEX documents to it and exports it as JSON, CSV, CycloneDX 1.6 or OpenVEX.
Configuration can be provided via a ./.cryptoguard config file or environment
variables (prefix CRYPTOGUARD_).`,
		Example: `  # Build an inventory from scanner results
  cryptoguard-cli build results.json -o inventory.json

  # Export a CycloneDX CBOM
  cryptoguard-cli export inventory.json --format cyclonedx

  # Show the adjusted risk after applying vex documents
  cryptoguard-cli vex inventory.json --vex triage.openvex.json --table`,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// init the logger - get the level
			level, err := cmd.Flags().GetString("logLevel")
			if err != nil {
				return err
			}

			switch level {
			case "debug":
				initLogger(slog.LevelDebug)
			case "info":
				initLogger(slog.LevelInfo)
			case "warn":
				initLogger(slog.LevelWarn)
			case "error":
				initLogger(slog.LevelError)
			default:
				initLogger(slog.LevelInfo)
			}

			return initializeConfig(cmd)
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "cryptoguard-cli\n")
			fmt.Fprintf(out, "Version:    %s\n", version)
			fmt.Fprintf(out, "Commit:     %s\n", commit)
			fmt.Fprintf(out, "Built:      %s\n", date)
		},
	}

	cmd.AddCommand(
		versionCmd,
		NewBuildCommand(),
		NewExportCommand(),
		NewVexCommand(),
		NewGraphCommand(),
		NewSummaryCommand(),
		NewLoginCommand(),
	)

	cmd.PersistentFlags().StringP("logLevel", "l", "info", "Set the log level. Options: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.cryptoguard)")

	return cmd
}

func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// initLogger initializes the logger with a tint handler.
// tint is a simple logging library that allows to add colors to the log output.
func initLogger(level slog.Leveler) {
	w := os.Stderr

	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}),
	))
}

func initializeConfig(cmd *cobra.Command) error {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(defaultConfigFilename)
		viper.SetConfigType("yaml")
	}

	// We are only looking in the current working directory.
	viper.AddConfigPath(".")

	// Attempt to read the config file, gracefully ignoring errors
	// caused by a config file not being found. Return an error
	// if we cannot parse the config file.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
		slog.Debug("no config file found")
	}

	viper.SetEnvPrefix("CRYPTOGUARD")
	// Environment variables can't have dashes in them, so bind them to their equivalent
	// keys with underscores
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	bindFlags(cmd)
	return nil
}

// Bind each cobra flag to its associated viper configuration (config file and environment variable)
func bindFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		configName := f.Name

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && viper.IsSet(configName) {
			val := viper.Get(configName)
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				if err := sv.Replace(viper.GetStringSlice(configName)); err != nil {
					slog.Error("could not apply config value", "flag", f.Name, "err", err)
				}
			} else {
				cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)) // nolint: errcheck
			}
		}

		// Bind the flag to viper
		if err := viper.BindPFlag(configName, f); err != nil {
			slog.Error("could not bind flag to viper", "err", err)
		}
	})
}
