package cmd

import (
	"os"

	"github.com/op/go-logging"
	"github.com/spf13/cobra"

	"github.com/Cloud-Pie/EFT/internal/util"
)

var (
	// VERSION is set during build
	VERSION string
	log     = logging.MustGetLogger("eft")
)

// RootCmd runs the transformation when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "eft",
	Short: "Generate cloud partners demo data",
	Long: `
    ________________
   / ____/ ____/_  __/
  / __/ / /_    / /
 / /___/ __/   / /
/_____/_/     /_/

Replaces the emission interval of every workload dependent emission
in cloud_partners_large.json with a random center emission factor
and writes the result to json_data.json.
	`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          transform,
}

func init() {
	RootCmd.PersistentFlags().String("config-file", util.CONFIG_FILE, "Configuration file path")
	addSeedFlag(RootCmd)

	RootCmd.AddCommand(versionCmd)
	RootCmd.AddCommand(transformCmd)
	RootCmd.AddCommand(serveCmd)
	RootCmd.AddCommand(runsCmd)
	RootCmd.AddCommand(deleteCmd)
}

// Execute runs the command line and exits with a non-zero code on error
func Execute() {
	if VERSION == "" {
		VERSION = "1.0"
	}

	if err := RootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
