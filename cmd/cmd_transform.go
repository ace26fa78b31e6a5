package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Cloud-Pie/EFT/config"
	"github.com/Cloud-Pie/EFT/server"
)

// transformCmd represents the transform command
var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Transform the cloud partners file",
	Long:  "Replace emission intervals with random center emission factors and write json_data.json",
	RunE:  transform,
}

func init() {
	addSeedFlag(transformCmd)
}

func addSeedFlag(cmd *cobra.Command) {
	cmd.Flags().Int64("seed", 0, "Seed of the random emission factors, 0 draws one from the clock")
}

//Read the configuration, letting the seed flag override the configured seed
func readConfiguration(cmd *cobra.Command) (config.SystemConfiguration, error) {
	configFile := cmd.Flag("config-file").Value.String()
	systemConfiguration := server.ReadSysConfigurationFile(configFile)
	if cmd.Flags().Lookup("seed") != nil && cmd.Flags().Changed("seed") {
		seed, err := cmd.Flags().GetInt64("seed")
		if err != nil {
			return systemConfiguration, err
		}
		systemConfiguration.Seed = seed
	}
	return systemConfiguration, nil
}

func transform(cmd *cobra.Command, args []string) error {
	systemConfiguration, err := readConfiguration(cmd)
	if err != nil {
		return err
	}
	server.SetLogger(systemConfiguration)

	run, err := server.StartTransformation(afero.NewOsFs(), systemConfiguration)
	if err != nil {
		return err
	}
	log.Infof("Done, seed %d, fingerprint %s", run.Seed, run.Fingerprint)
	return nil
}
