package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Cloud-Pie/EFT/server"
	db "github.com/Cloud-Pie/EFT/storage"
)

var errStorageDisabled = errors.New("run history storage is disabled, enable it in the configuration file")

// runsCmd represents the runs command
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List runs",
	Long:  `List the stored transformation runs.`,
	RunE:  retrieve,
}

func init() {
	runsCmd.Flags().String("rId", "", "Run ID")
	runsCmd.Flags().String("fingerprint", "", "Only runs over documents with this fingerprint")
}

func retrieve(cmd *cobra.Command, args []string) error {
	id := cmd.Flag("rId").Value.String()
	fingerprint := cmd.Flag("fingerprint").Value.String()
	runDAO, err := connectRunDAO(cmd)
	if err != nil {
		return err
	}
	defer runDAO.Close()

	var out interface{}
	switch {
	case id != "":
		out, err = runDAO.FindByID(id)
	case fingerprint != "":
		out, err = runDAO.FindByFingerprint(fingerprint)
	default:
		out, err = runDAO.FindAll()
	}
	if err != nil {
		return fmt.Errorf("runs could not be retrieved: %w", err)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func connectRunDAO(cmd *cobra.Command) (*db.RunDAO, error) {
	configFile := cmd.Flag("config-file").Value.String()
	systemConfiguration := server.ReadSysConfigurationFile(configFile)
	if !systemConfiguration.Storage.Enabled {
		return nil, errStorageDisabled
	}
	runDAO, err := db.GetRunDAO(systemConfiguration.Storage.Server, systemConfiguration.Storage.Database)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to %s: %w", systemConfiguration.Storage.Server, err)
	}
	return runDAO, nil
}
