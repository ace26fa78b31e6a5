package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// deleteCmd represents the delete run command
var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Remove run",
	Long:  "Remove a stored run",
	RunE:  deleteRun,
}

var (
	force bool
	id    string
)

func deleteRun(cmd *cobra.Command, args []string) error {
	if !force {
		fmt.Fprintln(cmd.OutOrStdout(), "Are you sure you want to delete this run?, use the --f flag to force it")
		return nil
	}
	runDAO, err := connectRunDAO(cmd)
	if err != nil {
		return err
	}
	defer runDAO.Close()
	if err := runDAO.DeleteById(id); err != nil {
		return fmt.Errorf("run %s could not be deleted: %w", id, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Run deleted")
	return nil
}

func init() {
	deleteCmd.Flags().StringVar(&id, "rId", "", "Run ID")
	deleteCmd.Flags().BoolVar(&force, "f", false, "Force the action")
}
