package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Cloud-Pie/EFT/server"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start service",
	Long:  "Start the HTTP API of the transformer",
	RunE:  startServer,
}

func init() {
	serveCmd.Flags().String("http-port", "", "Http Port, defaults to the configured one")
}

func startServer(cmd *cobra.Command, args []string) error {
	port := cmd.Flag("http-port").Value.String()
	configFile := cmd.Flag("config-file").Value.String()
	return server.Start(port, configFile)
}
