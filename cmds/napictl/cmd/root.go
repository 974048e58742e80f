// Package cmd for parsing command line arguments
package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/isabella232/sdc-napi/pkg/client"
)

// napiCmd represents the root base command when called without any subcommands
var napiCmd = &cobra.Command{
	Use:   "napictl",
	Short: "Inspect and manage the network inventory of a network API server",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	napiCmd.AddCommand(versionCmd)
	napiCmd.AddCommand(networkCmd)
	networkCmd.AddCommand(networkListCmd)
	networkCmd.AddCommand(networkGetCmd)
	networkCmd.AddCommand(networkDeleteCmd)
	napiCmd.AddCommand(poolCmd)
	poolCmd.AddCommand(poolListCmd)
	poolCmd.AddCommand(poolGetCmd)
	napiCmd.AddCommand(fabricCmd)
	fabricCmd.AddCommand(fabricVlansCmd)
	fabricCmd.AddCommand(fabricNetworksCmd)

	err := napiCmd.Execute()
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}

func init() {
	napiCmd.PersistentFlags().StringP("server", "s", "http://localhost:8080", "address of the network API server")
	napiCmd.PersistentFlags().BoolP("debug", "d", false, "by setting this flag napictl will print debug logs too")

	networkListCmd.Flags().String("nic-tag", "", "only networks on this nic tag")
	networkListCmd.Flags().String("family", "", "only networks of this address family (ipv4 or ipv6)")
	networkListCmd.Flags().Bool("fabric", false, "only fabric networks")

	networkDeleteCmd.Flags().Bool("force", false, "delete even while tenant reservations exist")
	networkDeleteCmd.Flags().String("etag", "", "make the delete conditional on this etag")
}

// newClient builds the API client for the server named on the command line.
func newClient(cmd *cobra.Command) (client.Client, error) {
	debug, err := cmd.Flags().GetBool("debug")
	if err != nil {
		return nil, fmt.Errorf("invalid log debug mode input '%v' with error: %w", debug, err)
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	server, err := cmd.Flags().GetString("server")
	if err != nil {
		return nil, fmt.Errorf("invalid server input '%s' with error: %w", server, err)
	}

	return client.NewRetryingClient(client.NewClient(server)), nil
}
