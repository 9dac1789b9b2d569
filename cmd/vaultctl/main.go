// vaultctl is a terminal dashboard for the credvault API: list and search
// stored projects, add/update/delete records, and print env blobs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/credvault/credvault-backend/internal/client"
)

var (
	apiURL string
	token  string
)

var rootCmd = &cobra.Command{
	Use:   "vaultctl",
	Short: "Manage credvault project records from the terminal",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if apiURL == "" {
			apiURL = os.Getenv("CREDVAULT_API_URL")
		}
		if apiURL == "" {
			apiURL = "http://localhost:8080"
		}
		if token == "" {
			token = os.Getenv("CREDVAULT_TOKEN")
		}
		if token == "" {
			return fmt.Errorf("no credential: set --token or CREDVAULT_TOKEN")
		}
		return nil
	},
	SilenceUsage: true,
}

func newStore() *client.Store {
	return client.NewStore(client.New(apiURL, token))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Base API URL (default CREDVAULT_API_URL or http://localhost:8080)")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Bearer token (default CREDVAULT_TOKEN)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
