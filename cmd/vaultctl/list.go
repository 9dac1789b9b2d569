package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/credvault/credvault-backend/internal/client"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored projects (newest first)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		search, _ := cmd.Flags().GetString("search")
		reveal, _ := cmd.Flags().GetBool("reveal")

		store := newStore()
		if err := store.Load(cmd.Context()); err != nil {
			return fmt.Errorf("%s", store.Err())
		}

		items := client.Filter(store.Projects(), search)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCLONE LINK\tPASSWORD\tUPDATED")
		for _, p := range items {
			pass := client.Mask(p.AuthorizationPass)
			if reveal {
				pass = p.AuthorizationPass
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				p.ID, p.ProjectName, p.CloneLink, pass, p.UpdatedAt.Format("2006-01-02 15:04"))
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "\n%d project(s)\n", len(items))
		return nil
	},
}

func init() {
	listCmd.Flags().String("search", "", "Filter by name, clone link, or password substring")
	listCmd.Flags().Bool("reveal", false, "Show passwords instead of masking them")
	rootCmd.AddCommand(listCmd)
}
