package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var envCmd = &cobra.Command{
	Use:   "env <id>",
	Short: "Print a project's env blob (pipe to a clipboard tool to copy)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, _ := cmd.Flags().GetBool("backend")

		store := newStore()
		if err := store.Load(cmd.Context()); err != nil {
			return fmt.Errorf("%s", store.Err())
		}

		p, ok := store.Get(args[0])
		if !ok {
			return fmt.Errorf("no project with id %s", args[0])
		}

		blob := p.FrontendEnv
		if backend {
			blob = p.BackendEnv
		}
		if blob == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "no env available")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), blob)
		return nil
	},
}

func init() {
	envCmd.Flags().Bool("backend", false, "Print the backend env instead of the frontend env")
	rootCmd.AddCommand(envCmd)
}
