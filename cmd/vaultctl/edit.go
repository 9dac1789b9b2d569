package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/credvault/credvault-backend/internal/projects/domain"
)

func inputFromFlags(cmd *cobra.Command) domain.ProjectInput {
	name, _ := cmd.Flags().GetString("name")
	link, _ := cmd.Flags().GetString("clone-link")
	pass, _ := cmd.Flags().GetString("password")
	fe, _ := cmd.Flags().GetString("frontend-env")
	be, _ := cmd.Flags().GetString("backend-env")
	return domain.ProjectInput{
		ProjectName:       name,
		CloneLink:         link,
		AuthorizationPass: pass,
		FrontendEnv:       fe,
		BackendEnv:        be,
	}
}

func addEditFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "Project name")
	cmd.Flags().String("clone-link", "", "Repository clone link")
	cmd.Flags().String("password", "", "Authorization password")
	cmd.Flags().String("frontend-env", "", "Frontend env blob")
	cmd.Flags().String("backend-env", "", "Backend env blob")
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Store a new project record",
	RunE: func(cmd *cobra.Command, _ []string) error {
		store := newStore()
		p, err := store.Create(cmd.Context(), inputFromFlags(cmd))
		if err != nil {
			return fmt.Errorf("%s", store.Err())
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s)\n", p.ProjectName, p.ID)
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Overwrite a project record (all required fields must be resupplied)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := newStore()
		p, err := store.Update(cmd.Context(), args[0], inputFromFlags(cmd))
		if err != nil {
			return fmt.Errorf("%s", store.Err())
		}
		fmt.Fprintf(cmd.OutOrStdout(), "updated %s (%s)\n", p.ProjectName, p.ID)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := newStore()
		if err := store.Delete(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("%s", store.Err())
		}
		fmt.Fprintln(cmd.OutOrStdout(), "deleted")
		return nil
	},
}

func init() {
	addEditFlags(addCmd)
	addEditFlags(updateCmd)
	rootCmd.AddCommand(addCmd, updateCmd, deleteCmd)
}
