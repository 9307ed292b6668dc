package cmd

import (
	"errors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Administer users (admin only)",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered users",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFrom(cmd.Context())

		if err := a.store.FetchUsers(cmd.Context()); err != nil {
			return errors.New(a.store.State().Users.Err)
		}

		data := pterm.TableData{{"ID", "NAME", "EMAIL", "ROLE"}}
		for _, u := range a.store.State().Users.Data {
			data = append(data, []string{u.ID, u.Name, u.Email, u.Role})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

func init() {
	usersCmd.AddCommand(usersListCmd)
}
