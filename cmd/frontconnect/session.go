package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aturzone/go-front-connect/internal/auth"
)

// loginCmd records the operator's locally asserted identity. Nothing is
// verified here: the backend checks the accompanying secret on every
// request, so a wrong role simply gets rejected there.
func loginCmd() *cobra.Command {
	var (
		role    string
		userID  int64
		groupID int64
		email   string
	)
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Record the operator identity used to scope the console",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := auth.Role(role)
			if !r.Valid() {
				return fmt.Errorf("invalid role %q: must be %q, %q or %q",
					role, auth.RoleOwner, auth.RoleGroupAdmin, auth.RoleUser)
			}
			if r == auth.RoleUser && userID == 0 {
				return fmt.Errorf("--user-id is required for the user role")
			}
			if r == auth.RoleGroupAdmin && groupID == 0 {
				return fmt.Errorf("--group-id is required for the group-admin role")
			}
			return console.identity.Write(auth.Identity{
				Role:    r,
				UserID:  userID,
				GroupID: groupID,
				Email:   email,
			})
		},
	}
	cmd.Flags().StringVar(&role, "role", "", "role: owner, group-admin or user")
	cmd.Flags().Int64Var(&userID, "user-id", 0, "user id (user role)")
	cmd.Flags().Int64Var(&groupID, "group-id", 0, "group id (group-admin role)")
	cmd.Flags().StringVar(&email, "email", "", "display email")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored identity (settings are kept)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return console.identity.Clear()
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Print the stored identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			id := console.identity.Read()
			if id == nil {
				fmt.Println("not logged in")
				return nil
			}
			return printJSON(id)
		},
	}
}
