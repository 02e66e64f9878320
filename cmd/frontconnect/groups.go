package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aturzone/go-front-connect/internal/models"
)

func groupsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Manage backend groups",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List visible groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			groups, err := console.api.Groups().List(context.Background())
			if err != nil {
				return decorate(err)
			}
			return printJSON(groups)
		},
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Fetch one group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			g, err := console.api.Groups().Get(context.Background(), id)
			if err != nil {
				return decorate(err)
			}
			return printJSON(g)
		},
	}

	var newGroup models.Group
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a group (owner only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !console.identity.IsOwner() {
				return fmt.Errorf("owner role required to create groups")
			}
			created, err := console.api.Groups().Create(context.Background(), newGroup)
			if err != nil {
				return decorate(err)
			}
			return printJSON(created)
		},
	}
	create.Flags().StringVar(&newGroup.Name, "name", "", "group name")
	create.Flags().StringVar(&newGroup.Description, "description", "", "free-form note")

	var upd models.Group
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a group record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			// Advisory gate only; the backend re-checks from the secret.
			if !console.identity.CanManageGroup(id) {
				return fmt.Errorf("current role may not manage group %d", id)
			}
			updated, err := console.api.Groups().Update(context.Background(), id, upd)
			if err != nil {
				return decorate(err)
			}
			return printJSON(updated)
		},
	}
	update.Flags().StringVar(&upd.Name, "name", "", "group name")
	update.Flags().StringVar(&upd.Description, "description", "", "free-form note")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if !console.identity.CanManageGroup(id) {
				return fmt.Errorf("current role may not manage group %d", id)
			}
			return decorate(console.api.Groups().Delete(context.Background(), id))
		},
	}

	cmd.AddCommand(list, get, create, update, del)
	return cmd
}
