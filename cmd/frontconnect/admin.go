package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aturzone/go-front-connect/internal/api"
)

// adminCmd exposes the backend maintenance endpoints. The commands are
// hidden behind an owner check in the console; the backend enforces the
// same rule from the secret header regardless.
func adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Backend maintenance (owner role)",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := console.init(); err != nil {
				return err
			}
			if !console.identity.IsOwner() {
				return fmt.Errorf("owner role required for admin commands")
			}
			return nil
		},
	}

	var action string
	sync := &cobra.Command{
		Use:   "sync",
		Short: "Trigger a sync action: force, restore or backup",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := console.api.Admin().Sync(context.Background(), api.SyncAction(action))
			if err != nil {
				return decorate(err)
			}
			return printJSON(result)
		},
	}
	sync.Flags().StringVar(&action, "action", "", "force | restore | backup")

	status := &cobra.Command{
		Use:   "status",
		Short: "Backend runtime status",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := console.api.Admin().Status(context.Background())
			if err != nil {
				return decorate(err)
			}
			return printJSON(s)
		},
	}

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Backend-wide entity counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := console.api.Admin().Stats(context.Background())
			if err != nil {
				return decorate(err)
			}
			return printJSON(s)
		},
	}

	cmd.AddCommand(sync, status, stats)
	return cmd
}
