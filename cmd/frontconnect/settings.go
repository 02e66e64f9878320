package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aturzone/go-front-connect/internal/config"
)

// settingsCmd manages the backend connection record. The record is replaced
// wholesale on every set; there is no partial merge.
func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage the backend connection settings",
	}

	var cfg config.Settings
	set := &cobra.Command{
		Use:   "set",
		Short: "Replace the stored connection settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.BaseURL == "" {
				return fmt.Errorf("--base-url is required")
			}
			if err := console.settings.Write(cfg); err != nil {
				return err
			}
			if !console.settings.IsReady() {
				fmt.Println("saved, but no secret is set yet: authenticated calls will be rejected")
			}
			return nil
		},
	}
	set.Flags().StringVar(&cfg.BaseURL, "base-url", "", "backend base URL, concatenated verbatim with endpoint paths")
	set.Flags().StringVar(&cfg.OwnerPassword, "owner-password", "", "shared secret for the owner role")
	set.Flags().StringVar(&cfg.UserPassword, "user-password", "", "shared secret for group-admins and users")

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the stored settings with secrets redacted",
		RunE: func(cmd *cobra.Command, args []string) error {
			stored := console.settings.Read()
			if stored == nil {
				fmt.Println("no settings stored")
				return nil
			}
			redacted := *stored
			if redacted.OwnerPassword != "" {
				redacted.OwnerPassword = "(set)"
			}
			if redacted.UserPassword != "" {
				redacted.UserPassword = "(set)"
			}
			return printJSON(redacted)
		},
	}

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return console.settings.Clear()
		},
	}

	ready := &cobra.Command{
		Use:   "ready",
		Short: "Report whether enough is stored to reach the backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !console.settings.IsReady() {
				return fmt.Errorf("not configured: base URL and at least one secret are required")
			}
			fmt.Println("configured")
			return nil
		},
	}

	cmd.AddCommand(set, show, clear, ready)
	return cmd
}
