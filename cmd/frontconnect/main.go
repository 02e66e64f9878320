// Package main implements frontconnect, the operator console for the task
// backend. Commands are thin presentation glue: they call into the settings
// and identity stores and the API client, and print results as JSON.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aturzone/go-front-connect/internal/api"
	"github.com/aturzone/go-front-connect/internal/auth"
	"github.com/aturzone/go-front-connect/internal/config"
	"github.com/aturzone/go-front-connect/internal/dashboard"
	"github.com/aturzone/go-front-connect/internal/logger"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

// app wires the stores, logger and API client shared by every command.
type app struct {
	settings *config.Store
	identity *auth.Store
	api      *api.Client
	log      *logger.Logger
}

var (
	console  = &app{}
	stateDir string
	logLevel string
)

func (a *app) init() error {
	a.log = logger.New()
	if err := a.log.Init(logLevel); err != nil {
		return err
	}
	dir := stateDir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("resolve state dir: %w", err)
		}
		dir = filepath.Join(base, "frontconnect")
	}
	a.settings = config.NewStore(dir)
	a.identity = auth.NewStore(dir)
	a.api = api.New(a.settings, a.identity, &http.Client{}, a.log.Log)
	return nil
}

// decorate points the operator at the settings form when the connection is
// not configured yet; everything else passes through untouched.
func decorate(err error) error {
	if errors.Is(err, api.ErrNotConfigured) {
		return fmt.Errorf("%w: run 'frontconnect settings set' first", err)
	}
	return err
}

func printJSON(v any) error {
	buf, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(buf))
	return nil
}

var rootCmd = &cobra.Command{
	Use:           "frontconnect",
	Short:         "frontconnect is the operator console for the task backend",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return console.init()
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Probe the backend health endpoint (no authentication)",
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := console.api.Health(context.Background())
		if err != nil {
			return decorate(err)
		}
		return printJSON(status)
	},
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Load the role-scoped dashboard summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !console.settings.IsReady() {
			return decorate(api.ErrNotConfigured)
		}
		loader := dashboard.NewLoader(console.api, console.identity, console.log.Log)
		sum, err := loader.Load(context.Background())
		if sum != nil {
			if perr := printJSON(sum); perr != nil {
				return perr
			}
		}
		if err != nil {
			console.log.Log.Warn("dashboard loaded partially", zap.Error(err))
			return decorate(err)
		}
		return nil
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&stateDir, "state-dir", "",
		"directory holding the settings and identity records (default: user config dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn",
		"log level: debug, info, warn, error")
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildDate)

	rootCmd.AddCommand(
		settingsCmd(),
		loginCmd(),
		logoutCmd(),
		whoamiCmd(),
		usersCmd(),
		groupsCmd(),
		tasksCmd(),
		adminCmd(),
		healthCmd,
		dashboardCmd,
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
	if console.log != nil {
		_ = console.log.Log.Sync()
	}
}
