package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/aturzone/go-front-connect/internal/api"
)

func tasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Query tasks across users",
	}

	search := &cobra.Command{
		Use:   "search <query>",
		Short: "Full-text task search",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := console.api.Tasks().Search(context.Background(), args[0])
			if err != nil {
				return decorate(err)
			}
			return printJSON(tasks)
		},
	}

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Aggregate task counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := console.api.Tasks().Stats(context.Background())
			if err != nil {
				return decorate(err)
			}
			return printJSON(s)
		},
	}

	var (
		doneFlag  bool
		priority  string
		dueBefore string
	)
	filter := &cobra.Command{
		Use:   "filter",
		Short: "List tasks matching attribute filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := api.TaskFilter{Priority: priority, DueBefore: dueBefore}
			if cmd.Flags().Changed("done") {
				f.Done = &doneFlag
			}
			tasks, err := console.api.Tasks().Filter(context.Background(), f)
			if err != nil {
				return decorate(err)
			}
			return printJSON(tasks)
		},
	}
	filter.Flags().BoolVar(&doneFlag, "done", false, "filter by completion state")
	filter.Flags().StringVar(&priority, "priority", "", "filter by priority label")
	filter.Flags().StringVar(&dueBefore, "due-before", "", "filter by due date (RFC 3339)")

	cmd.AddCommand(search, stats, filter)
	return cmd
}
