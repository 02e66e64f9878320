package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aturzone/go-front-connect/internal/models"
)

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage backend users and their tasks",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List visible users",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := console.api.Users().List(context.Background())
			if err != nil {
				return decorate(err)
			}
			return printJSON(users)
		},
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Fetch one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			u, err := console.api.Users().Get(context.Background(), id)
			if err != nil {
				return decorate(err)
			}
			return printJSON(u)
		},
	}

	var newUser models.User
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := console.api.Users().Create(context.Background(), newUser)
			if err != nil {
				return decorate(err)
			}
			return printJSON(created)
		},
	}
	create.Flags().StringVar(&newUser.Name, "name", "", "display name")
	create.Flags().StringVar(&newUser.Email, "email", "", "contact email")
	create.Flags().Int64Var(&newUser.GroupID, "group-id", 0, "group to assign")

	var upd models.User
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a user record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			updated, err := console.api.Users().Update(context.Background(), id, upd)
			if err != nil {
				return decorate(err)
			}
			return printJSON(updated)
		},
	}
	update.Flags().StringVar(&upd.Name, "name", "", "display name")
	update.Flags().StringVar(&upd.Email, "email", "", "contact email")
	update.Flags().Int64Var(&upd.GroupID, "group-id", 0, "group to assign")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return decorate(console.api.Users().Delete(context.Background(), id))
		},
	}

	tasks := &cobra.Command{
		Use:   "tasks <id>",
		Short: "List one user's tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			tasks, err := console.api.Users().Tasks(context.Background(), id)
			if err != nil {
				return decorate(err)
			}
			return printJSON(tasks)
		},
	}

	var newTask models.Task
	addTask := &cobra.Command{
		Use:   "add-task <id>",
		Short: "Add a task to a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			created, err := console.api.Users().CreateTask(context.Background(), id, newTask)
			if err != nil {
				return decorate(err)
			}
			return printJSON(created)
		},
	}
	addTask.Flags().StringVar(&newTask.Title, "title", "", "task title")
	addTask.Flags().StringVar(&newTask.Description, "description", "", "task body")
	addTask.Flags().StringVar(&newTask.Priority, "priority", "", "priority label")
	addTask.Flags().StringVar(&newTask.DueDate, "due", "", "due date (RFC 3339)")

	delTask := &cobra.Command{
		Use:   "delete-task <id> <task-id>",
		Short: "Delete one task of a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			taskID, err := parseID(args[1])
			if err != nil {
				return err
			}
			return decorate(console.api.Users().DeleteTask(context.Background(), id, taskID))
		},
	}

	cmd.AddCommand(list, get, create, update, del, tasks, addTask, delTask)
	return cmd
}
