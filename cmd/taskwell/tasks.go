package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/taskwell/taskwell-api/internal/api"
	"github.com/taskwell/taskwell-api/internal/domain"
	"github.com/taskwell/taskwell-api/internal/store"
)

// parseTaskIDArg parses the task ID positional argument, translating the
// parse failure into the same wording the server uses for unknown tasks.
func parseTaskIDArg(arg string) (uuid.UUID, error) {
	id, err := uuid.Parse(arg)
	if err != nil {
		return uuid.Nil, errors.New("task not found")
	}
	return id, nil
}

// statusMark renders a task's status as a checkbox.
func statusMark(status domain.TaskStatus) string {
	if status == domain.TaskStatusDone {
		return "[x]"
	}
	return "[ ]"
}

func printTask(cmd *cobra.Command, task *domain.Task) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", statusMark(task.Status), task.Title)
	fmt.Fprintf(cmd.OutOrStdout(), "    id:      %s\n", task.ID)
	if task.Description != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "    notes:   %s\n", task.Description)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "    created: %s\n", task.CreatedAt.Format("2006-01-02 15:04"))
}

func newListCmd(serverURL *string) *cobra.Command {
	var params store.ListParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your tasks, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, err := authenticatedClient(*serverURL)
			if err != nil {
				return err
			}

			resp, err := apiClient.ListTasks(cmd.Context(), params)
			if err != nil {
				return err
			}

			if len(resp.Tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks found")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, task := range resp.Tasks {
				title := task.Title
				if task.Description != "" {
					title += " - " + task.Description
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", statusMark(task.Status), task.ID, title)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			p := resp.Pagination
			fmt.Fprintf(cmd.OutOrStdout(), "\nPage %d of %d (%d tasks)",
				p.CurrentPage, p.TotalPages, p.TotalTasks)
			if p.HasNext {
				fmt.Fprintf(cmd.OutOrStdout(), ", use --page %d for more", p.CurrentPage+1)
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().IntVar(&params.Page, "page", 0, "page number to fetch")
	cmd.Flags().IntVar(&params.Limit, "limit", 0, "tasks per page")
	cmd.Flags().StringVar(&params.Search, "search", "", "filter by text in title or description")
	cmd.Flags().StringVar(&params.Status, "status", "", "filter by status (pending, done or all)")

	return cmd
}

func newCreateCmd(serverURL *string) *cobra.Command {
	var description, status string

	cmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a new task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, err := authenticatedClient(*serverURL)
			if err != nil {
				return err
			}

			task, err := apiClient.CreateTask(cmd.Context(),
				strings.Join(args, " "), description, status)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Created task")
			printTask(cmd, task)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "longer free-form notes")
	cmd.Flags().StringVar(&status, "status", "", "initial status (defaults to pending)")

	return cmd
}

func newGetCmd(serverURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "get <task-id>",
		Short: "Show a single task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskIDArg(args[0])
			if err != nil {
				return err
			}

			apiClient, err := authenticatedClient(*serverURL)
			if err != nil {
				return err
			}

			task, err := apiClient.GetTask(cmd.Context(), id)
			if err != nil {
				return err
			}

			printTask(cmd, task)
			return nil
		},
	}
}

func newUpdateCmd(serverURL *string) *cobra.Command {
	var title, description, status string

	cmd := &cobra.Command{
		Use:   "update <task-id>",
		Short: "Change a task's title, notes or status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskIDArg(args[0])
			if err != nil {
				return err
			}

			// Only flags the user actually set become part of the update.
			var update api.UpdateTaskRequest
			if cmd.Flags().Changed("title") {
				update.Title = &title
			}
			if cmd.Flags().Changed("description") {
				update.Description = &description
			}
			if cmd.Flags().Changed("status") {
				update.Status = &status
			}
			if update.Title == nil && update.Description == nil && update.Status == nil {
				return errors.New("nothing to update: pass --title, --description or --status")
			}

			apiClient, err := authenticatedClient(*serverURL)
			if err != nil {
				return err
			}

			task, err := apiClient.UpdateTask(cmd.Context(), id, update)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Updated task")
			printTask(cmd, task)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&description, "description", "", "new notes")
	cmd.Flags().StringVar(&status, "status", "", "new status (pending or done)")

	return cmd
}

func newToggleCmd(serverURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <task-id>",
		Short: "Flip a task between pending and done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskIDArg(args[0])
			if err != nil {
				return err
			}

			apiClient, err := authenticatedClient(*serverURL)
			if err != nil {
				return err
			}

			task, err := apiClient.GetTask(cmd.Context(), id)
			if err != nil {
				return err
			}

			next := string(task.Status.Toggle())
			updated, err := apiClient.UpdateTask(cmd.Context(), id, api.UpdateTaskRequest{
				Status: &next,
			})
			if err != nil {
				return err
			}

			printTask(cmd, updated)
			return nil
		},
	}
}

func newDeleteCmd(serverURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskIDArg(args[0])
			if err != nil {
				return err
			}

			apiClient, err := authenticatedClient(*serverURL)
			if err != nil {
				return err
			}

			if err := apiClient.DeleteTask(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Task deleted")
			return nil
		},
	}
}
