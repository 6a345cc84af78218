package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/taskwell/taskwell-api/internal/client"
)

// defaultServerURL is used when neither the --server flag nor a stored
// session provides one.
const defaultServerURL = "http://localhost:8080"

func newRootCmd() *cobra.Command {
	var serverURL string

	cmd := &cobra.Command{
		Use:   "taskwell",
		Short: "taskwell is a command line client for the taskwell task tracker",
		Long: `taskwell manages your personal task list from the terminal.

Start by creating an account, then log in to store a session token:

  taskwell register --email you@example.com --password secret123
  taskwell login --email you@example.com --password secret123

After that, the task commands act on your own tasks:

  taskwell list --status pending --search milk
  taskwell create "Buy milk" --description "2 liters"
  taskwell toggle <task-id>
  taskwell delete <task-id>`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&serverURL, "server", "",
		"base URL of the taskwell server (defaults to the stored session's server)")

	cmd.AddCommand(
		newRegisterCmd(&serverURL),
		newLoginCmd(&serverURL),
		newLogoutCmd(),
		newMeCmd(&serverURL),
		newListCmd(&serverURL),
		newCreateCmd(&serverURL),
		newGetCmd(&serverURL),
		newUpdateCmd(&serverURL),
		newToggleCmd(&serverURL),
		newDeleteCmd(&serverURL),
	)

	return cmd
}

// resolveServerURL picks the server to talk to: the --server flag wins,
// then the TASKWELL_SERVER environment variable, then the stored session,
// then the local default.
func resolveServerURL(flagValue string, creds *client.Credentials) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("TASKWELL_SERVER"); env != "" {
		return env
	}
	if creds != nil && creds.ServerURL != "" {
		return creds.ServerURL
	}
	return defaultServerURL
}

// authenticatedClient loads the stored session and builds a client that
// sends its token.
func authenticatedClient(flagValue string) (*client.Client, error) {
	creds, err := client.LoadCredentials()
	if err != nil {
		return nil, err
	}
	return client.New(resolveServerURL(flagValue, creds)).WithToken(creds.Token), nil
}
