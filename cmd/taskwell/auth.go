package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskwell/taskwell-api/internal/client"
)

func newRegisterCmd(serverURL *string) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(password) < 6 {
				return errors.New("password must be at least 6 characters")
			}

			url := resolveServerURL(*serverURL, nil)
			resp, err := client.New(url).Register(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			if err := client.SaveCredentials(client.Credentials{
				ServerURL: url,
				Email:     resp.User.Email,
				Token:     resp.Token,
			}); err != nil {
				return err
			}

			fmt.Printf("Registered and logged in as %s\n", resp.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address for the new account")
	cmd.Flags().StringVar(&password, "password", "", "password for the new account")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLoginCmd(serverURL *string) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store a session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			url := resolveServerURL(*serverURL, nil)
			resp, err := client.New(url).Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			if err := client.SaveCredentials(client.Credentials{
				ServerURL: url,
				Email:     resp.User.Email,
				Token:     resp.Token,
			}); err != nil {
				return err
			}

			fmt.Printf("Logged in as %s\n", resp.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email address")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.ClearCredentials(); err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}

func newMeCmd(serverURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the account the stored session belongs to",
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := authenticatedClient(*serverURL)
			if err != nil {
				return err
			}

			user, err := api.Me(cmd.Context())
			if err != nil {
				if client.IsUnauthorized(err) {
					return errors.New("session expired, log in again")
				}
				return err
			}

			fmt.Printf("Logged in as %s (since %s)\n",
				user.Email, user.CreatedAt.Format("2006-01-02"))
			return nil
		},
	}
}
