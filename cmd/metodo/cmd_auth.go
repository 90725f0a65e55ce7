package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// promptForCallback runs the browser-less login round-trip: the user opens
// the printed URL, logs in, and pastes the URL they were redirected to.
func promptForCallback(ctx context.Context, targetURL string) (string, error) {
	fmt.Println("Open this URL in your browser and log in:")
	fmt.Println()
	fmt.Println("  " + targetURL)
	fmt.Println()
	fmt.Print("Paste the URL you were redirected to: ")

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read callback URL: %w", err)
	}
	return strings.TrimSpace(line), nil
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in via the auth service",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if err := a.controller.Initialize(ctx, ""); err != nil {
			return err
		}

		if user := a.controller.CurrentUser(); user != nil {
			fmt.Printf("Already logged in as %s (%s)\n", user.Name, user.Email)
			return nil
		}

		if err := a.controller.Login(ctx); err != nil {
			return err
		}

		user := a.controller.CurrentUser()
		if user == nil {
			return fmt.Errorf("login did not complete")
		}
		fmt.Printf("Logged in as %s (%s)\n", user.Name, user.Email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the local session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.controller.Logout(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	},
}

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the current user's profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		user, err := a.api.GetMe(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Name:   %s\n", user.Name)
		fmt.Printf("Email:  %s\n", user.Email)
		fmt.Printf("Active: %v\n", user.IsActive)
		if user.Age != nil {
			fmt.Printf("Age:    %d\n", *user.Age)
		}
		if user.Weight != nil {
			fmt.Printf("Weight: %.1f kg\n", *user.Weight)
		}
		if user.Height != nil {
			fmt.Printf("Height: %.1f cm\n", *user.Height)
		}
		return nil
	},
}

var activateCmd = &cobra.Command{
	Use:   "activate [code]",
	Short: "Redeem an activation code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.api.ValidateActivationCode(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Account activated.")
		return nil
	},
}
