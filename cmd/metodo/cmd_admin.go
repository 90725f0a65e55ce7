package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administrative operations",
}

var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "Manage activation codes",
}

var codesGenerateQuantity int

var codesGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a batch of activation codes",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		codes, err := a.api.GenerateActivationCodes(cmd.Context(), codesGenerateQuantity)
		if err != nil {
			return err
		}

		fmt.Printf("Generated %d codes:\n", len(codes))
		for _, code := range codes {
			fmt.Println("  " + code)
		}
		return nil
	},
}

var codesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all activation codes and their status",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		codes, err := a.api.ListActivationCodes(cmd.Context())
		if err != nil {
			return err
		}

		for _, code := range codes {
			status := "unused"
			if code.IsUsed {
				status = "used by " + code.UsedByEmail
			}
			fmt.Printf("%-12s %s\n", code.Code, status)
		}
		return nil
	},
}

func init() {
	codesGenerateCmd.Flags().IntVar(&codesGenerateQuantity, "quantity", 10, "number of codes to generate (1-100)")

	codesCmd.AddCommand(codesGenerateCmd)
	codesCmd.AddCommand(codesListCmd)
	adminCmd.AddCommand(codesCmd)
}
