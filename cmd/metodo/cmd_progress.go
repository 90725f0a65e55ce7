package main

import (
	"fmt"

	"github.com/metodo21/app-client/internal/progress"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show the 21-day challenge progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		p, err := a.api.GetProgress(cmd.Context())
		if err != nil {
			return err
		}

		days, err := progress.Summary(p)
		if err != nil {
			return err
		}

		completed := progress.TotalDaysCompleted(p.DailyRecords)
		fmt.Printf("Progress: %d/21 days (%.0f%%)\n\n", completed, progress.Percentage(completed))

		for _, day := range days {
			mark := " "
			if day.Completed {
				mark = "x"
			} else if day.Record != nil {
				mark = "~"
			}
			fmt.Printf("  [%s] Dia %2d  %s\n", mark, day.Day, day.Date)
		}
		return nil
	},
}
