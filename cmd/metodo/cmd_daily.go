package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/metodo21/app-client/internal/models"
	"github.com/metodo21/app-client/internal/progress"
	"github.com/spf13/cobra"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Manage the daily record",
}

var dailyShowDate string

var dailyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a day's record (defaults to today)",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		date := dailyShowDate
		if date == "" {
			date = time.Now().Format(models.DateFormat)
		}

		record, err := a.api.GetDailyRecord(cmd.Context(), date)
		if err != nil {
			return err
		}
		if record == nil {
			fmt.Printf("No record for %s yet.\n", date)
			return nil
		}

		fmt.Printf("Day %d (%s)\n", record.DayNumber, record.Date)
		fmt.Println()
		fmt.Println("Práticas diárias:")
		printFlag("Água 2L", record.PraticasDiarias.Agua2L)
		printFlag("Exercício", record.PraticasDiarias.Exercicio)
		printFlag("Meditação", record.PraticasDiarias.Meditacao)
		printFlag("Vácuo", record.PraticasDiarias.Vacuo)
		printFlag("Gratidão", record.PraticasDiarias.Gratidao)
		fmt.Println()
		fmt.Printf("Água: %d ml\n", record.WaterIntake)
		fmt.Printf("Calorias: %d consumidas, %d queimadas\n", record.CaloriesConsumed, record.CaloriesBurned)
		if record.IsComplete() {
			fmt.Println("Day complete.")
		}
		return nil
	},
}

func printFlag(label string, done bool) {
	mark := " "
	if done {
		mark = "x"
	}
	fmt.Printf("  [%s] %s\n", mark, label)
}

var dailyCheckFlags struct {
	agua      bool
	exercicio bool
	meditacao bool
	vacuo     bool
	gratidao  bool
}

var dailyCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check off today's practices",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		goals, err := a.api.GetGoals(ctx)
		if err != nil {
			return err
		}
		if goals == nil {
			return fmt.Errorf("no goals set; run 'metodo goals set' to start the challenge")
		}

		now := time.Now()
		day, err := progress.DayNumber(goals.CreatedAt, now)
		if err != nil {
			return err
		}
		date := now.Format(models.DateFormat)

		// Merge onto the existing record so unchecked flags are not lost.
		praticas := models.PraticasDiarias{}
		existing, err := a.api.GetDailyRecord(ctx, date)
		if err != nil {
			return err
		}
		if existing != nil {
			praticas = existing.PraticasDiarias
		}

		if cmd.Flags().Changed("agua") {
			praticas.Agua2L = dailyCheckFlags.agua
		}
		if cmd.Flags().Changed("exercicio") {
			praticas.Exercicio = dailyCheckFlags.exercicio
		}
		if cmd.Flags().Changed("meditacao") {
			praticas.Meditacao = dailyCheckFlags.meditacao
		}
		if cmd.Flags().Changed("vacuo") {
			praticas.Vacuo = dailyCheckFlags.vacuo
		}
		if cmd.Flags().Changed("gratidao") {
			praticas.Gratidao = dailyCheckFlags.gratidao
		}

		record, err := a.api.UpsertDailyRecord(ctx, models.DailyRecordUpsert{
			Date:            date,
			DayNumber:       day,
			PraticasDiarias: &praticas,
		})
		if err != nil {
			return err
		}

		if record.IsComplete() {
			fmt.Printf("Day %d complete!\n", record.DayNumber)
		} else {
			fmt.Printf("Day %d updated.\n", record.DayNumber)
		}
		return nil
	},
}

var waterCmd = &cobra.Command{
	Use:   "water [add <ml>]",
	Short: "Add water intake for today",
}

var waterAddCmd = &cobra.Command{
	Use:   "add [ml]",
	Short: "Add milliliters to today's water total",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ml, err := strconv.Atoi(args[0])
		if err != nil || ml <= 0 {
			return fmt.Errorf("amount must be a positive number of milliliters")
		}

		a, err := newApp()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if _, err := a.dashboard.LoadToday(ctx); err != nil {
			return err
		}

		total, err := a.dashboard.AddWater(ctx, ml)
		if err != nil {
			return err
		}
		fmt.Printf("Water today: %d ml\n", total)
		return nil
	},
}

func init() {
	dailyShowCmd.Flags().StringVar(&dailyShowDate, "date", "", "day to show (YYYY-MM-DD, defaults to today)")

	dailyCheckCmd.Flags().BoolVar(&dailyCheckFlags.agua, "agua", false, "drank 2L of water")
	dailyCheckCmd.Flags().BoolVar(&dailyCheckFlags.exercicio, "exercicio", false, "exercised")
	dailyCheckCmd.Flags().BoolVar(&dailyCheckFlags.meditacao, "meditacao", false, "meditated")
	dailyCheckCmd.Flags().BoolVar(&dailyCheckFlags.vacuo, "vacuo", false, "did the vacuum exercise")
	dailyCheckCmd.Flags().BoolVar(&dailyCheckFlags.gratidao, "gratidao", false, "practiced gratitude")

	dailyCmd.AddCommand(dailyShowCmd)
	dailyCmd.AddCommand(dailyCheckCmd)
	waterCmd.AddCommand(waterAddCmd)
}
