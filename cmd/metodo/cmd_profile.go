package main

import (
	"fmt"

	"github.com/metodo21/app-client/internal/bodymetrics"
	"github.com/metodo21/app-client/internal/models"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the body profile",
}

var profileUpdateFlags struct {
	age    int
	weight float64
	height float64
	waist  float64
	hip    float64
	chest  float64
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update body measurements; omitted flags keep their values",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		var update models.ProfileUpdate
		if cmd.Flags().Changed("age") {
			update.Age = &profileUpdateFlags.age
		}
		if cmd.Flags().Changed("weight") {
			update.Weight = &profileUpdateFlags.weight
		}
		if cmd.Flags().Changed("height") {
			update.Height = &profileUpdateFlags.height
		}
		if cmd.Flags().Changed("waist") {
			update.Waist = &profileUpdateFlags.waist
		}
		if cmd.Flags().Changed("hip") {
			update.Hip = &profileUpdateFlags.hip
		}
		if cmd.Flags().Changed("chest") {
			update.Chest = &profileUpdateFlags.chest
		}

		user, err := a.api.UpdateProfile(cmd.Context(), update)
		if err != nil {
			return err
		}

		fmt.Println("Profile updated.")
		if user.Weight != nil && user.Height != nil {
			if bmi, err := bodymetrics.BMI(*user.Weight, *user.Height); err == nil {
				fmt.Printf("BMI: %.1f (%s)\n", bmi, bodymetrics.Classify(bmi))
			}
		}
		return nil
	},
}

var bmiCmd = &cobra.Command{
	Use:   "bmi",
	Short: "Show the BMI from the stored profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		user, err := a.api.GetMe(cmd.Context())
		if err != nil {
			return err
		}
		if user.Weight == nil || user.Height == nil {
			return fmt.Errorf("weight and height are not set; run 'metodo profile update' first")
		}

		bmi, err := bodymetrics.BMI(*user.Weight, *user.Height)
		if err != nil {
			return err
		}
		fmt.Printf("BMI: %.1f (%s)\n", bmi, bodymetrics.Classify(bmi))
		return nil
	},
}

func init() {
	profileUpdateCmd.Flags().IntVar(&profileUpdateFlags.age, "age", 0, "age in years")
	profileUpdateCmd.Flags().Float64Var(&profileUpdateFlags.weight, "weight", 0, "weight in kg")
	profileUpdateCmd.Flags().Float64Var(&profileUpdateFlags.height, "height", 0, "height in cm")
	profileUpdateCmd.Flags().Float64Var(&profileUpdateFlags.waist, "waist", 0, "waist in cm")
	profileUpdateCmd.Flags().Float64Var(&profileUpdateFlags.hip, "hip", 0, "hip in cm")
	profileUpdateCmd.Flags().Float64Var(&profileUpdateFlags.chest, "chest", 0, "chest in cm")

	profileCmd.AddCommand(profileUpdateCmd)
}
