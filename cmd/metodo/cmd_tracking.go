package main

import (
	"fmt"

	"github.com/metodo21/app-client/internal/models"
	"github.com/spf13/cobra"
)

var foodsFlags struct {
	category string
	search   string
}

var foodsCmd = &cobra.Command{
	Use:   "foods",
	Short: "Browse the food catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		foods, err := a.api.ListFoods(cmd.Context(), foodsFlags.category, foodsFlags.search)
		if err != nil {
			return err
		}

		for _, food := range foods {
			detox := ""
			if food.DetoxFriendly {
				detox = "  (detox)"
			}
			fmt.Printf("%-20s %-12s %4d kcal/100g%s\n", food.FoodID, food.Category, food.CaloriesPer100g, detox)
		}
		return nil
	},
}

var mealFlags struct {
	mealType string
	foodID   string
	portions float64
}

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Log meals",
}

var mealAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a food portion against today",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		entry, err := a.api.AddMeal(cmd.Context(), models.FoodEntryCreate{
			MealType: mealFlags.mealType,
			FoodID:   mealFlags.foodID,
			Portions: mealFlags.portions,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Logged %s (%.0fg): %d kcal\n", entry.FoodName, entry.Portions, entry.Calories)

		today, err := a.api.TodayCalories(cmd.Context())
		if err == nil {
			fmt.Printf("Total today: %d kcal\n", today.TotalCalories)
		}
		return nil
	},
}

var activitiesCategory string

var activitiesCmd = &cobra.Command{
	Use:   "activities",
	Short: "Browse the activity catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		activities, err := a.api.ListActivities(cmd.Context(), activitiesCategory)
		if err != nil {
			return err
		}

		for _, activity := range activities {
			fmt.Printf("%-20s %-12s MET %.1f\n", activity.ActivityID, activity.Category, activity.METValue)
		}
		return nil
	},
}

var activityFlags struct {
	activityID string
	duration   int
	intensity  string
}

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Log activities",
}

var activityAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log an activity session against today",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		entry, err := a.api.AddActivity(cmd.Context(), models.ActivityEntryCreate{
			ActivityID: activityFlags.activityID,
			Duration:   activityFlags.duration,
			Intensity:  activityFlags.intensity,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Logged %s (%d min, %s): %d kcal burned\n",
			entry.ActivityName, entry.Duration, entry.Intensity, entry.CaloriesBurned)
		return nil
	},
}

func init() {
	foodsCmd.Flags().StringVar(&foodsFlags.category, "category", "", "filter by category")
	foodsCmd.Flags().StringVar(&foodsFlags.search, "search", "", "search by name")

	mealAddCmd.Flags().StringVar(&mealFlags.mealType, "meal", "almoco", "meal type: cafe_manha, almoco, jantar, lanche")
	mealAddCmd.Flags().StringVar(&mealFlags.foodID, "food", "", "food id from 'metodo foods'")
	mealAddCmd.Flags().Float64Var(&mealFlags.portions, "portions", 100, "portion size in grams")
	mealAddCmd.MarkFlagRequired("food")

	activitiesCmd.Flags().StringVar(&activitiesCategory, "category", "", "filter by category")

	activityAddCmd.Flags().StringVar(&activityFlags.activityID, "activity", "", "activity id from 'metodo activities'")
	activityAddCmd.Flags().IntVar(&activityFlags.duration, "duration", 30, "duration in minutes")
	activityAddCmd.Flags().StringVar(&activityFlags.intensity, "intensity", "media", "intensity: baixa, media, alta")
	activityAddCmd.MarkFlagRequired("activity")

	mealCmd.AddCommand(mealAddCmd)
	activityCmd.AddCommand(activityAddCmd)
}
