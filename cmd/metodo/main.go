package main

import (
	"fmt"
	"os"

	"github.com/metodo21/app-client/internal/auth"
	"github.com/metodo21/app-client/internal/client"
	"github.com/metodo21/app-client/internal/config"
	"github.com/metodo21/app-client/internal/logging"
	"github.com/metodo21/app-client/internal/observability"
	"github.com/metodo21/app-client/internal/services"
	"github.com/metodo21/app-client/internal/session"
	"github.com/spf13/cobra"
)

var verbose bool

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "metodo",
	Short: "Client for the Método 21 Dias wellness challenge",
	Long: `metodo is the command-line client for the Método 21 Dias challenge.

It tracks the daily practices, the diet checklist, calories, activities
and water intake over the 21 days, against the challenge API.

Configuration comes from the environment; METODO_BASE_URL is required.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose && os.Getenv("LOG_LEVEL") == "" {
			os.Setenv("LOG_LEVEL", "debug")
		}

		if err := logging.InitLogger(); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		if err := config.LoadConfig(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		observability.InitTracer()
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		observability.ShutdownTracer()
		if logging.Logger != nil {
			_ = logging.Logger.Sync()
		}
	},
}

// app bundles the wired-up pieces a subcommand works with.
type app struct {
	cfg        *config.Config
	store      *session.Store
	api        *client.Client
	controller *auth.Controller
	dashboard  *services.DashboardService
}

func newApp() (*app, error) {
	cfg := config.AppConfig
	logger := logging.Logger

	store := session.NewStore(cfg.TokenFile, logger)
	if _, err := store.Load(); err != nil {
		return nil, fmt.Errorf("failed to load session store: %w", err)
	}

	api := client.New(cfg, store, logger)

	controller := auth.NewController(store, api, &auth.InteractiveRedirect{
		Open: promptForCallback,
	}, auth.Options{
		AuthURL: cfg.AuthURL,
		AppURL:  cfg.AppURL,
	}, logger)

	return &app{
		cfg:        cfg,
		store:      store,
		api:        api,
		controller: controller,
		dashboard:  services.NewDashboardService(api, logger),
	}, nil
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(meCmd)
	rootCmd.AddCommand(activateCmd)
	rootCmd.AddCommand(goalsCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(dailyCmd)
	rootCmd.AddCommand(waterCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(reflectCmd)
	rootCmd.AddCommand(bmiCmd)
	rootCmd.AddCommand(foodsCmd)
	rootCmd.AddCommand(mealCmd)
	rootCmd.AddCommand(activitiesCmd)
	rootCmd.AddCommand(activityCmd)
	rootCmd.AddCommand(adminCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
