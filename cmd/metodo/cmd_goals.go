package main

import (
	"fmt"

	"github.com/metodo21/app-client/internal/models"
	"github.com/spf13/cobra"
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Manage the challenge goals",
}

var goalsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		goals, err := a.api.GetGoals(cmd.Context())
		if err != nil {
			return err
		}
		if goals == nil {
			fmt.Println("No goals set yet. Run 'metodo goals set' to start the challenge.")
			return nil
		}

		fmt.Printf("Meta principal:      %s\n", goals.MetaPrincipal)
		fmt.Printf("Desejo transformar:  %s\n", goals.DesejoTransformar)
		fmt.Printf("Sentimento desejado: %s\n", goals.SentimentoDesejado)
		fmt.Printf("Compromisso:         %s\n", goals.Compromisso)
		if goals.PesoInicial != "" {
			fmt.Printf("Peso inicial:        %s\n", goals.PesoInicial)
		}
		if goals.MedidasIniciais != "" {
			fmt.Printf("Medidas iniciais:    %s\n", goals.MedidasIniciais)
		}
		fmt.Printf("Início do desafio:   %s\n", goals.CreatedAt.Format(models.DateFormat))
		return nil
	},
}

var goalsSetFlags struct {
	meta       string
	desejo     string
	sentimento string
	compromiso string
	peso       string
	medidas    string
}

var goalsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the challenge goals, which starts day 1",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		goals, err := a.api.CreateGoals(cmd.Context(), models.UserGoalsCreate{
			MetaPrincipal:      goalsSetFlags.meta,
			DesejoTransformar:  goalsSetFlags.desejo,
			SentimentoDesejado: goalsSetFlags.sentimento,
			Compromisso:        goalsSetFlags.compromiso,
			PesoInicial:        goalsSetFlags.peso,
			MedidasIniciais:    goalsSetFlags.medidas,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Goals saved. Day 1 of the challenge is %s.\n", goals.CreatedAt.Format(models.DateFormat))
		return nil
	},
}

func init() {
	goalsSetCmd.Flags().StringVar(&goalsSetFlags.meta, "meta", "", "main goal for the 21 days")
	goalsSetCmd.Flags().StringVar(&goalsSetFlags.desejo, "desejo", "", "what you want to transform")
	goalsSetCmd.Flags().StringVar(&goalsSetFlags.sentimento, "sentimento", "", "how you want to feel")
	goalsSetCmd.Flags().StringVar(&goalsSetFlags.compromiso, "compromisso", "", "your commitment")
	goalsSetCmd.Flags().StringVar(&goalsSetFlags.peso, "peso", "", "initial weight (optional)")
	goalsSetCmd.Flags().StringVar(&goalsSetFlags.medidas, "medidas", "", "initial measurements (optional)")

	goalsCmd.AddCommand(goalsShowCmd)
	goalsCmd.AddCommand(goalsSetCmd)
}
