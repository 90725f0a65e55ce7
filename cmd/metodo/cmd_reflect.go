package main

import (
	"fmt"

	"github.com/metodo21/app-client/internal/models"
	"github.com/spf13/cobra"
)

var reflectCmd = &cobra.Command{
	Use:   "reflect",
	Short: "Manage the end-of-challenge reflection",
}

var reflectShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the final reflection",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		reflection, err := a.api.GetFinalReflection(cmd.Context())
		if err != nil {
			return err
		}
		if reflection == nil {
			fmt.Println("No final reflection yet. Write one with 'metodo reflect set' after day 21.")
			return nil
		}

		fmt.Printf("Concluído em: %s\n\n", reflection.DataConclusao.Format(models.DateFormat))
		fmt.Printf("Mudanças:      %s\n", reflection.Mudancas)
		fmt.Printf("Nova intenção: %s\n", reflection.NovaIntencao)
		return nil
	},
}

var reflectSetFlags struct {
	mudancas string
	intencao string
}

var reflectSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Write the final reflection",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		reflection, err := a.api.CreateFinalReflection(cmd.Context(), models.FinalReflectionCreate{
			Mudancas:     reflectSetFlags.mudancas,
			NovaIntencao: reflectSetFlags.intencao,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Reflection saved. Challenge concluded on %s.\n", reflection.DataConclusao.Format(models.DateFormat))
		return nil
	},
}

func init() {
	reflectSetCmd.Flags().StringVar(&reflectSetFlags.mudancas, "mudancas", "", "what changed over the 21 days")
	reflectSetCmd.Flags().StringVar(&reflectSetFlags.intencao, "intencao", "", "your intention going forward")
	reflectSetCmd.MarkFlagRequired("mudancas")

	reflectCmd.AddCommand(reflectShowCmd)
	reflectCmd.AddCommand(reflectSetCmd)
}
