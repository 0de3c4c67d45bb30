package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print progress statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, prog, err := openProgress(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		data := prog.Read()

		fmt.Printf("Points : %d\n", data.TotalPoints)
		fmt.Printf("Examens passés : %d\n", len(data.History))
		fmt.Printf("Réussite globale : %.0f%%\n", data.GlobalAccuracy()*100)

		if len(data.Stats) > 0 {
			fmt.Println("\nPar thème :")
			for _, s := range data.Stats {
				if s.TotalAnswered == 0 {
					continue
				}
				acc := float64(s.CorrectAnswers) / float64(s.TotalAnswered) * 100
				fmt.Printf("  %-28s %3d réponses  %3.0f%%\n", s.Theme, s.TotalAnswered, acc)
			}
		}

		if len(data.History) > 0 {
			fmt.Println("\nDerniers examens :")
			start := len(data.History) - 5
			if start < 0 {
				start = 0
			}
			for _, a := range data.History[start:] {
				fmt.Printf("  %s  %-10s  %d/%d\n",
					a.Date.Format("02/01/2006 15:04"), a.Module, a.Score, a.Total)
			}
		}

		return nil
	},
}
