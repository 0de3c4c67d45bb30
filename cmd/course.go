package cmd

import (
	"fmt"

	"github.com/mbriand/finquiz/internal/course"
	"github.com/mbriand/finquiz/internal/quiz"
	"github.com/spf13/cobra"
)

var courseCmd = &cobra.Command{
	Use:   "course",
	Short: "Print the formula reference sheets",
	Run: func(cmd *cobra.Command, args []string) {
		for _, module := range []quiz.Module{quiz.ModuleFinance, quiz.ModuleManagement} {
			fmt.Printf("═══ %s ═══\n\n", quiz.ModuleLabel(module))
			for _, sheet := range course.Sheets(module) {
				fmt.Printf("%s\n%s\n\n", sheet.Title, sheet.Summary)
				for _, f := range sheet.Formulas {
					fmt.Printf("  %-22s %s\n", f.Label, f.Expr)
					if f.Note != "" {
						fmt.Printf("  %-22s (%s)\n", "", f.Note)
					}
				}
				if sheet.Pitfall != "" {
					fmt.Printf("\n  ⚠ %s\n", sheet.Pitfall)
				}
				fmt.Println()
			}
		}
	},
}
