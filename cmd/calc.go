package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mbriand/finquiz/internal/calc"
	"github.com/spf13/cobra"
)

var calcCmd = &cobra.Command{
	Use:   "calc [expression]",
	Short: "Evaluate an arithmetic expression",
	Long: `Evaluate an arithmetic expression with the exam calculator syntax:
+ - * / ^ parentheses, √ for square root, % as "divide by 100", and a
comma or point as decimal separator.

With no argument, starts an interactive loop (empty line to quit).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return evalAndPrint(strings.Join(args, " "))
		}

		scanner := bufio.NewScanner(os.Stdin)
		fmt.Println("Calculatrice FinQuiz — ligne vide pour quitter.")
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				break
			}
			if err := evalAndPrint(line); err != nil {
				fmt.Fprintln(os.Stderr, "erreur :", err)
			}
		}
		return scanner.Err()
	},
}

func evalAndPrint(expr string) error {
	res, err := calc.Eval(expr)
	if err != nil {
		return err
	}
	fmt.Printf("%g\n", res)
	return nil
}
