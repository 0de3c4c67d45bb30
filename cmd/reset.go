package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all progress data",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Print("Effacer tous les points, statistiques et examens ? [o/N] ")
			reader := bufio.NewReader(os.Stdin)
			line, _ := reader.ReadString('\n')
			answer := strings.ToLower(strings.TrimSpace(line))
			if answer != "o" && answer != "oui" && answer != "y" {
				fmt.Println("Abandon.")
				return nil
			}
		}

		st, prog, err := openProgress(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := prog.Reset(); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}
		fmt.Println("Progression remise à zéro.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}
