package cmd

import (
	"github.com/spf13/cobra"
)

var examCmd = &cobra.Command{
	Use:   "exam",
	Short: "Start a timed exam session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "exam")
	},
}
