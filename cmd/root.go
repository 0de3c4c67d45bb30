package cmd

import (
	"github.com/mbriand/finquiz/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "finquiz",
	Short: "Terminal trainer for finance and commercial math",
	Long:  "FinQuiz — terminal revision app for financial mathematics and commercial management (ISTEC partiels).",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides FINQUIZ_DB env var)")

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(examCmd)
	rootCmd.AddCommand(courseCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then FINQUIZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
