package cmd

import (
	"fmt"

	"github.com/mbriand/finquiz/internal/app"
	"github.com/mbriand/finquiz/internal/progress"
	"github.com/mbriand/finquiz/internal/store"
	"github.com/spf13/cobra"
)

// openProgress opens the SQLite store and wraps its blob in a progress
// store. The caller owns the returned store.Store and must close it.
func openProgress(cmd *cobra.Command) (*store.Store, *progress.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	return st, progress.NewStore(st.ProgressBlob()), nil
}

// runApp opens the store and launches the TUI on the given start screen
// ("" for home).
func runApp(cmd *cobra.Command, start string) error {
	st, prog, err := openProgress(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	return app.Run(app.Options{
		Progress: prog,
		Start:    start,
	})
}
