// Package cli implements the dayweaver command tree and the interactive
// planning TUI.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/ewhitmore/dayweaver/internal/history"
	"github.com/ewhitmore/dayweaver/internal/llm"
	"github.com/ewhitmore/dayweaver/internal/orchestrator"
	"github.com/ewhitmore/dayweaver/internal/taskstore"
	"github.com/spf13/cobra"
)

// App holds references to everything the CLI commands and TUI views need.
type App struct {
	Store    *taskstore.Store
	Pipeline *orchestrator.Service
	LLM      llm.Client

	// History is the persistent outcome store, nil when running on the
	// built-in sample data only.
	History *history.SQLiteStore

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "dayweaver" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "dayweaver",
		Short: "AI-assisted daily schedule planner",
		Long: "Day Weaver plans your day: enter tasks with deadlines and priorities,\n" +
			"then let the model weave them into a schedule tuned to your past productivity.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return errors.New("dayweaver requires an interactive terminal; see `dayweaver --help` for non-interactive commands")
			}
			return RunTUI(app)
		},
	}

	root.AddCommand(
		newHistoryCmd(app),
		newCheckCmd(app),
	)

	return root
}

// newHistoryCmd lists recorded schedule outcomes from the history store.
func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded schedule outcomes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.History == nil {
				return errors.New("no history database available; set DAYWEAVER_DB to a writable path")
			}
			records, err := app.History.ListSchedules(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No schedule outcomes recorded yet.")
				return nil
			}
			for _, r := range records {
				status := " "
				if r.Completed {
					status = "✔"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %-9s %-8s %s\n",
					r.RecordedAt.Local().Format("2006-01-02"), status, r.TimeOfDay, r.Duration, r.Task)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of outcomes to list")
	return cmd
}

// newCheckCmd reports whether the model server is reachable.
func newCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check whether the model server is reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.LLM.Available(context.Background()) {
				fmt.Fprintln(cmd.OutOrStdout(), "Model server is reachable.")
				return nil
			}
			return errors.New("model server is not reachable; is Ollama running?")
		},
	}
}
