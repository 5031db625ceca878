package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ewhitmore/dayweaver/internal/cli"
	"github.com/ewhitmore/dayweaver/internal/db"
	"github.com/ewhitmore/dayweaver/internal/history"
	"github.com/ewhitmore/dayweaver/internal/intelligence"
	"github.com/ewhitmore/dayweaver/internal/llm"
	"github.com/ewhitmore/dayweaver/internal/orchestrator"
	"github.com/ewhitmore/dayweaver/internal/taskstore"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// DB path: env var or default ~/.dayweaver/dayweaver.db
	dbPath := os.Getenv("DAYWEAVER_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".dayweaver", "dayweaver.db")
	}

	// History store. A broken database downgrades to the built-in sample
	// data rather than blocking schedule generation.
	var store *history.SQLiteStore
	var provider history.Provider
	var recorder history.Recorder

	database, err := db.OpenDB(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: history database unavailable (%v); using sample data\n", err)
		provider = history.NewSampleProvider()
	} else {
		defer database.Close()
		store = history.NewSQLiteStore(database)
		provider = store
		recorder = store
	}

	// LLM client
	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	client := llm.NewOllamaClient(llmCfg, observer)

	// Pipeline
	pipeline := orchestrator.New(
		provider,
		intelligence.NewFactorAnalysisService(client),
		intelligence.NewScheduleGenerationService(client),
		recorder,
		os.Stderr,
	)

	app := &cli.App{
		Store:    taskstore.New(),
		Pipeline: pipeline,
		LLM:      client,
		History:  store,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}
