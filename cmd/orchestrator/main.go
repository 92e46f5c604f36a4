package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mattn/go-isatty"

	"github.com/jmercier/orchestrator/internal/cli"
	"github.com/jmercier/orchestrator/internal/db"
	"github.com/jmercier/orchestrator/internal/intelligence"
	"github.com/jmercier/orchestrator/internal/llm"
	"github.com/jmercier/orchestrator/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	path, err := dbPath()
	if err != nil {
		return err
	}

	conn, err := db.OpenDB(path)
	if err != nil {
		return err
	}
	defer conn.Close()

	uow := db.NewSQLiteUnitOfWork(conn)

	var observer service.UseCaseObserver
	if debug, _ := strconv.ParseBool(os.Getenv("ORCH_DEBUG")); debug {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Features: service.NewFeatureService(conn, uow, observer),
		Sprints:  service.NewSprintService(conn, uow, observer),
		RunRates: service.NewRunRateService(conn, observer),
		Logs:     service.NewLogService(conn),
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var llmObserver llm.Observer
		if llmCfg.LogCalls {
			llmObserver = llm.NewLogObserver(os.Stderr)
		}
		client := llm.NewOllamaClient(llmCfg, llmObserver)
		app.Suggestions = intelligence.NewSuggestionService(client, llmCfg.Enabled)
	}

	return cli.NewRootCmd(app).Execute()
}

// dbPath resolves the database location: ORCH_DB when set, otherwise
// ~/.orchestrator/orchestrator.db.
func dbPath() (string, error) {
	if path := os.Getenv("ORCH_DB"); path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".orchestrator", "orchestrator.db"), nil
}
