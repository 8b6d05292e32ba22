package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/avictorov/studydesk/internal/assistant"
	"github.com/avictorov/studydesk/internal/cli"
	"github.com/avictorov/studydesk/internal/db"
	"github.com/avictorov/studydesk/internal/llm"
	"github.com/avictorov/studydesk/internal/repository"
	"github.com/avictorov/studydesk/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// DB path: env var or default ~/.studydesk/studydesk.db
	dbPath := os.Getenv("STUDYDESK_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".studydesk", "studydesk.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	subjectRepo := repository.NewSQLiteSubjectRepo(database)
	routineRepo := repository.NewSQLiteRoutineRepo(database)
	entryRepo := repository.NewSQLiteEntryRepo(database)
	slotRepo := repository.NewSQLitePlanSlotRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	// AI client is wired only when an API key is configured; the tips
	// service falls back to deterministic advice without one.
	var aiClient llm.Client
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled() {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		aiClient = llm.NewGeminiClient(llmCfg, observer)
	}

	app := &cli.App{
		Subjects: service.NewSubjectService(subjectRepo),
		Routines: service.NewRoutineService(routineRepo),
		Entries:  service.NewEntryService(entryRepo, uow),
		Plan:     service.NewPlanService(slotRepo, uow),
		Profile:  service.NewProfileService(profileRepo),
		Reports:  service.NewReportService(subjectRepo, routineRepo, entryRepo, profileRepo),
		Tips:     assistant.NewTipsService(aiClient, subjectRepo, entryRepo, profileRepo),

		Interactive: isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
	}

	return cli.NewRootCmd(app).Execute()
}
