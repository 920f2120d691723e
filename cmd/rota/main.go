package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/rota/internal/cli"
	"github.com/alexanderramin/rota/internal/config"
	"github.com/alexanderramin/rota/internal/db"
	"github.com/alexanderramin/rota/internal/logging"
	"github.com/alexanderramin/rota/internal/repository"
	"github.com/alexanderramin/rota/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	closeLog, err := logging.Setup(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return err
	}
	defer closeLog()

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	employeeRepo := repository.NewSQLiteEmployeeRepo(database)
	runRepo := repository.NewSQLiteScheduleRunRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)
	observer := service.NewSlogUseCaseObserver(slog.Default())

	app := &cli.App{
		Employees: service.NewEmployeeService(employeeRepo, uow, observer),
		Roster:    service.NewRosterService(employeeRepo, uow, observer),
		Schedule:  service.NewScheduleService(employeeRepo, runRepo, uow, observer),
		Config:    cfg,
	}

	// Forms only run on a real terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
