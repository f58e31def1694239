package cli

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"

	"github.com/dmitrijs2005/sentimeter/internal/client/client"
	"github.com/dmitrijs2005/sentimeter/internal/client/config"
	"github.com/dmitrijs2005/sentimeter/internal/client/credentials"
	"github.com/dmitrijs2005/sentimeter/internal/client/prompt"
	"github.com/dmitrijs2005/sentimeter/internal/client/repositories/history"
	"github.com/dmitrijs2005/sentimeter/internal/client/services"
	"github.com/dmitrijs2005/sentimeter/internal/logging"
	"github.com/google/uuid"
)

type App struct {
	config    *config.Config
	store     credentials.Store
	sentiment services.SentimentService
	prompter  prompt.Prompter
	console   *Console
	log       logging.Logger
}

// NewApp builds the application graph. The single *http.Client created here
// is shared by every classification for the lifetime of the process.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.NewConsoleLogger(os.Stderr, c.LogLevel).With("session", uuid.NewString())

	var db *sql.DB
	if c.HistoryPath != "" {
		var err error
		db, err = history.InitDatabase(ctx, c.HistoryPath)
		if err != nil {
			log.Error(ctx, "error initializing history database", "path", c.HistoryPath, "error", err)
			return nil, err
		}
	}

	httpClient := &http.Client{Timeout: c.RequestTimeout}
	api := client.NewHTTPClient(httpClient, c.Endpoint, log)

	return &App{
		config:    c,
		store:     credentials.NewFileStore(c.CredentialPath),
		sentiment: services.NewSentimentService(api, db, c.HistoryLimit, log),
		prompter:  prompt.NewStdTerminal(),
		console:   NewConsole(os.Stdout, os.Stderr),
		log:       log,
	}, nil
}

// Run drives the protocol to its end and returns the process exit code.
func (a *App) Run(ctx context.Context) int {
	defer func() {
		if err := a.sentiment.Close(); err != nil {
			a.log.Warn(ctx, "closing history database", "error", err)
		}
	}()

	return a.finish(ctx, a.run(ctx))
}

func (a *App) run(ctx context.Context) error {
	if a.config.Recent > 0 {
		return a.showRecent(ctx, a.config.Recent)
	}

	cred, err := a.credential(ctx)
	if err != nil {
		return err
	}

	return a.dispatch(ctx, cred)
}

// finish reports how the protocol ended and maps it to an exit code.
func (a *App) finish(ctx context.Context, err error) int {
	if err == nil {
		return ExitOK
	}

	var exit *Exit
	if !errors.As(err, &exit) {
		exit = Fatal("An error occurred", err)
	}

	if exit.Code == ExitOK {
		a.log.Debug(ctx, "terminating", "reason", exit.Error())
		a.console.Notice(exit.Message)
		return exit.Code
	}

	a.log.Debug(ctx, "terminating with failure", "reason", exit.Error(), "code", exit.Code)
	a.console.Failure(exit.Error())
	return exit.Code
}
