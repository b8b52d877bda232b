// Package cli is the interactive shell over the portale client: login,
// session inspection, and raw verb calls against the backend.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"

	_ "modernc.org/sqlite"

	"github.com/portalesuite/portale-client/internal/api"
	"github.com/portalesuite/portale-client/internal/auth"
	"github.com/portalesuite/portale-client/internal/config"
	"github.com/portalesuite/portale-client/internal/logging"
	"github.com/portalesuite/portale-client/internal/session"
)

type App struct {
	config *config.Config
	api    *api.Client
	auth   auth.Service
	store  session.Store
	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer
}

// NewApp wires config, session database, api client and auth service
// together.
func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	db, err := session.OpenDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	store := session.NewSQLiteStore(db, log)
	apiClient := api.New(cfg.BaseURL, store, nil, log)

	return &App{
		config: cfg,
		api:    apiClient,
		auth:   auth.NewService(apiClient, store),
		store:  store,
		db:     db,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	a.repl(ctx)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.store.Token(ctx) != ""
}
