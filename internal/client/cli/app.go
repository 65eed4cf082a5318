package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/dmitrijs2005/lifetrack/internal/client/client"
	"github.com/dmitrijs2005/lifetrack/internal/client/config"
	"github.com/dmitrijs2005/lifetrack/internal/client/services"
	"github.com/dmitrijs2005/lifetrack/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the application services behind the interactive commands.
// The session field is nil until the user unlocks the store; commands that
// need the key check it through isLoggedIn / currentSession.
type App struct {
	config          *config.Config
	authService     services.AuthService
	entryService    services.EntryService
	goalService     services.GoalService
	vaultService    services.VaultService
	transferService services.TransferService
	session         *services.Session
	reader          *bufio.Reader
	log             logging.Logger
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {

	ctx := context.Background()

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	return &App{
		config:          c,
		authService:     services.NewAuthService(db, c.KDFIterations, c.SessionTTL),
		entryService:    services.NewEntryService(db),
		goalService:     services.NewGoalService(db),
		vaultService:    services.NewVaultService(db),
		transferService: services.NewTransferService(db),
		reader:          bufio.NewReader(os.Stdin),
		log:             log,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session != nil && a.session.Valid()
}

func (a *App) getStatus() string {
	if a.isLoggedIn() {
		return "(unlocked)"
	}
	return "(locked)"
}

// Run starts the interactive loop and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	a.log.Info(ctx, "starting", "database", a.config.DatabasePath)
	printlnFn("Welcome to LifeTrack CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
	if a.session != nil {
		a.authService.Logout(a.session)
	}
}
