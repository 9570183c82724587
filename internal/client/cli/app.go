package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/lufa/internal/client/client"
	"github.com/dmitrijs2005/lufa/internal/client/config"
	"github.com/dmitrijs2005/lufa/internal/client/models"
	"github.com/dmitrijs2005/lufa/internal/decode"
	"github.com/dmitrijs2005/lufa/internal/logging"
	"golang.org/x/text/language"
)

// lufaService is the part of client.Client the CLI drives.
type lufaService interface {
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	IsAuthenticated(ctx context.Context) bool
	CurrentEmail(ctx context.Context) (string, error)
	Profile(ctx context.Context) (*models.Profile, error)
	Cards(ctx context.Context) (decode.Indexed[models.Card], error)
	Transactions(ctx context.Context) ([]models.Transaction, error)
	ActiveOrder(ctx context.Context) (*models.Order, error)
	TrackOrder(ctx context.Context, orderID string) (*models.OrderTracking, error)
}

type App struct {
	config *config.Config
	lufa   lufaService
	lang   language.Tag
	reader *bufio.Reader
	out    io.Writer
	log    logging.Logger
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	lang, err := client.ParseLanguage(c.Language)
	if err != nil {
		return nil, err
	}

	lc, err := client.NewHTTPClient(c.BaseURL, lang, c.Timeout, client.WithLogger(log))
	if err != nil {
		return nil, err
	}

	return &App{
		config: c,
		lufa:   lc,
		lang:   lang.Tag(),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		log:    log,
	}, nil
}

// Run blocks in the REPL until the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Lufa CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.lufa.IsAuthenticated(ctx)
}

func (a *App) getStatus(ctx context.Context) string {
	if !a.isLoggedIn(ctx) {
		return ""
	}
	email, err := a.lufa.CurrentEmail(ctx)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("(%s)", email)
}
