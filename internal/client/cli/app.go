package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"

	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/bankterm/internal/client/api"
	"github.com/dmitrijs2005/bankterm/internal/client/config"
	"github.com/dmitrijs2005/bankterm/internal/client/models"
	"github.com/dmitrijs2005/bankterm/internal/client/repositories/sessiondata"
	"github.com/dmitrijs2005/bankterm/internal/client/session"
	"github.com/dmitrijs2005/bankterm/internal/logging"
	"github.com/dmitrijs2005/bankterm/internal/syncx"
)

// sessionStore is the slice of the session layer the commands use.
// *session.Store satisfies it; tests provide fakes.
type sessionStore interface {
	Init(ctx context.Context) error
	Snapshot() session.Snapshot
	Subscribe(fn func(session.Snapshot)) func()
	Login(ctx context.Context, creds models.Credentials) (*models.User, error)
	Register(ctx context.Context, data models.Registration) (*models.User, error)
	Logout(ctx context.Context) error
	RefreshIdentity(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, patch models.ProfilePatch) (*models.User, error)
	ChangePassword(ctx context.Context, current, newPassword string) error
}

// bankAPI is the slice of the gateway the data commands use.
// *api.Client satisfies it; tests provide fakes.
type bankAPI interface {
	GetDashboard(ctx context.Context) (*models.Dashboard, error)
	ListAccounts(ctx context.Context) ([]models.Account, error)
	CreateAccount(ctx context.Context, req models.NewAccount) (*models.Account, error)
	UpdateAccount(ctx context.Context, id int64, patch models.AccountPatch) (*models.Account, error)
	CloseAccount(ctx context.Context, id int64) error
	ListTransactions(ctx context.Context, accountID int64, page, size int) (*models.Page[models.Transaction], error)
	Deposit(ctx context.Context, req models.CashRequest) (*models.Transaction, error)
	Withdraw(ctx context.Context, req models.CashRequest) (*models.Transaction, error)
	Transfer(ctx context.Context, req models.TransferRequest) (*models.Transaction, error)

	AdminDashboard(ctx context.Context) (*models.AdminDashboard, error)
	AdminListUsers(ctx context.Context, params api.ListParams) (*models.Page[models.User], error)
	AdminGetUser(ctx context.Context, userID int64) (*models.User, error)
	AdminToggleUserStatus(ctx context.Context, userID int64) (*models.User, error)
	AdminUpdateUserRole(ctx context.Context, userID int64, role models.Role) (*models.User, error)
	AdminDeleteUser(ctx context.Context, userID int64) error
	AdminListAccounts(ctx context.Context, params api.ListParams) (*models.Page[models.Account], error)
	AdminGetAccount(ctx context.Context, accountID int64) (*models.Account, error)
	AdminUpdateAccountStatus(ctx context.Context, accountID int64, status models.AccountStatus) (*models.Account, error)
	AdminAdjustBalance(ctx context.Context, accountID int64, adj models.BalanceAdjustment) (*models.Account, error)
	AdminListTransactions(ctx context.Context, params api.ListParams) (*models.Page[models.Transaction], error)
	AdminGetTransaction(ctx context.Context, txID int64) (*models.Transaction, error)
	AdminAnalytics(ctx context.Context, period string) (*models.Analytics, error)
}

// App wires the gateway, the session store, and the terminal together.
type App struct {
	config  *config.Config
	session sessionStore
	bank    bankAPI
	log     logging.Logger
	db      *sql.DB
	reader  *bufio.Reader
	out     io.Writer

	txLatest syncx.Latest
}

// NewApp builds the full client: local database, API gateway with
// construction-injected credential source and authorization-failure
// callback, and the session store on top of both.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	db, err := sessiondata.Open(ctx, c.DatabasePath)
	if err != nil {
		return nil, err
	}

	// The gateway's hooks close over the store pointer, which is assigned
	// right below; both hooks only run once requests are issued.
	var store *session.Store
	gateway := api.New(c.APIBaseURL, c.RequestTimeout,
		api.WithCredentialSource(func() string {
			if store == nil {
				return ""
			}
			return store.Token()
		}),
		api.WithAuthorizationFailureHandler(func() {
			if store != nil {
				store.ForceLogout(context.Background())
			}
		}),
	)
	store = session.NewStore(gateway, db, logger)

	return &App{
		config:  c,
		session: store,
		bank:    gateway,
		log:     logger,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run rehydrates the session and hands control to the REPL. A watcher on the
// session store announces forced logouts (the terminal equivalent of the
// redirect to the login screen).
func (a *App) Run(ctx context.Context) error {
	defer a.db.Close()

	printlnFn("bankterm — type 'help' for commands")

	if err := a.session.Init(ctx); err != nil {
		return fmt.Errorf("session init: %w", err)
	}

	wasAuthenticated := a.session.Snapshot().Authenticated()
	unsubscribe := a.session.Subscribe(func(snap session.Snapshot) {
		if wasAuthenticated && !snap.Authenticated() {
			printlnFn("Session ended. Please log in again.")
		}
		wasAuthenticated = snap.Authenticated()
	})
	defer unsubscribe()

	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
	return nil
}

// Guard applies the route guard to the current session snapshot.
func (a *App) Guard(admin bool) Decision {
	return Guard(a.session.Snapshot(), admin)
}

// status renders the prompt suffix, e.g. "(ann@bank.test admin)".
func (a *App) status() string {
	snap := a.session.Snapshot()
	if snap.Loading {
		return "(loading)"
	}
	if snap.User == nil {
		return ""
	}
	s := snap.User.Email
	if snap.Admin() {
		s += " admin"
	}
	return fmt.Sprintf("(%s)", s)
}
