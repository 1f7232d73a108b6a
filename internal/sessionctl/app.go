package sessionctl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/shipguard/internal/common"
	"github.com/dmitrijs2005/shipguard/internal/config"
	"github.com/dmitrijs2005/shipguard/internal/filex"
	"github.com/dmitrijs2005/shipguard/internal/logging"
	"github.com/dmitrijs2005/shipguard/internal/session"
	"github.com/dmitrijs2005/shipguard/internal/storage"
	"github.com/google/uuid"
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	repo      storage.Repository
	persister *session.Persister
	store     *session.Store
	reader    *bufio.Reader
	out       io.Writer
}

// NewApp opens session storage, derives the record key and restores any
// stored session. Without a configured secret the user is prompted for one.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(os.Stderr, c.LogLevel).With("run_id", uuid.NewString())

	if c.StorageDriver == storage.DriverSQLite && filex.IsFileDSN(c.StorageDSN) {
		if _, err := filex.EnsureParentDir(filex.DSNPath(c.StorageDSN)); err != nil {
			return nil, err
		}
	}

	repo, err := storage.Open(ctx, c.StorageDriver, c.StorageDSN)
	if err != nil {
		return nil, fmt.Errorf("error initializing storage: %w", err)
	}

	secret := []byte(c.SessionSecret)
	if len(secret) == 0 {
		secret, err = GetSecret(os.Stdout, "Enter session secret: ")
		if err != nil {
			_ = repo.Close()
			return nil, err
		}
	}
	defer common.WipeByteArray(secret)

	key, err := session.KeyFromSecret(ctx, repo, secret)
	if err != nil {
		_ = repo.Close()
		return nil, err
	}

	return newApp(ctx, c, logger, repo, key, bufio.NewReader(os.Stdin), os.Stdout), nil
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger, repo storage.Repository, key []byte, reader *bufio.Reader, out io.Writer) *App {
	p := session.NewPersister(repo, key, logger, c.JWTLeeway)
	return &App{
		config:    c,
		logger:    logger,
		repo:      repo,
		persister: p,
		store:     p.Bind(ctx),
		reader:    reader,
		out:       out,
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.repo.Close()

	printlnFn("Session console (type 'help' for commands)")
	if rec := a.store.Current(); rec != nil {
		printlnFn("Restored session for", rec.Email)
	}

	runREPL(ctx, a, a.reader)
}

func (a *App) hasSession() bool {
	return a.store.Current() != nil
}

func (a *App) Set(ctx context.Context) error {
	token, err := GetSimpleText(a.reader, "Token", a.out)
	if err != nil {
		return err
	}
	id, err := GetSimpleText(a.reader, "User ID", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	if err := a.store.Set(ctx, &session.Record{Token: token, ID: id, Email: email}); err != nil {
		return err
	}
	printlnFn("Session saved")
	return nil
}

func (a *App) Show(ctx context.Context) error {
	rec := a.store.Current()
	if rec == nil {
		printlnFn("No session")
		return nil
	}
	printlnFn(fmt.Sprintf("id: %s\nemail: %s\ntoken: %s", rec.ID, rec.Email, maskToken(rec.Token)))
	return nil
}

func (a *App) Clear(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return err
	}
	printlnFn("Session cleared")
	return nil
}

func (a *App) Rekey(ctx context.Context) error {
	secret, err := GetSecret(a.out, "Enter new session secret: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(secret)

	key, err := session.KeyFromSecret(ctx, a.repo, secret)
	if err != nil {
		return err
	}

	if err := a.persister.Rekey(ctx, key); err != nil {
		if errors.Is(err, common.ErrNoSession) {
			printlnFn("No stored session to re-encrypt")
			return nil
		}
		return err
	}
	printlnFn("Session re-encrypted")
	return nil
}

// maskToken keeps the first and last four characters of long tokens.
func maskToken(token string) string {
	if len(token) <= 12 {
		return "****"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
