// Package postbuild wires configuration, logging, the obfuscator and the
// optional publisher into the single post-build pass run by cmd/postbuild.
package postbuild

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/shipguard/internal/config"
	"github.com/dmitrijs2005/shipguard/internal/logging"
	"github.com/dmitrijs2005/shipguard/internal/obfuscate"
	"github.com/dmitrijs2005/shipguard/internal/publish"
	"github.com/dmitrijs2005/shipguard/internal/transform"
	"github.com/google/uuid"
)

// uploader is satisfied by *publish.Publisher.
type uploader interface {
	Publish(ctx context.Context, dir string) ([]string, error)
}

// newPublisher is a test seam for publish.NewS3Publisher.
var newPublisher = func(ctx context.Context, s publish.Settings, logger logging.Logger) (uploader, error) {
	return publish.NewS3Publisher(ctx, s, logger)
}

type App struct {
	config      *config.Config
	logger      logging.Logger
	transformer *transform.Transformer
	publisher   uploader
}

// NewApp builds the pass from c. Action lines go to out, structured logs to
// logOut.
func NewApp(ctx context.Context, c *config.Config, out, logOut io.Writer) (*App, error) {
	logger := logging.New(logOut, c.LogLevel).With("run_id", uuid.NewString())

	obf, err := obfuscate.New(c.ObfuscatorSettings())
	if err != nil {
		return nil, fmt.Errorf("obfuscator init error: %w", err)
	}

	app := &App{
		config:      c,
		logger:      logger,
		transformer: transform.NewTransformer(obf, out, logger),
	}

	if c.PublishEnabled() {
		p, err := newPublisher(ctx, c.PublishSettings(), logger)
		if err != nil {
			return nil, fmt.Errorf("publisher init error: %w", err)
		}
		app.publisher = p
	}

	return app, nil
}

// Run transforms the configured bundle directory and, when enabled, uploads
// the result. The first error stops everything.
func (app *App) Run(ctx context.Context) error {
	dir := app.config.AssetsPath()

	app.logger.Info(ctx, "Starting post-build pass...",
		"dir", dir,
		"engine", app.config.Engine,
		"sourcemaps_disabled", app.config.SourcemapsDisabled())

	if _, err := app.transformer.Run(ctx, dir); err != nil {
		return err
	}

	if app.publisher == nil {
		return nil
	}

	_, err := app.publisher.Publish(ctx, dir)
	return err
}
