package cli

import (
	"context"
	"fmt"

	"github.com/amandev/folio/internal/cli/formatter"
	"github.com/amandev/folio/internal/config"
	"github.com/amandev/folio/internal/content"
	"github.com/amandev/folio/internal/logging"
	"github.com/amandev/folio/internal/service"
	"go.uber.org/zap"
)

// App holds the configuration, logger, services and loaded content used by
// the CLI commands and the TUI.
type App struct {
	Config  *config.Config
	Logger  *zap.Logger
	Content service.ContentService
	Store   *content.Store
	Links   LinkOpener

	// IsInteractive reports whether stdin is a terminal. The root command
	// starts the TUI only when it returns true.
	IsInteractive func() bool

	// runProgram starts the TUI. Tests replace it to avoid a real terminal.
	runProgram func(m appModel, mouse bool) error

	mdStyle string
}

// Setup loads configuration, builds the logger and content service, and
// loads the content named by contentPath (or the configured path, or the
// builtin content) unless loadContent is false. Fields already set are
// left alone, so tests can pre-wire an App.
func (a *App) Setup(ctx context.Context, configPath, contentPath string, loadContent bool) error {
	if a.Config == nil {
		cfg, err := config.Load(config.ResolvePath(configPath))
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		a.Config = cfg
	}
	a.markdownStyle()
	if a.Logger == nil {
		logger, err := logging.New(a.Config.Logging)
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		a.Logger = logger
	}
	if a.Content == nil {
		a.Content = service.NewContentService(service.NewZapUseCaseObserver(a.Logger))
	}
	if a.Links == nil {
		a.Links = newSystemLinks(a.Logger)
	}
	if !loadContent {
		return nil
	}
	if contentPath == "" {
		contentPath = a.Config.Content.Path
	}
	if a.Store == nil || contentPath != "" {
		store, err := a.Content.Load(ctx, contentPath)
		if err != nil {
			return fmt.Errorf("loading content: %w", err)
		}
		a.Store = store
	}
	return nil
}

// Close flushes the logger.
func (a *App) Close() {
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
}

// markdownStyle is the configured glamour style with "auto" resolved. The
// first call may query the terminal, so Setup makes it before any TUI runs.
func (a *App) markdownStyle() string {
	if a.mdStyle == "" {
		a.mdStyle = formatter.ResolveMarkdownStyle(a.Config.UI.MarkdownStyle)
	}
	return a.mdStyle
}

func (a *App) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}
