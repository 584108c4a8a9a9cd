package main

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/dyn-scroll/internal/assets"
	"github.com/leighmacdonald/dyn-scroll/internal/config"
	"github.com/leighmacdonald/dyn-scroll/internal/ui"
)

type UI interface {
	Send(msg tea.Msg)
	Run() error
}

// App is the main application container. It only routes messages from background systems,
// currently config reloads, into the ui.
type App struct {
	ui            UI
	config        config.Config
	configUpdates chan config.Config
}

// NewApp returns a new application instance. To actually start the app you must call
// Start().
func NewApp(conf config.Config, configUpdates chan config.Config) *App {
	return &App{
		config:        conf,
		configUpdates: configUpdates,
	}
}

// Start runs the routing loop until the ui exits or the context is cancelled.
func (app *App) Start(ctx context.Context, done <-chan any) {
	for {
		select {
		case conf := <-app.configUpdates:
			app.config = conf
			if app.ui != nil {
				app.ui.Send(conf)
			}
		case <-ctx.Done():
			return
		case <-done:
			slog.Debug("UI exited")

			return
		}
	}
}

func (app *App) createUI(ctx context.Context, gallery *assets.Gallery, info ui.BuildInfo) UI {
	if app.ui == nil {
		app.ui = ui.New(ctx, app.config, gallery, info)
	}

	return app.ui
}
