package ui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/dyn-scroll/internal/assets"
	"github.com/leighmacdonald/dyn-scroll/internal/config"
	zone "github.com/lrstanley/bubblezone"
)

const (
	clearMessageTimeout = time.Second * 4
)

var ErrUIExit = errors.New("ui error returned")

// BuildInfo is shown on the help page.
type BuildInfo struct {
	Version    string
	Date       string
	Commit     string
	ConfigPath string
	CachePath  string
}

type UI struct {
	program *tea.Program
}

func New(ctx context.Context, conf config.Config, gallery *assets.Gallery, info BuildInfo) *UI {
	zone.NewGlobal()

	return &UI{
		program: tea.NewProgram(
			newRootModel(conf, gallery, info),
			tea.WithMouseCellMotion(),
			tea.WithAltScreen(),
			tea.WithContext(ctx),
			tea.WithFPS(max(conf.FPS, 30))),
	}
}

func (t UI) Run() error {
	if _, err := t.program.Run(); err != nil {
		return errors.Join(err, ErrUIExit)
	}

	return nil
}

func (t UI) Send(msg tea.Msg) {
	t.program.Send(msg)
}
