package main

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/dyn-scroll/internal/config"
	"github.com/stretchr/testify/require"
)

type recordingUI struct {
	sent chan tea.Msg
}

func (r recordingUI) Send(msg tea.Msg) {
	r.sent <- msg
}

func (r recordingUI) Run() error {
	return nil
}

func TestAppForwardsConfig(t *testing.T) {
	updates := make(chan config.Config)
	done := make(chan any)
	sent := make(chan tea.Msg, 1)

	app := NewApp(config.Config{ItemCount: 5}, updates)
	app.ui = recordingUI{sent: sent}

	finished := make(chan struct{})
	go func() {
		app.Start(context.Background(), done)
		close(finished)
	}()

	updates <- config.Config{ItemCount: 5, TogglePolicy: "restart"}

	select {
	case msg := <-sent:
		conf, ok := msg.(config.Config)
		require.True(t, ok)
		require.Equal(t, "restart", conf.TogglePolicy)
	case <-time.After(time.Second):
		t.Fatal("config was not forwarded")
	}

	done <- true
	<-finished
	require.Equal(t, "restart", app.config.TogglePolicy)
}
