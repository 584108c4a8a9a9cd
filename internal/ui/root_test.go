package ui

import (
	"context"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/dyn-scroll/internal/assets"
	"github.com/leighmacdonald/dyn-scroll/internal/config"
	"github.com/leighmacdonald/dyn-scroll/internal/scroll"
	"github.com/leighmacdonald/dyn-scroll/internal/toggle"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func testConfig() config.Config {
	return config.Config{
		ItemCount:       5,
		StartAxis:       "vertical",
		FPS:             60,
		TogglePolicy:    "ignore",
		OpacityDelayMs:  100,
		OffsetDelayMs:   100,
		FadeInDelayMs:   400,
		SpringFrequency: 6,
		SpringDamping:   0.6,
		SnapDelayMs:     150,
	}
}

func newTestRoot(t *testing.T) rootModel {
	t.Helper()

	gallery, err := assets.Load(context.Background(), "", 5, nil)
	require.NoError(t, err)

	model, _ := newRootModel(testConfig(), gallery, BuildInfo{Version: "test"}).Update(tea.WindowSizeMsg{Width: 80, Height: 40})

	root, ok := model.(rootModel)
	require.True(t, ok)

	return root
}

func runes(value string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(value)}
}

func update(t *testing.T, root rootModel, msg tea.Msg) rootModel {
	t.Helper()

	model, _ := root.Update(msg)
	next, ok := model.(rootModel)
	require.True(t, ok)

	return next
}

// settle runs carousel frames until the spring comes to rest.
func settle(t *testing.T, root rootModel) rootModel {
	t.Helper()

	for range 5000 {
		if !root.carousel.animating {
			return root
		}
		root = update(t, root, frameMsg{target: frameCarousel})
	}

	t.Fatal("carousel never settled")

	return root
}

func TestViewportSize(t *testing.T) {
	width, height := viewportSize(80, 40)
	require.Equal(t, 31, height)
	require.Equal(t, 49, width)

	width, height = viewportSize(30, 40)
	require.Equal(t, 25, width)
	require.Equal(t, 31, height)

	width, height = viewportSize(5, 5)
	require.Zero(t, width)
	require.Zero(t, height)
}

func TestRootIgnoresInputBeforeSize(t *testing.T) {
	gallery, err := assets.Load(context.Background(), "", 5, nil)
	require.NoError(t, err)

	root := newRootModel(testConfig(), gallery, BuildInfo{})
	next := update(t, root, runes("t"))
	require.False(t, next.controller.State().AxisFlipped)
	require.Empty(t, next.View())
}

func TestRootToggleSequence(t *testing.T) {
	root := newTestRoot(t)
	require.Equal(t, scroll.Vertical, root.carousel.state.Axis)

	root = update(t, root, runes("t"))
	require.True(t, root.controller.State().AxisFlipped)
	require.Equal(t, toggle.Transitioning, root.controller.Phase())
	require.Equal(t, scroll.Horizontal, root.carousel.state.Axis)
	require.Equal(t, trimFor(scroll.Horizontal).to, root.indicator.trimTo.target)

	// A second press while switching is ignored by default.
	root = update(t, root, runes("t"))
	require.True(t, root.controller.State().AxisFlipped)

	cycle := root.controller.Cycle()
	root = update(t, root, toggleStepMsg{cycle: cycle, index: 1})
	require.False(t, root.indicator.toggle.IndicatorVisible())
	require.InDelta(t, 0, root.indicator.opacity.pos, 1e-9)

	root = update(t, root, toggleStepMsg{cycle: cycle, index: 2})
	require.Equal(t, scroll.Horizontal, root.indicator.dotsAxis)
	require.Empty(t, root.indicator.Dots(scroll.Vertical))

	root = update(t, root, toggleStepMsg{cycle: cycle, index: 3})
	require.True(t, root.indicator.toggle.IndicatorVisible())
	require.InDelta(t, 1, root.indicator.opacity.target, 1e-9)
	require.Equal(t, toggle.Idle, root.controller.Phase())
	require.Equal(t, toggle.State{AxisFlipped: true, OffsetPhase: true}, root.controller.State())

	// Late duplicates do nothing.
	root = update(t, root, toggleStepMsg{cycle: cycle, index: 3})
	require.Equal(t, toggle.State{AxisFlipped: true, OffsetPhase: true}, root.controller.State())
}

func TestRootPagingKeepsIndexAcrossToggle(t *testing.T) {
	root := newTestRoot(t)

	for range 2 {
		root = update(t, root, runes("j"))
		root = settle(t, root)
	}
	require.Equal(t, 2, root.carousel.state.ActiveIndex)
	require.InDelta(t, 0.5, root.carousel.state.Progress, 1e-9)

	root = update(t, root, runes("t"))
	require.Equal(t, scroll.Horizontal, root.carousel.state.Axis)
	require.Equal(t, 2, root.carousel.state.ActiveIndex)
	require.InDelta(t, root.carousel.pageOffset(2), root.carousel.offset.pos, 1e-9)

	root = update(t, root, runes("G"))
	root = settle(t, root)
	require.Equal(t, 4, root.carousel.state.ActiveIndex)
	require.InDelta(t, 1, root.carousel.state.Progress, 1e-9)

	// Paging past the end stays on the last item.
	root = update(t, root, runes("l"))
	root = settle(t, root)
	require.Equal(t, 4, root.carousel.state.ActiveIndex)
}

func TestRootHelpBlocksScrolling(t *testing.T) {
	root := newTestRoot(t)

	root = update(t, root, runes("?"))
	require.Equal(t, viewHelp, root.currentView)
	require.Contains(t, root.View(), "Version")

	root = update(t, root, runes("t"))
	require.False(t, root.controller.State().AxisFlipped)

	root = update(t, root, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, viewMain, root.currentView)
}

func TestRootView(t *testing.T) {
	root := newTestRoot(t)

	view := root.View()
	require.Contains(t, view, title)
	require.Contains(t, view, buttonLabel)
	require.Contains(t, view, dotGlyph)
	require.LessOrEqual(t, lipgloss.Height(view), 40)

	for _, line := range strings.Split(view, "\n") {
		require.LessOrEqual(t, lipgloss.Width(line), 80)
	}
}

func TestRootConfigReload(t *testing.T) {
	root := newTestRoot(t)

	conf := testConfig()
	conf.TogglePolicy = "restart"
	conf.FPS = 30
	root = update(t, root, conf)
	require.Equal(t, toggle.PolicyRestart, root.controller.Policy())
	require.Equal(t, frameIntervalFor(30), root.carousel.frameInterval)

	root = update(t, root, runes("t"))
	root = update(t, root, runes("t"))
	require.False(t, root.controller.State().AxisFlipped)
	require.True(t, root.controller.State().OffsetPhase)
}
