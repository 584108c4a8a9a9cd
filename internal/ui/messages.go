package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/dyn-scroll/internal/scroll"
	"github.com/leighmacdonald/dyn-scroll/internal/toggle"
)

type contentView int

const (
	viewMain contentView = iota
	viewHelp
)

// layoutMsg carries the terminal size and the carousel viewport carved out of it.
type layoutMsg struct {
	width      int
	height     int
	viewWidth  int
	viewHeight int
}

type frameTarget int

const (
	frameCarousel frameTarget = iota
	frameIndicator
)

// frameMsg advances the springs of one component by a single frame.
type frameMsg struct {
	target frameTarget
}

func nextFrame(target frameTarget, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(_ time.Time) tea.Msg {
		return frameMsg{target: target}
	})
}

type requestToggleMsg struct{}

func requestToggle() tea.Cmd {
	return func() tea.Msg { return requestToggleMsg{} }
}

// toggleStepMsg is a deferred toggle step that has come due.
type toggleStepMsg struct {
	cycle uint64
	index int
}

func scheduleStep(pending toggle.Pending) tea.Cmd {
	return tea.Tick(pending.Step.Delay, func(_ time.Time) tea.Msg {
		return toggleStepMsg{cycle: pending.Cycle, index: pending.Index}
	})
}

// toggleChangedMsg is broadcast after any toggle flag changed. axis is the scroll axis to use
// and indicatorAxis is the orientation the page dots should take.
type toggleChangedMsg struct {
	state         toggle.State
	phase         toggle.Phase
	step          toggle.Step
	axis          scroll.Axis
	indicatorAxis scroll.Axis
}

type carouselStateMsg struct {
	state scroll.State
}

func setCarouselState(state scroll.State) tea.Cmd {
	return func() tea.Msg { return carouselStateMsg{state: state} }
}

type jumpToIndexMsg struct {
	index int
}

func jumpToIndex(index int) tea.Cmd {
	return func() tea.Msg { return jumpToIndexMsg{index: index} }
}

// snapMsg snaps free scrolling to the nearest item unless newer scrolling happened since.
type snapMsg struct {
	seq int
}

func snapAfter(delay time.Duration, seq int) tea.Cmd {
	return tea.Tick(delay, func(_ time.Time) tea.Msg {
		return snapMsg{seq: seq}
	})
}

type clearStatusMessageMsg struct{}

func clearErrorAfter(t time.Duration) tea.Cmd {
	return tea.Tick(t, func(_ time.Time) tea.Msg {
		return clearStatusMessageMsg{}
	})
}

type statusMsg struct {
	Message string
	Err     bool
}

func setStatusMessage(msg string, err bool) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{Message: msg, Err: err}
	}
}
