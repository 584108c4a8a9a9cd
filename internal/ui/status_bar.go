package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/dyn-scroll/internal/scroll"
	"github.com/leighmacdonald/dyn-scroll/internal/ui/input"
	"github.com/leighmacdonald/dyn-scroll/internal/ui/styles"
	"github.com/muesli/reflow/truncate"
)

type statusBarModel struct {
	width       int
	version     string
	state       scroll.State
	statusMsg   string
	statusError bool
}

func newStatusBarModel(version string, state scroll.State) *statusBarModel {
	return &statusBarModel{version: version, state: state}
}

func (m *statusBarModel) Init() tea.Cmd {
	return nil
}

func (m *statusBarModel) Update(msg tea.Msg) (*statusBarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case statusMsg:
		m.statusMsg = msg.Message
		m.statusError = msg.Err

		return m, clearErrorAfter(clearMessageTimeout)
	case clearStatusMessageMsg:
		m.statusError = false
		m.statusMsg = ""
	case layoutMsg:
		m.width = msg.width
	case carouselStateMsg:
		m.state = msg.state
	}

	return m, nil
}

func (m *statusBarModel) View() string {
	args := []string{
		styles.StatusAxis.Render(m.state.Axis.String()),
		styles.StatusIndex.Render(fmt.Sprintf("%d/%d %3.0f%%", m.state.ActiveIndex+1, m.state.ItemCount, m.state.Progress*100)),
		styles.StatusVersion.Render(m.version),
		styles.StatusHelp.Render(fmt.Sprintf("%s %s", input.Default.Help.Help().Key, input.Default.Help.Help().Desc)),
	}

	used := lipgloss.Width(lipgloss.JoinHorizontal(lipgloss.Top, args...))
	args = append(args, m.status(max(m.width-used, 0)))

	return lipgloss.NewStyle().Width(m.width).Background(styles.Black).Render(lipgloss.JoinHorizontal(lipgloss.Top, args...))
}

func (m *statusBarModel) status(width int) string {
	if m.statusMsg == "" || width <= 2 {
		return ""
	}

	text := truncate.StringWithTail(m.statusMsg, uint(width-2), "…") //nolint:gosec
	if m.statusError {
		return styles.StatusError.Render(text)
	}

	return styles.StatusMessage.Render(text)
}
