package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/dyn-scroll/internal/assets"
	"github.com/leighmacdonald/dyn-scroll/internal/ui/input"
	"github.com/leighmacdonald/dyn-scroll/internal/ui/styles"
)

// detailWidth matches the label plus value columns of a detail row.
const detailWidth = 76

func newHelpModel(info BuildInfo, sources []assets.Source) helpModel {
	return helpModel{helpView: help.New(), info: info, sources: sources}
}

type helpModel struct {
	helpView help.Model
	info     BuildInfo
	sources  []assets.Source
}

func (m helpModel) View() string {
	left := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Toggle,
			input.Default.Next,
			input.Default.Prev,
			input.Default.First,
			input.Default.Last,
		},
	})

	right := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Like,
			input.Default.Bookmark,
			input.Default.Help,
			input.Default.Back,
			input.Default.Quit,
		},
	})

	helpContent := lipgloss.JoinHorizontal(lipgloss.Top, styles.HelpBox.Render(left), styles.HelpBox.Render(right))

	commit := m.info.Commit
	//goland:noinspection GoBoolExpressions
	if len(commit) > 8 {
		commit = m.info.Commit[0:8]
	}

	rows := []string{
		helpContent,
		styles.DetailRow("Version", m.info.Version),
		styles.DetailRow("Commit", commit),
		styles.DetailRow("Date", m.info.Date),
		styles.DetailRow("Config Path", m.info.ConfigPath),
		styles.DetailRow("Cache Path", m.info.CachePath),
	}

	rows = append(rows, styles.PanelLabel.UnsetWidth().Render(styles.WrapX(detailWidth, " Images ", "─")))

	for _, source := range m.sources {
		value := "generated"
		if !source.Generated {
			value = fmt.Sprintf("%s (%s)", source.Path, humanize.Bytes(uint64(source.Size))) //nolint:gosec
		}
		rows = append(rows, styles.DetailRow(fmt.Sprintf("Image %d", source.Index+1), value))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, rows...)

	return lipgloss.Place(lipgloss.Width(content), lipgloss.Height(content),
		lipgloss.Center, lipgloss.Center, content)
}
