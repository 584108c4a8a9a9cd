package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/dyn-scroll/internal/assets"
	"github.com/leighmacdonald/dyn-scroll/internal/toggle"
	"github.com/leighmacdonald/dyn-scroll/internal/ui/input"
	"github.com/leighmacdonald/dyn-scroll/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/truncate"
)

const buttonLabel = "Change Scroll Direction"

// controlsModel is the action bar under the carousel and the scroll direction button. Likes
// and bookmarks only live as long as the process.
type controlsModel struct {
	provider   assets.Provider
	active     int
	width      int
	phase      toggle.Phase
	liked      map[int]bool
	bookmarked map[int]bool
	id         string
}

func newControlsModel(provider assets.Provider) *controlsModel {
	return &controlsModel{
		provider:   provider,
		liked:      map[int]bool{},
		bookmarked: map[int]bool{},
		id:         zone.NewPrefix(),
	}
}

func (m *controlsModel) Init() tea.Cmd {
	return nil
}

func (m *controlsModel) Update(msg tea.Msg) (*controlsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case layoutMsg:
		m.width = msg.viewWidth + 2
	case carouselStateMsg:
		m.active = msg.state.ActiveIndex
	case toggleChangedMsg:
		m.phase = msg.phase
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, input.Default.Like):
			return m, m.like()
		case key.Matches(msg, input.Default.Bookmark):
			return m, m.bookmark()
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}

		switch {
		case zone.Get(m.id + "button").InBounds(msg):
			return m, requestToggle()
		case zone.Get(m.id + "like").InBounds(msg):
			return m, m.like()
		case zone.Get(m.id + "bookmark").InBounds(msg):
			return m, m.bookmark()
		}
	}

	return m, nil
}

func (m *controlsModel) like() tea.Cmd {
	m.liked[m.active] = !m.liked[m.active]
	if m.liked[m.active] {
		return setStatusMessage("Liked "+m.provider.Name(m.active), false)
	}

	return nil
}

func (m *controlsModel) bookmark() tea.Cmd {
	m.bookmarked[m.active] = !m.bookmarked[m.active]
	if m.bookmarked[m.active] {
		return setStatusMessage("Saved "+m.provider.Name(m.active), false)
	}

	return nil
}

// ActionBar renders the icon row.
func (m *controlsModel) ActionBar() string {
	heart := styles.ActionIcon.Render("♡")
	if m.liked[m.active] {
		heart = styles.ActionIconLiked.Render("♥")
	}

	marker := styles.ActionIcon.PaddingRight(0).Render("⚐")
	if m.bookmarked[m.active] {
		marker = styles.ActionIconMarked.Render("⚑")
	}

	left := lipgloss.JoinHorizontal(lipgloss.Top,
		zone.Mark(m.id+"like", heart),
		styles.ActionIcon.Render("✉"),
		styles.ActionIcon.Render("➤"))
	right := zone.Mark(m.id+"bookmark", marker)
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, lipgloss.NewStyle().Width(gap).Render(""), right)
}

// Caption names the active item.
func (m *controlsModel) Caption() string {
	count := m.provider.Count()
	text := fmt.Sprintf("%d/%d  %s", m.active+1, count, m.provider.Name(m.active))

	return styles.Caption.Render(truncate.StringWithTail(text, uint(max(m.width, 1)), "…")) //nolint:gosec
}

// Button renders the scroll direction button, dimmed while a switch is in progress.
func (m *controlsModel) Button() string {
	style := styles.ButtonActive
	if m.phase == toggle.Transitioning {
		style = styles.ButtonDisabled
	}

	return zone.Mark(m.id+"button", style.Render(buttonLabel))
}
