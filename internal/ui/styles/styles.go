package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Accent = lipgloss.Color("#f4722b")

	Black    = lipgloss.Color("#111111")
	Gray     = lipgloss.Color("#3e3e3e")
	GrayDark = lipgloss.Color("#2f3030")
	White    = lipgloss.Color("#cccccc")
	Whiter   = lipgloss.Color("#f5f5f5")
	Blue     = lipgloss.Color("#5885A2")
	Red      = lipgloss.Color("#B8383B")
	Green    = lipgloss.Color("#4d7455")
	Gold     = lipgloss.Color("#ffd700")
	Purple   = lipgloss.Color("#8650ac")

	HeaderContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Left).PaddingLeft(1)
	ContentContainerStyle = lipgloss.NewStyle().Align(lipgloss.Center)
	FooterContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)

	Title  = lipgloss.NewStyle().Bold(true).Foreground(Whiter)
	Credit = lipgloss.NewStyle().Bold(true).Foreground(Blue)

	FrameBorder = lipgloss.NewStyle().Foreground(Gray)
	FrameTrim   = lipgloss.NewStyle().Foreground(Whiter).Bold(true)

	ButtonActive   = lipgloss.NewStyle().Bold(true).Foreground(Whiter).Background(Blue).Padding(0, 2)
	ButtonDisabled = lipgloss.NewStyle().Bold(true).Foreground(White).Background(GrayDark).Padding(0, 2)

	ActionIcon       = lipgloss.NewStyle().Foreground(White).PaddingRight(2)
	ActionIconLiked  = lipgloss.NewStyle().Foreground(Red).PaddingRight(2)
	ActionIconMarked = lipgloss.NewStyle().Foreground(Gold)
	Caption          = lipgloss.NewStyle().Foreground(White).Italic(true)

	StatusAxis    = lipgloss.NewStyle().Foreground(Accent).PaddingRight(2).PaddingLeft(1).Bold(true)
	StatusIndex   = lipgloss.NewStyle().Foreground(Green).PaddingRight(2).Bold(true)
	StatusError   = lipgloss.NewStyle().Foreground(Red).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusMessage = lipgloss.NewStyle().Foreground(Green).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusHelp    = lipgloss.NewStyle().Foreground(Gray).Bold(true).Align(lipgloss.Center).PaddingRight(2)
	StatusVersion = lipgloss.NewStyle().Foreground(Purple).Bold(true).Align(lipgloss.Center).PaddingRight(2)

	PanelLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Align(lipgloss.Right).Width(16)
	PanelValue = lipgloss.NewStyle().Width(60)

	InfoMessage = lipgloss.NewStyle().Align(lipgloss.Center).Padding(1)

	HelpBox = lipgloss.NewStyle().Padding(1, 3)
)

func DetailRow(label string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		PanelLabel.Render(label+" "),
		PanelValue.Render(value))
}

// WrapX will wrap a centered string with the supplied character up to the lenth specified.
func WrapX(width int, value string, character string) string {
	all := max(width-lipgloss.Width(value), 0)

	return strings.Repeat(character, all/2) + value + strings.Repeat(character, all/2)
}
