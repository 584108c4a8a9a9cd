package ui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/dyn-scroll/internal/assets"
	"github.com/leighmacdonald/dyn-scroll/internal/config"
	"github.com/leighmacdonald/dyn-scroll/internal/scroll"
	"github.com/leighmacdonald/dyn-scroll/internal/toggle"
	"github.com/leighmacdonald/dyn-scroll/internal/ui/input"
	"github.com/leighmacdonald/dyn-scroll/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

const (
	title = "Dynamic Scroll View Concept"
	// chromeHeight is every row that is not carousel: header, frame border, dots row, action bar,
	// caption, button, credit and status bar.
	chromeHeight = 9
	// sideWidth is the column right of the frame holding the dots when they stand upright.
	sideWidth = 3
	// cardAspect is width over height in cells for a 4:5 image, cells being twice as tall as wide.
	cardAspect = 1.6
	minWidth   = 4
	minHeight  = 2
)

// rootModel is the top level model for the ui side of the app. It owns the toggle controller
// and hands its flags down to the children.
type rootModel struct {
	currentView   contentView
	width         int
	height        int
	viewWidth     int
	viewHeight    int
	startAxis     scroll.Axis
	controller    *toggle.Controller
	carousel      *carouselModel
	indicator     *indicatorModel
	controls      *controlsModel
	statusModel   *statusBarModel
	helpModel     helpModel
	frameInterval time.Duration
}

func newRootModel(conf config.Config, gallery *assets.Gallery, info BuildInfo) rootModel {
	axis := conf.Axis()
	spring := newSpring(conf.FPS, conf.SpringFrequency, conf.SpringDamping)
	frameInterval := frameIntervalFor(conf.FPS)
	carousel := newCarouselModel(gallery, axis, spring, frameInterval, conf.SnapDelay())

	return rootModel{
		currentView:   viewMain,
		startAxis:     axis,
		controller:    toggle.New(conf.Timings(), conf.Policy()),
		carousel:      carousel,
		indicator:     newIndicatorModel(gallery.Count(), axis, spring, frameInterval),
		controls:      newControlsModel(gallery),
		statusModel:   newStatusBarModel(info.Version, carousel.state),
		helpModel:     newHelpModel(info, gallery.Sources()),
		frameInterval: frameInterval,
	}
}

func frameIntervalFor(fps int) time.Duration {
	return time.Second / time.Duration(max(fps, 1))
}

// viewportSize carves the carousel viewport out of the terminal, keeping a portrait card.
func viewportSize(width int, height int) (int, int) {
	viewHeight := height - chromeHeight
	viewWidth := min(width-2-sideWidth, int(float64(viewHeight)*cardAspect))

	return max(viewWidth, 0), max(viewHeight, 0)
}

func (m rootModel) Init() tea.Cmd {
	return tea.SetWindowTitle("dyn-scroll")
}

func (m rootModel) Update(inMsg tea.Msg) (tea.Model, tea.Cmd) {
	logMsg(inMsg)

	if !m.isInitialized() {
		switch msg := inMsg.(type) {
		case tea.WindowSizeMsg, config.Config:
		case tea.KeyMsg:
			if key.Matches(msg, input.Default.Quit) {
				return m, tea.Quit
			}

			return m, nil
		default:
			return m, nil
		}
	}

	switch msg := inMsg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewWidth, m.viewHeight = viewportSize(m.width, m.height)

		return m.propagate(layoutMsg{width: m.width, height: m.height, viewWidth: m.viewWidth, viewHeight: m.viewHeight})
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, input.Default.Quit):
			// Pending toggle timers may still arrive while shutting down.
			m.controller.Cancel()

			return m, tea.Quit
		case key.Matches(msg, input.Default.Help):
			if m.currentView == viewHelp {
				m.currentView = viewMain
			} else {
				m.currentView = viewHelp
			}

			return m, nil
		case key.Matches(msg, input.Default.Back):
			m.currentView = viewMain

			return m, nil
		}

		if m.currentView != viewMain {
			return m, nil
		}

		if key.Matches(msg, input.Default.Toggle) {
			return m.requestToggle()
		}
	case tea.MouseMsg:
		if m.currentView != viewMain {
			return m, nil
		}
	case requestToggleMsg:
		return m.requestToggle()
	case toggleStepMsg:
		step, fired := m.controller.Fire(msg.cycle, msg.index)
		if !fired {
			return m, nil
		}

		return m.propagate(m.toggleChanged(step))
	case config.Config:
		return m.applyConfig(msg)
	}

	return m.propagate(inMsg)
}

func (m rootModel) requestToggle() (tea.Model, tea.Cmd) {
	pending, accepted := m.controller.Request()
	if !accepted {
		slog.Debug("Toggle ignored, transition in progress")

		return m, nil
	}

	cmds := make([]tea.Cmd, 0, len(pending)+1)
	for _, entry := range pending {
		cmds = append(cmds, scheduleStep(entry))
	}

	changed := m.toggleChanged(toggle.Step{Flag: toggle.FlagAxis, Animated: true})
	cmds = append(cmds, setStatusMessage("Scrolling "+changed.axis.String(), false))

	return m.propagate(changed, cmds...)
}

// toggleChanged resolves the controller flags into the axes the children need.
func (m rootModel) toggleChanged(step toggle.Step) toggleChangedMsg {
	state := m.controller.State()
	axis := m.startAxis
	if state.AxisFlipped {
		axis = axis.Flip()
	}

	indicatorAxis := m.startAxis
	if state.OffsetPhase {
		indicatorAxis = indicatorAxis.Flip()
	}

	return toggleChangedMsg{
		state:         state,
		phase:         m.controller.Phase(),
		step:          step,
		axis:          axis,
		indicatorAxis: indicatorAxis,
	}
}

// applyConfig takes the settings that can change while running. The item count, assets and
// start axis are only read at startup.
func (m rootModel) applyConfig(conf config.Config) (tea.Model, tea.Cmd) {
	m.controller.Configure(conf.Timings(), conf.Policy())

	spring := newSpring(conf.FPS, conf.SpringFrequency, conf.SpringDamping)
	m.frameInterval = frameIntervalFor(conf.FPS)
	m.carousel.spring = spring
	m.carousel.frameInterval = m.frameInterval
	m.carousel.snapDelay = conf.SnapDelay()
	m.indicator.spring = spring
	m.indicator.frameInterval = m.frameInterval

	slog.Info("Config reloaded", slog.String("policy", conf.Policy().String()),
		slog.Duration("fade_in", conf.Timings().FadeInDelay))

	return m, setStatusMessage("Config reloaded", false)
}

func (m rootModel) View() string {
	if !m.isInitialized() {
		return ""
	}

	header := styles.HeaderContainerStyle.Width(m.width).Render(styles.Title.Render(title))
	footer := styles.FooterContainerStyle.Width(m.width).Render(m.statusModel.View())
	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	var content string
	switch m.currentView {
	case viewHelp:
		content = m.helpModel.View()
	case viewMain:
		content = m.mainView()
	}

	ctr := styles.ContentContainerStyle.Width(m.width).Height(contentHeight).Render(content)

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, header, ctr, footer))
}

func (m rootModel) mainView() string {
	if m.viewWidth < minWidth || m.viewHeight < minHeight {
		return styles.InfoMessage.Render("Terminal too small")
	}

	frameWidth := m.viewWidth + 2
	frame := m.indicator.Frame(m.carousel.View(), m.viewWidth, m.viewHeight)
	side := lipgloss.NewStyle().
		Width(sideWidth).
		Height(m.viewHeight + 2).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(m.indicator.Dots(scroll.Vertical))
	below := lipgloss.NewStyle().
		Width(frameWidth).
		Height(1).
		Align(lipgloss.Center).
		Render(m.indicator.Dots(scroll.Horizontal))
	button := lipgloss.NewStyle().Width(frameWidth).Align(lipgloss.Center).Render(m.controls.Button())
	credit := lipgloss.NewStyle().Width(frameWidth).Align(lipgloss.Center).
		Render(styles.Credit.Render("Made with bubbletea ♥"))

	body := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, frame, side),
		below,
		m.controls.ActionBar(),
		m.controls.Caption(),
		button,
		credit)

	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body)
}

func (m rootModel) isInitialized() bool {
	return m.height != 0 && m.width != 0
}

func (m rootModel) propagate(msg tea.Msg, cmds ...tea.Cmd) (tea.Model, tea.Cmd) {
	children := make([]tea.Cmd, 4)

	m.carousel, children[0] = m.carousel.Update(msg)
	m.indicator, children[1] = m.indicator.Update(msg)
	m.controls, children[2] = m.controls.Update(msg)
	m.statusModel, children[3] = m.statusModel.Update(msg)

	return m, tea.Batch(append(cmds, children...)...)
}

// logMsg is useful for debugging events. Tail the log file ~/.config/dyn-scroll/dyn-scroll.log
func logMsg(inMsg tea.Msg) {
	// Filter out very noisy stuff
	switch inMsg.(type) {
	case frameMsg:
	case carouselStateMsg:
		break
	case tea.MouseMsg:
		break
	default:
		slog.Debug("tea.Msg", slog.Any("msg", inMsg))
	}
}
