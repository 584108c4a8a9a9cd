package ui

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/x/ansi"
	"github.com/leighmacdonald/dyn-scroll/internal/assets"
	"github.com/leighmacdonald/dyn-scroll/internal/scroll"
	"github.com/leighmacdonald/dyn-scroll/internal/ui/input"
)

const (
	// horizontalGap is the blank column between items when scrolling sideways.
	horizontalGap = 1
	wheelStepRows = 1
	wheelStepCols = 3
)

// carouselModel is the scroll container. It owns the scroll offset, reports its geometry to
// the tracker on every change and shows the slice of the item strip under the viewport.
type carouselModel struct {
	provider      assets.Provider
	tracker       *scroll.Tracker
	state         scroll.State
	offset        springValue
	spring        harmonica.Spring
	frameInterval time.Duration
	snapDelay     time.Duration
	snapSeq       int
	animating     bool
	width         int
	height        int
}

func newCarouselModel(provider assets.Provider, axis scroll.Axis, spring harmonica.Spring,
	frameInterval time.Duration, snapDelay time.Duration,
) *carouselModel {
	model := &carouselModel{
		provider:      provider,
		tracker:       scroll.NewTracker(),
		state:         scroll.NewState(axis, provider.Count()),
		spring:        spring,
		frameInterval: frameInterval,
		snapDelay:     snapDelay,
	}

	model.tracker.Subscribe(func(progress float64) {
		model.state.Apply(progress)
	})

	return model
}

func (m *carouselModel) Init() tea.Cmd {
	return nil
}

func (m *carouselModel) Update(msg tea.Msg) (*carouselModel, tea.Cmd) {
	switch msg := msg.(type) {
	case layoutMsg:
		m.width = msg.viewWidth
		m.height = msg.viewHeight
		m.offset.jump(m.pageOffset(m.state.ActiveIndex))

		return m, m.observe()
	case toggleChangedMsg:
		if msg.axis == m.state.Axis {
			return m, nil
		}
		// The incoming orientation starts out scrolled to the item that was active.
		m.state.Axis = msg.axis
		m.offset.jump(m.pageOffset(m.state.ActiveIndex))

		return m, m.observe()
	case jumpToIndexMsg:
		return m, m.scrollTo(msg.index)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, input.Default.Next):
			return m, m.scrollTo(m.targetPage() + 1)
		case key.Matches(msg, input.Default.Prev):
			return m, m.scrollTo(m.targetPage() - 1)
		case key.Matches(msg, input.Default.First):
			return m, m.scrollTo(0)
		case key.Matches(msg, input.Default.Last):
			return m, m.scrollTo(m.state.ItemCount - 1)
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}

		switch msg.Button { //nolint:exhaustive
		case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
			return m, m.scrollBy(m.wheelStep())
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
			return m, m.scrollBy(-m.wheelStep())
		}
	case snapMsg:
		if msg.seq != m.snapSeq {
			return m, nil
		}

		return m, m.scrollTo(m.nearestPage())
	case frameMsg:
		if msg.target != frameCarousel {
			return m, nil
		}

		if !m.offset.step(m.spring) {
			m.animating = false

			return m, m.observe()
		}

		return m, tea.Batch(m.observe(), nextFrame(frameCarousel, m.frameInterval))
	}

	return m, nil
}

// extents returns the content length, viewport length and distance between item starts along
// the active axis.
func (m *carouselModel) extents() (float64, float64, float64) {
	count := float64(m.state.ItemCount)
	if m.state.Axis == scroll.Horizontal {
		page := float64(m.width + horizontalGap)

		return count*page - horizontalGap, float64(m.width), page
	}

	return count * float64(m.height), float64(m.height), float64(m.height)
}

func (m *carouselModel) geometry() scroll.Geometry {
	content, viewport, _ := m.extents()

	return scroll.Geometry{
		LeadingEdge:    -m.offset.pos,
		ContentExtent:  content,
		ViewportExtent: viewport,
	}
}

// observe reports the current geometry and publishes the resulting state.
func (m *carouselModel) observe() tea.Cmd {
	if m.width <= 0 || m.height <= 0 {
		return nil
	}

	m.tracker.Observe(m.geometry())

	return setCarouselState(m.state)
}

func (m *carouselModel) pageOffset(index int) float64 {
	_, _, page := m.extents()
	index = min(max(index, 0), m.state.ItemCount-1)

	return float64(index) * page
}

func (m *carouselModel) maxOffset() float64 {
	content, viewport, _ := m.extents()

	return max(content-viewport, 0)
}

func (m *carouselModel) targetPage() int {
	_, _, page := m.extents()
	if page <= 0 {
		return 0
	}

	return int(math.Round(m.offset.target / page))
}

func (m *carouselModel) nearestPage() int {
	_, _, page := m.extents()
	if page <= 0 {
		return 0
	}

	return int(math.Round(m.offset.pos / page))
}

func (m *carouselModel) wheelStep() float64 {
	if m.state.Axis == scroll.Horizontal {
		return wheelStepCols
	}

	return wheelStepRows
}

// scrollTo eases the offset to the start of item index.
func (m *carouselModel) scrollTo(index int) tea.Cmd {
	m.offset.target = m.pageOffset(index)

	return m.animate()
}

// scrollBy moves the offset directly, like dragging, then waits for the wheel to go idle
// before snapping to an item.
func (m *carouselModel) scrollBy(delta float64) tea.Cmd {
	m.offset.jump(min(max(m.offset.pos+delta, 0), m.maxOffset()))
	m.snapSeq++

	return tea.Batch(m.observe(), snapAfter(m.snapDelay, m.snapSeq))
}

func (m *carouselModel) animate() tea.Cmd {
	if m.animating || !m.offset.moving() {
		return nil
	}

	m.animating = true

	return nextFrame(frameCarousel, m.frameInterval)
}

func (m *carouselModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	start := int(math.Round(m.offset.pos))
	rows := make([]string, m.height)

	if m.state.Axis == scroll.Horizontal {
		page := m.width + horizontalGap
		first := start / page
		cut := start - first*page
		for row := range m.height {
			strip := m.itemRow(first, row) + strings.Repeat(" ", horizontalGap) + m.itemRow(first+1, row)
			rows[row] = ansi.Cut(strip, cut, cut+m.width)
		}

		return strings.Join(rows, "\n")
	}

	for row := range m.height {
		contentRow := start + row
		rows[row] = m.itemRow(contentRow/m.height, contentRow%m.height)
	}

	return strings.Join(rows, "\n")
}

// itemRow returns a single full width row of an item, blank when out of range.
func (m *carouselModel) itemRow(index int, row int) string {
	lines := m.provider.Lines(index, m.width, m.height)
	if row < 0 || row >= len(lines) {
		return strings.Repeat(" ", m.width)
	}

	return lines[row]
}
