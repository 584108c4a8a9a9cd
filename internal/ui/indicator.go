package ui

import (
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/dyn-scroll/internal/scroll"
	"github.com/leighmacdonald/dyn-scroll/internal/toggle"
	"github.com/leighmacdonald/dyn-scroll/internal/ui/styles"
	"github.com/lucasb-eyer/go-colorful"
	zone "github.com/lrstanley/bubblezone"
)

const (
	dotGlyph         = "●"
	inactiveEmphasis = 0.5
	hiddenThreshold  = 0.05
)

// trim is the highlighted share of the frame perimeter, as fractions from the top left corner
// going clockwise.
type trim struct {
	from float64
	to   float64
}

func trimFor(axis scroll.Axis) trim {
	if axis == scroll.Horizontal {
		return trim{from: 0.228, to: 0.272}
	}

	return trim{from: 0.01, to: 0.052}
}

// indicatorModel renders the page dots and the carousel frame with its highlighted segment.
type indicatorModel struct {
	count         int
	active        int
	axis          scroll.Axis
	dotsAxis      scroll.Axis
	toggle        toggle.State
	emphasis      []springValue
	opacity       springValue
	trimFrom      springValue
	trimTo        springValue
	spring        harmonica.Spring
	frameInterval time.Duration
	animating     bool
	id            string
	dotOn         colorful.Color
	dotOff        colorful.Color
}

func newIndicatorModel(count int, axis scroll.Axis, spring harmonica.Spring, frameInterval time.Duration) *indicatorModel {
	count = max(count, 1)
	emphasis := make([]springValue, count)
	for index := range emphasis {
		emphasis[index] = newSpringValue(inactiveEmphasis)
	}
	emphasis[0] = newSpringValue(1)

	dotOn, _ := colorful.Hex(string(styles.Whiter))
	dotOff, _ := colorful.Hex(string(styles.Black))
	initial := trimFor(axis)

	return &indicatorModel{
		count:         count,
		axis:          axis,
		dotsAxis:      axis,
		emphasis:      emphasis,
		opacity:       newSpringValue(1),
		trimFrom:      newSpringValue(initial.from),
		trimTo:        newSpringValue(initial.to),
		spring:        spring,
		frameInterval: frameInterval,
		id:            zone.NewPrefix(),
		dotOn:         dotOn,
		dotOff:        dotOff,
	}
}

func (m *indicatorModel) Init() tea.Cmd {
	return nil
}

func (m *indicatorModel) Update(msg tea.Msg) (*indicatorModel, tea.Cmd) {
	switch msg := msg.(type) {
	case carouselStateMsg:
		if msg.state.ActiveIndex == m.active {
			return m, nil
		}

		m.active = msg.state.ActiveIndex
		for index := range m.emphasis {
			m.emphasis[index].target = inactiveEmphasis
		}
		if m.active >= 0 && m.active < len(m.emphasis) {
			m.emphasis[m.active].target = 1
		}

		return m, m.animate()
	case toggleChangedMsg:
		m.toggle = msg.state
		m.axis = msg.axis
		m.dotsAxis = msg.indicatorAxis

		switch msg.step.Flag {
		case toggle.FlagAxis:
			next := trimFor(msg.axis)
			m.trimFrom.target = next.from
			m.trimTo.target = next.to
		case toggle.FlagOpacity:
			target := 0.0
			if msg.state.IndicatorVisible() {
				target = 1
			}

			if msg.step.Animated {
				m.opacity.target = target
			} else {
				m.opacity.jump(target)
			}
		case toggle.FlagOffset:
			// Dots change sides through dotsAxis, no easing.
		}

		return m, m.animate()
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft || !m.toggle.IndicatorVisible() {
			return m, nil
		}

		for index := range m.count {
			if zone.Get(m.dotID(index)).InBounds(msg) {
				return m, jumpToIndex(index)
			}
		}
	case frameMsg:
		if msg.target != frameIndicator {
			return m, nil
		}

		if m.stepAll() {
			return m, nextFrame(frameIndicator, m.frameInterval)
		}

		m.animating = false
	}

	return m, nil
}

// stepAll advances every spring, returning true while any is still moving.
func (m *indicatorModel) stepAll() bool {
	moving := false
	for index := range m.emphasis {
		if m.emphasis[index].step(m.spring) {
			moving = true
		}
	}

	for _, value := range []*springValue{&m.opacity, &m.trimFrom, &m.trimTo} {
		if value.step(m.spring) {
			moving = true
		}
	}

	return moving
}

func (m *indicatorModel) animate() tea.Cmd {
	if m.animating {
		return nil
	}

	moving := m.opacity.moving() || m.trimFrom.moving() || m.trimTo.moving()
	for index := range m.emphasis {
		moving = moving || m.emphasis[index].moving()
	}

	if !moving {
		return nil
	}

	m.animating = true

	return nextFrame(frameIndicator, m.frameInterval)
}

func (m *indicatorModel) dotID(index int) string {
	return m.id + "dot" + strconv.Itoa(index)
}

// strength is how visible dot index currently is, from 0 to 1.
func (m *indicatorModel) strength(index int) float64 {
	opacity := min(max(m.opacity.pos, 0), 1)

	return min(max(m.emphasis[index].pos*opacity, 0), 1)
}

func (m *indicatorModel) dot(index int) string {
	strength := m.strength(index)
	if strength < hiddenThreshold {
		return " "
	}

	shade := m.dotOff.BlendLab(m.dotOn, strength).Clamped()

	return zone.Mark(m.dotID(index), lipgloss.NewStyle().Foreground(lipgloss.Color(shade.Hex())).Render(dotGlyph))
}

// Dots renders the page dots laid out along axis. The result is empty when the dots belong on
// the other side.
func (m *indicatorModel) Dots(axis scroll.Axis) string {
	if axis != m.dotsAxis {
		return ""
	}

	dots := make([]string, m.count)
	for index := range m.count {
		dots[index] = m.dot(index)
	}

	if axis == scroll.Vertical {
		return strings.Join(dots, "\n\n")
	}

	return strings.Join(dots, " ")
}

// Frame wraps content of width x height cells in a rounded border, highlighting the part of
// the perimeter covered by the current trim.
func (m *indicatorModel) Frame(content string, width int, height int) string {
	outerW, outerH := width+2, height+2
	lit := litPerimeter(outerW, outerH, m.trimFrom.pos, m.trimTo.pos)

	cell := func(x, y int, plain string, heavy string) string {
		if lit[y*outerW+x] {
			return styles.FrameTrim.Render(heavy)
		}

		return styles.FrameBorder.Render(plain)
	}

	rows := make([]string, 0, outerH)

	var top strings.Builder
	top.WriteString(cell(0, 0, "╭", "╭"))
	for x := 1; x < outerW-1; x++ {
		top.WriteString(cell(x, 0, "─", "━"))
	}
	top.WriteString(cell(outerW-1, 0, "╮", "╮"))
	rows = append(rows, top.String())

	lines := strings.Split(content, "\n")
	for y := 1; y < outerH-1; y++ {
		line := ""
		if y-1 < len(lines) {
			line = lines[y-1]
		}
		if pad := width - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		rows = append(rows, cell(0, y, "│", "┃")+line+cell(outerW-1, y, "│", "┃"))
	}

	var bottom strings.Builder
	bottom.WriteString(cell(0, outerH-1, "╰", "╰"))
	for x := 1; x < outerW-1; x++ {
		bottom.WriteString(cell(x, outerH-1, "─", "━"))
	}
	bottom.WriteString(cell(outerW-1, outerH-1, "╯", "╯"))
	rows = append(rows, bottom.String())

	return strings.Join(rows, "\n")
}

// litPerimeter marks the border cells of a width x height box whose position along the
// perimeter, clockwise from the top left corner, falls within [from, to).
func litPerimeter(width int, height int, from float64, to float64) []bool {
	lit := make([]bool, width*height)
	if width < 2 || height < 2 {
		return lit
	}

	perimeter := 2*(width-1) + 2*(height-1)
	for step := range perimeter {
		fraction := float64(step) / float64(perimeter)
		if fraction < from || fraction >= to {
			continue
		}

		var x, y int
		switch {
		case step < width-1:
			x, y = step, 0
		case step < width-1+height-1:
			x, y = width-1, step-(width-1)
		case step < 2*(width-1)+height-1:
			x, y = width-1-(step-(width-1+height-1)), height-1
		default:
			x, y = 0, height-1-(step-(2*(width-1)+height-1))
		}

		lit[y*width+x] = true
	}

	return lit
}
