package ui

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/dyn-scroll/internal/scroll"
	"github.com/stretchr/testify/require"
)

// digitProvider fills every cell of item n with the digit n.
type digitProvider struct {
	count int
}

func (p digitProvider) Count() int {
	return p.count
}

func (p digitProvider) Name(index int) string {
	return "item " + strconv.Itoa(index)
}

func (p digitProvider) Lines(index int, width int, height int) []string {
	if index < 0 || index >= p.count {
		return nil
	}

	lines := make([]string, height)
	for row := range lines {
		lines[row] = strings.Repeat(strconv.Itoa(index), width)
	}

	return lines
}

func newTestCarousel(axis scroll.Axis) *carouselModel {
	carousel := newCarouselModel(digitProvider{count: 5}, axis, newSpring(60, 6, 0.6),
		frameIntervalFor(60), 150*time.Millisecond)
	carousel, _ = carousel.Update(layoutMsg{width: 40, height: 20, viewWidth: 8, viewHeight: 4})

	return carousel
}

func TestCarouselVerticalView(t *testing.T) {
	carousel := newTestCarousel(scroll.Vertical)
	require.Equal(t, 8, carousel.width)
	require.Equal(t, strings.Repeat("00000000\n", 3)+"00000000", carousel.View())

	carousel.offset.jump(2)
	rows := strings.Split(carousel.View(), "\n")
	require.Equal(t, []string{"00000000", "00000000", "11111111", "11111111"}, rows)

	carousel.observe()
	require.Equal(t, 0, carousel.state.ActiveIndex)
	require.InDelta(t, 2.0/16.0, carousel.state.Progress, 1e-9)
}

func TestCarouselHorizontalView(t *testing.T) {
	carousel := newTestCarousel(scroll.Horizontal)

	// Pages are the item width plus one column of gap.
	carousel.offset.jump(carousel.pageOffset(1) + 4)
	for _, row := range strings.Split(carousel.View(), "\n") {
		require.Equal(t, "1111 222", row)
		require.Equal(t, 8, lipgloss.Width(row))
	}

	carousel.observe()
	content, viewport, page := carousel.extents()
	require.InDelta(t, 44, content, 1e-9)
	require.InDelta(t, 8, viewport, 1e-9)
	require.InDelta(t, 9, page, 1e-9)
	require.Equal(t, 1, carousel.state.ActiveIndex)
}

func TestCarouselWheelSnaps(t *testing.T) {
	carousel := newTestCarousel(scroll.Vertical)

	carousel.scrollBy(1)
	carousel.scrollBy(1)
	carousel.scrollBy(1)
	require.InDelta(t, 3, carousel.offset.pos, 1e-9)
	require.Equal(t, 3, carousel.snapSeq)

	// An older snap request is superseded by later scrolling.
	carousel, cmd := carousel.Update(snapMsg{seq: 1})
	require.Nil(t, cmd)

	carousel, cmd = carousel.Update(snapMsg{seq: 3})
	require.NotNil(t, cmd)
	require.InDelta(t, 4, carousel.offset.target, 1e-9)

	for range 5000 {
		carousel, cmd = carousel.Update(frameMsg{target: frameCarousel})
		if !carousel.animating {
			break
		}
	}
	require.InDelta(t, 4, carousel.offset.pos, 1e-9)
	require.Equal(t, 1, carousel.state.ActiveIndex)
}

func TestCarouselScrollByClamps(t *testing.T) {
	carousel := newTestCarousel(scroll.Vertical)

	carousel.scrollBy(-10)
	require.InDelta(t, 0, carousel.offset.pos, 1e-9)

	carousel.scrollBy(1000)
	require.InDelta(t, carousel.maxOffset(), carousel.offset.pos, 1e-9)
	require.InDelta(t, 16, carousel.maxOffset(), 1e-9)
	require.Equal(t, 4, carousel.state.ActiveIndex)
	require.InDelta(t, 1, carousel.state.Progress, 1e-9)
}

func TestCarouselAxisSwapKeepsIndex(t *testing.T) {
	carousel := newTestCarousel(scroll.Vertical)
	carousel.offset.jump(carousel.pageOffset(3))
	carousel.observe()
	require.Equal(t, 3, carousel.state.ActiveIndex)

	carousel, cmd := carousel.Update(toggleChangedMsg{axis: scroll.Horizontal})
	require.NotNil(t, cmd)
	require.Equal(t, scroll.Horizontal, carousel.state.Axis)
	require.InDelta(t, 27, carousel.offset.pos, 1e-9)
	require.Equal(t, 3, carousel.state.ActiveIndex)

	// Same axis again is a no-op.
	_, cmd = carousel.Update(toggleChangedMsg{axis: scroll.Horizontal})
	require.Nil(t, cmd)
}
