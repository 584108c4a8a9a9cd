// Package scroll turns scroll container geometry into a normalised progress value and maps
// that progress onto the item that should be considered active.
package scroll

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrInvalidAxis = errors.New("invalid scroll axis")

// Axis selects which container dimension feeds the tracker.
type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		fallthrough
	default:
		return "vertical"
	}
}

// Flip returns the opposite axis.
func (a Axis) Flip() Axis {
	if a == Vertical {
		return Horizontal
	}

	return Vertical
}

func ParseAxis(value string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "vertical", "v":
		return Vertical, nil
	case "horizontal", "h":
		return Horizontal, nil
	default:
		return Vertical, fmt.Errorf("%w: %q", ErrInvalidAxis, value)
	}
}

// Geometry is what a scroll container reports on every layout or scroll update.
type Geometry struct {
	// LeadingEdge is the position of the contents leading edge relative to the viewport. It is
	// zero at rest and goes negative as the content is scrolled forward.
	LeadingEdge    float64
	ContentExtent  float64
	ViewportExtent float64
}

// Offset is the forward scroll distance.
func (g Geometry) Offset() float64 {
	return -g.LeadingEdge
}

// ScrollableLength is how far the content can travel. Zero or less means the content fits.
func (g Geometry) ScrollableLength() float64 {
	return g.ContentExtent - g.ViewportExtent
}

// Proportion computes the clamped scroll progress. Content that fits inside the viewport has
// no scrollable range and always reports 0.
func Proportion(offset float64, contentExtent float64, viewportExtent float64) float64 {
	scrollable := contentExtent - viewportExtent
	if scrollable <= 0 {
		return 0
	}

	raw := offset / scrollable
	if math.IsNaN(raw) {
		return 0
	}

	return min(max(raw, 0), 1)
}

// ActiveIndex maps progress onto one of itemCount items. Progress of exactly 1 would land one
// past the end so the result is clamped to the last item.
func ActiveIndex(progress float64, itemCount int) int {
	itemCount = max(itemCount, 1)
	if math.IsNaN(progress) {
		return 0
	}

	index := int(math.Floor(progress * float64(itemCount)))

	return min(max(index, 0), itemCount-1)
}
