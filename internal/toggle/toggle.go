// Package toggle sequences the flags that drive an axis switch. The axis flips immediately,
// the indicator is hidden and moved shortly after, then faded back in once it has settled on
// the new side. The controller never sleeps; deferred steps are handed back to the caller
// which posts them to its own event loop and calls Fire when they come due.
package toggle

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidPolicy = errors.New("invalid toggle policy")

// Flag identifies which boolean a step toggles.
type Flag int

const (
	FlagAxis Flag = iota
	FlagOpacity
	FlagOffset
)

func (f Flag) String() string {
	switch f {
	case FlagAxis:
		return "axis"
	case FlagOpacity:
		return "opacity"
	case FlagOffset:
		return "offset"
	default:
		return "unknown"
	}
}

// Phase of the controller.
type Phase int

const (
	Idle Phase = iota
	Transitioning
)

func (p Phase) String() string {
	if p == Transitioning {
		return "transitioning"
	}

	return "idle"
}

// Policy decides what happens when a toggle is requested while a cycle is still running.
type Policy int

const (
	// PolicyIgnore drops requests until the running cycle completes.
	PolicyIgnore Policy = iota
	// PolicyRestart applies the remaining steps of the running cycle at once and starts a new one.
	PolicyRestart
)

func (p Policy) String() string {
	if p == PolicyRestart {
		return "restart"
	}

	return "ignore"
}

func ParsePolicy(value string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "ignore":
		return PolicyIgnore, nil
	case "restart":
		return PolicyRestart, nil
	default:
		return PolicyIgnore, fmt.Errorf("%w: %q", ErrInvalidPolicy, value)
	}
}

// State holds the three flags read by the view.
type State struct {
	AxisFlipped  bool
	OffsetPhase  bool
	OpacityPhase bool
}

// IndicatorVisible reports if the page indicator should currently be shown.
func (s State) IndicatorVisible() bool {
	return !s.OpacityPhase
}

func (s State) toggle(flag Flag) State {
	switch flag {
	case FlagAxis:
		s.AxisFlipped = !s.AxisFlipped
	case FlagOpacity:
		s.OpacityPhase = !s.OpacityPhase
	case FlagOffset:
		s.OffsetPhase = !s.OffsetPhase
	}

	return s
}

// Timings are the delays of the deferred steps, measured from the request.
type Timings struct {
	OpacityDelay time.Duration
	OffsetDelay  time.Duration
	FadeInDelay  time.Duration
}

func DefaultTimings() Timings {
	return Timings{
		OpacityDelay: 100 * time.Millisecond,
		OffsetDelay:  100 * time.Millisecond,
		FadeInDelay:  400 * time.Millisecond,
	}
}

// Step is one scheduled flag change. Animated steps should be eased by the view, the rest
// are applied instantly.
type Step struct {
	Delay    time.Duration
	Flag     Flag
	Animated bool
}

func (t Timings) steps() []Step {
	return []Step{
		{Delay: 0, Flag: FlagAxis, Animated: true},
		{Delay: t.OpacityDelay, Flag: FlagOpacity},
		{Delay: t.OffsetDelay, Flag: FlagOffset},
		{Delay: t.FadeInDelay, Flag: FlagOpacity, Animated: true},
	}
}

// Pending is a deferred step that must be posted back with Fire once Step.Delay has elapsed.
type Pending struct {
	Cycle uint64
	Index int
	Step  Step
}
