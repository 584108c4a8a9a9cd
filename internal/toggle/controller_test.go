package toggle_test

import (
	"testing"
	"time"

	"github.com/leighmacdonald/dyn-scroll/internal/toggle"
	"github.com/stretchr/testify/require"
)

// fireAll delivers pending steps in delay order, like timers on an event loop would.
func fireAll(t *testing.T, ctrl *toggle.Controller, pending []toggle.Pending) []toggle.State {
	t.Helper()

	var states []toggle.State
	for _, delay := range []time.Duration{100 * time.Millisecond, 400 * time.Millisecond} {
		for _, entry := range pending {
			if entry.Step.Delay != delay {
				continue
			}
			_, ok := ctrl.Fire(entry.Cycle, entry.Index)
			require.True(t, ok)
			states = append(states, ctrl.State())
		}
	}

	return states
}

func TestRequestFullCycle(t *testing.T) {
	ctrl := toggle.New(toggle.DefaultTimings(), toggle.PolicyIgnore)
	require.Equal(t, toggle.Idle, ctrl.Phase())
	require.True(t, ctrl.State().IndicatorVisible())

	pending, ok := ctrl.Request()
	require.True(t, ok)
	require.Len(t, pending, 3)
	require.Equal(t, toggle.Transitioning, ctrl.Phase())
	require.Equal(t, toggle.State{AxisFlipped: true}, ctrl.State())

	require.Equal(t, toggle.FlagOpacity, pending[0].Step.Flag)
	require.Equal(t, 100*time.Millisecond, pending[0].Step.Delay)
	require.False(t, pending[0].Step.Animated)
	require.Equal(t, toggle.FlagOffset, pending[1].Step.Flag)
	require.Equal(t, 100*time.Millisecond, pending[1].Step.Delay)
	require.Equal(t, toggle.FlagOpacity, pending[2].Step.Flag)
	require.Equal(t, 400*time.Millisecond, pending[2].Step.Delay)
	require.True(t, pending[2].Step.Animated)

	states := fireAll(t, ctrl, pending)
	require.Len(t, states, 3)
	require.False(t, states[0].IndicatorVisible())
	require.True(t, states[1].OffsetPhase)
	require.False(t, states[1].IndicatorVisible())

	// Offset flipped once, opacity flipped twice.
	require.Equal(t, toggle.State{AxisFlipped: true, OffsetPhase: true, OpacityPhase: false}, ctrl.State())
	require.Equal(t, toggle.Idle, ctrl.Phase())
}

func TestRequestTwiceRestores(t *testing.T) {
	ctrl := toggle.New(toggle.DefaultTimings(), toggle.PolicyIgnore)

	pending, ok := ctrl.Request()
	require.True(t, ok)
	fireAll(t, ctrl, pending)

	pending, ok = ctrl.Request()
	require.True(t, ok)
	fireAll(t, ctrl, pending)

	require.Equal(t, toggle.State{}, ctrl.State())
	require.Equal(t, toggle.Idle, ctrl.Phase())
}

func TestIgnorePolicy(t *testing.T) {
	ctrl := toggle.New(toggle.DefaultTimings(), toggle.PolicyIgnore)

	pending, ok := ctrl.Request()
	require.True(t, ok)

	again, okAgain := ctrl.Request()
	require.False(t, okAgain)
	require.Empty(t, again)
	require.True(t, ctrl.State().AxisFlipped)

	fireAll(t, ctrl, pending)
	require.Equal(t, toggle.State{AxisFlipped: true, OffsetPhase: true}, ctrl.State())
}

func TestRestartPolicy(t *testing.T) {
	ctrl := toggle.New(toggle.DefaultTimings(), toggle.PolicyRestart)

	first, ok := ctrl.Request()
	require.True(t, ok)
	_, fired := ctrl.Fire(first[0].Cycle, first[0].Index)
	require.True(t, fired)

	second, ok := ctrl.Request()
	require.True(t, ok)
	require.NotEqual(t, first[0].Cycle, second[0].Cycle)

	// The old cycle settled: offset moved and opacity came back before the second flip.
	require.Equal(t, toggle.State{AxisFlipped: false, OffsetPhase: true}, ctrl.State())

	// Timers from the first cycle arriving late do nothing.
	for _, entry := range first {
		_, stale := ctrl.Fire(entry.Cycle, entry.Index)
		require.False(t, stale)
	}

	fireAll(t, ctrl, second)
	require.Equal(t, toggle.State{}, ctrl.State())
	require.Equal(t, toggle.Idle, ctrl.Phase())
}

func TestFireTwiceAndCancel(t *testing.T) {
	ctrl := toggle.New(toggle.DefaultTimings(), toggle.PolicyIgnore)

	pending, _ := ctrl.Request()
	_, ok := ctrl.Fire(pending[0].Cycle, pending[0].Index)
	require.True(t, ok)
	_, ok = ctrl.Fire(pending[0].Cycle, pending[0].Index)
	require.False(t, ok)

	ctrl.Cancel()
	require.Equal(t, toggle.Idle, ctrl.Phase())

	before := ctrl.State()
	for _, entry := range pending[1:] {
		_, ok = ctrl.Fire(entry.Cycle, entry.Index)
		require.False(t, ok)
	}
	require.Equal(t, before, ctrl.State())

	_, ok = ctrl.Fire(ctrl.Cycle(), 99)
	require.False(t, ok)
}

func TestConfigureAppliesNextCycle(t *testing.T) {
	ctrl := toggle.New(toggle.DefaultTimings(), toggle.PolicyIgnore)
	pending, _ := ctrl.Request()

	ctrl.Configure(toggle.Timings{OpacityDelay: time.Millisecond, OffsetDelay: 2 * time.Millisecond, FadeInDelay: 3 * time.Millisecond}, toggle.PolicyRestart)
	require.Equal(t, toggle.PolicyRestart, ctrl.Policy())
	require.Equal(t, 400*time.Millisecond, pending[2].Step.Delay)

	next, ok := ctrl.Request()
	require.True(t, ok)
	require.Equal(t, 3*time.Millisecond, next[2].Step.Delay)
}

func TestParsePolicy(t *testing.T) {
	policy, err := toggle.ParsePolicy("RESTART")
	require.NoError(t, err)
	require.Equal(t, toggle.PolicyRestart, policy)
	require.Equal(t, "restart", policy.String())

	_, err = toggle.ParsePolicy("queue")
	require.ErrorIs(t, err, toggle.ErrInvalidPolicy)
}
