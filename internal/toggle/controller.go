package toggle

// Controller owns the toggle flags. It is not safe for concurrent use, all calls are expected
// to come from the single ui event loop.
type Controller struct {
	state   State
	phase   Phase
	policy  Policy
	timings Timings
	cycle   uint64
	steps   []Step
	fired   []bool
}

func New(timings Timings, policy Policy) *Controller {
	return &Controller{timings: timings, policy: policy}
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Phase() Phase {
	return c.phase
}

// Cycle returns the token of the current (or last) cycle.
func (c *Controller) Cycle() uint64 {
	return c.cycle
}

func (c *Controller) Policy() Policy {
	return c.policy
}

// Configure replaces the timings and policy. A running cycle keeps the steps it started with.
func (c *Controller) Configure(timings Timings, policy Policy) {
	c.timings = timings
	c.policy = policy
}

// Request starts a new cycle. The immediate step is applied before returning and the deferred
// steps are returned for scheduling. ok is false when the request was ignored.
func (c *Controller) Request() ([]Pending, bool) {
	if c.phase == Transitioning {
		if c.policy == PolicyIgnore {
			return nil, false
		}

		c.settle()
	}

	c.cycle++
	c.phase = Transitioning
	c.steps = c.timings.steps()
	c.fired = make([]bool, len(c.steps))

	pending := make([]Pending, 0, len(c.steps)-1)
	for index, step := range c.steps {
		if index == 0 {
			c.apply(index)

			continue
		}

		pending = append(pending, Pending{Cycle: c.cycle, Index: index, Step: step})
	}

	return pending, true
}

// Fire applies a deferred step. Steps from a stale or cancelled cycle and steps that already
// fired are ignored.
func (c *Controller) Fire(cycle uint64, index int) (Step, bool) {
	if c.phase != Transitioning || cycle != c.cycle || index < 0 || index >= len(c.steps) || c.fired[index] {
		return Step{}, false
	}

	c.apply(index)

	return c.steps[index], true
}

// Cancel invalidates any pending steps without applying them. Used on teardown.
func (c *Controller) Cancel() {
	c.cycle++
	c.phase = Idle
	c.steps = nil
	c.fired = nil
}

// settle applies every unfired step of the running cycle in order.
func (c *Controller) settle() {
	for index := range c.steps {
		if !c.fired[index] {
			c.apply(index)
		}
	}
}

func (c *Controller) apply(index int) {
	c.state = c.state.toggle(c.steps[index].Flag)
	c.fired[index] = true

	for _, done := range c.fired {
		if !done {
			return
		}
	}

	c.phase = Idle
}
