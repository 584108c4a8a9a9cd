package scroll

// Tracker converts reported geometry into progress and publishes it to subscribers.
type Tracker struct {
	progress    float64
	subscribers []func(progress float64)
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Subscribe registers fn to receive progress on every Observe call.
func (t *Tracker) Subscribe(fn func(progress float64)) {
	t.subscribers = append(t.subscribers, fn)
}

// Observe computes progress for the geometry and publishes it synchronously.
func (t *Tracker) Observe(geometry Geometry) float64 {
	t.progress = Proportion(geometry.Offset(), geometry.ContentExtent, geometry.ViewportExtent)
	for _, fn := range t.subscribers {
		fn(t.progress)
	}

	return t.progress
}

func (t *Tracker) Progress() float64 {
	return t.progress
}

// State is the carousel state derived from scrolling.
type State struct {
	Axis        Axis
	ItemCount   int
	ActiveIndex int
	Progress    float64
}

func NewState(axis Axis, itemCount int) State {
	return State{Axis: axis, ItemCount: max(itemCount, 1)}
}

// Apply updates progress and the active index. It returns true when the active index changed.
func (s *State) Apply(progress float64) bool {
	s.Progress = min(max(progress, 0), 1)
	next := ActiveIndex(s.Progress, s.ItemCount)
	changed := next != s.ActiveIndex
	s.ActiveIndex = next

	return changed
}
