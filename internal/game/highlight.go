package game

import "time"

// Highlight defaults: three on/off cycles at half a second per toggle.
const (
	DefaultHighlightPeriod = 500 * time.Millisecond
	DefaultHighlightTicks  = 6
)

// Highlighter blinks the border of the truthful slot after a submission.
// Finishing the sequence is what ends a round.
type Highlighter struct {
	period  time.Duration
	ticks   int
	elapsed time.Duration
	fired   int
	slot    int
	on      bool
	active  bool
}

// NewHighlighter builds an idle highlighter.
func NewHighlighter(period time.Duration, ticks int) *Highlighter {
	if period <= 0 {
		period = DefaultHighlightPeriod
	}
	if ticks <= 0 {
		ticks = DefaultHighlightTicks
	}
	return &Highlighter{period: period, ticks: ticks}
}

// Start begins a sequence on slot.
func (h *Highlighter) Start(slot int) {
	h.slot = slot
	h.elapsed = 0
	h.fired = 0
	h.on = false
	h.active = true
}

// Active reports whether a sequence is running.
func (h *Highlighter) Active() bool {
	return h.active
}

// On reports whether the border is currently in the highlight color.
func (h *Highlighter) On() bool {
	return h.active && h.on
}

// Slot returns the slot being highlighted.
func (h *Highlighter) Slot() int {
	return h.slot
}

// Advance consumes dt and returns the number of toggles that fired and
// whether the final one was among them.
func (h *Highlighter) Advance(dt time.Duration) (toggles int, finished bool) {
	if !h.active || dt <= 0 {
		return 0, false
	}
	h.elapsed += dt
	for h.elapsed >= h.period && h.active {
		h.elapsed -= h.period
		h.fired++
		h.on = !h.on
		toggles++
		if h.fired >= h.ticks {
			h.active = false
			h.on = false
			finished = true
		}
	}
	return toggles, finished
}
