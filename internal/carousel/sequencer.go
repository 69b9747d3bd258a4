// Package carousel implements the slide sequencer shared by the hero and
// testimonial carousels.
//
// A Sequencer owns the active slide index of a fixed, ordered sequence of
// slides, advances it with a one-shot auto-advance timer and lets direct user
// input (keys, arrows, dots, swipes, hover) redirect it. Every index change
// cancels the pending timer and arms exactly one new one, so a slide always
// stays visible for a full interval after any change.
package carousel

import (
	"errors"
	"log/slog"
	"sync"
)

// ErrNoSlides is returned by New when the slide sequence is empty. Widgets
// with no slides render nothing and never own a sequencer.
var ErrNoSlides = errors.New("carousel: no slides")

// Change describes the outcome of one dispatched input.
type Change struct {
	From    int
	To      int
	Cause   string
	Changed bool
}

// Sequencer selects the active slide. It is safe for concurrent use: timer
// callbacks and user inputs are serialised through Dispatch.
type Sequencer struct {
	variant  Variant
	count    int
	clock    Clock
	onChange func(Change)
	logger   *slog.Logger

	mu      sync.Mutex
	state   State
	timer   Timer
	gen     uint64
	started bool
	closed  bool

	// notifyMu keeps observer notifications in dispatch order.
	notifyMu sync.Mutex
}

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithClock replaces the runtime clock, mainly for tests.
func WithClock(c Clock) Option {
	return func(s *Sequencer) {
		s.clock = c
	}
}

// WithOnChange registers an observer called after every index change. The
// observer must not call back into the sequencer synchronously.
func WithOnChange(fn func(Change)) Option {
	return func(s *Sequencer) {
		s.onChange = fn
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(s *Sequencer) {
		s.logger = l
	}
}

// New creates a sequencer over count slides starting at index 0. The timer is
// not armed until Start is called.
func New(count int, v Variant, opts ...Option) (*Sequencer, error) {
	if count <= 0 {
		return nil, ErrNoSlides
	}
	if v.Interval <= 0 {
		v.Interval = DefaultHeroInterval
	}

	s := &Sequencer{
		variant: v,
		count:   count,
		clock:   RealClock{},
		state:   State{Count: count},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default().With("component", "carousel", "variant", v.Name)
	}
	return s, nil
}

// Start mounts the sequencer and arms the first auto-advance timer when
// there is more than one slide.
func (s *Sequencer) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started || s.closed {
		return
	}
	s.started = true
	if s.state.Count > 1 && !s.state.Paused {
		s.armLocked()
	}
}

// Close unmounts the sequencer. The pending timer is released and later
// inputs are ignored.
func (s *Sequencer) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.cancelLocked()
}

// Dispatch applies one input and performs the resulting timer effect.
func (s *Sequencer) Dispatch(in Input) Change {
	s.mu.Lock()
	cur := s.state.Index
	if s.closed {
		s.mu.Unlock()
		return Change{From: cur, To: cur, Cause: Cause(in)}
	}
	if fired, ok := in.(TimerFired); ok {
		if fired.Gen != s.gen || s.timer == nil {
			// A timer cancelled after its callback was already running.
			s.mu.Unlock()
			return Change{From: cur, To: cur, Cause: Cause(in)}
		}
		s.timer = nil
	}

	t := Step(s.variant, s.state, in)
	s.state = t.State
	if t.Cancel {
		s.cancelLocked()
	}
	if t.Rearm {
		s.armLocked()
	}

	ch := Change{From: cur, To: s.state.Index, Cause: Cause(in), Changed: t.Changed}

	s.notifyMu.Lock()
	s.mu.Unlock()
	defer s.notifyMu.Unlock()

	if ch.Changed {
		s.logger.Debug("slide changed", "from", ch.From, "to", ch.To, "cause", ch.Cause)
		if s.onChange != nil {
			s.onChange(ch)
		}
	}
	return ch
}

// Next advances one slide, wrapping past the last one.
func (s *Sequencer) Next() Change { return s.Dispatch(Arrow{Dir: Forward}) }

// Prev retreats one slide, wrapping before the first one.
func (s *Sequencer) Prev() Change { return s.Dispatch(Arrow{Dir: Backward}) }

// GoTo jumps to slide i. Out of range indices are ignored.
func (s *Sequencer) GoTo(i int) Change { return s.Dispatch(DotClick{Index: i}) }

// HandleKey maps ArrowRight to Next and ArrowLeft to Prev.
func (s *Sequencer) HandleKey(key string) Change { return s.Dispatch(Key{Name: key}) }

// HandleSwipeEnd navigates when a completed drag exceeds SwipeThreshold.
func (s *Sequencer) HandleSwipeEnd(delta float64) Change { return s.Dispatch(Swipe{Delta: delta}) }

// SetPaused suspends or resumes auto-advance on variants that pause on hover.
func (s *Sequencer) SetPaused(paused bool) Change { return s.Dispatch(Hover{Over: paused}) }

// Index returns the active slide index.
func (s *Sequencer) Index() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Index
}

// Count returns the number of slides.
func (s *Sequencer) Count() int {
	return s.count
}

// Paused reports whether auto-advance is suspended.
func (s *Sequencer) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Paused
}

// Pending reports whether an auto-advance timer is armed.
func (s *Sequencer) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}

// Snapshot returns a copy of the current state.
func (s *Sequencer) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Variant returns the sequencer's variant.
func (s *Sequencer) Variant() Variant {
	return s.variant
}

// armLocked replaces any pending timer with a fresh one. Callers hold s.mu.
func (s *Sequencer) armLocked() {
	if !s.started {
		return
	}
	s.cancelLocked()
	gen := s.gen
	s.timer = s.clock.AfterFunc(s.variant.Interval, func() {
		s.Dispatch(TimerFired{Gen: gen})
	})
}

// cancelLocked stops the pending timer and invalidates its generation so a
// callback that already started is ignored. Callers hold s.mu.
func (s *Sequencer) cancelLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
}
