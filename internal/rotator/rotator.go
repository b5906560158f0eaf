// Package rotator cycles a fixed list of slides on a timer and on request,
// playing one crossfade transition at a time.
package rotator

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultInterval is the auto-advance period used by the home page hero.
const DefaultInterval = 6 * time.Second

var (
	ErrNoSlides        = errors.New("rotator: at least one slide is required")
	ErrIndexOutOfRange = errors.New("rotator: slide index out of range")
)

// Option configures a Rotator.
type Option func(*Rotator)

// WithInterval sets the auto-advance period. Zero disables auto-advance.
func WithInterval(d time.Duration) Option {
	return func(r *Rotator) { r.interval = d }
}

// WithTimeline replaces the hero crossfade.
func WithTimeline(tl Timeline) Option {
	return func(r *Rotator) { r.timeline = tl }
}

// WithScheduler replaces the system timer source.
func WithScheduler(s Scheduler) Option {
	return func(r *Rotator) { r.sched = s }
}

// WithSurface sets where transitions are drawn. Without a surface every
// transition is an immediate index swap.
func WithSurface(s Surface) Option {
	return func(r *Rotator) { r.surface = s }
}

// WithOnChange registers a callback invoked after every state change. It
// runs with the rotator's lock held and must not call back into it.
func WithOnChange(fn func(State)) Option {
	return func(r *Rotator) { r.onChange = fn }
}

// WithLogger sets the logger used for transition diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(r *Rotator) { r.logger = l }
}

// Rotator presents one slide at a time from a fixed list.
//
// It moves through Idle(i) -> Transitioning(i,j) -> Idle(j). Requests that
// arrive while a transition is in flight are dropped, never queued. All
// scheduled callbacks are owned by the rotator and cancelled by Close.
type Rotator struct {
	slides   []Slide
	interval time.Duration
	timeline Timeline
	sched    Scheduler
	surface  Surface
	onChange func(State)
	logger   *zap.Logger

	mu      sync.Mutex
	state   State
	running bool
	closed  bool

	ticker    Timer
	tickSeq   uint64
	handles   []Timer
	playSeq   uint64
	startedAt time.Time
}

// New builds a stopped rotator over a copy of slides.
func New(slides []Slide, opts ...Option) (*Rotator, error) {
	if len(slides) == 0 {
		return nil, ErrNoSlides
	}
	r := &Rotator{
		slides:   append([]Slide(nil), slides...),
		interval: DefaultInterval,
		timeline: HeroTimeline(),
		sched:    SystemScheduler{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Len returns the number of slides.
func (r *Rotator) Len() int { return len(r.slides) }

// Slide returns the slide at index.
func (r *Rotator) Slide(index int) (Slide, error) {
	if index < 0 || index >= len(r.slides) {
		return Slide{}, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, len(r.slides))
	}
	return r.slides[index], nil
}

// Timeline returns the transition timeline in use.
func (r *Rotator) Timeline() Timeline { return r.timeline }

// State returns a snapshot of the current state.
func (r *Rotator) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Start mounts the rotator: state resets to slide 0, idle, and the
// auto-advance countdown begins. Starting twice or after Close does nothing.
func (r *Rotator) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running || r.closed {
		return
	}
	r.running = true
	r.state = State{}
	r.notifyLocked()
	r.armLocked()
}

// Close unmounts the rotator. The auto-advance timer and any in-flight
// transition are cancelled; no callback mutates state afterwards.
func (r *Rotator) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	r.running = false
	r.disarmLocked()
	r.cancelPlaybackLocked()
}

// Advance starts a transition to the next slide, wrapping after the last.
// It reports whether a transition started.
func (r *Rotator) Advance() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.readyLocked() {
		return false
	}
	next := (r.state.ActiveIndex + 1) % len(r.slides)
	r.startLocked(r.state.ActiveIndex, next)
	return true
}

// Previous starts a transition to the preceding slide, wrapping before the
// first. With a single slide it does nothing.
func (r *Rotator) Previous() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.readyLocked() {
		return false
	}
	n := len(r.slides)
	prev := (r.state.ActiveIndex - 1 + n) % n
	if prev == r.state.ActiveIndex {
		return false
	}
	r.startLocked(r.state.ActiveIndex, prev)
	return true
}

// GoTo starts a transition to index. Requests for the active slide or made
// during a transition are ignored. Out of range indices are an error.
func (r *Rotator) GoTo(index int) (bool, error) {
	if index < 0 || index >= len(r.slides) {
		return false, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, len(r.slides))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.readyLocked() || index == r.state.ActiveIndex {
		return false, nil
	}
	r.startLocked(r.state.ActiveIndex, index)
	return true, nil
}

func (r *Rotator) readyLocked() bool {
	return r.running && !r.closed && !r.state.Transitioning
}

func (r *Rotator) startLocked(from, to int) {
	r.state.Transitioning = true
	r.state.Target = to
	r.notifyLocked()

	if r.surface == nil || !r.surface.HasTarget(from) || !r.surface.HasTarget(to) {
		r.logger.Debug("render target missing, swapping without animation",
			zap.Int("from", from), zap.Int("to", to))
		r.completeLocked(to)
		return
	}

	r.playSeq++
	seq := r.playSeq
	r.startedAt = time.Now()
	for _, c := range r.timeline.Cues() {
		r.handles = append(r.handles, r.sched.AfterFunc(c.At, func() { r.fire(seq, from, to, c) }))
	}
	r.handles = append(r.handles, r.sched.AfterFunc(r.timeline.Duration(), func() { r.finish(seq, to) }))
	r.logger.Debug("transition started",
		zap.Int("from", from), zap.Int("to", to), zap.Duration("duration", r.timeline.Duration()))
}

func (r *Rotator) fire(seq uint64, from, to int, c Cue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || seq != r.playSeq || r.surface == nil {
		return
	}
	r.surface.Cue(CueEvent{Cue: c, From: from, To: to, Slide: r.slides[to]})
}

func (r *Rotator) finish(seq uint64, to int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || seq != r.playSeq || !r.state.Transitioning {
		return
	}
	r.logger.Debug("transition complete",
		zap.Int("active", to), zap.Duration("elapsed", time.Since(r.startedAt)))
	r.completeLocked(to)
}

// completeLocked ends the current transition on slide to and restarts the
// auto-advance countdown.
func (r *Rotator) completeLocked(to int) {
	r.cancelPlaybackLocked()
	r.state = State{ActiveIndex: to, Target: to}
	r.notifyLocked()
	r.armLocked()
}

func (r *Rotator) cancelPlaybackLocked() {
	for _, h := range r.handles {
		h.Stop()
	}
	r.handles = nil
	r.playSeq++
}

// armLocked cancels any pending auto-advance tick and schedules a new one.
func (r *Rotator) armLocked() {
	r.disarmLocked()
	if r.interval <= 0 || !r.running {
		return
	}
	seq := r.tickSeq
	r.ticker = r.sched.AfterFunc(r.interval, func() { r.tick(seq) })
}

func (r *Rotator) disarmLocked() {
	if r.ticker != nil {
		r.ticker.Stop()
		r.ticker = nil
	}
	r.tickSeq++
}

func (r *Rotator) tick(seq uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || !r.running || seq != r.tickSeq {
		return
	}
	r.ticker = nil
	if !r.state.Transitioning {
		next := (r.state.ActiveIndex + 1) % len(r.slides)
		r.startLocked(r.state.ActiveIndex, next)
	}
	// A completed swap re-arms on its own; otherwise keep the period going.
	if r.ticker == nil {
		r.armLocked()
	}
}

func (r *Rotator) notifyLocked() {
	if r.onChange != nil {
		r.onChange(r.state)
	}
}
