package bounce

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bouncebox/internal/core"
	"github.com/vovakirdan/bouncebox/internal/frame"
)

// State is the simulator lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRunning
)

// String returns a human-readable name for the state.
func (s State) String() string {
	if s == StateRunning {
		return "running"
	}
	return "idle"
}

// Options configures a Simulator. Zero values fall back to the defaults.
type Options struct {
	ElementID string
	Speed     float64
	MinSize   int
	MaxSize   int
	Seed      int64 // 0 means seed from the current time
	Rand      Rand  // Overrides Seed when set
	Logger    *log.Logger
}

func (o Options) withDefaults() Options {
	if o.ElementID == "" {
		o.ElementID = DefaultElementID
	}
	if o.Speed == 0 {
		o.Speed = DefaultSpeed
	}
	if o.MinSize <= 0 {
		o.MinSize = DefaultMinSize
	}
	if o.MaxSize <= 0 {
		o.MaxSize = DefaultMaxSize
	}
	if o.Rand == nil {
		seed := o.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		o.Rand = rand.New(rand.NewSource(seed))
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// Stats counts what happened since Start.
type Stats struct {
	Ticks             int64
	HorizontalBounces int
	VerticalBounces   int
}

// Simulator owns one Box and advances it once per frame.
// It is not safe for concurrent use: hosts call it from a single goroutine.
type Simulator struct {
	opts      Options
	doc       Document
	scheduler frame.Scheduler
	logger    *log.Logger

	state    State
	viewport core.Measurements
	box      Box
	element  Element
	stats    Stats
}

// NewSimulator creates an idle simulator drawing into doc and driven by
// scheduler.
func NewSimulator(doc Document, scheduler frame.Scheduler, viewport core.Measurements, opts Options) *Simulator {
	opts = opts.withDefaults()
	return &Simulator{
		opts:      opts,
		doc:       doc,
		scheduler: scheduler,
		logger:    opts.Logger,
		viewport:  viewport,
	}
}

// OnReadyStateChange starts the simulation the first time the host reports
// ReadyInteractive. Every other state change is ignored.
func (s *Simulator) OnReadyStateChange(rs ReadyState) error {
	if rs != ReadyInteractive || s.state == StateRunning {
		return nil
	}
	return s.Start()
}

// Start sizes and reveals the element, creates the box and runs the first
// tick. The tick then keeps itself scheduled for every following frame.
func (s *Simulator) Start() error {
	if s.state == StateRunning {
		return ErrAlreadyRunning
	}

	el, ok := s.doc.ElementByID(s.opts.ElementID)
	if !ok || el == nil {
		return fmt.Errorf("bounce: %q: %w", s.opts.ElementID, ErrElementNotFound)
	}

	width := RandomInteger(s.opts.Rand, s.opts.MinSize, s.opts.MaxSize)
	height := RandomInteger(s.opts.Rand, s.opts.MinSize, s.opts.MaxSize)

	box, err := NewBox(s.opts.Rand, width, height, s.viewport, s.opts.Speed)
	if err != nil {
		return err
	}

	el.SetPosition(0, 0)
	el.SetSize(box.Size().Horizontal, box.Size().Vertical)

	s.box = box
	s.element = el
	s.state = StateRunning

	s.logger.Info("simulation started",
		"element", s.opts.ElementID,
		"size", fmt.Sprintf("%gx%g", box.Size().Horizontal, box.Size().Vertical),
		"viewport", fmt.Sprintf("%gx%g", s.viewport.Horizontal, s.viewport.Vertical),
	)

	s.Tick()
	el.Activate()
	return nil
}

// Tick advances the box one frame, pushes its position to the element and
// registers itself for the next frame. It does nothing while idle.
func (s *Simulator) Tick() {
	if s.state != StateRunning {
		return
	}

	next, contacts := Step(s.box, s.viewport)
	s.box = next
	s.stats.Ticks++
	if contacts.Horizontal != EdgeNone {
		s.stats.HorizontalBounces++
	}
	if contacts.Vertical != EdgeNone {
		s.stats.VerticalBounces++
	}
	if contacts.Any() {
		s.logger.Debug("bounce",
			"tick", s.stats.Ticks,
			"horizontal", contacts.Horizontal,
			"vertical", contacts.Vertical,
		)
	}

	pos := s.box.Position()
	s.element.SetPosition(pos.Horizontal, pos.Vertical)

	s.scheduler.ScheduleNextFrame(s.Tick)
}

// SetViewport changes the bounds used from the next tick on.
func (s *Simulator) SetViewport(viewport core.Measurements) {
	s.viewport = viewport
}

// Viewport returns the current bounds.
func (s *Simulator) Viewport() core.Measurements {
	return s.viewport
}

// State returns the lifecycle state.
func (s *Simulator) State() State {
	return s.state
}

// Box returns a copy of the current box. It is the zero Box while idle.
func (s *Simulator) Box() Box {
	return s.box
}

// Stats returns tick and bounce counts.
func (s *Simulator) Stats() Stats {
	return s.stats
}
