// Package session drives the translation from raw input events to virtual
// controller state. It is a single serial loop: every event is processed to
// completion before the next one, and the recenter deadline is just another
// case of the same select, so no synchronization is needed anywhere.
package session

import (
	"fmt"
	"log"
	"time"

	"kmpad/internal/mapping"
	"kmpad/internal/pad"
	"kmpad/internal/shaper"
	"kmpad/internal/source"
)

// Pad is the virtual controller sink. Writes are fire-and-forget: the sink
// logs and drops its own failures.
type Pad interface {
	SetButton(code uint16, pressed bool)
	SetAxis(code uint16, value int32)
	Close() error
}

// Hider toggles the cursor-hiding helper process.
type Hider interface {
	SetHidden(hidden bool) error
	Hidden() bool
}

// HiderStrategy selects who owns the cursor-hiding helper's lifecycle.
type HiderStrategy int

const (
	// HiderManaged: the session hides the cursor on start, shows it on exit,
	// and supports the manual toggle key.
	HiderManaged HiderStrategy = iota
	// HiderExternal: the helper was started outside this process; the session
	// leaves it alone and the toggle key is inert.
	HiderExternal
)

// State is the session lifecycle state.
type State int

const (
	Uninitialized State = iota
	Active
	Terminated
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Active:
		return "active"
	case Terminated:
		return "terminated"
	}
	return "unknown"
}

// DefaultRecenterInterval is how long after the last motion event the right
// stick snaps back to neutral. The event source only reports motion while it
// occurs, so "the mouse stopped" has to be inferred by timeout.
const DefaultRecenterInterval = 20 * time.Millisecond

// Config fixes a session's behavior at construction time.
type Config struct {
	Strategy         HiderStrategy
	Profile          shaper.Profile
	RecenterInterval time.Duration
}

// Session owns the pad and hider handles and runs the dispatch loop.
type Session struct {
	pad   Pad
	hider Hider
	cfg   Config
	state State
}

// New creates a session in the Uninitialized state.
func New(p Pad, h Hider, cfg Config) *Session {
	if cfg.RecenterInterval <= 0 {
		cfg.RecenterInterval = DefaultRecenterInterval
	}
	return &Session{pad: p, hider: h, cfg: cfg}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Run activates the session and processes events until an exit request or
// channel closure. It returns the shutdown error, if any; the session cannot
// be re-run afterwards.
func (s *Session) Run(events <-chan source.Event) error {
	if s.state != Uninitialized {
		return fmt.Errorf("session already %s", s.state)
	}
	s.activate()

	recenter := time.NewTimer(s.cfg.RecenterInterval)
	if !recenter.Stop() {
		<-recenter.C
	}
	armed := false

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return s.terminate()
			}
			switch ev.Type {
			case source.ExitRequested:
				return s.terminate()
			case source.KeyChanged:
				if ev.Key == mapping.ExitKey {
					return s.terminate()
				}
				if ev.Key == mapping.ToggleKey && s.cfg.Strategy == HiderManaged {
					if ev.Pressed {
						s.toggleCursor()
					}
					continue
				}
				s.handleKey(ev.Key, ev.Pressed)
			case source.MouseButtonChanged:
				if e, ok := mapping.MouseButtonToElement(ev.Button); ok {
					s.pad.SetButton(e.Code, ev.Pressed)
				}
			case source.MouseMoved:
				x, y := shaper.Shape(ev.DX, ev.DY, s.cfg.Profile)
				s.pad.SetAxis(pad.AbsRX, x)
				s.pad.SetAxis(pad.AbsRY, y)
				// Re-arm the deadline; a pending one is superseded.
				if armed && !recenter.Stop() {
					<-recenter.C
				}
				recenter.Reset(s.cfg.RecenterInterval)
				armed = true
			case source.CursorToggleRequested:
				if s.cfg.Strategy == HiderManaged {
					s.toggleCursor()
				}
			}
		case <-recenter.C:
			if armed {
				s.pad.SetAxis(pad.AbsRX, 0)
				s.pad.SetAxis(pad.AbsRY, 0)
				armed = false
			}
		}
	}
}

// activate allocates nothing itself (the handles were passed in) but zeroes
// the sticks and hides the cursor per the configured strategy.
func (s *Session) activate() {
	s.state = Active
	for _, axis := range pad.Axes {
		s.pad.SetAxis(axis, 0)
	}
	if s.cfg.Strategy == HiderManaged {
		_ = s.hider.SetHidden(true)
	}
}

// handleKey forwards a key event through the mapping tables. Axis nudges win
// over digital elements, matching the original binding precedence.
func (s *Session) handleKey(key uint16, pressed bool) {
	if n, ok := mapping.KeyToAxisNudge(key); ok {
		value := n.Value
		if !pressed {
			value = 0
		}
		s.pad.SetAxis(n.Axis, value)
		return
	}
	if e, ok := mapping.KeyToElement(key); ok {
		s.pad.SetButton(e.Code, pressed)
	}
}

func (s *Session) toggleCursor() {
	if err := s.hider.SetHidden(!s.hider.Hidden()); err != nil {
		log.Printf("Session: cursor toggle failed: %v", err)
	}
}

// terminate is the absorbing shutdown path: show the cursor again (when this
// session manages it), release the pad, and report the first hard failure.
// A failed helper kill is the only non-startup fatal condition.
func (s *Session) terminate() error {
	s.state = Terminated

	var firstErr error
	if s.cfg.Strategy == HiderManaged {
		if err := s.hider.SetHidden(false); err != nil {
			firstErr = err
		}
	}
	if err := s.pad.Close(); err != nil {
		log.Printf("Session: failed to release controller device: %v", err)
	}
	return firstErr
}
