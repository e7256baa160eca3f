// Package drag turns pointer gestures on the render surface into clamped
// background position updates.
package drag

import (
	"fmt"
	"math"
	"sync"

	"github.com/user/memecanvas/pkg/model"
	"github.com/user/memecanvas/pkg/pipeline"
	"github.com/user/memecanvas/pkg/ports"
	"github.com/user/memecanvas/pkg/stages/geometry"
)

// State is the controller's gesture state.
type State int

const (
	StateIdle State = iota
	StateDragging
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Session holds the values captured when a drag starts. They stay constant
// until the drag ends.
type Session struct {
	Origin ports.PointerEvent
	Start  model.Point

	// HalfWidth and HalfHeight are half the scaled background size.
	HalfWidth  float64
	HalfHeight float64

	// Width and Height are the resolved canvas size.
	Width  float64
	Height float64
}

// Position returns the clamped background position for the pointer at cur.
func (s Session) Position(cur ports.PointerEvent) model.Point {
	return model.Point{
		X: Clamp(s.Start.X-(s.Origin.X-cur.X), s.Width, s.HalfWidth),
		Y: Clamp(s.Start.Y-(s.Origin.Y-cur.Y), s.Height, s.HalfHeight),
	}
}

// Clamp bounds v to [size-half, half] for one axis. The lower bound wins
// when the range is empty.
func Clamp(v, size, half float64) float64 {
	return math.Max(size-half, math.Min(v, half))
}

// NewSession captures a drag session for the current configuration and
// background. An unset position defaults to the canvas center.
// bw and bh are the native background size.
func NewSession(origin ports.PointerEvent, cfg model.Config, bw, bh int) Session {
	geo := geometry.Resolve(cfg)

	start := model.Point{X: float64(geo.Width) / 2, Y: float64(geo.Height) / 2}
	if cfg.BackgroundPosition != nil {
		start = *cfg.BackgroundPosition
	}

	return Session{
		Origin:     origin,
		Start:      start,
		HalfWidth:  cfg.ImageScale * float64(bw) / 2,
		HalfHeight: cfg.ImageScale * float64(bh) / 2,
		Width:      float64(geo.Width),
		Height:     float64(geo.Height),
	}
}

// Controller is the drag state machine. It is Idle until a press lands on a
// surface with a background, then Dragging until the pointer is released.
type Controller struct {
	store   *model.Store
	tracker ports.PointerTracker
	logger  ports.Logger

	mu      sync.Mutex
	session *Session
	release func()
}

// NewController creates an idle controller writing positions into store.
func NewController(store *model.Store, tracker ports.PointerTracker, logger ports.Logger) *Controller {
	return &Controller{
		store:   store,
		tracker: tracker,
		logger:  logger.WithComponent("drag"),
	}
}

// PointerDown starts a drag at ev and reports whether one started. The press
// is always consumed, so hosts should suppress its default action whatever
// the result. Without a background the press is a no-op and the controller
// stays idle.
func (c *Controller) PointerDown(ev ports.PointerEvent) bool {
	assets := c.store.Assets()
	if !assets.HasBackground() {
		c.logger.Debug("Drag ignored: %s", pipeline.ErrNoBackground)
		return false
	}

	bw, bh := model.ImageSize(assets.Background)
	s := NewSession(ev, c.store.Config(), bw, bh)

	c.mu.Lock()
	prev := c.release
	c.session = &s
	c.release = c.tracker.Track(c)
	c.mu.Unlock()

	if prev != nil {
		prev()
	}

	c.logger.Debug("Drag started at %.0f,%.0f from position %.1f,%.1f", ev.X, ev.Y, s.Start.X, s.Start.Y)
	return true
}

// PointerMove implements ports.PointerHandler. Every move writes a position.
func (c *Controller) PointerMove(ev ports.PointerEvent) {
	c.mu.Lock()
	s := c.session
	c.mu.Unlock()
	if s == nil {
		return
	}

	p := s.Position(ev)
	c.store.SetBackgroundPosition(p)
	c.logger.Debug("Background moved to %.1f,%.1f", p.X, p.Y)
}

// PointerUp implements ports.PointerHandler. It writes the final position,
// then releases the pointer listeners.
func (c *Controller) PointerUp(ev ports.PointerEvent) {
	c.mu.Lock()
	s, release := c.session, c.release
	c.session, c.release = nil, nil
	c.mu.Unlock()
	if s == nil {
		return
	}

	p := s.Position(ev)
	c.store.SetBackgroundPosition(p)
	if release != nil {
		release()
	}
	c.logger.Debug("Drag ended at %.1f,%.1f", p.X, p.Y)
}

// Cancel ends a drag without writing a position.
func (c *Controller) Cancel() {
	c.mu.Lock()
	release := c.release
	c.session, c.release = nil, nil
	c.mu.Unlock()

	if release != nil {
		release()
		c.logger.Debug("Drag cancelled")
	}
}

// State returns the current gesture state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session != nil {
		return StateDragging
	}
	return StateIdle
}

// Session returns the active session, if any.
func (c *Controller) Session() (Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return Session{}, false
	}
	return *c.session, true
}

// Ensure Controller implements ports.PointerHandler
var _ ports.PointerHandler = (*Controller)(nil)
