// Package countdown implements the single step timer: one countdown at
// a time system-wide, second-granular ticks, and exactly-once expiry.
// The countdown is deliberately independent of session state — moving
// between steps does not stop it; only Stop, expiry, or a new Start do.
package countdown

import (
	"fmt"
	"sync"
	"time"

	"github.com/hammamikhairi/rasoi/internal/logger"
)

// Option configures the countdown.
type Option func(*Countdown)

// WithTickInterval sets the wall-clock length of one tick. Tests
// shrink it; the default is one second.
func WithTickInterval(d time.Duration) Option {
	return func(c *Countdown) {
		c.tickInterval = d
	}
}

// Snapshot is a point-in-time view of the countdown for display.
type Snapshot struct {
	Label            string
	TotalSeconds     int
	RemainingSeconds int
	Running          bool
	Fired            bool
}

// Countdown is the step timer. Starting while a countdown is running
// cancels the old one first; there is never more than one live
// ticker goroutine whose callbacks can still land.
type Countdown struct {
	log          *logger.Logger
	tickInterval time.Duration

	mu        sync.Mutex
	gen       int // bumped on every Start/Stop; stale goroutines see it and exit
	label     string
	total     int
	remaining int
	running   bool
	fired     bool
}

// New creates an idle countdown.
func New(log *logger.Logger, opts ...Option) *Countdown {
	c := &Countdown{
		log:          log,
		tickInterval: time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start begins a countdown of the given minutes. onTick receives the
// remaining seconds once per elapsed second; onExpire fires exactly
// once when the countdown hits zero. Either callback may be nil. A
// non-positive duration is a caller mistake: the call is rejected and
// no timer is created.
func (c *Countdown) Start(minutes int, onTick func(remainingSeconds int), onExpire func()) bool {
	if minutes <= 0 {
		c.log.Warn("rejected countdown of %d minutes", minutes)
		return false
	}

	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.label = fmt.Sprintf("%dm timer", minutes)
	c.total = minutes * 60
	c.remaining = c.total
	c.running = true
	c.fired = false
	c.mu.Unlock()

	go c.loop(gen, onTick, onExpire)

	c.log.Info("countdown started: %d minutes", minutes)
	return true
}

// Stop cancels a running countdown. Expiry callbacks scheduled by the
// cancelled run will never fire; stop and expiry are mutually
// exclusive terminal events. Safe to call when idle.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return
	}
	c.gen++ // orphans the ticker goroutine
	c.running = false
	c.log.Info("countdown stopped with %ds remaining", c.remaining)
}

// Running reports whether a countdown is live.
func (c *Countdown) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// State returns a snapshot for rendering.
func (c *Countdown) State() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Label:            c.label,
		TotalSeconds:     c.total,
		RemainingSeconds: c.remaining,
		Running:          c.running,
		Fired:            c.fired,
	}
}

// loop is the ticker goroutine for one countdown run. It exits as soon
// as its generation is stale, so a Stop or replacement Start silences
// it without any further coordination.
func (c *Countdown) loop(gen int, onTick func(int), onExpire func()) {
	ticker := time.NewTicker(c.tickInterval)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		if c.gen != gen || !c.running {
			c.mu.Unlock()
			return
		}

		c.remaining--
		remaining := c.remaining
		expired := remaining <= 0
		if expired {
			c.remaining = 0
			c.running = false
			c.fired = true
		}
		c.mu.Unlock()

		// Callbacks run outside the lock: they may call back into
		// Stop/Start/State.
		if expired {
			if onTick != nil {
				onTick(0)
			}
			c.log.Info("countdown expired")
			if onExpire != nil {
				onExpire()
			}
			return
		}
		if onTick != nil {
			onTick(remaining)
		}
	}
}
