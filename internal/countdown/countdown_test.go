package countdown

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hammamikhairi/rasoi/internal/logger"
)

// tickRecorder collects tick values for assertions.
type tickRecorder struct {
	mu    sync.Mutex
	ticks []int
}

func (r *tickRecorder) record(remaining int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ticks = append(r.ticks, remaining)
}

func (r *tickRecorder) values() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, len(r.ticks))
	copy(out, r.ticks)
	return out
}

func newTestCountdown() *Countdown {
	log := logger.New(logger.LevelOff, nil)
	// 1ms "seconds" so a one-minute countdown finishes in ~60ms.
	return New(log, WithTickInterval(time.Millisecond))
}

func TestCountdownExpiresExactlyOnce(t *testing.T) {
	c := newTestCountdown()
	rec := &tickRecorder{}
	var expired atomic.Int32

	if ok := c.Start(1, rec.record, func() { expired.Add(1) }); !ok {
		t.Fatal("start rejected")
	}

	deadline := time.Now().Add(2 * time.Second)
	for expired.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if got := expired.Load(); got != 1 {
		t.Fatalf("expire fired %d times, want 1", got)
	}

	s := c.State()
	if s.Running {
		t.Error("countdown still running after expiry")
	}
	if !s.Fired {
		t.Error("snapshot does not report fired")
	}
	if s.RemainingSeconds != 0 {
		t.Errorf("remaining = %d, want 0", s.RemainingSeconds)
	}

	// Ticks decrease monotonically to zero.
	ticks := rec.values()
	if len(ticks) == 0 {
		t.Fatal("no ticks recorded")
	}
	for i := 1; i < len(ticks); i++ {
		if ticks[i] >= ticks[i-1] {
			t.Fatalf("ticks not monotonic: %v", ticks)
		}
	}
	if ticks[len(ticks)-1] != 0 {
		t.Fatalf("final tick = %d, want 0", ticks[len(ticks)-1])
	}
}

func TestStopPreventsExpiry(t *testing.T) {
	c := newTestCountdown()
	var expired atomic.Int32

	c.Start(1, nil, func() { expired.Add(1) })
	time.Sleep(10 * time.Millisecond)
	c.Stop()

	if c.Running() {
		t.Fatal("still running after stop")
	}

	// Wait past the point where the countdown would have expired.
	time.Sleep(120 * time.Millisecond)
	if got := expired.Load(); got != 0 {
		t.Fatalf("expire fired %d times after stop", got)
	}
}

func TestStartCancelsPrevious(t *testing.T) {
	c := newTestCountdown()
	var firstExpired, secondExpired atomic.Int32

	c.Start(5, nil, func() { firstExpired.Add(1) })
	time.Sleep(5 * time.Millisecond)

	// The replacement timer silences the first one for good.
	c.Start(1, nil, func() { secondExpired.Add(1) })

	deadline := time.Now().Add(2 * time.Second)
	for secondExpired.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if secondExpired.Load() != 1 {
		t.Fatalf("second timer expired %d times, want 1", secondExpired.Load())
	}
	if firstExpired.Load() != 0 {
		t.Fatalf("cancelled timer expired %d times", firstExpired.Load())
	}
}

func TestNonPositiveDurationRejected(t *testing.T) {
	c := newTestCountdown()
	if c.Start(0, nil, nil) {
		t.Error("zero-minute countdown accepted")
	}
	if c.Start(-3, nil, nil) {
		t.Error("negative countdown accepted")
	}
	if c.Running() {
		t.Error("rejected start left a running countdown")
	}
}

func TestStopWhenIdleIsNoOp(t *testing.T) {
	c := newTestCountdown()
	c.Stop() // must not panic or misbehave
	if c.Running() {
		t.Error("idle countdown running after stop")
	}
}

func TestSnapshotWhileRunning(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	c := New(log, WithTickInterval(10*time.Millisecond))
	c.Start(2, nil, nil)
	defer c.Stop()

	time.Sleep(35 * time.Millisecond)
	s := c.State()
	if !s.Running {
		t.Fatal("not running")
	}
	if s.TotalSeconds != 120 {
		t.Errorf("total = %d, want 120", s.TotalSeconds)
	}
	if s.RemainingSeconds >= s.TotalSeconds || s.RemainingSeconds <= 0 {
		t.Errorf("remaining = %d out of expected range", s.RemainingSeconds)
	}
}
