package timer_test

import (
	"testing"
	"time"

	embertest "github.com/go-ember/ember/pkg/testing"
	"github.com/go-ember/ember/pkg/timer"
)

func withFakeClock(t *testing.T) *embertest.FakeClock {
	t.Helper()
	clk := embertest.NewFakeClock()
	prev := timer.SetClock(clk)
	t.Cleanup(func() { timer.SetClock(prev) })
	return clk
}

func TestOneShotFiresOnce(t *testing.T) {
	clk := withFakeClock(t)

	fired := 0
	tm := timer.New(func() { fired++ })
	tm.Start(100*time.Millisecond, false)

	timer.Step()
	if fired != 0 {
		t.Fatal("timer fired before its deadline")
	}

	clk.Advance(100 * time.Millisecond)
	timer.Step()
	if fired != 1 {
		t.Fatalf("expected 1 firing, got %d", fired)
	}
	if tm.IsActive() {
		t.Error("one-shot timer should be idle after firing")
	}

	clk.Advance(time.Second)
	timer.Step()
	if fired != 1 {
		t.Errorf("one-shot timer fired again, total %d", fired)
	}
}

func TestPeriodicReschedules(t *testing.T) {
	clk := withFakeClock(t)

	fired := 0
	tm := timer.New(func() { fired++ })
	tm.Start(50*time.Millisecond, true)
	defer tm.Stop()

	for i := 1; i <= 3; i++ {
		clk.Advance(50 * time.Millisecond)
		timer.Step()
		if fired != i {
			t.Fatalf("after tick %d: fired = %d", i, fired)
		}
	}
}

func TestLateStepDoesNotBurst(t *testing.T) {
	clk := withFakeClock(t)

	fired := 0
	tm := timer.New(func() { fired++ })
	tm.Start(10*time.Millisecond, true)
	defer tm.Stop()

	// Five periods elapse before the loop gets around to servicing timers.
	clk.Advance(50 * time.Millisecond)
	timer.Step()
	if fired != 1 {
		t.Fatalf("expected a single catch-up firing, got %d", fired)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	clk := withFakeClock(t)

	fired := 0
	tm := timer.New(func() { fired++ })
	tm.Stop() // idle: no-op
	tm.Start(10*time.Millisecond, true)
	tm.Stop()
	tm.Stop()

	clk.Advance(time.Second)
	timer.Step()
	if fired != 0 {
		t.Errorf("stopped timer fired %d times", fired)
	}
	if tm.IsActive() {
		t.Error("stopped timer reports active")
	}
}

func TestRestartReschedules(t *testing.T) {
	clk := withFakeClock(t)

	fired := 0
	tm := timer.New(func() { fired++ })
	tm.Start(100*time.Millisecond, false)

	clk.Advance(90 * time.Millisecond)
	tm.Start(100*time.Millisecond, false) // pushes the deadline out

	clk.Advance(90 * time.Millisecond)
	timer.Step()
	if fired != 0 {
		t.Fatal("restarted timer kept its old deadline")
	}

	clk.Advance(10 * time.Millisecond)
	timer.Step()
	if fired != 1 {
		t.Fatalf("expected 1 firing after restart, got %d", fired)
	}
}

func TestCallbackMayStopItself(t *testing.T) {
	clk := withFakeClock(t)

	var tm *timer.Timer
	fired := 0
	tm = timer.New(func() {
		fired++
		tm.Stop()
	})
	tm.Start(10*time.Millisecond, true)

	clk.Advance(10 * time.Millisecond)
	timer.Step()
	clk.Advance(10 * time.Millisecond)
	timer.Step()

	if fired != 1 {
		t.Fatalf("expected timer to stop itself after 1 firing, got %d", fired)
	}
}
