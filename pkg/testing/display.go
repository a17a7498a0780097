package testing

import (
	stdtesting "testing"

	"github.com/go-ember/ember/pkg/display"
	"github.com/go-ember/ember/pkg/graphics"
	"github.com/go-ember/ember/pkg/theme"
	"github.com/go-ember/ember/pkg/timer"
	"github.com/go-ember/ember/pkg/wm"
)

// NewTestDisplay opens a window-managed display on a memory driver.
func NewTestDisplay(tb stdtesting.TB, width, height int) (*wm.Display, *display.Memory) {
	tb.Helper()
	drv := display.NewMemory(width, height)
	d, err := wm.NewDisplay(drv)
	if err != nil {
		tb.Fatalf("wm.NewDisplay: %v", err)
	}
	return d, drv
}

// InstallFakeClock swaps the timer clock for a FakeClock and restores the
// real one when the test finishes.
func InstallFakeClock(tb stdtesting.TB) *FakeClock {
	tb.Helper()
	clk := NewFakeClock()
	prev := timer.SetClock(clk)
	tb.Cleanup(func() { timer.SetClock(prev) })
	return clk
}

// WithDefaults applies theme defaults for the duration of the test.
func WithDefaults(tb stdtesting.TB, d theme.Defaults) {
	tb.Helper()
	prev := theme.Current()
	theme.Set(d)
	tb.Cleanup(func() { theme.Set(prev) })
}

// StandardDefaults is a convenient white-on-black theme with the builtin
// font enabled.
func StandardDefaults() theme.Defaults {
	return theme.Defaults{
		Color:      graphics.ColorWhite,
		Background: graphics.ColorBlack,
		Font:       graphics.DefaultFont(),
	}
}
