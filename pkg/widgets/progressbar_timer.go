//go:build !ember_no_timer

package widgets

import (
	"time"

	"github.com/go-ember/ember/pkg/timer"
)

// autoProgress is the timer-driven auto-increment state carried by every
// progress bar. Building with the ember_no_timer tag removes the feature
// (and the Start/Stop entry points) entirely.
type autoProgress struct {
	timer *timer.Timer
	delay time.Duration
}

// Start begins auto-incrementing the bar: every delay the position
// advances by the resolution, starting from the current position (it is
// not reset to the minimum). The period is serviced by the cooperative
// software timer facility, so it is best-effort and imprecise.
//
// No event is raised when the maximum is reached; the bar simply stays
// clamped there. Callers that care poll Position.
func (p *ProgressBar) Start(delay time.Duration) {
	p.delay = delay
	if p.autoProgress.timer == nil {
		p.autoProgress.timer = timer.New(p.autoTick)
	}
	p.autoProgress.timer.Start(delay, true)
}

// Stop cancels auto-incrementing. Stopping an idle bar is a no-op.
func (p *ProgressBar) Stop() {
	if p.autoProgress.timer != nil {
		p.autoProgress.timer.Stop()
	}
}

// Delay returns the configured auto-increment period.
func (p *ProgressBar) Delay() time.Duration {
	return p.delay
}

// Close implements wm.Closer so destroying the widget cancels a running
// timer.
func (p *ProgressBar) Close() {
	p.Stop()
}

// autoTick runs on the cooperative loop from timer.Step.
func (p *ProgressBar) autoTick() {
	p.Increment()
	p.Display().RequestRedraw(p)
}
