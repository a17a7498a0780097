//go:build ember_no_timer

package widgets

// autoProgress is empty when the timer feature is compiled out; the
// Start/Stop entry points do not exist in this configuration.
type autoProgress struct{}

// Close implements wm.Closer. Without the timer feature there is nothing
// to release.
func (p *ProgressBar) Close() {}
