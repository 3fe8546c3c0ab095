package dispatch

// ReverseIndex implements RI: cursor up one line, or scroll down within
// margins if already at the top margin. Delegated to the engine.
func (d *Dispatcher) ReverseIndex() bool {
	if !d.api.ReverseLineFeed() {
		return d.fail(failFacade, "ReverseIndex", "reverse_line_feed")
	}
	return true
}
