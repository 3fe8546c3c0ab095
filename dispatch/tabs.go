package dispatch

import "github.com/cliofy/vtadapter/console"

// SetTabStop implements HTS: set a tab stop at the current column.
func (d *Dispatcher) SetTabStop() bool {
	if !d.api.TabSet() {
		return d.fail(failFacade, "SetTabStop", "tab_set")
	}
	return true
}

// ClearTabStop implements TBC.
func (d *Dispatcher) ClearTabStop(mode console.TabulationClearMode) bool {
	if !d.api.TabClear(mode) {
		return d.fail(failFacade, "ClearTabStop", "tab_clear")
	}
	return true
}

// TabForward implements CHT: move forward by n tab stops.
func (d *Dispatcher) TabForward(n uint) bool {
	if !d.api.TabForward(int(n)) {
		return d.fail(failFacade, "TabForward", "tab_forward")
	}
	return true
}

// TabBackward implements CBT: move backward by n tab stops.
func (d *Dispatcher) TabBackward(n uint) bool {
	if !d.api.TabBackward(int(n)) {
		return d.fail(failFacade, "TabBackward", "tab_backward")
	}
	return true
}
