package vtparse

import "fmt"

// State is a node of the tokenizer state machine.
type State uint8

const (
	StateGround State = iota
	StateEscape
	StateEscapeIntermediate
	StateCSIEntry
	StateCSIParam
	StateCSIIntermediate
	StateCSIIgnore
	StateOSCString
	// StateDCSSkip covers every DCS sub-phase (entry, parameters,
	// intermediates, passthrough, ignore): since no Performer in this
	// module consumes DCS data, the state machine only needs to track
	// "inside a DCS sequence, watching for its terminator" rather than
	// the teacher's five-way split.
	StateDCSSkip
	StateSOSPMApcString
)

func (s State) String() string {
	names := []string{
		"Ground",
		"Escape",
		"EscapeIntermediate",
		"CSIEntry",
		"CSIParam",
		"CSIIntermediate",
		"CSIIgnore",
		"OSCString",
		"DCSSkip",
		"SOSPMApcString",
	}

	if int(s) < len(names) {
		return names[s]
	}
	return fmt.Sprintf("Unknown(%d)", s)
}
