package coord

// ScrollRect describes the source and destination spans of a scroll,
// insert, or delete operation against a single axis of a viewport,
// plus the cells left behind that must be filled rather than copied.
type ScrollRect struct {
	// SrcStart and SrcEnd bound the span being moved (half-open).
	SrcStart, SrcEnd int16
	// Dst is where SrcStart lands after the move.
	Dst int16
	// FillStart and FillEnd bound the span left behind (half-open),
	// which the caller must paint with the fill cell.
	FillStart, FillEnd int16
}

// Empty reports whether the rect describes no work at all.
func (r ScrollRect) Empty() bool {
	return r.SrcEnd <= r.SrcStart && r.FillEnd <= r.FillStart
}

// ShiftDown computes the rect for moving the half-open span [start, end)
// down by n lines (toward higher indices), as used by Insert Line and
// Scroll Down: content scrolls toward end, the top n lines are vacated
// and must be filled, and content sliding past end is dropped.
func ShiftDown(start, end, n int16) ScrollRect {
	if end <= start || n <= 0 {
		return ScrollRect{}
	}
	if n >= end-start {
		return ScrollRect{FillStart: start, FillEnd: end}
	}
	dst := start + n
	return ScrollRect{
		SrcStart:  start,
		SrcEnd:    end - n,
		Dst:       dst,
		FillStart: start,
		FillEnd:   dst,
	}
}

// ShiftUp computes the rect for moving the half-open span [start, end)
// up by n lines (toward lower indices), as used by Delete Line and
// Scroll Up: content scrolls toward start, the bottom n lines are
// vacated and must be filled.
func ShiftUp(start, end, n int16) ScrollRect {
	if end <= start || n <= 0 {
		return ScrollRect{}
	}
	if n >= end-start {
		return ScrollRect{FillStart: start, FillEnd: end}
	}
	return ScrollRect{
		SrcStart:  start + n,
		SrcEnd:    end,
		Dst:       start,
		FillStart: end - n,
		FillEnd:   end,
	}
}

// ShiftRight computes the rect for Insert Character: content in
// [start, end) slides right by n, anything past end is dropped, and
// [start, start+n) is vacated for the fill cell.
func ShiftRight(start, end, n int16) ScrollRect {
	return ShiftDown(start, end, n)
}

// ShiftLeft computes the rect for Delete Character: content in
// [start, end) slides left by n, and the last n cells are vacated.
func ShiftLeft(start, end, n int16) ScrollRect {
	return ShiftUp(start, end, n)
}
