package state

// Rows taken by the path header and the status footer.
const chromeRows = 2

// Window is the slice of the listing that is on screen. Start and End are a
// half-open range into the entries.
type Window struct {
	Offset int
	Height int
	Start  int
	End    int
}

// Len is the number of visible rows.
func (w Window) Len() int {
	return w.End - w.Start
}

// Highlight maps a selection index to its row inside the window.
func (w Window) Highlight(selection int) (int, bool) {
	if selection < w.Start || selection >= w.End {
		return 0, false
	}
	return selection - w.Offset, true
}

// UsableHeight is the number of list rows left on a screen of height rows.
func UsableHeight(height int) int {
	if height <= chromeRows {
		return 0
	}
	return height - chromeRows
}

// ComputeWindow picks the scroll offset for a listing of total entries shown
// in height rows. Lists that fit are never scrolled. Otherwise the window
// stays at the top until the selection passes the middle row, follows the
// selection centred, and pins to the end once the selection is within half a
// screen of the last entry.
func ComputeWindow(selection, total, height int) Window {
	if total <= 0 || height <= 0 {
		return Window{Height: max(height, 0)}
	}

	half := height / 2
	var offset int
	switch {
	case total <= height:
		offset = 0
	case selection < half:
		offset = 0
	case selection > total-half:
		offset = total - height
	default:
		offset = selection - half
	}

	return Window{
		Offset: offset,
		Height: height,
		Start:  offset,
		End:    min(total, offset+height),
	}
}
