package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== NAVIGATION ACTIONS =====

type SelectPreviousAction struct{}
type SelectNextAction struct{}
type AscendAction struct{}
type DescendAction struct{}

// RefreshAction re-reads the current directory in place.
type RefreshAction struct{}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

// ===== APPLICATION ACTIONS =====

// Handled by the event loop; the reducer rejects them.
type QuitAction struct{}
type SuspendAction struct{}
