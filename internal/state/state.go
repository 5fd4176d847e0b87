package state

import (
	fsutil "github.com/dmee3/sfm/internal/fs"
)

// FileEntry mirrors fs.Entry so UI/state code can rely on a stable type.
type FileEntry = fsutil.Entry

// NoSelection marks an empty listing: nothing is highlighted and descend is
// disabled.
const NoSelection = -1

// ===== STATE DEFINITIONS =====

// NavigationState is the single source of truth for the browser. It is owned
// by the event loop and mutated only through StateReducer.Reduce.
type NavigationState struct {
	// Navigation & filesystem
	CurrentPath string
	Entries     []FileEntry // Freshly loaded listing of CurrentPath (always sorted)

	// Selection is an index into Entries, or NoSelection when Entries is empty.
	Selection int

	// Dimensions
	ScreenWidth  int
	ScreenHeight int

	// Loader reads directories on transitions. Nil means the filesystem.
	Loader DirectoryLoader
}

// NewNavigationState loads path and selects its first entry.
func NewNavigationState(path string, loader DirectoryLoader) *NavigationState {
	state := &NavigationState{Loader: loader}
	state.loadDirectory(path)
	return state
}

// ===== HELPER METHODS =====

func (s *NavigationState) loader() DirectoryLoader {
	if s.Loader == nil {
		return FilesystemLoader{}
	}
	return s.Loader
}

// HasSelection reports whether Selection points at an entry.
func (s *NavigationState) HasSelection() bool {
	return s.Selection >= 0 && s.Selection < len(s.Entries)
}

// SelectedEntry returns the highlighted entry, or nil in an empty directory.
func (s *NavigationState) SelectedEntry() *FileEntry {
	if !s.HasSelection() {
		return nil
	}
	return &s.Entries[s.Selection]
}

// Window derives the visible range for the current screen height.
func (s *NavigationState) Window() Window {
	return ComputeWindow(s.Selection, len(s.Entries), UsableHeight(s.ScreenHeight))
}

// VisibleEntries returns the entries that fit on screen, in display order.
func (s *NavigationState) VisibleEntries() []FileEntry {
	win := s.Window()
	return s.Entries[win.Start:win.End]
}
