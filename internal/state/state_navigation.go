package state

import (
	"path/filepath"

	"golang.org/x/text/unicode/norm"
)

func (s *NavigationState) resetSelection() {
	if len(s.Entries) == 0 {
		s.Selection = NoSelection
		return
	}
	s.Selection = 0
}

// clampSelection pulls Selection back into range after the listing changed
// size.
func (s *NavigationState) clampSelection() {
	switch {
	case len(s.Entries) == 0:
		s.Selection = NoSelection
	case s.Selection < 0:
		s.Selection = 0
	case s.Selection >= len(s.Entries):
		s.Selection = len(s.Entries) - 1
	}
}

func (s *NavigationState) parentPath() (string, bool) {
	current := filepath.Clean(s.CurrentPath)
	parent := filepath.Dir(current)
	if parent == "" || parent == current {
		return "", false
	}
	return parent, true
}

func findEntryIndexByName(entries []FileEntry, name string) int {
	name = norm.NFC.String(name)
	for idx, entry := range entries {
		if entry.Name == name {
			return idx
		}
	}
	return -1
}
