package state

import (
	"path/filepath"
)

// loadDirectory replaces the listing with a fresh read of dirPath and selects
// the first entry.
func (s *NavigationState) loadDirectory(dirPath string) {
	dirPath = filepath.Clean(dirPath)
	entries := s.loader().List(dirPath)
	if entries == nil {
		entries = []FileEntry{}
	}

	s.CurrentPath = dirPath
	s.Entries = entries
	s.resetSelection()
}
