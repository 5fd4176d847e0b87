package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// ErrUndecodableName reports a child whose name is not valid UTF-8.
var ErrUndecodableName = errors.New("name is not valid UTF-8")

// SkipFunc is told about every child left out of a listing.
type SkipFunc func(name string, reason error)

// ReadEntries lists dirPath and returns its children sorted by CompareNames.
// Children whose names are not valid UTF-8, or that disappear between the
// directory read and the stat, are skipped.
func ReadEntries(dirPath string) ([]Entry, error) {
	return ReadEntriesFunc(dirPath, nil)
}

// ReadEntriesFunc is ReadEntries with a callback for skipped children.
func ReadEntriesFunc(dirPath string, onSkip SkipFunc) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", dirPath, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, d := range dirEntries {
		entry, err := ClassifyEntry(dirPath, d)
		if err != nil {
			if onSkip != nil {
				onSkip(d.Name(), err)
			}
			continue
		}
		entries = append(entries, entry)
	}

	SortEntries(entries)
	return entries, nil
}

// ClassifyEntry builds an Entry for a child of dirPath. A non-nil error means
// the child should be left out of the listing.
func ClassifyEntry(dirPath string, d os.DirEntry) (Entry, error) {
	rawName := d.Name()
	if !utf8.ValidString(rawName) {
		return Entry{}, ErrUndecodableName
	}

	info, err := d.Info()
	if err != nil {
		return Entry{}, fmt.Errorf("cannot stat %s: %w", rawName, err)
	}

	fullPath := filepath.Join(dirPath, rawName)
	entry := Entry{
		Name:     norm.NFC.String(rawName),
		Path:     fullPath,
		Kind:     KindFile,
		Size:     info.Size(),
		Modified: info.ModTime(),
	}

	switch {
	case info.Mode()&os.ModeSymlink != 0:
		entry.Kind = KindSymlink
		if target, err := os.Readlink(fullPath); err == nil {
			entry.LinkTarget = target
		}
		// Follow the link so directories behind it stay navigable.
		if targetInfo, err := os.Stat(fullPath); err == nil {
			entry.TargetIsDir = targetInfo.IsDir()
		}
	case d.IsDir():
		entry.Kind = KindDirectory
	}

	return entry, nil
}
