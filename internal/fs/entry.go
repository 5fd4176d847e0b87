package fs

import (
	"sort"
	"strings"
	"time"
)

// Kind classifies a directory child at listing time.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
	KindSymlink
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindSymlink:
		return "symlink"
	default:
		return "file"
	}
}

// Entry represents a single file or directory on disk.
type Entry struct {
	Name     string
	Path     string
	Kind     Kind
	Size     int64
	Modified time.Time

	// Symlink details; zero for other kinds.
	LinkTarget  string
	TargetIsDir bool
}

// IsDir reports whether the entry can be descended into. Symlinks count when
// their target is a directory.
func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory || (e.Kind == KindSymlink && e.TargetIsDir)
}

// IsSymlink reports whether the entry itself is a symbolic link.
func (e Entry) IsSymlink() bool {
	return e.Kind == KindSymlink
}

// CompareNames orders two names case-insensitively. It returns a negative
// number when a sorts before b, zero when they fold to the same text and a
// positive number otherwise.
func CompareNames(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// SortEntries orders entries by CompareNames. Names that fold equal keep their
// enumeration order.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return CompareNames(entries[i].Name, entries[j].Name) < 0
	})
}
