package state

import (
	"io"

	fsutil "github.com/dmee3/sfm/internal/fs"
	"github.com/sirupsen/logrus"
)

// staticLoader serves canned listings keyed by path. Unknown paths list as
// empty directories, matching how unreadable directories load.
type staticLoader map[string][]FileEntry

func (l staticLoader) List(path string) []FileEntry {
	entries := l[path]
	out := make([]FileEntry, len(entries))
	copy(out, entries)
	fsutil.SortEntries(out)
	return out
}

func dir(name, path string) FileEntry {
	return FileEntry{Name: name, Path: path, Kind: fsutil.KindDirectory}
}

func file(name, path string) FileEntry {
	return FileEntry{Name: name, Path: path, Kind: fsutil.KindFile}
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func names(entries []FileEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}
