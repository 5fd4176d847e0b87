package state

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	fsutil "github.com/dmee3/sfm/internal/fs"
	"github.com/sirupsen/logrus"
)

// DirectoryLoader reads a directory listing for the navigation machine.
// Implementations never fail: unreadable or empty directories produce an
// empty slice.
type DirectoryLoader interface {
	List(path string) []FileEntry
}

// FilesystemLoader is the default loader backed by fs.ReadEntriesFunc.
type FilesystemLoader struct {
	Log logrus.FieldLogger
}

// NewFilesystemLoader constructs a loader that reports read failures to log.
func NewFilesystemLoader(log logrus.FieldLogger) FilesystemLoader {
	return FilesystemLoader{Log: log}
}

func (l FilesystemLoader) List(path string) []FileEntry {
	entries, err := fsutil.ReadEntriesFunc(path, func(name string, reason error) {
		l.logger().WithFields(logrus.Fields{
			"path":  path,
			"name":  fmt.Sprintf("%q", name),
			"error": reason,
		}).Debug("entry skipped")
	})
	if err != nil {
		fields := l.logger().WithFields(logrus.Fields{
			"path":  path,
			"error": err,
		})
		if errors.Is(err, fs.ErrPermission) {
			fields.Debug("directory not readable, showing it empty")
		} else {
			fields.Warn("directory listing failed, showing it empty")
		}
		return []FileEntry{}
	}
	return entries
}

func (l FilesystemLoader) logger() logrus.FieldLogger {
	if l.Log != nil {
		return l.Log
	}
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	return discard
}
