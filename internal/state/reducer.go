package state

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// ===== REDUCER =====

// StateReducer applies actions to state
type StateReducer struct {
	log logrus.FieldLogger
}

// NewStateReducer creates a new reducer. A nil logger discards output.
func NewStateReducer(log logrus.FieldLogger) *StateReducer {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	return &StateReducer{log: log}
}

// Reduce applies a single action. Moving past either end of the listing,
// ascending from a root and descending into a non-directory are no-ops, not
// errors.
func (r *StateReducer) Reduce(state *NavigationState, action Action) (*NavigationState, error) {
	switch a := action.(type) {

	// ===== NAVIGATION =====

	case SelectPreviousAction:
		if state.Selection > 0 && state.HasSelection() {
			state.Selection--
		}
		return state, nil

	case SelectNextAction:
		if state.HasSelection() && state.Selection < len(state.Entries)-1 {
			state.Selection++
		}
		return state, nil

	case DescendAction:
		entry := state.SelectedEntry()
		if entry == nil || !entry.IsDir() {
			return state, nil
		}

		target := entry.Path
		if target == "" {
			target = filepath.Join(state.CurrentPath, entry.Name)
		}
		state.loadDirectory(target)

		r.log.WithFields(logrus.Fields{
			"path":    state.CurrentPath,
			"entries": len(state.Entries),
		}).Debug("descended")
		return state, nil

	case AscendAction:
		parent, ok := state.parentPath()
		if !ok {
			return state, nil // Already at root
		}

		// Find which directory we came from
		childName := filepath.Base(filepath.Clean(state.CurrentPath))

		state.loadDirectory(parent)

		if idx := findEntryIndexByName(state.Entries, childName); idx >= 0 {
			state.Selection = idx
		}

		r.log.WithFields(logrus.Fields{
			"path":      state.CurrentPath,
			"child":     childName,
			"selection": state.Selection,
		}).Debug("ascended")
		return state, nil

	case RefreshAction:
		prevName := ""
		if entry := state.SelectedEntry(); entry != nil {
			prevName = entry.Name
		}
		prevSelection := state.Selection

		state.loadDirectory(state.CurrentPath)

		if idx := findEntryIndexByName(state.Entries, prevName); prevName != "" && idx >= 0 {
			state.Selection = idx
		} else if prevSelection >= 0 {
			state.Selection = prevSelection
			state.clampSelection()
		}

		r.log.WithFields(logrus.Fields{
			"path":    state.CurrentPath,
			"entries": len(state.Entries),
		}).Debug("refreshed")
		return state, nil

	// ===== VIEW =====

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		return state, nil

	default:
		return state, fmt.Errorf("unknown action: %T", action)
	}
}
