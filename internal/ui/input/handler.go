package input

import (
	"unicode"

	statepkg "github.com/dmee3/sfm/internal/state"
	"github.com/gdamore/tcell/v2"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// ProcessEvent converts a tcell event into an Action. It returns false once
// the user asked to quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

// processKeyEvent handles keyboard input
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		ih.actionChan <- statepkg.QuitAction{}
		return false

	case tcell.KeyCtrlZ:
		ih.actionChan <- statepkg.SuspendAction{}
		return true

	case tcell.KeyUp:
		ih.actionChan <- statepkg.SelectPreviousAction{}
		return true

	case tcell.KeyDown:
		ih.actionChan <- statepkg.SelectNextAction{}
		return true

	case tcell.KeyLeft, tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.actionChan <- statepkg.AscendAction{}
		return true

	case tcell.KeyRight, tcell.KeyEnter:
		ih.actionChan <- statepkg.DescendAction{}
		return true

	case tcell.KeyRune:
		return ih.processRune(ev)
	}

	return true
}

func (ih *InputHandler) processRune(ev *tcell.EventKey) bool {
	// Ignore Alt/Ctrl chords that arrive as runes.
	if ev.Modifiers()&(tcell.ModAlt|tcell.ModCtrl) != 0 {
		return true
	}

	switch unicode.ToLower(ev.Rune()) {
	case 'k':
		ih.actionChan <- statepkg.SelectPreviousAction{}
	case 'j':
		ih.actionChan <- statepkg.SelectNextAction{}
	case 'h':
		ih.actionChan <- statepkg.AscendAction{}
	case 'l':
		ih.actionChan <- statepkg.DescendAction{}
	case 'r':
		ih.actionChan <- statepkg.RefreshAction{}
	case 'q':
		ih.actionChan <- statepkg.QuitAction{}
		return false
	}
	return true
}
