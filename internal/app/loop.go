package app

import (
	"fmt"
	"os"
	"os/signal"

	statepkg "github.com/dmee3/sfm/internal/state"
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// refreshEvent marks interrupts posted by the directory watcher.
type refreshEvent struct{}

// Run drives the event loop until the user quits. The loop goroutine is the
// only writer of the navigation state.
func (app *Application) Run() {
	defer func() {
		if r := recover(); r != nil {
			app.finiScreen()
			panic(r)
		}
	}()

	app.renderer.Render(app.state)
	renderPending := false

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	for !app.shouldQuit {
		if renderPending {
			app.renderer.Render(app.state)
			renderPending = false
		}

		select {
		case ev := <-eventChan:
			if app.handleEvent(ev) {
				renderPending = true
			}
		case action := <-app.actionCh:
			if app.handleAction(action) {
				renderPending = true
			}
		case <-sigContCh:
			if app.resumeAfterStop() {
				renderPending = true
			}
		}

		if app.processActions() {
			renderPending = true
		}
	}
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey, *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	case *tcell.EventInterrupt:
		if _, ok := ev.Data().(refreshEvent); ok {
			return app.handleAction(statepkg.RefreshAction{})
		}
	default:
		return false
	}
	return true
}

func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}

	switch action.(type) {
	case statepkg.QuitAction:
		app.shouldQuit = true
		return false
	case statepkg.SuspendAction:
		app.suspendToShell()
		app.resumeAfterStop()
		return true
	}

	previousPath := app.state.CurrentPath
	if _, err := app.reducer.Reduce(app.state, action); err != nil {
		app.log.WithFields(logrus.Fields{"action": fmt.Sprintf("%T", action), "error": err}).Error("action rejected")
		return false
	}
	if app.state.CurrentPath != previousPath {
		app.retargetWatcher()
	}
	return true
}

func (app *Application) retargetWatcher() {
	if app.watcher == nil {
		return
	}
	if err := app.watcher.Watch(app.state.CurrentPath); err != nil {
		app.log.WithFields(logrus.Fields{"path": app.state.CurrentPath, "error": err}).Warn("cannot watch directory")
	}
}

// postRefresh is called from the watcher goroutine; it only hands the
// screen an interrupt so state changes stay on the loop goroutine.
func (app *Application) postRefresh() {
	if err := app.screen.PostEvent(tcell.NewEventInterrupt(refreshEvent{})); err != nil {
		app.log.WithField("error", err).Debug("refresh dropped, event queue full")
	}
}
