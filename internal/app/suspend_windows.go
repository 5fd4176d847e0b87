//go:build windows

package app

import "os"

// Windows has no SIGTSTP/SIGCONT, so suspend is a no-op.
func contSignals() []os.Signal {
	return nil
}

func (app *Application) suspendToShell() {
	app.log.Debug("suspend is not supported on windows")
}

func (app *Application) resumeAfterStop() bool {
	return false
}
