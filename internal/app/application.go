package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	statepkg "github.com/dmee3/sfm/internal/state"
	inputui "github.com/dmee3/sfm/internal/ui/input"
	renderui "github.com/dmee3/sfm/internal/ui/render"
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// Options carries command-line settings into the application.
type Options struct {
	// StartDir is the directory shown first; empty means the working directory.
	StartDir string
	// Watch refreshes the listing when the current directory changes on disk.
	Watch bool
}

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	state      *statepkg.NavigationState
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	actionCh   chan statepkg.Action
	watcher    *DirectoryWatcher
	log        logrus.FieldLogger
	shouldQuit bool
	finiOnce   sync.Once
}

// NewApplication acquires the terminal and loads the start directory.
func NewApplication(opts Options, log logrus.FieldLogger) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("cannot open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("cannot initialize terminal: %w", err)
	}

	app, err := newApplicationWithScreen(screen, opts, log)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return app, nil
}

func newApplicationWithScreen(screen tcell.Screen, opts Options, log logrus.FieldLogger) (*Application, error) {
	if log == nil {
		log = discardLogger()
	}

	startDir, err := resolveStartDir(opts.StartDir)
	if err != nil {
		return nil, err
	}

	state := statepkg.NewNavigationState(startDir, statepkg.NewFilesystemLoader(log))
	state.ScreenWidth, state.ScreenHeight = screen.Size()

	actionCh := make(chan statepkg.Action, 10)
	app := &Application{
		screen:   screen,
		state:    state,
		reducer:  statepkg.NewStateReducer(log),
		renderer: renderui.NewRenderer(screen),
		input:    inputui.NewInputHandler(actionCh),
		actionCh: actionCh,
		log:      log,
	}

	if opts.Watch {
		watcher, err := NewDirectoryWatcher(app.postRefresh, log)
		if err != nil {
			return nil, err
		}
		if err := watcher.Watch(state.CurrentPath); err != nil {
			log.WithFields(logrus.Fields{"path": state.CurrentPath, "error": err}).Warn("cannot watch directory")
		}
		watcher.Start()
		app.watcher = watcher
	}

	log.WithFields(logrus.Fields{
		"path":    state.CurrentPath,
		"entries": len(state.Entries),
		"watch":   opts.Watch,
	}).Info("browser started")
	return app, nil
}

func resolveStartDir(dir string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("cannot determine working directory: %w", err)
		}
		return cwd, nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("cannot resolve %s: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("cannot open %s: %w", dir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", dir)
	}
	return abs, nil
}

// CurrentPath returns the directory being shown.
func (app *Application) CurrentPath() string {
	return app.state.CurrentPath
}

// Close stops the watcher and releases the terminal.
func (app *Application) Close() error {
	var err error
	if app.watcher != nil {
		err = app.watcher.Close()
	}
	app.finiScreen()
	return err
}

func (app *Application) finiScreen() {
	app.finiOnce.Do(app.screen.Fini)
}

func discardLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
