package main

import (
	"fmt"
	"os"

	apppkg "github.com/dmee3/sfm/internal/app"
	"github.com/dmee3/sfm/internal/logging"
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "dev"

type rootOptions struct {
	logFile string
	debug   bool
	watch   bool
}

// runBrowser is replaced in tests to avoid opening a terminal.
var runBrowser = func(opts apppkg.Options, log *logrus.Logger) error {
	app, err := apppkg.NewApplication(opts, log)
	if err != nil {
		return fmt.Errorf("error initializing application: %w", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.WithField("error", err).Warn("shutdown")
		}
	}()

	app.Run()
	log.WithField("path", app.CurrentPath()).Info("browser exited")
	return nil
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:     "sfm [directory]",
		Short:   "Browse directories in the terminal",
		Long:    `sfm lists a directory and lets you move through the file tree with the arrow keys or h/j/k/l.`,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, closer, err := logging.New(opts.logFile, opts.debug)
			if err != nil {
				return err
			}
			defer closer.Close()

			appOpts := apppkg.Options{Watch: opts.watch}
			if len(args) > 0 {
				appOpts.StartDir = args[0]
			}
			return runBrowser(appOpts, log)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "refresh when the current directory changes")
	return cmd
}

func main() {
	// UTF-8 fallback keeps non-ASCII file names readable on minimal terminals.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
