package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"fyne.io/fyne/v2/app"

	demoapp "github.com/KQAR/expandable/internal/app"
	"github.com/KQAR/expandable/internal/ui"
)

func main() {
	if err := runApp(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// runApp is the application entry point with panic recovery.
func runApp() (err error) {
	// Bootstrap logger for errors before the real one exists.
	bootLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	defer func() {
		if r := recover(); r != nil {
			bootLogger.Error("panic recovered",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	cfg := demoapp.ConfigFromEnv()

	fyneApp := app.NewWithID("com.kqar.expandable.demo")

	demo, err := demoapp.New(fyneApp, cfg)
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}

	mainWindow := ui.NewMainWindow(demo.FyneApp(), demo)

	// Blocking until the window closes.
	demo.Run(mainWindow.Window())

	demo.Logger().Info("application shutdown complete")
	return nil
}
