package gui

import (
	"log/slog"
	"os"
)

// guiLogLevel controls the log level for GUI debug logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var guiLogLevel = new(slog.LevelVar)

// guiLogger is shared by every widget in the package.
var guiLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: guiLogLevel}))

// SetVerbose enables or disables verbose/debug logging for GUI components.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		guiLogLevel.Set(slog.LevelDebug)
	} else {
		guiLogLevel.Set(slog.LevelInfo)
	}
}

// guiVerbose returns true if GUI debug logging is enabled.
// Hot paths check it before building log attributes.
func guiVerbose() bool {
	return guiLogLevel.Level() <= slog.LevelDebug
}

// SetLogger replaces the package logger. The handler should respect
// the level set through SetVerbose if debug output is to be toggled.
func SetLogger(l *slog.Logger) {
	if l != nil {
		guiLogger = l
	}
}
