package core

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "blockbreak.log"
	maxLogSize  = 10 * 1024 * 1024
)

// SetupLogging routes the log and slog defaults. With debug off everything is
// discarded since the screen owns stdout; with debug on output goes to
// logs/blockbreak.log, rotated once it exceeds maxLogSize. The returned file is
// nil when logging is disabled or the file could not be opened
func SetupLogging(debug bool) *os.File {
	if !debug {
		useLogOutput(io.Discard, slog.LevelInfo)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		useLogOutput(io.Discard, slog.LevelInfo)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("blockbreak-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		useLogOutput(io.Discard, slog.LevelInfo)
		return nil
	}

	useLogOutput(f, slog.LevelDebug)
	return f
}

// useLogOutput sets slog first: slog.SetDefault redirects the log package, which
// is then pointed at w directly
func useLogOutput(w io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
