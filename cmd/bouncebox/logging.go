package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bouncebox/internal/storage"
)

// newLogger builds the process logger. Interactive backends own the
// terminal, so without --log-file they log nowhere; other commands log to
// stderr. The returned closer releases the log file.
func newLogger(prefix string, interactive bool) (*log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closer := func() {}

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(storage.ExpandPath(flagLogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closer = func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		closer()
		return nil, nil, err
	}
	logger.SetLevel(level)

	return logger, closer, nil
}
