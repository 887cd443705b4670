package core

import (
	"io"

	"github.com/rs/zerolog"
)

// Log is the package-level logger RunStages writes stage-transition traces
// through. Silent by default (writes to io.Discard at zerolog.Disabled).
// Raising the level alone still writes to io.Discard; callers who want
// tracing assign a logger with a real writer, e.g.
// core.Log = zerolog.New(os.Stderr).Level(zerolog.DebugLevel).
var Log = zerolog.New(io.Discard).With().Timestamp().Logger().Level(zerolog.Disabled)
