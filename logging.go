package sentencesplit

import (
	"github.com/opensbd/sentencesplit/core"
	"github.com/rs/zerolog"
)

// Log is the package-level logger core.RunStages writes stage-transition
// traces through, re-exported here since sentencesplit is the primary
// import path. The engine is a pure function and stays silent by default:
// the shared logger writes to io.Discard, so tracing output needs a logger
// with a real writer assigned to core.Log, e.g.
// core.Log = zerolog.New(os.Stderr).Level(zerolog.DebugLevel).
var Log = core.Log

// SetLogLevel raises or lowers the level of the shared stage-transition
// logger; it keeps that logger's writer, so it produces output only once
// core.Log writes somewhere other than io.Discard. Reassigning the Log var
// directly only rebinds this package's copy, so this is the one that
// actually reaches core.RunStages.
func SetLogLevel(level zerolog.Level) {
	core.Log = core.Log.Level(level)
	Log = core.Log
}
