package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// ZerologAdapter wraps a zerolog.Logger to satisfy core.Logger (and any
// other Debug/Info/Warn/Error(msg string, kv ...any) interface).
type ZerologAdapter struct {
	log zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog.Logger.
func NewZerologAdapter(l zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{log: l}
}

// NewConsoleAdapter builds an adapter over a human-readable console
// writer on os.Stderr. cmd/dblsh-bench does not use it; it logs JSON
// through NewZerologAdapter.
func NewConsoleAdapter() *ZerologAdapter {
	return &ZerologAdapter{log: zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()}
}

func (a *ZerologAdapter) Debug(msg string, kv ...any) { a.event(a.log.Debug(), msg, kv) }
func (a *ZerologAdapter) Info(msg string, kv ...any)  { a.event(a.log.Info(), msg, kv) }
func (a *ZerologAdapter) Warn(msg string, kv ...any)  { a.event(a.log.Warn(), msg, kv) }
func (a *ZerologAdapter) Error(msg string, kv ...any) { a.event(a.log.Error(), msg, kv) }

// event attaches kv pairs (key0, val0, key1, val1, ...) to ev and fires
// it with msg. An odd-length kv is logged as-is with a trailing
// "!BADKEY" marker rather than panicking.
func (a *ZerologAdapter) event(ev *zerolog.Event, msg string, kv []any) {
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = "!BADKEY"
		}
		ev = ev.Interface(key, kv[i+1])
	}
	if len(kv)%2 == 1 {
		ev = ev.Interface("!BADKEY", kv[len(kv)-1])
	}
	ev.Msg(msg)
}
