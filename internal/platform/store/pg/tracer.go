package pg

import (
	"context"
	"strings"

	"vibecheck/internal/platform/logger"

	"github.com/rs/zerolog"
)

// QueryEvent captures one executed statement for tracing. RunID and
// RequestID are filled by the caller when the statement ran under a
// scoped context.
type QueryEvent struct {
	SQL       string
	Args      any
	ElapsedUS int64
	Err       error
	Slow      bool
	RunID     string
	RequestID string
}

// QueryTracer observes statements after they run
type QueryTracer interface {
	OnQuery(ctx context.Context, ev QueryEvent)
}

// Tracer builds a QueryTracer over root that keeps SQL visible even
// when the process level is quieter than debug
func Tracer(root logger.Logger) QueryTracer {
	log := root.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger()
	return &logTracer{log: log}
}

type logTracer struct{ log logger.Logger }

func (t *logTracer) OnQuery(_ context.Context, ev QueryEvent) {
	// slow statements escalate to warn, the rest land at info
	evt := t.log.Info()
	if ev.Slow {
		evt = t.log.Warn()
	}
	if ev.RunID != "" {
		evt = evt.Str("run_id", ev.RunID)
	}
	if ev.RequestID != "" {
		evt = evt.Str("request_id", ev.RequestID)
	}
	evt.Float64("elapsed_ms", float64(ev.ElapsedUS)/1000.0).
		Bool("slow", ev.Slow).
		Str("sql", compact(ev.SQL)).
		Interface("args", ev.Args).
		Err(ev.Err).
		Msg("pg query")
}

// compact folds whitespace runs into single spaces so multi line SQL
// logs as one line
func compact(s string) string {
	var out strings.Builder
	out.Grow(len(s))
	inRun := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if !inRun {
				out.WriteByte(' ')
			}
			inRun = true
			continue
		}
		inRun = false
		out.WriteRune(r)
	}
	return out.String()
}
