// Package logger wraps zerolog with process-wide setup and context-scoped
// child loggers
package logger

import (
	"context"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"vibecheck/internal/platform/config/raw"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Logger is the logging type the rest of the tree imports; an alias so the
// backing implementation can move without touching call sites
type Logger = zerolog.Logger

// Options carries everything Init needs
type Options struct {
	Level     string
	Format    string
	Service   string
	Component string

	// Writer overrides os.Stdout, mostly for tests
	Writer io.Writer

	WithCaller   bool
	SampleEvery  int
	StaticFields map[string]string
}

// FromEnv reads LOG_* through the raw config view, which itself never logs.
// Level and format spellings are normalized later, at parse time.
func FromEnv() Options {
	rc := raw.New().Prefix("LOG_")
	return Options{
		Level:       rc.Get("LEVEL", "debug"),
		Format:      rc.Get("FORMAT", "console"),
		Service:     rc.Get("SERVICE", ""),
		Component:   rc.Get("COMPONENT", ""),
		WithCaller:  rc.GetBool("CALLER", false),
		SampleEvery: rc.GetInt("SAMPLE_EVERY", 0),
	}
}

var (
	setup sync.Once
	root  atomic.Pointer[zerolog.Logger]
)

// Get hands back the root logger, initializing from env on first use
func Get() *Logger {
	if l := root.Load(); l != nil {
		return l
	}
	Init(FromEnv())
	return root.Load()
}

// Init applies opt exactly once; later calls are no-ops
func Init(opt Options) {
	setup.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano

		l := assemble(opt)
		root.Store(&l)
	})
}

// assemble turns Options into a configured root logger
func assemble(opt Options) zerolog.Logger {
	lc := zerolog.New(destination(opt)).Level(parseLevel(opt.Level)).With().Timestamp()

	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		lc = lc.Str("go_version", bi.GoVersion)
	}
	if opt.Service != "" {
		lc = lc.Str("service", opt.Service)
	}
	if opt.Component != "" {
		lc = lc.Str("component", opt.Component)
	}
	for k, v := range opt.StaticFields {
		lc = lc.Str(k, v)
	}

	l := lc.Logger()
	if opt.WithCaller {
		l = l.With().Caller().Logger()
	}
	if opt.SampleEvery > 1 {
		l = l.Sample(&zerolog.BasicSampler{N: uint32(opt.SampleEvery)})
	}
	return l
}

// destination picks the output writer, wrapping it for human-readable
// console format
func destination(opt Options) io.Writer {
	w := io.Writer(os.Stdout)
	if opt.Writer != nil {
		w = opt.Writer
	}
	if strings.EqualFold(strings.TrimSpace(opt.Format), "console") {
		return zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return w
}

// levelNames accepts the spellings config may hand us; anything else is debug
var levelNames = map[string]zerolog.Level{
	"trace":   zerolog.TraceLevel,
	"debug":   zerolog.DebugLevel,
	"info":    zerolog.InfoLevel,
	"warn":    zerolog.WarnLevel,
	"warning": zerolog.WarnLevel,
	"error":   zerolog.ErrorLevel,
	"fatal":   zerolog.FatalLevel,
	"panic":   zerolog.PanicLevel,
}

func parseLevel(s string) zerolog.Level {
	if lvl, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return lvl
	}
	return zerolog.DebugLevel
}

type ctxKey struct{ name string }

var (
	keyRequestID = ctxKey{"request_id"}
	keyRunID     = ctxKey{"run_id"}
)

// WithRequest stores the request id on ctx; empty ids are dropped
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, keyRequestID, reqID)
}

// WithRun stores the classification run id on ctx; empty ids are dropped
func WithRun(ctx context.Context, runID string) context.Context {
	if runID == "" {
		return ctx
	}
	return context.WithValue(ctx, keyRunID, runID)
}

func ctxStr(ctx context.Context, key ctxKey) string {
	s, _ := ctx.Value(key).(string)
	return s
}

// C derives a child logger carrying request_id and run_id when ctx has them
func C(ctx context.Context) *Logger {
	fields := Get().With()
	if id := ctxStr(ctx, keyRequestID); id != "" {
		fields = fields.Str("request_id", id)
	}
	if id := ctxStr(ctx, keyRunID); id != "" {
		fields = fields.Str("run_id", id)
	}
	child := fields.Logger()
	return &child
}

// Named derives a child logger tagged with a component field
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	child := Get().With().Str("component", component).Logger()
	return &child
}
