package logger

// LogContext is the public chainable logger: an immutable (level, context,
// sink) triple that is itself an OptionalLogger. Deriving a child with
// WithContext never touches the parent, so LogContexts may be shared
// freely across goroutines. The sink reference is shared, not owned;
// sinks are stateless or internally synchronized.
type LogContext struct {
	OptionalLogger

	level Level
	ctx   Context
	sink  Sink
}

// Option configures a new LogContext.
type Option func(*LogContext)

// WithMinLevel sets the minimum enabled level. Defaults to info.
func WithMinLevel(level Level) Option {
	return func(lc *LogContext) { lc.level = level }
}

// WithSink sets the destination. Defaults to the console sink.
func WithSink(sink Sink) Option {
	return func(lc *LogContext) { lc.sink = sink }
}

// WithBaseContext sets the initial context. Defaults to empty.
func WithBaseContext(ctx Context) Option {
	return func(lc *LogContext) { lc.ctx = ctx }
}

// New builds a LogContext. Without options it logs at info level to the
// console sink with an empty context.
func New(opts ...Option) *LogContext {
	lc := &LogContext{level: LevelInfo, sink: NewConsoleSink()}
	for _, opt := range opts {
		opt(lc)
	}
	lc.OptionalLogger = Bind(lc.sink, lc.level, lc.ctx)
	return lc
}

// WithContext returns a new LogContext whose context has key set to value.
// The receiver, and any loggers previously derived from it, are unaffected.
func (lc *LogContext) WithContext(key string, value any) *LogContext {
	return lc.derive(lc.ctx.Extend(key, value))
}

// WithFlag returns a new LogContext whose context has key present without
// a value, rendered as the bare key.
func (lc *LogContext) WithFlag(key string) *LogContext {
	return lc.derive(lc.ctx.ExtendFlag(key))
}

func (lc *LogContext) derive(ctx Context) *LogContext {
	child := &LogContext{level: lc.level, ctx: ctx, sink: lc.sink}
	child.OptionalLogger = Bind(child.sink, child.level, child.ctx)
	return child
}

// Level returns the minimum enabled level.
func (lc *LogContext) Level() Level { return lc.level }

// Context returns the accumulated context.
func (lc *LogContext) Context() Context { return lc.ctx }

// Sink returns the shared destination.
func (lc *LogContext) Sink() Sink { return lc.sink }
