package rowdex

import (
	"log/slog"
)

type options struct {
	key     []string
	keyName string
	logger  *Logger
	metrics MetricsCollector
}

// Option configures Indexer construction.
type Option func(*options)

// WithKey configures an explicit primary key: an ordered list of column
// names. Order matters — it defines sort precedence and the zoom order of
// the multi-column search. Without it, the key is derived from the first
// search argument.
func WithKey(columns ...string) Option {
	return func(o *options) {
		o.key = columns
	}
}

// WithNamedKey configures an explicit primary key and additionally
// registers the Indexer's operations under the key name. See Ops and
// Aliases.
func WithNamedKey(name string, columns ...string) Option {
	return func(o *options) {
		o.key = columns
		o.keyName = name
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metrics: NoopMetricsCollector{},
		logger:  NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

type searchOptions struct {
	presorted bool
	reindex   bool
}

// SearchOption adjusts a single search or mutation call.
type SearchOption func(*searchOptions)

// Presorted asserts the row store is already in primary-key order: any
// cached index is discarded and searches run directly over physical row
// positions. The engine trusts the flag and never re-validates the order;
// passing it over unsorted data yields wrong lookups.
func Presorted() SearchOption {
	return func(o *searchOptions) {
		o.presorted = true
	}
}

// Reindex forces a full index rebuild before the operation, discarding any
// cached permutation first.
func Reindex() SearchOption {
	return func(o *searchOptions) {
		o.reindex = true
	}
}

func applySearchOptions(optFns []SearchOption) searchOptions {
	var o searchOptions
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
