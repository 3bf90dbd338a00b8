// Package excelsync captures the structure of Excel workbooks, checks
// workbooks against a captured structure and exports their contents.
package excelsync

import "log/slog"

// DefaultHeaderRow is the header row used when none is configured.
const DefaultHeaderRow = 1

// Options configures a Sync.
type Options struct {
	// HeaderRow is the 1-based row holding column names.
	// If zero, DefaultHeaderRow is used.
	HeaderRow int
	// Logger receives debug and warning messages.
	// If nil, nothing is logged.
	Logger *slog.Logger
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		HeaderRow: DefaultHeaderRow,
	}
}

// EffectiveHeaderRow returns the configured header row or the default.
func (o Options) EffectiveHeaderRow() int {
	if o.HeaderRow > 0 {
		return o.HeaderRow
	}
	return DefaultHeaderRow
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}
