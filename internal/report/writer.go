package report

import (
	"io"

	"github.com/beamtools/rtresolve/internal/model"
)

// Format selects a report output format.
type Format string

// Supported formats.
const (
	FormatPlain    Format = "plain"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Writer renders reports to a destination. Implementations exist for each
// Format; all of them write candidate listings (list command) and site
// sweep results (check command).
type Writer interface {
	// WriteList renders a candidate listing.
	WriteList(r *model.ListReport) error

	// WriteCheck renders a site sweep.
	WriteCheck(r *model.CheckReport) error
}

// NewWriter returns the Writer for a format. Unknown formats fall back to
// plain text.
func NewWriter(out io.Writer, format Format) Writer {
	switch format {
	case FormatJSON:
		return &JSONWriter{output: out}
	case FormatMarkdown:
		return &MarkdownWriter{output: out}
	default:
		return &PlainWriter{output: out}
	}
}
