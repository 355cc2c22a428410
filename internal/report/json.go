package report

import (
	"encoding/json"
	"io"

	"github.com/beamtools/rtresolve/internal/model"
)

// JSONWriter renders reports as indented JSON for machine consumption.
type JSONWriter struct {
	output io.Writer
}

// WriteList renders the listing as a single JSON document.
func (w *JSONWriter) WriteList(r *model.ListReport) error {
	return w.encode(r)
}

// WriteCheck renders the sweep as a single JSON document.
func (w *JSONWriter) WriteCheck(r *model.CheckReport) error {
	return w.encode(r)
}

func (w *JSONWriter) encode(v any) error {
	enc := json.NewEncoder(w.output)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
