package report

import (
	"fmt"
	"io"

	"github.com/beamtools/rtresolve/internal/model"
)

// PlainWriter renders reports as line-oriented text for terminals and
// shell pipelines. Field order puts the URL first so `cut -f1` and
// friends work.
type PlainWriter struct {
	output io.Writer
}

// WriteList prints one candidate per line: URL, then link text when present.
func (w *PlainWriter) WriteList(r *model.ListReport) error {
	for _, c := range r.Candidates {
		if c.Text == "" {
			if _, err := fmt.Fprintln(w.output, c.URL); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w.output, "%s\t%s\n", c.URL, c.Text); err != nil {
			return err
		}
	}
	return nil
}

// WriteCheck prints one site per line: status, site, then the URL or the
// error message.
func (w *PlainWriter) WriteCheck(r *model.CheckReport) error {
	for _, res := range r.Results {
		detail := res.URL
		if res.Status == model.StatusError {
			detail = res.Error
		}
		if _, err := fmt.Fprintf(w.output, "%-10s %s (%s) %s\n", res.Status, res.Site, res.Arch, detail); err != nil {
			return err
		}
	}
	return nil
}
