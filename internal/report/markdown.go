package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/beamtools/rtresolve/internal/model"
)

// MarkdownWriter renders reports as GitHub-flavored Markdown tables,
// suitable for pasting into release notes or CI summaries.
type MarkdownWriter struct {
	output io.Writer
}

// WriteList renders the candidate listing as a Markdown table.
func (w *MarkdownWriter) WriteList(r *model.ListReport) error {
	md := markdown.NewMarkdown(w.output)

	md.H1("Runtime download candidates")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Base URL", "`" + r.HomeURL + "`"},
			{"Source", r.Source},
			{"Generated", r.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
		},
	})
	md.PlainText("")

	rows := make([][]string, 0, len(r.Candidates))
	for i, c := range r.Candidates {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			"`" + c.URL + "`",
			c.Text,
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"#", "URL", "Link text"},
		Rows:   rows,
	})

	return md.Build()
}

// WriteCheck renders the site sweep as a Markdown table.
func (w *MarkdownWriter) WriteCheck(r *model.CheckReport) error {
	md := markdown.NewMarkdown(w.output)

	md.H1("Runtime resolution check")
	md.PlainText("")

	rows := make([][]string, 0, len(r.Results))
	for _, res := range r.Results {
		detail := "`" + res.URL + "`"
		switch res.Status {
		case model.StatusNotFound:
			detail = ""
		case model.StatusError:
			detail = res.Error
		}
		rows = append(rows, []string{res.Site, res.Arch, res.Status, detail})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Site", "Arch", "Status", "Result"},
		Rows:   rows,
	})
	md.PlainText("")
	md.PlainText("Generated " + r.GeneratedAt.Format("2006-01-02 15:04:05 MST"))

	return md.Build()
}
