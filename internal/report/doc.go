// Package report renders candidate listings and site check results in
// plain text, JSON, or Markdown.
package report
