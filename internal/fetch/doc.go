// Package fetch retrieves download pages and archives over HTTP.
//
// It is the only package in the module that performs network I/O; the
// resolver operates purely on the text this package returns.
package fetch
