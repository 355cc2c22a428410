// Package resolver locates runtime download URLs in HTML documents.
//
// Resolution is a pure computation over in-memory text: no I/O, no shared
// state, no retries. Callers may invoke it concurrently from independent
// call sites.
package resolver
