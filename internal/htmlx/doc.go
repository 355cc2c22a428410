// Package htmlx provides best-effort scanning of raw HTML text.
//
// It deliberately does not parse HTML into a document tree. Download pages
// are scanned with regular expressions the same way a shell one-liner would
// scan them: anchors that are malformed or unclosed are silently skipped
// rather than repaired or reported. This keeps the package a pure text
// transformation with no failure modes of its own.
package htmlx
