// Package main provides the entry point for the rtresolve CLI.
//
// rtresolve locates the download URL of a runtime build for a given
// architecture by scanning a download page's anchor elements and resolving
// the first match against the page's base URL.
//
// Usage:
//
//	rtresolve --home-url https://example.org/downloads/ --needle-arch x86_64 < page.html
//	rtresolve --fetch --home-url https://example.org/downloads/ --needle-arch aarch64
//
// See --help for all available options and subcommands.
package main

// main is the entry point for rtresolve.
func main() {
	Execute()
}
