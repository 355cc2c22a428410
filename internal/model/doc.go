// Package model defines the data structures shared between the resolver,
// the report writers, and the CLI commands.
//
// All types are serializable to JSON so that reports can be emitted with
// --json. Keeping them in one package avoids import cycles between the
// packages that produce them (resolver, cmd) and those that consume them
// (report).
package model
