// Package compiler translates DSL text into an execution plan for the remote
// object-tree API. It is a best-effort translator: a malformed line records a
// diagnostic and is skipped, an unresolvable name degrades to a typed query
// for the execution layer to resolve, and nothing short of total input
// absence produces an empty result.
//
// A Registry can be attached to sharpen name resolution; without one the
// compiler still produces a valid plan using the canonical default locations
// and query fallbacks.
package compiler
