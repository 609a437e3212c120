// Package registry maintains the name-to-path lookup the forward compiler
// resolves ambiguous parent and target names against. A Registry is built
// once per run, either from a decoded project tree or from a provided index
// file, and is injected into each compiler instance as a read-only
// collaborator. It is never a process-wide singleton and is not persisted
// across runs.
//
// A name may be registered at several paths. Candidate order is the
// registration order; FromTree registers in pre-order, which is what makes
// the compiler's most-recently-registered-first tie-break deterministic.
package registry
