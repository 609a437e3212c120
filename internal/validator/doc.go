// Package validator checks DSL samples at three gated levels: syntax (the
// forward compiler must produce a non-empty plan), semantics (type and
// reference-slot tokens must be drawn from the known sets), and dependencies
// (every referenced name should be a platform default or created earlier).
//
// A Validator is stateful across a batch: names created by one valid sample
// stay known for the samples after it, mirroring how earlier decompiled
// objects remain available to later ones in the same project scan.
package validator
