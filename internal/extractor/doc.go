// Package extractor is the reverse compiler: it walks a decoded project tree
// and, at every node whose kind qualifies as an independent sample root,
// emits the complete DSL subtree for that node, its own declaration plus
// every descendant's, preserving the parent-before-child ordering the
// forward compiler relies on. Each emitted sample is classified by structural
// complexity.
//
// Leaf sound objects are not sample roots by default: a lone CREATE with no
// container context is not an independently meaningful unit. The IncludeSounds
// option restores the old behavior.
package extractor
