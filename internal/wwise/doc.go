// Package wwise holds the static knowledge about the target authoring tool:
// the closed set of object kinds, the normalization tables that map free-form
// DSL tokens onto canonical kinds and reference slots, the default hierarchy
// locations, the event action-type codes, and the property whitelist with its
// platform default values.
//
// Everything in this package is a pure lookup. Normalization never fails:
// unmatched tokens are returned unchanged so callers can surface a warning
// instead of aborting.
package wwise
