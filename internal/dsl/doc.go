// Package dsl defines the line-oriented instruction grammar and turns raw
// text lines into tagged Instruction values. Dispatch happens in a single
// pass on the leading keyword, so instruction forms cannot shadow each other
// no matter how the grammar grows.
//
// The grammar is deliberately forgiving: keywords match case-insensitively,
// a numeric "1. " enumeration prefix is stripped, and a line whose keyword is
// unknown parses to OpUnknown rather than an error. Only a known keyword with
// malformed arguments is a parse error.
package dsl
