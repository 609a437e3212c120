// Package sample defines the line-delimited JSON record that carries one DSL
// training unit between pipeline stages. Records are immutable once written;
// later stages only append metadata fields.
package sample

import "strings"

// Meta carries provenance and structural metrics for one sample.
type Meta struct {
	Source     string         `json:"source"`
	RootType   string         `json:"root_type"`
	RootName   string         `json:"root_name"`
	LineCount  int            `json:"line_count"`
	Depth      int            `json:"depth"`
	Complexity string         `json:"complexity"`
	Commands   map[string]int `json:"commands"`
}

// Record is one sample: the DSL text in Output, with Instruction and Input
// left for the downstream instruction-synthesis stage to fill.
type Record struct {
	Instruction string `json:"instruction"`
	Input       string `json:"input"`
	Output      string `json:"output"`
	Meta        Meta   `json:"meta"`
}

// Lines splits the record's DSL text into lines.
func (r Record) Lines() []string {
	return strings.Split(r.Output, "\n")
}
