// Package profile loads the optional HCL options file that tunes extraction
// and validation for a particular project, without touching the compiled-in
// defaults.
package profile

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/wwisedsl/internal/wwise"
)

// Profile carries per-project tuning. The zero value means "use defaults".
//
// Example:
//
//	include_sounds = false
//	sample_roots   = ["SwitchContainer", "Event"]
//	extra_properties  = ["CenterPercentage"]
//	preseeded_objects = ["Ambience_Master"]
type Profile struct {
	// IncludeSounds makes leaf sounds independent sample roots.
	IncludeSounds bool `hcl:"include_sounds,optional"`

	// SampleRoots replaces the default independent-sample kind set. Tokens
	// go through type normalization, so synonyms are accepted.
	SampleRoots []string `hcl:"sample_roots,optional"`

	// ExtraProperties extends the property whitelist.
	ExtraProperties []string `hcl:"extra_properties,optional"`

	// PreseededObjects extends the validator's always-present object set.
	PreseededObjects []string `hcl:"preseeded_objects,optional"`
}

// Default returns an empty profile.
func Default() *Profile {
	return &Profile{}
}

// Load parses and decodes a profile file.
func Load(path string) (*Profile, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing profile %s: %w", path, diags)
	}

	var p Profile
	if diags := gohcl.DecodeBody(file.Body, nil, &p); diags.HasErrors() {
		return nil, fmt.Errorf("decoding profile %s: %w", path, diags)
	}
	return &p, nil
}

// RootKinds normalizes the configured sample-root tokens. Tokens that do not
// normalize to a known kind are rejected: a silently dropped root would skew
// a whole extraction run.
func (p *Profile) RootKinds() ([]wwise.Kind, error) {
	if len(p.SampleRoots) == 0 {
		return nil, nil
	}
	kinds := make([]wwise.Kind, 0, len(p.SampleRoots))
	for _, token := range p.SampleRoots {
		kind, ok := wwise.NormalizeType(token)
		if !ok {
			return nil, fmt.Errorf("unknown sample root type %q", token)
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}
