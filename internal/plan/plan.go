// Package plan defines the execution-plan steps the forward compiler emits.
// A plan is pure data: executing it against a live project is the job of an
// external API layer.
package plan

import (
	"encoding/json"
	"errors"
	"io"
)

// Qualified operation names of the remote object-tree API.
const (
	ActionCreate        = "ak.wwise.core.object.create"
	ActionSetProperty   = "ak.wwise.core.object.setProperty"
	ActionSetReference  = "ak.wwise.core.object.setReference"
	ActionSetName       = "ak.wwise.core.object.setName"
	ActionDelete        = "ak.wwise.core.object.delete"
	ActionCopy          = "ak.wwise.core.object.copy"
	ActionMove          = "ak.wwise.core.object.move"
	ActionAddAssignment = "ak.wwise.core.switchContainer.addAssignment"
	ActionAudioImport   = "ak.wwise.core.audio.import"
	ActionSetCurve      = "ak.wwise.core.object.setAttenuationCurve"
)

// Step is a single remote call: a qualified operation name plus its
// arguments. Options carries call options for operations whose caller needs
// returned identifiers.
type Step struct {
	Action  string         `json:"action"`
	Args    map[string]any `json:"args"`
	Options map[string]any `json:"options,omitempty"`
}

// Validate checks that a compiled plan is usable at all. An empty plan is the
// one condition a caller must not silently accept.
func Validate(steps []Step) error {
	if len(steps) == 0 {
		return errors.New("empty plan")
	}
	return nil
}

// Encode writes the plan as indented JSON.
func Encode(w io.Writer, steps []Step) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(steps)
}
