package compiler

import (
	"fmt"
	"strings"

	"github.com/vk/wwisedsl/internal/dsl"
	"github.com/vk/wwisedsl/internal/plan"
	"github.com/vk/wwisedsl/internal/registry"
	"github.com/vk/wwisedsl/internal/wwise"
)

// Compiler translates DSL lines into execution-plan steps.
type Compiler struct {
	reg *registry.Registry
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithRegistry attaches a read-only registry for name disambiguation.
func WithRegistry(reg *registry.Registry) Option {
	return func(c *Compiler) { c.reg = reg }
}

// New returns a Compiler.
func New(opts ...Option) *Compiler {
	c := &Compiler{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Result carries the compiled plan and the accumulated diagnostics. Errors
// are per-line and never abort the remaining lines.
type Result struct {
	Plan     []plan.Step
	Errors   []string
	Warnings []string
}

// CompileText splits text on newlines and compiles it.
func (c *Compiler) CompileText(text string) Result {
	return c.Compile(strings.Split(text, "\n"))
}

// Compile translates the given DSL lines into an execution plan. Every line
// is attempted; a bad line records a diagnostic and contributes no steps.
func (c *Compiler) Compile(lines []string) Result {
	var res Result
	for i, line := range lines {
		inst, err := dsl.ParseLine(line)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("Line %d: %v", i+1, err))
			continue
		}
		switch inst.Op {
		case dsl.OpBlank, dsl.OpComment:
			continue
		case dsl.OpUnknown:
			if !dsl.IsNoise(inst.Raw) {
				res.Warnings = append(res.Warnings, "Unrecognized instruction: "+truncate(inst.Raw, 50))
			}
			continue
		}
		steps := c.expand(inst, &res)
		res.Plan = append(res.Plan, steps...)
	}
	return res
}

func (c *Compiler) expand(inst dsl.Instruction, res *Result) []plan.Step {
	switch inst.Op {
	case dsl.OpCreate:
		return c.expandCreate(inst, res)
	case dsl.OpSetProp:
		return []plan.Step{{
			Action: plan.ActionSetProperty,
			Args: map[string]any{
				"object":   inst.Object,
				"property": inst.Property,
				"value":    goValue(ParseValue(inst.RawValue)),
			},
		}}
	case dsl.OpLink:
		return c.expandLink(inst, res)
	case dsl.OpAssign:
		return []plan.Step{{
			Action: plan.ActionAddAssignment,
			Args: map[string]any{
				"child":         inst.Child,
				"stateOrSwitch": inst.Target,
			},
		}}
	case dsl.OpAddAction:
		return expandAddAction(inst)
	case dsl.OpCreateEvent:
		return c.expandCreateEvent(inst)
	case dsl.OpImportAudio:
		return c.expandImportAudio(inst)
	case dsl.OpSetRTPCCurve:
		return expandRTPCCurve(inst)
	case dsl.OpDelete:
		return []plan.Step{{
			Action: plan.ActionDelete,
			Args:   map[string]any{"object": inst.Object},
		}}
	case dsl.OpCopy:
		return []plan.Step{{
			Action: plan.ActionCopy,
			Args: map[string]any{
				"object":         inst.Object,
				"parent":         inst.Parent,
				"onNameConflict": "rename",
			},
			Options: map[string]any{"return": []string{"name", "id"}},
		}}
	case dsl.OpMove:
		return []plan.Step{{
			Action: plan.ActionMove,
			Args: map[string]any{
				"object":         inst.Object,
				"parent":         inst.Parent,
				"onNameConflict": "rename",
			},
		}}
	case dsl.OpRename:
		return []plan.Step{{
			Action: plan.ActionSetName,
			Args: map[string]any{
				"object": inst.Object,
				"value":  inst.NewName,
			},
		}}
	}
	return nil
}

func (c *Compiler) expandCreate(inst dsl.Instruction, res *Result) []plan.Step {
	var steps []plan.Step

	kind, known := wwise.NormalizeType(inst.Type)
	if !known {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("unknown type %q passed through", inst.Type))
	}

	parent := resolveParentAlias(inst.Parent, kind)

	if !isResolved(parent) {
		if path, ok := c.resolveViaRegistry(parent, kind); ok {
			parent = path
		} else if query, ok := typedQuery(parent, kind); ok {
			parent = query
		}
	}

	// The platform refuses assets directly under a plain filesystem folder:
	// route them through an intermediate logical work unit instead.
	if wwise.IsAssetKind(kind) && c.reg != nil {
		parentID := parent
		if !strings.HasPrefix(parent, "{") {
			parentID, _ = c.reg.IdentifierOf(parent, true)
		}
		if parentID != "" && c.reg.IsPlainFolder(parentID) {
			wuName := inst.Parent + "_Content"
			steps = append(steps, plan.Step{
				Action: plan.ActionCreate,
				Args: map[string]any{
					"type":           string(wwise.KindWorkUnit),
					"name":           wuName,
					"parent":         parentID,
					"onNameConflict": "merge",
				},
			})
			if parentPath, ok := c.reg.PathOf(parentID); ok {
				parent = parentPath + `\` + wuName
			} else {
				parent = fmt.Sprintf(`$ from type WorkUnit where name="%s"`, wuName)
			}
		}
	}

	// Work units cannot nest arbitrarily: under an opaque-identifier parent
	// or inside the asset hierarchy they become a generic container.
	if kind == wwise.KindWorkUnit {
		inAssetHierarchy := strings.Contains(strings.ToLower(parent), `\actor-mixer hierarchy\`)
		if strings.HasPrefix(parent, "{") || inAssetHierarchy {
			kind = wwise.KindActorMixer
		}
	}

	conflict := "merge"
	if kind == wwise.KindWorkUnit {
		conflict = "rename"
	}

	return append(steps, plan.Step{
		Action: plan.ActionCreate,
		Args: map[string]any{
			"type":           string(kind),
			"name":           inst.Name,
			"parent":         parent,
			"onNameConflict": conflict,
		},
	})
}

func (c *Compiler) expandLink(inst dsl.Instruction, res *Result) []plan.Step {
	var steps []plan.Step

	slot, known := wwise.NormalizeReference(inst.Slot)
	if !known {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("unknown reference slot %q passed through", inst.Slot))
	}

	// The reference-set operation takes identifiers, paths, or names; query
	// expressions are not accepted. Bare names go through the master-bus
	// alias check and the registry, and otherwise pass through for the
	// execution layer to find.
	target := inst.Target
	if !isResolved(target) {
		if low := strings.ToLower(target); low == "master" || low == strings.ToLower(wwise.ImplicitRouteTarget) {
			target = wwise.DefaultBusParent
		} else if path, ok := c.findReferencePath(target, wwise.ReferenceHierarchy(slot)); ok {
			target = path
		}
	}

	// Output routing and positioning are inherited properties; linking them
	// only takes effect once the child stops inheriting.
	switch slot {
	case "OutputBus":
		steps = append(steps, overrideStep(inst.Child, "OverrideOutput"))
	case "Attenuation":
		steps = append(steps, overrideStep(inst.Child, "OverridePositioning"))
	}

	return append(steps, plan.Step{
		Action: plan.ActionSetReference,
		Args: map[string]any{
			"object":    inst.Child,
			"reference": slot,
			"value":     target,
		},
	})
}

func overrideStep(object, property string) plan.Step {
	return plan.Step{
		Action: plan.ActionSetProperty,
		Args: map[string]any{
			"object":   object,
			"property": property,
			"value":    true,
		},
	}
}

func expandAddAction(inst dsl.Instruction) []plan.Step {
	args := map[string]any{
		"parent":         inst.Event,
		"type":           string(wwise.KindAction),
		"name":           "", // the platform names actions itself
		"onNameConflict": "merge",
		"@ActionType":    wwise.ActionTypeCode(inst.ActionType),
		"@Target":        inst.Target,
	}
	switch strings.ToLower(inst.ActionType) {
	case "setswitch":
		if inst.Extra != "" {
			args["@SwitchValue"] = inst.Extra
		}
	case "setstate":
		if inst.Extra != "" {
			args["@StateValue"] = inst.Extra
		}
	}
	return []plan.Step{{Action: plan.ActionCreate, Args: args}}
}

func (c *Compiler) expandCreateEvent(inst dsl.Instruction) []plan.Step {
	parent := inst.Parent
	if parent == "" {
		parent = "Default Work Unit"
	}
	eventParent := resolveParentAlias(parent, wwise.KindEvent)

	return []plan.Step{
		{
			Action: plan.ActionCreate,
			Args: map[string]any{
				"type":           string(wwise.KindEvent),
				"name":           inst.Event,
				"parent":         eventParent,
				"onNameConflict": "merge",
			},
		},
		{
			Action: plan.ActionCreate,
			Args: map[string]any{
				"parent":         inst.Event,
				"type":           string(wwise.KindAction),
				"name":           "",
				"onNameConflict": "merge",
				"@ActionType":    wwise.ActionTypeCode("play"),
				"@Target":        inst.Target,
			},
		},
	}
}

func (c *Compiler) expandImportAudio(inst dsl.Instruction) []plan.Step {
	soundName := inst.Name
	if soundName == "" {
		soundName = audioBaseName(inst.AudioFile)
	}
	parent := resolveParentAlias(inst.Parent, wwise.KindSound)

	return []plan.Step{{
		Action: plan.ActionAudioImport,
		Args: map[string]any{
			"importOperation": "useExisting",
			"default": map[string]any{
				"importLanguage": "SFX",
			},
			"imports": []map[string]any{{
				"audioFile":  inst.AudioFile,
				"objectPath": "<Sound>" + soundName,
				"parent":     parent,
			}},
		},
	}}
}

func expandRTPCCurve(inst dsl.Instruction) []plan.Step {
	points := make([]map[string]any, len(inst.Points))
	for i, p := range inst.Points {
		points[i] = map[string]any{
			"x":     p.X,
			"y":     p.Y,
			"shape": "Linear",
		}
	}
	return []plan.Step{{
		Action: plan.ActionSetCurve,
		Args: map[string]any{
			"object":    inst.Object,
			"curveType": inst.Property,
			"use":       inst.Parameter,
			"points":    points,
		},
	}}
}

// audioBaseName extracts a sound name from an audio file path, tolerating
// both path separator conventions.
func audioBaseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		path = path[i+1:]
	}
	if i := strings.LastIndex(path, "."); i > 0 {
		path = path[:i]
	}
	return path
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
