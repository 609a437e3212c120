package validator

import (
	"fmt"
	"strings"

	"github.com/vk/wwisedsl/internal/compiler"
	"github.com/vk/wwisedsl/internal/dsl"
	"github.com/vk/wwisedsl/internal/plan"
	"github.com/vk/wwisedsl/internal/sample"
	"github.com/vk/wwisedsl/internal/wwise"
)

// Verdict is the validation result for one sample.
type Verdict struct {
	SyntaxOK     bool
	SemanticOK   bool
	DependencyOK bool
	Valid        bool
	Errors       []string
	Warnings     []string
	PlanLength   int
	Commands     map[string]int
}

// Validator replays samples through the forward compiler and cross-checks
// declared-before-used invariants across a batch.
type Validator struct {
	comp  *compiler.Compiler
	known map[string]bool // created by earlier valid samples in this batch
	sys   map[string]bool // always-present platform objects
}

// Option configures a Validator.
type Option func(*Validator)

// WithCompiler replaces the default forward compiler, for callers that want
// registry-aware syntax checking.
func WithCompiler(c *compiler.Compiler) Option {
	return func(v *Validator) { v.comp = c }
}

// WithPreseededNames extends the always-present object set, for projects
// whose baseline contains more than the platform defaults.
func WithPreseededNames(names []string) Option {
	return func(v *Validator) {
		for _, n := range names {
			v.sys[n] = true
		}
	}
}

// New returns a Validator with an empty batch state.
func New(opts ...Option) *Validator {
	v := &Validator{
		comp:  compiler.New(),
		known: make(map[string]bool),
		sys:   make(map[string]bool),
	}
	for _, name := range wwise.SystemObjectNames() {
		v.sys[name] = true
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Reset clears the batch-scoped created-object state.
func (v *Validator) Reset() {
	v.known = make(map[string]bool)
}

// Validate checks one sample. Each level gates the next; the sample is valid
// iff syntax and semantic checks pass and no errors were recorded. Warnings
// are tolerated. Names created by a valid sample extend the known set for
// the rest of the batch.
func (v *Validator) Validate(rec sample.Record) Verdict {
	verdict := Verdict{SyntaxOK: true, SemanticOK: true, DependencyOK: true}

	if strings.TrimSpace(rec.Output) == "" {
		verdict.SyntaxOK = false
		verdict.Errors = append(verdict.Errors, "empty DSL text")
		return verdict
	}
	lines := rec.Lines()

	created := v.syntaxLevel(lines, &verdict)
	if verdict.SyntaxOK {
		v.semanticLevel(lines, &verdict)
	}
	if verdict.SyntaxOK && verdict.SemanticOK {
		v.dependencyLevel(lines, &verdict)
	}

	verdict.Valid = verdict.SyntaxOK && verdict.SemanticOK && len(verdict.Errors) == 0
	if verdict.Valid {
		for name := range created {
			v.known[name] = true
		}
	}
	return verdict
}

// syntaxLevel runs the forward compiler and requires a non-empty plan. The
// compiler's own diagnostics are surfaced verbatim. Returns the names the
// plan would create.
func (v *Validator) syntaxLevel(lines []string, verdict *Verdict) map[string]bool {
	res := v.comp.Compile(lines)
	verdict.PlanLength = len(res.Plan)
	verdict.Errors = append(verdict.Errors, res.Errors...)
	verdict.Warnings = append(verdict.Warnings, res.Warnings...)

	if err := plan.Validate(res.Plan); err != nil {
		verdict.SyntaxOK = false
		verdict.Errors = append(verdict.Errors, err.Error())
		return nil
	}

	created := make(map[string]bool)
	commands := map[string]int{
		"CREATE": 0, "SET_PROP": 0, "LINK": 0, "ASSIGN": 0, "OTHER": 0,
	}
	for _, step := range res.Plan {
		switch {
		case strings.Contains(step.Action, "create"):
			commands["CREATE"]++
			if name, ok := step.Args["name"].(string); ok && name != "" {
				created[name] = true
			}
		case strings.Contains(step.Action, "setProperty"):
			commands["SET_PROP"]++
		case strings.Contains(step.Action, "setReference"):
			commands["LINK"]++
		case strings.Contains(step.Action, "addAssignment"):
			commands["ASSIGN"]++
		default:
			commands["OTHER"]++
		}
	}
	verdict.Commands = commands
	return created
}

// semanticLevel re-scans the raw lines independently of the plan. Unknown
// CREATE types are warnings (the normalizer will likely fix them); unknown
// LINK slots are hard errors, because no safe default exists for a
// reference slot.
func (v *Validator) semanticLevel(lines []string, verdict *Verdict) {
	for _, line := range lines {
		inst, err := dsl.ParseLine(line)
		if err != nil {
			continue // already reported by the syntax level
		}
		switch inst.Op {
		case dsl.OpCreate:
			if _, known := wwise.NormalizeType(inst.Type); !known {
				verdict.Warnings = append(verdict.Warnings,
					fmt.Sprintf("non-standard type '%s', normalization may correct it", inst.Type))
			}
		case dsl.OpSetProp:
			if !wwise.PropertyWhitelist[inst.Property] {
				verdict.Warnings = append(verdict.Warnings,
					fmt.Sprintf("unusual property '%s'", inst.Property))
			}
		case dsl.OpLink:
			if _, known := wwise.NormalizeReference(inst.Slot); !known {
				verdict.SemanticOK = false
				verdict.Errors = append(verdict.Errors,
					fmt.Sprintf("invalid reference slot '%s'", inst.Slot))
			}
		}
	}
}

// dependencyLevel replays the lines tracking a locally-created name set and
// flags references to names that are neither platform defaults, nor created
// by earlier valid samples, nor created earlier in this sample. All findings
// are warnings; the project may genuinely contain the objects already.
func (v *Validator) dependencyLevel(lines []string, verdict *Verdict) {
	local := make(map[string]bool)

	knownName := func(name string) bool {
		return v.sys[name] || v.known[name] || local[name]
	}

	for _, line := range lines {
		inst, err := dsl.ParseLine(line)
		if err != nil {
			continue
		}
		switch inst.Op {
		case dsl.OpCreate:
			if !knownName(inst.Parent) {
				verdict.DependencyOK = false
				verdict.Warnings = append(verdict.Warnings,
					fmt.Sprintf("parent '%s' not found in context (object: %s)", inst.Parent, inst.Name))
			}
			local[inst.Name] = true
		case dsl.OpLink:
			if !knownName(inst.Target) {
				verdict.DependencyOK = false
				verdict.Warnings = append(verdict.Warnings,
					fmt.Sprintf("link target '%s' may not exist (object: %s)", inst.Target, inst.Child))
			}
		case dsl.OpAssign:
			if !v.known[inst.Target] && !local[inst.Target] {
				verdict.DependencyOK = false
				verdict.Warnings = append(verdict.Warnings,
					fmt.Sprintf("switch or state '%s' may not exist (object: %s)", inst.Target, inst.Child))
			}
		case dsl.OpCreateEvent:
			local[inst.Event] = true
		case dsl.OpImportAudio:
			if inst.Name != "" {
				local[inst.Name] = true
			}
		}
	}
}
