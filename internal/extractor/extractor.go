package extractor

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vk/wwisedsl/internal/project"
	"github.com/vk/wwisedsl/internal/sample"
	"github.com/vk/wwisedsl/internal/wwise"
)

// Options configures which subtrees become independent samples and which
// properties are worth emitting.
type Options struct {
	// IncludeSounds adds leaf sounds to the sample-root set. Off by default:
	// every leaf then becomes a context-free one-line fragment.
	IncludeSounds bool

	// Roots overrides the default sample-root kind set entirely.
	Roots []wwise.Kind

	// ExtraProperties extends the property whitelist for this run.
	ExtraProperties []string
}

// DefaultRoots returns the kinds whose subtrees stand alone as one sample.
func DefaultRoots() []wwise.Kind {
	return []wwise.Kind{
		wwise.KindRandomSequenceContainer,
		wwise.KindSwitchContainer,
		wwise.KindBlendContainer,
		wwise.KindActorMixer,
		wwise.KindEvent,
		wwise.KindBus,
		wwise.KindAuxBus,
		wwise.KindSwitchGroup,
		wwise.KindStateGroup,
		wwise.KindGameParameter,
		wwise.KindAttenuation,
	}
}

// Stats counts the instructions emitted across an extractor's lifetime.
type Stats struct {
	Creates  int
	SetProps int
	Links    int
	Assigns  int
	Actions  int
}

// Extractor turns project subtrees into DSL samples.
type Extractor struct {
	roots     map[wwise.Kind]bool
	whitelist map[string]bool
	stats     Stats
}

// New builds an Extractor from options.
func New(opts Options) *Extractor {
	rootKinds := opts.Roots
	if rootKinds == nil {
		rootKinds = DefaultRoots()
		if opts.IncludeSounds {
			rootKinds = append(rootKinds, wwise.KindSound)
		}
	}
	roots := make(map[wwise.Kind]bool, len(rootKinds))
	for _, k := range rootKinds {
		roots[k] = true
	}

	whitelist := make(map[string]bool, len(wwise.PropertyWhitelist)+len(opts.ExtraProperties))
	for name := range wwise.PropertyWhitelist {
		whitelist[name] = true
	}
	for _, name := range opts.ExtraProperties {
		whitelist[name] = true
	}

	return &Extractor{roots: roots, whitelist: whitelist}
}

// Stats returns the instruction counts accumulated so far.
func (e *Extractor) Stats() Stats { return e.stats }

// ExtractFile decodes a work-unit file and extracts all samples from it.
func (e *Extractor) ExtractFile(path string) ([]sample.Record, error) {
	nodes, err := project.LoadFile(path)
	if err != nil {
		return nil, err
	}
	source := filepath.Base(path)

	var records []sample.Record
	for _, node := range nodes {
		parentName := "Root"
		if node.Kind == wwise.KindWorkUnit {
			parentName = "Default Work Unit"
		}
		records = append(records, e.Extract(node, parentName, source)...)
	}
	return records, nil
}

// Extract walks the subtree rooted at node and returns one sample per
// independent-root descendant (including node itself when it qualifies).
func (e *Extractor) Extract(node *project.Node, parentName, source string) []sample.Record {
	var records []sample.Record
	e.traverse(node, parentName, source, &records)
	return records
}

func (e *Extractor) traverse(node *project.Node, parentName, source string, out *[]sample.Record) {
	if node.Name == "" {
		return
	}

	if e.roots[node.Kind] {
		lines, depth := e.subtreeDSL(node, parentName, 0)
		if len(lines) > 0 {
			counts := countCommands(lines)
			*out = append(*out, sample.Record{
				Output: strings.Join(lines, "\n"),
				Meta: sample.Meta{
					Source:     source,
					RootType:   string(node.Kind),
					RootName:   node.Name,
					LineCount:  len(lines),
					Depth:      depth,
					Complexity: string(Classify(len(lines), depth, counts)),
					Commands:   counts,
				},
			})
		}
	}

	for _, child := range node.Children {
		if child.Kind == wwise.KindAction {
			continue
		}
		e.traverse(child, node.Name, source, out)
	}
}

// subtreeDSL emits the node's own instructions followed by every
// descendant's, parents strictly before children.
func (e *Extractor) subtreeDSL(node *project.Node, parentName string, depth int) ([]string, int) {
	lines := e.objectDSL(node, parentName)
	maxDepth := depth

	for _, child := range node.Children {
		if child.Kind == wwise.KindAction {
			continue
		}
		childLines, childDepth := e.subtreeDSL(child, node.Name, depth+1)
		lines = append(lines, childLines...)
		if childDepth > maxDepth {
			maxDepth = childDepth
		}
	}
	return lines, maxDepth
}

// objectDSL emits the instructions describing a single node, children
// excluded.
func (e *Extractor) objectDSL(node *project.Node, parentName string) []string {
	var lines []string

	if !wwise.SkippedDefaultNames[node.Name] {
		lines = append(lines, fmt.Sprintf(`CREATE %s "%s" UNDER "%s"`, node.Kind, node.Name, parentName))
		e.stats.Creates++
	}

	for _, prop := range node.Properties {
		if !e.whitelist[prop.Name] || prop.Value == "" {
			continue
		}
		if wwise.IsDefaultPropertyValue(prop.Name, prop.Value) {
			continue
		}
		lines = append(lines, fmt.Sprintf(`SET_PROP "%s" "%s" = %s`,
			node.Name, prop.Name, formatValue(prop.Value)))
		e.stats.SetProps++
	}

	for _, ref := range node.References {
		alias, ok := wwise.DSLReferenceAlias(ref.Name)
		if !ok {
			continue
		}
		// Routing to the master bus is implicit for every object.
		if ref.Target == wwise.ImplicitRouteTarget {
			continue
		}
		lines = append(lines, fmt.Sprintf(`LINK "%s" TO "%s" AS "%s"`, node.Name, ref.Target, alias))
		e.stats.Links++
	}

	if node.Kind == wwise.KindSwitchContainer {
		for _, a := range node.Assignments {
			lines = append(lines, fmt.Sprintf(`ASSIGN "%s" TO "%s"`, a.Child, a.State))
			e.stats.Assigns++
		}
	}

	if node.Kind == wwise.KindEvent {
		for _, child := range node.Children {
			if child.Kind != wwise.KindAction {
				continue
			}
			lines = append(lines, e.actionDSL(child, node.Name)...)
		}
	}

	return lines
}

func (e *Extractor) actionDSL(action *project.Node, eventName string) []string {
	typeValue, _ := action.Property("ActionType")
	code, err := strconv.Atoi(typeValue)
	if err != nil {
		code = 1
	}

	target, ok := action.Reference("Target")
	if !ok || target == "" {
		return nil
	}

	e.stats.Actions++
	return []string{fmt.Sprintf(`ADD_ACTION "%s" %s "%s"`,
		eventName, wwise.ActionTypeName(code), target)}
}

// countCommands tallies lines by instruction keyword.
func countCommands(lines []string) map[string]int {
	counts := map[string]int{
		"CREATE":     0,
		"SET_PROP":   0,
		"LINK":       0,
		"ASSIGN":     0,
		"ADD_ACTION": 0,
	}
	for _, line := range lines {
		for _, cmd := range [...]string{"CREATE", "SET_PROP", "LINK", "ASSIGN", "ADD_ACTION"} {
			if strings.HasPrefix(line, cmd) {
				counts[cmd]++
				break
			}
		}
	}
	return counts
}

// formatValue renders a property value in DSL syntax: booleans capitalized,
// numbers bare, everything else quoted.
func formatValue(value string) string {
	switch strings.ToLower(value) {
	case "true":
		return "True"
	case "false":
		return "False"
	}
	if strings.Contains(value, ".") {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return strconv.FormatFloat(f, 'g', -1, 64)
		}
	} else if i, err := strconv.ParseInt(value, 10, 64); err == nil {
		return strconv.FormatInt(i, 10)
	}
	return `"` + value + `"`
}
