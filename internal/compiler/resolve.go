package compiler

import (
	"fmt"
	"strings"

	"github.com/vk/wwisedsl/internal/wwise"
)

// isResolved reports whether a parent token needs no further resolution: an
// absolute path, an opaque identifier, or an explicit query expression.
func isResolved(p string) bool {
	return strings.HasPrefix(p, `\`) || strings.HasPrefix(p, "{") || strings.HasPrefix(p, "$")
}

func isIdentifier(p string) bool {
	return strings.HasPrefix(p, "{") && strings.HasSuffix(p, "}")
}

// resolveParentAlias maps the canonical location aliases onto fixed default
// paths keyed by the child's kind. Tokens it does not recognize come back
// unchanged for the registry (or the query fallback) to handle.
//
// Strategies, first match wins: verbatim absolute path or identifier;
// "Default Work Unit"/"Root" homing by child kind; explicit hierarchy names;
// fuzzy hierarchy completion; master-bus safety net for routing children.
func resolveParentAlias(p string, childKind wwise.Kind) string {
	low := strings.ToLower(p)

	if strings.HasPrefix(p, `\`) || isIdentifier(p) {
		return p
	}

	if low == "default work unit" || low == "root" {
		return wwise.DefaultParent(childKind)
	}

	if strings.Contains(low, "master audio bus") || low == "master" {
		return wwise.DefaultBusParent
	}

	if strings.Contains(low, "actor-mixer") && !strings.Contains(low, "hierarchy") {
		return wwise.DefaultAssetParent
	}
	if low == "actor-mixer hierarchy" {
		return wwise.DefaultAssetParent
	}
	if low == "events" ||
		(strings.Contains(low, "event") && !strings.Contains(low, "hierarchy") && !strings.Contains(low, "work unit")) {
		return wwise.DefaultEventParent
	}
	if low == "switches" {
		return wwise.DefaultSwitchParent
	}
	if low == "states" {
		return wwise.DefaultStateParent
	}
	if low == "master-mixer hierarchy" {
		return wwise.DefaultBusParent
	}
	if strings.Contains(low, "attenuation") {
		return wwise.DefaultAttenuationWU
	}
	if strings.Contains(low, "game parameter") || low == "game parameters" {
		return wwise.DefaultRTPCParent
	}

	// Routing children saying "...Default Work Unit..." in any phrasing
	// belong under the master bus, not the asset hierarchy.
	if (childKind == wwise.KindBus || childKind == wwise.KindAuxBus) &&
		strings.Contains(low, "default work unit") {
		return wwise.DefaultBusParent
	}

	return p
}

// resolveViaRegistry disambiguates a bare parent name using the registry.
// Candidates are filtered to the hierarchy consistent with the child's kind;
// a single survivor wins outright, several survivors go through the
// container-preference tie-break: scan from the most recent registration
// backwards for a container-kind path, falling back to the earliest
// registration when none qualifies.
func (c *Compiler) resolveViaRegistry(name string, childKind wwise.Kind) (string, bool) {
	if c.reg == nil {
		return "", false
	}
	candidates := c.reg.LookupCandidates(name)
	if len(candidates) == 0 {
		return "", false
	}

	keyword := wwise.HierarchyKeyword(childKind)
	var filtered []string
	for _, path := range candidates {
		if strings.Contains(path, wwise.AttenuationsHierarchy) {
			continue
		}
		if keyword != "" && !strings.Contains(path, keyword) {
			continue
		}
		filtered = append(filtered, path)
	}

	switch {
	case len(filtered) == 1:
		return filtered[0], true
	case len(filtered) > 1:
		for i := len(filtered) - 1; i >= 0; i-- {
			if kind, ok := c.reg.KindOf(filtered[i]); ok && wwise.IsContainerKind(kind) {
				return filtered[i], true
			}
		}
		return filtered[0], true
	}
	return "", false
}

// typedQuery wraps an unresolved parent name into a query expression
// restricted to the child's legal parent kinds, for the execution layer to
// resolve against the live project.
func typedQuery(name string, childKind wwise.Kind) (string, bool) {
	parents := wwise.LegalParentKinds(childKind)
	if parents == nil {
		return "", false
	}
	kinds := make([]string, len(parents))
	for i, k := range parents {
		kinds[i] = string(k)
	}
	return fmt.Sprintf(`$ from type %s where name="%s"`, strings.Join(kinds, ","), name), true
}

// findReferencePath resolves a bare link-target name through the registry,
// preferring candidates inside the slot's expected hierarchy.
func (c *Compiler) findReferencePath(name, hierarchyHint string) (string, bool) {
	if c.reg == nil {
		return "", false
	}
	candidates := c.reg.LookupCandidates(name)
	if len(candidates) == 0 {
		return "", false
	}
	if hierarchyHint != "" {
		for _, path := range candidates {
			if strings.Contains(path, hierarchyHint) {
				return path, true
			}
		}
	}
	return candidates[0], true
}
