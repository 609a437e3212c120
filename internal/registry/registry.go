package registry

import (
	"strings"

	"github.com/google/uuid"

	"github.com/vk/wwisedsl/internal/project"
	"github.com/vk/wwisedsl/internal/wwise"
)

// Registry maps object names to candidate full paths and paths to their kind
// and opaque identifier.
type Registry struct {
	names map[string][]string   // name -> candidate paths, registration order
	kinds map[string]wwise.Kind // path -> kind
	ids   map[string]string     // path -> identifier
	paths map[string]string     // identifier -> path
	plain map[string]bool       // path -> plain filesystem folder
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		names: make(map[string][]string),
		kinds: make(map[string]wwise.Kind),
		ids:   make(map[string]string),
		paths: make(map[string]string),
		plain: make(map[string]bool),
	}
}

// Register records an object at path with the given kind and returns its
// opaque identifier. When id is empty a fresh one is generated. Registering
// the same path twice updates the kind but keeps the first identifier.
func (r *Registry) Register(path string, kind wwise.Kind, id string) string {
	name := nameFromPath(path)
	if _, seen := r.kinds[path]; !seen {
		r.names[name] = append(r.names[name], path)
		if id == "" {
			id = "{" + strings.ToUpper(uuid.NewString()) + "}"
		}
		r.ids[path] = id
		r.paths[id] = path
	}
	r.kinds[path] = kind
	if kind == wwise.KindFolder {
		r.plain[path] = true
	}
	return r.ids[path]
}

// MarkPlainFolder flags a path as a plain filesystem folder, which assets
// may not be created under directly.
func (r *Registry) MarkPlainFolder(path string) {
	r.plain[path] = true
}

// LookupCandidates returns every registered path carrying the given object
// name, oldest registration first.
func (r *Registry) LookupCandidates(name string) []string {
	return r.names[name]
}

// KindOf returns the kind registered for a full path.
func (r *Registry) KindOf(path string) (wwise.Kind, bool) {
	kind, ok := r.kinds[path]
	return kind, ok
}

// IsPlainFolder reports whether the path or identifier names a plain
// filesystem folder.
func (r *Registry) IsPlainFolder(pathOrID string) bool {
	if path, ok := r.paths[pathOrID]; ok {
		return r.plain[path]
	}
	return r.plain[pathOrID]
}

// PathOf resolves an opaque identifier back to its full path.
func (r *Registry) PathOf(id string) (string, bool) {
	path, ok := r.paths[id]
	return path, ok
}

// IdentifierOf returns the opaque identifier for a full path, or, when given
// a bare name, for the best candidate carrying that name. With
// preferContainer set, same-named candidates of a container kind win over
// non-containers, scanning from the most recent registration backwards; this
// is what keeps a child from shadowing an ancestor that shares its name.
func (r *Registry) IdentifierOf(nameOrPath string, preferContainer bool) (string, bool) {
	if id, ok := r.ids[nameOrPath]; ok {
		return id, true
	}
	candidates := r.names[nameOrPath]
	if len(candidates) == 0 {
		return "", false
	}
	if preferContainer {
		for i := len(candidates) - 1; i >= 0; i-- {
			if wwise.IsContainerKind(r.kinds[candidates[i]]) {
				return r.ids[candidates[i]], true
			}
		}
	}
	return r.ids[candidates[0]], true
}

// FromTree registers root and every descendant in pre-order. basePath is the
// path of root's parent ("" roots the paths at root itself). Candidate order
// therefore follows the pre-order walk, a property the compiler's tie-break
// depends on.
func (r *Registry) FromTree(root *project.Node, basePath string) {
	r.fromNode(root, basePath)
}

func (r *Registry) fromNode(n *project.Node, parentPath string) {
	path := parentPath + `\` + n.Name
	r.Register(path, n.Kind, n.ID)
	for _, child := range n.Children {
		if child.Kind == wwise.KindAction {
			continue
		}
		r.fromNode(child, path)
	}
}

func nameFromPath(path string) string {
	if i := strings.LastIndex(path, `\`); i >= 0 {
		return path[i+1:]
	}
	return path
}
