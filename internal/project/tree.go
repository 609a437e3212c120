package project

import "github.com/vk/wwisedsl/internal/wwise"

// Property is one named property value on a node.
type Property struct {
	Name  string
	Value string
}

// Reference is a named reference slot pointing at another object by name.
type Reference struct {
	Name   string
	Target string
}

// Assignment maps a switch-container child onto a switch or state.
type Assignment struct {
	Child string
	State string
}

// Node is one object in the project tree.
type Node struct {
	Kind        wwise.Kind
	Name        string
	ID          string // opaque identifier from the project file, may be empty
	Properties  []Property
	References  []Reference
	Assignments []Assignment
	Children    []*Node
}

// Property returns the value of the named property, if present.
func (n *Node) Property(name string) (string, bool) {
	for _, p := range n.Properties {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// Reference returns the target of the named reference slot, if present.
func (n *Node) Reference(name string) (string, bool) {
	for _, r := range n.References {
		if r.Name == name {
			return r.Target, true
		}
	}
	return "", false
}

// Walk visits n and every descendant in pre-order, calling fn with the node,
// its parent's name and its depth. Event action children are structural
// details of their event, not tree objects, so they are not descended into.
func Walk(n *Node, parentName string, fn func(n *Node, parentName string, depth int)) {
	walk(n, parentName, 0, fn)
}

func walk(n *Node, parentName string, depth int, fn func(*Node, string, int)) {
	fn(n, parentName, depth)
	for _, child := range n.Children {
		if child.Kind == wwise.KindAction {
			continue
		}
		walk(child, n.Name, depth+1, fn)
	}
}
