package project

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/vk/wwisedsl/internal/wwise"
)

// isObjectTag reports whether an XML element tag names a tree object. Tags in
// work-unit files use the canonical kind spellings.
func isObjectTag(tag string) (wwise.Kind, bool) {
	kind, ok := wwise.NormalizeType(tag)
	if !ok || string(kind) != tag {
		return "", false
	}
	return kind, true
}

// LoadFile decodes all top-level objects from a work-unit file.
func LoadFile(path string) ([]*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening work unit: %w", err)
	}
	defer f.Close()

	nodes, err := DecodeWorkUnits(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return nodes, nil
}

// DecodeWorkUnits scans a work-unit XML document and decodes every object
// element not nested inside another object. In a well-formed file that is the
// file's work units; documents without one still yield their top-level
// objects.
func DecodeWorkUnits(r io.Reader) ([]*Node, error) {
	dec := xml.NewDecoder(r)
	var roots []*Node

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if kind, isObj := isObjectTag(se.Name.Local); isObj {
			node, err := decodeObject(dec, se, kind)
			if err != nil {
				return nil, err
			}
			roots = append(roots, node)
		}
	}
	return roots, nil
}

// decodeObject consumes the element started by start and its whole subtree.
func decodeObject(dec *xml.Decoder, start xml.StartElement, kind wwise.Kind) (*Node, error) {
	node := &Node{Kind: kind}
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "Name":
			node.Name = attr.Value
		case "ID":
			node.ID = attr.Value
		}
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "PropertyList":
				if err := decodeProperties(dec, node); err != nil {
					return nil, err
				}
			case "ReferenceList":
				if err := decodeReferences(dec, node); err != nil {
					return nil, err
				}
			case "ChildrenList":
				if err := decodeChildren(dec, node); err != nil {
					return nil, err
				}
			case "SwitchAssignmentList":
				if err := decodeAssignments(dec, node); err != nil {
					return nil, err
				}
			default:
				// Wrapper elements can hold an assignment list deeper down.
				if err := scanWrapper(dec, node); err != nil {
					return nil, err
				}
			}
		case xml.EndElement:
			return node, nil
		}
	}
}

func decodeProperties(dec *xml.Decoder, node *Node) error {
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "Property" {
				var prop Property
				for _, attr := range t.Attr {
					switch attr.Name.Local {
					case "Name":
						prop.Name = attr.Value
					case "Value":
						prop.Value = attr.Value
					}
				}
				if prop.Name != "" {
					node.Properties = append(node.Properties, prop)
				}
			}
			if err := dec.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

func decodeReferences(dec *xml.Decoder, node *Node) error {
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "Reference" {
				if err := dec.Skip(); err != nil {
					return err
				}
				continue
			}
			ref := Reference{Name: attrValue(t, "Name")}
			if err := decodeReferenceTarget(dec, &ref); err != nil {
				return err
			}
			if ref.Name != "" && ref.Target != "" {
				node.References = append(node.References, ref)
			}
		case xml.EndElement:
			return nil
		}
	}
}

func decodeReferenceTarget(dec *xml.Decoder, ref *Reference) error {
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "ObjectRef" {
				ref.Target = attrValue(t, "Name")
			}
			if err := dec.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

func decodeChildren(dec *xml.Decoder, node *Node) error {
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if kind, isObj := isObjectTag(t.Name.Local); isObj {
				child, err := decodeObject(dec, t, kind)
				if err != nil {
					return err
				}
				node.Children = append(node.Children, child)
				continue
			}
			if err := dec.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

func decodeAssignments(dec *xml.Decoder, node *Node) error {
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "Assignment" {
				if err := dec.Skip(); err != nil {
					return err
				}
				continue
			}
			var a Assignment
			if err := decodeAssignment(dec, &a); err != nil {
				return err
			}
			if a.Child != "" && a.State != "" {
				node.Assignments = append(node.Assignments, a)
			}
		case xml.EndElement:
			return nil
		}
	}
}

func decodeAssignment(dec *xml.Decoder, a *Assignment) error {
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "ChildRef":
				a.Child = attrValue(t, "Name")
			case "StateRef":
				a.State = attrValue(t, "Name")
			}
			if err := dec.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

// scanWrapper walks an unrecognized element looking for an assignment list
// buried inside it, skipping everything else.
func scanWrapper(dec *xml.Decoder, node *Node) error {
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "SwitchAssignmentList" {
				if err := decodeAssignments(dec, node); err != nil {
					return err
				}
				continue
			}
			if err := scanWrapper(dec, node); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

func attrValue(se xml.StartElement, name string) string {
	for _, attr := range se.Attr {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return ""
}
