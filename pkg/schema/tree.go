package schema

import (
	"encoding/json"
	"strings"
)

// NodeKind selects a schema tree node variant.
type NodeKind int

const (
	KindScalar NodeKind = iota
	KindObject
	KindArray
)

// Node is one vertex of the schema tree. Exactly one shape is populated per
// kind: scalars carry a type and examples, objects carry properties, arrays
// carry a single item schema (only the first element of any array is ever
// inspected).
type Node struct {
	Kind       NodeKind
	Type       TypeTag
	Examples   []string
	Properties map[string]*Node
	Items      *Node
}

// Tree is the nested, merged description of a document's shape. It is the
// sole durable artifact of an inference run; the flat registry it was built
// from is discarded.
type Tree struct {
	Root *Node
}

// MarshalJSON emits the variant shape for each node kind. Property maps
// marshal with sorted keys, so rendering is reproducible.
func (n *Node) MarshalJSON() ([]byte, error) {
	switch n.Kind {
	case KindObject:
		return json.Marshal(struct {
			Type       TypeTag          `json:"type"`
			Properties map[string]*Node `json:"properties"`
		}{TypeObject, n.Properties})
	case KindArray:
		return json.Marshal(struct {
			Type  TypeTag `json:"type"`
			Items *Node   `json:"items,omitempty"`
		}{TypeArray, n.Items})
	default:
		return json.Marshal(struct {
			Type     TypeTag  `json:"type"`
			Examples []string `json:"examples,omitempty"`
		}{n.Type, n.Examples})
	}
}

// MarshalJSON renders the root object's properties as the top-level document.
func (t *Tree) MarshalJSON() ([]byte, error) {
	if t.Root == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(t.Root.Properties)
}

func newObjectNode() *Node {
	return &Node{Kind: KindObject, Type: TypeObject, Properties: make(map[string]*Node)}
}

// BuildTree converts the flat registry into a nested schema tree. Entries are
// applied in lexicographic path order; overlapping subtrees (possible after
// normalization collapses multiple raw paths) merge by structural union, with
// the last-registered node winning on a true collision. Paths reduced to
// empty segments denote root-level artifacts and attach nothing.
func BuildTree(reg *Registry) *Tree {
	root := newObjectNode()
	for _, path := range reg.Paths() {
		if path == "" {
			continue
		}
		entry, _ := reg.Entry(path)
		insert(root, strings.Split(path, "."), entry)
	}
	return &Tree{Root: root}
}

// insert threads one registry entry into the tree, creating intermediate
// object and array nodes as needed.
func insert(root *Node, segments []string, entry *Entry) {
	cur := root
	for i, seg := range segments {
		name, isElement := strings.CutSuffix(seg, "[]")
		last := i == len(segments)-1

		if name == "" {
			// Anonymous segment (empty name, or a bare array marker from a
			// top-level array). There is no node to attach; children of the
			// marker collapse onto the current level.
			if last {
				return
			}
			continue
		}

		if isElement {
			arr := ensureChild(cur, name, KindArray)
			if last {
				arr.Items = mergeNodes(arr.Items, nodeForEntry(entry))
				return
			}
			if arr.Items == nil || arr.Items.Kind != KindObject {
				arr.Items = newObjectNode()
			}
			cur = arr.Items
			continue
		}

		if last {
			cur.Properties[name] = mergeNodes(cur.Properties[name], nodeForEntry(entry))
			return
		}
		cur = ensureChild(cur, name, KindObject)
	}
}

// ensureChild returns the named child of an object node, creating it (or
// converting a mismatched node) to the wanted kind. Conversion keeps nothing
// from the old node: structure discovered by deeper entries takes precedence
// over a scalar recorded at the same position.
func ensureChild(parent *Node, name string, kind NodeKind) *Node {
	child := parent.Properties[name]
	if child == nil || child.Kind != kind {
		if kind == KindArray {
			child = &Node{Kind: KindArray, Type: TypeArray}
		} else {
			child = newObjectNode()
		}
		parent.Properties[name] = child
	}
	return child
}

// nodeForEntry builds the node shape implied by a registry entry.
func nodeForEntry(entry *Entry) *Node {
	switch entry.Type {
	case TypeObject:
		return newObjectNode()
	case TypeArray:
		return &Node{Kind: KindArray, Type: TypeArray}
	default:
		node := &Node{Kind: KindScalar, Type: entry.Type}
		if len(entry.Samples) > 0 {
			node.Examples = append([]string(nil), entry.Samples...)
		}
		return node
	}
}

// mergeNodes unions incoming into existing. Same-kind object nodes union
// their properties, arrays merge their item schemas, and scalars keep the
// richer example set. Mismatched kinds resolve to the incoming node.
func mergeNodes(existing, incoming *Node) *Node {
	if existing == nil {
		return incoming
	}
	if incoming == nil || existing.Kind != incoming.Kind {
		if incoming == nil {
			return existing
		}
		// A node with recorded structure outranks a bare replacement.
		if existing.Kind == KindObject && len(existing.Properties) > 0 && incoming.Kind != KindObject {
			return existing
		}
		if existing.Kind == KindArray && existing.Items != nil && incoming.Kind != KindArray {
			return existing
		}
		return incoming
	}
	switch existing.Kind {
	case KindObject:
		for name, node := range incoming.Properties {
			existing.Properties[name] = mergeNodes(existing.Properties[name], node)
		}
	case KindArray:
		existing.Items = mergeNodes(existing.Items, incoming.Items)
	default:
		if len(incoming.Examples) > len(existing.Examples) {
			existing.Examples = incoming.Examples
		}
	}
	return existing
}
