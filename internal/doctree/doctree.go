package doctree

// Kind identifies which variant a Node holds.
type Kind uint8

const (
	Null Kind = iota
	Scalar
	Mapping
	List
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Scalar:
		return "scalar"
	case Mapping:
		return "mapping"
	case List:
		return "list"
	}
	return "unknown"
}

// Node is one value in a decoded document tree.
type Node struct {
	Kind  Kind
	Text  string  // Scalar text: strings unquoted, numbers and booleans as written
	Items []*Node // List elements in document order

	keys   []string
	fields map[string]*Node
}

// NewNull returns a JSON null.
func NewNull() *Node {
	return &Node{Kind: Null}
}

// NewScalar returns a scalar holding text.
func NewScalar(text string) *Node {
	return &Node{Kind: Scalar, Text: text}
}

// NewList returns a list of the given items.
func NewList(items ...*Node) *Node {
	return &Node{Kind: List, Items: items}
}

// NewMapping returns an empty insertion-ordered mapping.
func NewMapping() *Node {
	return &Node{Kind: Mapping, fields: make(map[string]*Node)}
}

// Set stores v under key. A repeated key keeps its first position and takes
// the new value.
func (n *Node) Set(key string, v *Node) {
	if n.fields == nil {
		n.fields = make(map[string]*Node)
	}
	if _, ok := n.fields[key]; !ok {
		n.keys = append(n.keys, key)
	}
	n.fields[key] = v
}

// Get returns the value under key. It reports false for non-mappings.
func (n *Node) Get(key string) (*Node, bool) {
	if n == nil || n.Kind != Mapping {
		return nil, false
	}
	v, ok := n.fields[key]
	return v, ok
}

// Keys returns mapping keys in insertion order.
func (n *Node) Keys() []string {
	if n == nil || n.Kind != Mapping {
		return nil
	}
	return n.keys
}

// Len returns the number of entries or items.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	switch n.Kind {
	case Mapping:
		return len(n.keys)
	case List:
		return len(n.Items)
	}
	return 0
}
