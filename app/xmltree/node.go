// Package xmltree renders trees of named elements into XML documents.
package xmltree

type Attr struct {
	Name  string
	Value string
}

// Node is an XML element. Text is written before any children.
type Node struct {
	Name     string
	Attrs    []Attr
	Text     string
	Children []*Node
}

func New(name string) *Node {
	return &Node{Name: name}
}

// Attr appends an attribute and returns the node for chaining.
func (n *Node) Attr(name, value string) *Node {
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
	return n
}

// AttrIf appends the attribute only when value is not empty.
func (n *Node) AttrIf(name, value string) *Node {
	if value == "" {
		return n
	}
	return n.Attr(name, value)
}

func (n *Node) SetText(text string) *Node {
	n.Text = text
	return n
}

func (n *Node) Append(child *Node) *Node {
	n.Children = append(n.Children, child)
	return n
}

// Element appends a child element holding text and returns the child.
func (n *Node) Element(name, text string) *Node {
	child := New(name).SetText(text)
	n.Append(child)
	return child
}

// ElementIf appends a text child only when text is not empty.
func (n *Node) ElementIf(name, text string) {
	if text == "" {
		return
	}
	n.Element(name, text)
}
