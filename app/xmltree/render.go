package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// RenderError reports a tree that cannot be serialized as well-formed XML.
type RenderError struct {
	Path string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("xml render %s: %v", e.Path, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

var (
	errNilNode       = errors.New("nil node")
	errInvalidName   = errors.New("invalid element name")
	errInvalidAttr   = errors.New("invalid attribute name")
	errDuplicateAttr = errors.New("duplicate attribute")
)

// Render serializes root, preceded by the XML declaration.
func Render(root *Node) (string, error) {
	var buf bytes.Buffer
	if err := Write(&buf, root); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Write validates the whole tree before writing anything to w.
func Write(w io.Writer, root *Node) error {
	if err := validate(root, ""); err != nil {
		return err
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("failed to write xml header: %w", err)
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := encode(enc, root); err != nil {
		return fmt.Errorf("failed to write xml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush xml: %w", err)
	}
	return nil
}

func encode(enc *xml.Encoder, n *Node) error {
	start := xml.StartElement{Name: xml.Name{Local: n.Name}}
	for _, a := range n.Attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if n.Text != "" {
		if err := enc.EncodeToken(xml.CharData(n.Text)); err != nil {
			return err
		}
	}
	for _, child := range n.Children {
		if err := encode(enc, child); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

func validate(n *Node, parent string) error {
	if n == nil {
		return &RenderError{Path: parent + "/", Err: errNilNode}
	}
	path := parent + "/" + n.Name
	if !isName(n.Name) {
		return &RenderError{Path: path, Err: fmt.Errorf("%w %q", errInvalidName, n.Name)}
	}

	seen := make(map[string]bool, len(n.Attrs))
	for _, a := range n.Attrs {
		if !isName(a.Name) {
			return &RenderError{Path: path, Err: fmt.Errorf("%w %q", errInvalidAttr, a.Name)}
		}
		if seen[a.Name] {
			return &RenderError{Path: path, Err: fmt.Errorf("%w %q", errDuplicateAttr, a.Name)}
		}
		seen[a.Name] = true
	}

	for _, child := range n.Children {
		if err := validate(child, path); err != nil {
			return err
		}
	}
	return nil
}

// isName accepts unprefixed XML names plus the xmlns attribute.
func isName(s string) bool {
	if s == "" || (strings.HasPrefix(strings.ToLower(s), "xml") && s != "xmlns") {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && (r == '-' || r == '.' || unicode.IsDigit(r)):
		default:
			return false
		}
	}
	return true
}
