// Package musicxml turns a MusicXML document into a generic tree of
// map[string]any / []any values, the shape the score builder consumes.
// Attributes become "@name" keys, text-only elements become strings, and a
// child name that occurs more than once becomes a []any.
package musicxml

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/subchen/go-xmldom"
)

func Parse(r io.Reader) (map[string]any, error) {
	doc, err := xmldom.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("error parsing musicxml document: %w", err)
	}
	return map[string]any{doc.Root.Name: nodeValue(doc.Root)}, nil
}

func ParseBytes(data []byte) (map[string]any, error) {
	return Parse(bytes.NewReader(data))
}

func ParseFile(path string) (map[string]any, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading musicxml file: %w", err)
	}
	return ParseBytes(dat)
}

func nodeValue(n *xmldom.Node) any {
	if len(n.Children) == 0 && len(n.Attributes) == 0 {
		return n.Text
	}

	m := make(map[string]any)
	for _, attr := range n.Attributes {
		m["@"+attr.Name] = attr.Value
	}
	for _, child := range n.Children {
		v := nodeValue(child)
		switch prev := m[child.Name].(type) {
		case nil:
			m[child.Name] = v
		case []any:
			m[child.Name] = append(prev, v)
		default:
			m[child.Name] = []any{prev, v}
		}
	}
	if len(n.Children) == 0 && n.Text != "" {
		m["#text"] = n.Text
	}
	return m
}
