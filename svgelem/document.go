package svgelem

import (
	"encoding/xml"
	"io"

	"golang.org/x/net/html/charset"
)

const (
	svgNamespace   = "http://www.w3.org/2000/svg"
	xlinkNamespace = "http://www.w3.org/1999/xlink"
	xmlNamespace   = "http://www.w3.org/XML/1998/namespace"
)

type nodeKind uint8

const (
	documentNode nodeKind = iota
	elementNode
	textNode
)

// node is an element or a run of character data of the parsed document.
type node struct {
	kind     nodeKind
	name     xml.Name   // elements only
	attrs    []xml.Attr // elements only
	text     string     // text nodes only
	children []*node
}

// is returns true if n is the SVG element `tag`. Elements without namespace
// are accepted, since many hand written files omit the xmlns declaration.
func (n *node) is(tag string) bool {
	return n.kind == elementNode && n.name.Local == tag &&
		(n.name.Space == "" || n.name.Space == svgNamespace)
}

// id returns the authored id of the element, or an empty string.
func (n *node) id() string {
	for _, attr := range n.attrs {
		if attr.Name.Space == "" && attr.Name.Local == "id" {
			return attr.Value
		}
	}
	return ""
}

// parseDocument reads the whole document into a tree, rooted at
// a node of kind documentNode.
// Character data outside the root element is discarded, and consecutive
// character data tokens are merged.
func parseDocument(stream io.Reader) (*node, error) {
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel

	root := &node{kind: documentNode}
	stack := []*node{root}
	seenTag := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenTag {
					return nil, &ParseError{Err: errNoRootElement}
				}
				break
			}
			return nil, &ParseError{Err: err}
		}
		parent := stack[len(stack)-1]
		// Inspect the type of the XML token
		switch se := t.(type) {
		case xml.StartElement:
			seenTag = true
			n := &node{kind: elementNode, name: se.Name, attrs: se.Copy().Attr}
			parent.children = append(parent.children, n)
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if parent.kind == documentNode {
				continue
			}
			if last := len(parent.children) - 1; last >= 0 && parent.children[last].kind == textNode {
				parent.children[last].text += string(se)
				continue
			}
			parent.children = append(parent.children, &node{kind: textNode, text: string(se)})
		}
	}
	return root, nil
}
