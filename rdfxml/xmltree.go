package rdfxml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// xmlElement is a node in the parsed element tree. Names are expanded
// (namespace, local) pairs; attribute order is preserved as written.
type xmlElement struct {
	space    string
	local    string
	attrs    []xmlAttr
	children []*xmlElement
	text     string // concatenated character data directly under the element
	inner    string // raw inner XML, surrounding whitespace trimmed
}

// xmlAttr is an attribute with its expanded name and value.
type xmlAttr struct {
	space string
	local string
	value string
}

// loadXML parses data into an element tree. The decoder never loads
// DTDs or external entities, and entity expansion is limited to the
// XML built-ins. Element nesting beyond maxDepth fails with
// ErrDepthExceeded. Returns the root element and the namespace prefix
// bindings declared in the document.
func loadXML(data []byte, maxDepth int) (*xmlElement, map[string]string, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = true

	namespaces := make(map[string]string)
	var root *xmlElement
	var stack []*xmlElement
	var contentStarts []int64

	for {
		pos := dec.InputOffset()
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if root != nil && len(stack) == 0 {
				return nil, nil, fmt.Errorf("content after document element")
			}
			if len(stack) >= maxDepth {
				return nil, nil, ErrDepthExceeded
			}
			el := &xmlElement{space: t.Name.Space, local: t.Name.Local}
			for _, a := range t.Attr {
				if prefix, ok := namespaceDeclaration(a); ok {
					namespaces[prefix] = a.Value
					continue
				}
				el.attrs = append(el.attrs, xmlAttr{
					space: a.Name.Space,
					local: a.Name.Local,
					value: a.Value,
				})
			}
			if root == nil {
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, el)
			}
			stack = append(stack, el)
			contentStarts = append(contentStarts, dec.InputOffset())
		case xml.EndElement:
			top := stack[len(stack)-1]
			top.inner = strings.TrimSpace(string(data[contentStarts[len(contentStarts)-1]:pos]))
			stack = stack[:len(stack)-1]
			contentStarts = contentStarts[:len(contentStarts)-1]
		case xml.CharData:
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				top.text += string(t)
			}
		}
	}

	if root == nil {
		return nil, nil, fmt.Errorf("no document element")
	}
	if len(stack) != 0 {
		return nil, nil, fmt.Errorf("unclosed element %s", stack[len(stack)-1].local)
	}
	return root, namespaces, nil
}

// namespaceDeclaration reports whether the attribute declares a
// namespace prefix, returning the declared prefix ("" for the default
// namespace).
func namespaceDeclaration(a xml.Attr) (string, bool) {
	if a.Name.Space == "xmlns" {
		return a.Name.Local, true
	}
	if a.Name.Space == "" && a.Name.Local == "xmlns" {
		return "", true
	}
	return "", false
}
