package submission

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
)

type xmlView struct {
	n *xmlquery.Node
}

// Name is the element's local name; namespace prefixes are ignored.
func (v xmlView) Name() string { return v.n.Data }

func (v xmlView) Children() []TreeView {
	var out []TreeView
	for c := v.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			out = append(out, xmlView{n: c})
		}
	}
	return out
}

func (v xmlView) Value() (any, bool) {
	for c := v.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			return nil, false
		}
	}
	t := v.n.InnerText()
	// Indentation inside a childless group is layout, not a value.
	if strings.TrimSpace(t) == "" && strings.ContainsAny(t, "\r\n") {
		return nil, false
	}
	return t, true
}

// ParseXML parses a raw XML submission and returns a view over its root
// element.
func ParseXML(raw []byte) (TreeView, error) {
	doc, err := xmlquery.Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			return xmlView{n: c}, nil
		}
	}
	return nil, fmt.Errorf("%w: no root element", ErrMalformedDocument)
}

type element struct {
	XMLName  xml.Name
	Text     string    `xml:",chardata"`
	Children []element `xml:",any"`
}

// EncodeXML renders the extracted tree as a UTF-8 document with an XML
// declaration. The root element is named rootName, falling back to the source
// root's name. A nested identifier leaf is moved directly under the root,
// after the other children.
func EncodeXML(n *Node, rootName string) ([]byte, error) {
	if rootName == "" {
		rootName = n.Name
	}
	var hoisted []element
	children := toElements(n.Children, 0, &hoisted)
	root := element{XMLName: xml.Name{Local: rootName}, Children: append(children, hoisted...)}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("encode xml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode xml: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func toElements(nodes []*Node, depth int, hoisted *[]element) []element {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]element, 0, len(nodes))
	for _, c := range nodes {
		e := element{XMLName: xml.Name{Local: c.Name}}
		if c.Leaf {
			e.Text = text(c.Value)
			if c.ID && depth > 0 {
				*hoisted = append(*hoisted, e)
				continue
			}
		} else {
			e.Children = toElements(c.Children, depth+1, hoisted)
			// the group only held the identifier
			if len(e.Children) == 0 {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}

func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case fmt.Stringer:
		return t.String()
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
