package submission

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

type jsonNode struct {
	name     string
	value    any
	leaf     bool
	repeat   bool
	children []*jsonNode
}

func (n *jsonNode) Name() string { return n.name }

func (n *jsonNode) Children() []TreeView {
	out := make([]TreeView, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *jsonNode) Value() (any, bool) {
	if !n.leaf {
		return nil, false
	}
	return n.value, true
}

func (n *jsonNode) RepeatInstance() bool { return n.repeat }

// group returns the named child group, creating it at the end if needed.
func (n *jsonNode) group(name string) *jsonNode {
	for _, c := range n.children {
		if c.name == name && !c.leaf && !c.repeat {
			return c
		}
	}
	g := &jsonNode{name: name}
	n.children = append(n.children, g)
	return g
}

// insert adds one key of a submission object. Keys are full slash paths;
// base is the path of the enclosing repeat or object and is stripped when the
// key repeats it.
func (n *jsonNode) insert(base, key string, val gjson.Result) {
	rel := key
	if base != "" {
		rel = strings.TrimPrefix(key, base+"/")
	}
	segs := splitPath(rel, "/")
	if len(segs) == 0 {
		return
	}

	cur := n
	for _, s := range segs[:len(segs)-1] {
		cur = cur.group(s)
	}
	name := segs[len(segs)-1]
	full := strings.Join(segs, "/")
	if base != "" {
		full = base + "/" + full
	}

	switch {
	case isRepeat(val):
		for _, item := range val.Array() {
			inst := &jsonNode{name: name, repeat: true}
			item.ForEach(func(k, v gjson.Result) bool {
				inst.insert(full, k.String(), v)
				return true
			})
			cur.children = append(cur.children, inst)
		}
	case val.IsObject():
		g := cur.group(name)
		val.ForEach(func(k, v gjson.Result) bool {
			g.insert(full, k.String(), v)
			return true
		})
	default:
		cur.children = append(cur.children, &jsonNode{name: name, leaf: true, value: jsonValue(val)})
	}
}

// isRepeat reports whether val is a non-empty array made only of objects.
func isRepeat(val gjson.Result) bool {
	if !val.IsArray() {
		return false
	}
	items := val.Array()
	if len(items) == 0 {
		return false
	}
	for _, it := range items {
		if !it.IsObject() {
			return false
		}
	}
	return true
}

func jsonValue(v gjson.Result) any {
	switch v.Type {
	case gjson.String:
		return v.Str
	case gjson.Number:
		return json.Number(v.Raw)
	case gjson.True, gjson.False:
		return v.Bool()
	case gjson.Null:
		return nil
	}
	// arrays of scalars are kept whole
	dec := json.NewDecoder(strings.NewReader(v.Raw))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return v.Value()
	}
	return out
}

// ParseJSON builds a TreeView over a JSON submission. Keys keep document
// order.
func ParseJSON(raw []byte) (TreeView, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("%w: invalid json", ErrMalformedDocument)
	}
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("%w: invalid utf-8", ErrMalformedDocument)
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: json submission is not an object", ErrMalformedDocument)
	}

	root := &jsonNode{}
	doc.ForEach(func(k, v gjson.Result) bool {
		root.insert("", k.String(), v)
		return true
	})
	return root, nil
}

// EncodeJSON flattens the extracted tree into a path keyed mapping. Repeat
// groups become a list of such mappings under the repeat's path.
func EncodeJSON(n *Node) map[string]any {
	out := make(map[string]any)
	flatten(out, n.Children, "")
	return out
}

func flatten(out map[string]any, nodes []*Node, prefix string) {
	for _, c := range nodes {
		p := prefix + c.Name
		switch {
		case c.Leaf:
			out[p] = c.Value
		case c.Repeat:
			inst := make(map[string]any)
			flatten(inst, c.Children, p+"/")
			items, _ := out[p].([]any)
			out[p] = append(items, inst)
		default:
			flatten(out, c.Children, p+"/")
		}
	}
}

// MarshalJSON renders the mapping without HTML escaping so values reach the
// endpoint byte for byte.
func MarshalJSON(m map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(m); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
