package submission

// Extract walks the view depth first and copies every selected leaf together
// with the groups it sits under. Groups left without a selected descendant are
// dropped. Source order is kept. The first leaf matching the identifier field
// is always copied and marked as the identifier.
func Extract(view TreeView, sel Selector) *Node {
	x := &extractor{sel: sel}
	return &Node{
		Name:     view.Name(),
		Children: x.children(view, nil),
	}
}

type extractor struct {
	sel     Selector
	idFound bool
}

func (x *extractor) children(view TreeView, path []string) []*Node {
	var out []*Node
	for _, c := range view.Children() {
		p := append(path[:len(path):len(path)], c.Name())

		if v, ok := c.Value(); ok {
			isID := !x.idFound && x.sel.identifies(p)
			if isID {
				x.idFound = true
			}
			if isID || x.sel.Match(p) {
				out = append(out, &Node{Name: c.Name(), Value: v, Leaf: true, ID: isID})
			}
			continue
		}

		kids := x.children(c, p)
		if len(kids) == 0 {
			continue
		}
		n := &Node{Name: c.Name(), Children: kids}
		if r, ok := c.(repeatInstance); ok {
			n.Repeat = r.RepeatInstance()
		}
		out = append(out, n)
	}
	return out
}
