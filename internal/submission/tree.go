package submission

// TreeView is a read-only view over a parsed submission. The root's own name
// is never part of a field path.
type TreeView interface {
	Name() string
	Children() []TreeView
	// Value returns the leaf value; ok is false for groups.
	Value() (v any, ok bool)
}

// repeatInstance is implemented by views that know a node is one occurrence of
// a repeat group. XML repeats are plain siblings and don't need it.
type repeatInstance interface {
	RepeatInstance() bool
}

// Node is the extracted, format independent result.
type Node struct {
	Name     string
	Value    any
	Leaf     bool
	Repeat   bool
	// ID marks the submission's identifier leaf.
	ID       bool
	Children []*Node
}
