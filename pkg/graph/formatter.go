package graph

import (
	"cmp"
	"fmt"
)

// NodeFormatter produces the label displayed for a node in the rendered
// graph. Implementations are pluggable: use IDFormatter or ValueFormatter
// for the common cases, or FormatterFunc for anything custom.
type NodeFormatter[ID cmp.Ordered, T any] interface {
	// FormatNode formats the given node. The returned string is the
	// label drawn inside the node's box.
	FormatNode(id ID, value T) string
}

// FormatterFunc adapts a plain function to the NodeFormatter interface.
type FormatterFunc[ID cmp.Ordered, T any] func(id ID, value T) string

// FormatNode implements NodeFormatter.
func (f FormatterFunc[ID, T]) FormatNode(id ID, value T) string { return f(id, value) }

// IDFormatter labels each node with its ID, wrapped in parentheses.
type IDFormatter[ID cmp.Ordered, T any] struct{}

// FormatNode implements NodeFormatter.
func (IDFormatter[ID, T]) FormatNode(id ID, _ T) string {
	return fmt.Sprintf("(%v)", id)
}

// ValueFormatter labels each node with its value, wrapped in parentheses.
type ValueFormatter[ID cmp.Ordered, T any] struct{}

// FormatNode implements NodeFormatter.
func (ValueFormatter[ID, T]) FormatNode(_ ID, value T) string {
	return fmt.Sprintf("(%v)", value)
}
