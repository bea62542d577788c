package debugmap

import "debugmap/source"

// Node is the slice of the graph representation this package consumes:
// a node locates itself in original source text and, when it was
// produced by inlining, references the call chain that flattened it
// into the current graph.
//
// The graph itself lives with the caller; this package never walks it.
type Node interface {
	// Span locates the construct in original source text.
	Span() source.Span

	// CallStack returns the inlining chain for the node, or nil if the
	// node was not produced by inlining.
	CallStack() *CallStack
}
