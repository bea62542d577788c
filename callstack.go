package debugmap

import "debugmap/source"

// Frame is one inlining step: the identity of the calling function and
// the span of the call site inside it.
type Frame struct {
	Function string
	Site     source.Span
}

// CallStack is an immutable chain of inlining frames describing how a
// node's enclosing call was flattened into the current graph. The
// chain is parent-linked so nodes inlined through the same call path
// share their common prefix instead of copying it.
//
// A nil *CallStack means the node was not produced by inlining.
type CallStack struct {
	frame  Frame
	parent *CallStack
}

// Push returns a new chain extending cs with one more (deeper) frame.
// cs may be nil, producing a single-frame chain.
func (cs *CallStack) Push(function string, site source.Span) *CallStack {
	return &CallStack{
		frame:  Frame{Function: function, Site: site},
		parent: cs,
	}
}

// Frame returns the innermost frame of the chain.
func (cs *CallStack) Frame() Frame {
	return cs.frame
}

// Parent returns the chain without its innermost frame, or nil.
func (cs *CallStack) Parent() *CallStack {
	return cs.parent
}

// Depth returns the number of frames in the chain. Depth of nil is 0.
func (cs *CallStack) Depth() int {
	n := 0
	for c := cs; c != nil; c = c.parent {
		n++
	}
	return n
}

// Frames flattens the chain, outermost caller first. Frames of nil is
// nil.
func (cs *CallStack) Frames() []Frame {
	d := cs.Depth()
	if d == 0 {
		return nil
	}
	out := make([]Frame, d)
	for c := cs; c != nil; c = c.parent {
		d--
		out[d] = c.frame
	}
	return out
}
