package debugmap

import (
	"errors"

	"debugmap/source"
)

// ErrFinished is returned by Finish when the recorder's map has
// already been extracted.
var ErrFinished = errors.New("debugmap: recorder already finished")

// Entry is the debug info recorded for one handle: where the construct
// sits in original source, and the inlining chain that brought it into
// the lowered graph (nil when the node was not inlined).
type Entry struct {
	Span  source.Span
	Stack *CallStack
}

// Map holds the debug info accumulated by one recording session,
// keyed by handle. Keys are unique; a handle is only meaningful paired
// with the map produced by the session that issued it.
type Map map[Handle]Entry

// Recorder is one recording session, scoped to one lowering pass.
//
// A Recorder is owned by the goroutine running that pass: Issue and
// Finish are not safe for concurrent use, and the map has no internal
// locking. Lowering on several goroutines needs one recorder each;
// handle uniqueness across them is guaranteed by the shared atomic
// Source.
type Recorder struct {
	entries  Map
	bound    bool
	finished bool
}

// NewRecorder creates an empty recording session.
func NewRecorder() *Recorder {
	return &Recorder{entries: make(Map)}
}

// Issue draws a fresh handle for node and records its debug info.
//
// Handles identify occurrences, not nodes: issuing twice for the same
// node yields two distinct handles, each mapped to info derived from
// that node.
//
// Issue panics if called after Finish. A finished session must never
// silently accept further writes; this is a protocol fault in the
// caller, not a recoverable condition.
func (r *Recorder) Issue(node Node) Handle {
	if r.finished {
		panic("debugmap: Issue after Finish")
	}
	h := handles.Next()
	r.entries[h] = Entry{
		Span:  node.Span(),
		Stack: node.CallStack(),
	}
	return h
}

// Finish ends the session and transfers ownership of its map to the
// caller. After Finish the recorder accepts no further issuance and
// the registry reports no active session for it.
//
// Extraction is deliberately a separate, explicit, fallible call
// rather than part of Scope teardown: a failure assembling the map
// must reach the pass driver directly, not vanish inside deferred
// cleanup. Calling Finish twice returns ErrFinished.
func (r *Recorder) Finish() (Map, error) {
	if r.finished {
		return nil, ErrFinished
	}
	r.finished = true
	r.bound = false
	m := r.entries
	r.entries = nil
	return m, nil
}

// Len reports how many handles the session has issued so far.
func (r *Recorder) Len() int {
	return len(r.entries)
}
