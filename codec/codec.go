// Package codec provides the wire encoding for a finished debugmap.Map.
//
// The core hands ownership of the map to the pass driver; this package
// is the driver-side collaborator that turns it into bytes for the
// runtime symbolication consumer. The payload is msgpack with an
// explicit schema version, and function names repeated across inlined
// call stacks are stored once in a string table.
//
// Persistence and transport stay with the caller: both directions work
// on plain readers and writers.
package codec

import (
	"fmt"
	"io"
	"slices"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"debugmap"
	"debugmap/source"
)

// schemaVersion is incremented whenever the payload format changes, so
// a consumer never misreads an old artifact.
const schemaVersion uint16 = 1

// payload is the serialized form of one debug info map.
type payload struct {
	Schema    uint16
	Functions []string // string table; frame.Function indexes into it
	Entries   []entry
}

// entry is one (handle, debug info) pair. Frames are stored outermost
// caller first, matching debugmap.CallStack.Frames.
type entry struct {
	Handle uint64
	File   uint32
	Start  uint32
	End    uint32
	Frames []frame
}

type frame struct {
	Function uint32
	File     uint32
	Start    uint32
	End      uint32
}

// Encode writes m to w. Output is deterministic: entries are sorted by
// handle and the string table is built in that order.
func Encode(w io.Writer, m debugmap.Map) error {
	handles := make([]debugmap.Handle, 0, len(m))
	for h := range m {
		handles = append(handles, h)
	}
	slices.Sort(handles)

	funcs := source.NewInterner()
	p := payload{
		Schema:  schemaVersion,
		Entries: make([]entry, 0, len(m)),
	}
	for _, h := range handles {
		info := m[h]
		e := entry{
			Handle: uint64(h),
			File:   uint32(info.Span.File),
			Start:  info.Span.Start,
			End:    info.Span.End,
		}
		for _, fr := range info.Stack.Frames() {
			e.Frames = append(e.Frames, frame{
				Function: uint32(funcs.Intern(fr.Function)),
				File:     uint32(fr.Site.File),
				Start:    fr.Site.Start,
				End:      fr.Site.End,
			})
		}
		p.Entries = append(p.Entries, e)
	}
	p.Functions = funcs.All()

	if err := msgpack.NewEncoder(w).Encode(&p); err != nil {
		return fmt.Errorf("codec: encode debug info map: %w", err)
	}
	return nil
}

// Decode reads a map previously written by Encode. Payloads with an
// unknown schema version are rejected rather than misread.
//
// Call-stack chains are rebuilt per entry; prefix sharing between
// entries is an in-memory property of the recording session and is not
// preserved across the wire.
func Decode(r io.Reader) (debugmap.Map, error) {
	var p payload
	if err := msgpack.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("codec: decode debug info map: %w", err)
	}
	if p.Schema != schemaVersion {
		return nil, fmt.Errorf("codec: unsupported schema version %d (want %d)", p.Schema, schemaVersion)
	}

	lenFuncs, err := safecast.Conv[uint32](len(p.Functions))
	if err != nil {
		return nil, fmt.Errorf("codec: string table overflow: %w", err)
	}
	m := make(debugmap.Map, len(p.Entries))
	for _, e := range p.Entries {
		var stack *debugmap.CallStack
		for _, fr := range e.Frames {
			if fr.Function >= lenFuncs {
				return nil, fmt.Errorf("codec: frame references function %d outside string table", fr.Function)
			}
			stack = stack.Push(p.Functions[fr.Function], source.Span{
				File:  source.FileID(fr.File),
				Start: fr.Start,
				End:   fr.End,
			})
		}
		h := debugmap.Handle(e.Handle)
		if _, dup := m[h]; dup {
			return nil, fmt.Errorf("codec: duplicate handle %d in payload", e.Handle)
		}
		m[h] = debugmap.Entry{
			Span: source.Span{
				File:  source.FileID(e.File),
				Start: e.Start,
				End:   e.End,
			},
			Stack: stack,
		}
	}
	return m, nil
}
