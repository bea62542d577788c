package debugmap

import "sync/atomic"

// Handle identifies one occurrence of a node in one lowering pass.
// Handles are unique for the lifetime of the process, never reused and
// never reset, so a handle alone is enough to look up its debug info
// in the map produced by the session that issued it.
type Handle uint64

// NoHandle is reserved and never issued. Issuance starts at 1.
const NoHandle Handle = 0

// Source issues process-unique handles. All recorders share one
// package-level instance, so handles issued by concurrent sessions on
// different goroutines never collide.
type Source struct {
	last atomic.Uint64
}

// Next returns a fresh handle, atomically advancing the counter.
// Safe for unsynchronized concurrent use.
//
// The counter is initialized once at process start and never
// decremented or reset. Exhausting the 64-bit handle space would
// require a long-running process to issue handles continuously for
// centuries; overflow is not detected.
func (s *Source) Next() Handle {
	return Handle(s.last.Add(1))
}

// handles feeds every Recorder in the process.
var handles Source
