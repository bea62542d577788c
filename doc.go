// Package debugmap issues unique debug handles to graph nodes while a
// graph is lowered into a backend-specific compiled artifact, and
// records per handle the debug info (source span plus inlined call
// stack) needed to reconstruct a readable stack trace from nothing but
// the handle once the graph is gone.
//
// # Architecture
//
// The package has four parts:
//
//   - Source: process-wide atomic counter issuing unique 64-bit handles
//   - Recorder: one recording session per lowering pass, accumulating
//     the handle -> Entry map
//   - Registry: the active recorder carried through context.Context,
//     so lowering code deep in the call tree can record without
//     parameter threading
//   - Scope: binds a recorder as active for a lexical region and
//     unbinds it on every exit path
//
// # Usage
//
// The pass driver owns the session lifecycle:
//
//	rec := debugmap.NewRecorder()
//	ctx, scope := debugmap.Activate(ctx, rec)
//	defer scope.End()
//
//	lowerModule(ctx, graph) // arbitrary lowering code
//
//	scope.End()
//	m, err := rec.Finish() // explicit, fallible extraction
//
// Lowering code records per node:
//
//	if h, ok := debugmap.Record(ctx, node); ok {
//		instr.Debug = h
//	}
//
// No active recorder on the context is the legal "do not record"
// state: Record returns (NoHandle, false) and lowering proceeds.
//
// # Concurrency
//
// The handle counter is the only state shared between goroutines and
// is atomic; handles never collide across sessions. A Recorder and its
// map belong to the single goroutine running that lowering pass.
// Concurrent lowering needs one recorder per goroutine, never a shared
// one.
//
// Persistence of the finished map is the caller's job; see the codec
// subpackage for the wire encoding consumed by runtime symbolication.
package debugmap
