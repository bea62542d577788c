package debugmap

import "context"

// ctxKey is the key type for storing the active Recorder in context.
type ctxKey struct{}

// Activate binds rec as the active recorder on the derived context and
// returns a Scope that unbinds it. The binding is how lowering code
// anywhere in the guarded call tree reaches the session without
// parameter threading beyond the context it already carries.
//
// Callers defer End so the binding is cleared on every exit path:
//
//	ctx, scope := debugmap.Activate(ctx, rec)
//	defer scope.End()
//
// Only Activate and Scope.End write the binding; lowering code reads
// it through Active or Record. One active session per goroutine at a
// time; Activate with a nil recorder returns ctx unchanged and an
// inert scope. Activate panics on a finished recorder.
func Activate(ctx context.Context, rec *Recorder) (context.Context, *Scope) {
	if rec == nil {
		return ctx, &Scope{}
	}
	if rec.finished {
		panic("debugmap: Activate after Finish")
	}
	rec.bound = true
	return context.WithValue(ctx, ctxKey{}, rec), &Scope{rec: rec}
}

// Scope marks the lexical region a recorder is active for. The zero
// value is inert.
type Scope struct {
	rec *Recorder
}

// End unbinds the scope's recorder unconditionally. Idempotent; safe
// on an inert scope. End never touches the map — extraction is the
// caller's explicit Finish call after the guarded region.
func (s *Scope) End() {
	if s.rec != nil {
		s.rec.bound = false
		s.rec = nil
	}
}

// Active returns the recorder bound on ctx, if one is still bound.
// A recorder stops being reported once its Scope ended or its map was
// extracted, even on a retained context.
//
// No active recorder is the legal "do not record debug info" state,
// not a fault.
func Active(ctx context.Context) (*Recorder, bool) {
	if ctx == nil {
		return nil, false
	}
	rec, ok := ctx.Value(ctxKey{}).(*Recorder)
	if !ok || !rec.bound {
		return nil, false
	}
	return rec, true
}

// Record issues a handle for node on the active recorder. Without an
// active recorder it records nothing and returns (NoHandle, false).
func Record(ctx context.Context, node Node) (Handle, bool) {
	rec, ok := Active(ctx)
	if !ok {
		return NoHandle, false
	}
	return rec.Issue(node), true
}
