// Package usermsg implements the user-message registry: the runtime
// table that maps a message index to its name and wire contract (fixed
// length vs. length-prefixed), as established by SvcNewUserMsg messages
// on the wire (spec §4.5, §4.6).
package usermsg

// Registration is one user message's contract: its index (the dispatch
// tag it arrives under, spec's engine/user-message split at 63), its
// declared length (>=0 is a fixed payload size in bytes; <0 — wire value
// 255, i.e. -1 — means variable-length, length-prefixed by one byte),
// and its name as sent by the server.
type Registration struct {
	Index  uint8
	Length int8
	Name   string
}

// Fixed reports whether this registration declares a fixed-size payload.
func (r Registration) Fixed() bool { return r.Length >= 0 }

// Registry is the runtime index -> Registration table. It is not safe
// for concurrent use; a Session owns exactly one, consistent with the
// single-threaded model spec §9 calls for.
type Registry struct {
	byIndex map[uint8]Registration
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byIndex: make(map[uint8]Registration)}
}

// Insert registers reg, first removing any existing registration at the
// same index. A server is free to redefine a user message mid-stream
// (spec §4.5); the old entry is dropped outright rather than merged.
func (r *Registry) Insert(reg Registration) {
	delete(r.byIndex, reg.Index)
	r.byIndex[reg.Index] = reg
}

// Remove drops the registration at index, if any.
func (r *Registry) Remove(index uint8) {
	delete(r.byIndex, index)
}

// Lookup returns the registration at index, if one exists.
func (r *Registry) Lookup(index uint8) (Registration, bool) {
	reg, ok := r.byIndex[index]
	return reg, ok
}

// Clone deep-copies the registry, used by Session.Clone.
func (r *Registry) Clone() *Registry {
	out := NewRegistry()
	for k, v := range r.byIndex {
		out.byIndex[k] = v
	}
	return out
}

// Indices returns every currently-registered index, for diagnostics.
// Order is unspecified.
func (r *Registry) Indices() []uint8 {
	out := make([]uint8, 0, len(r.byIndex))
	for k := range r.byIndex {
		out = append(out, k)
	}
	return out
}
