package delta

// Table is the delta decoder table (DDT): a runtime-mutable map from
// structure name to its ordered field descriptor list. Entries arrive
// two ways — seeded at session start by Bootstrap, and replaced at any
// point by a DeltaDescription message on the wire (spec §4.3, §9).
//
// A Table is not safe for concurrent use; a Session owns exactly one and
// threads it through decode/encode calls single-threaded, matching the
// Rust source's session model made explicit as a value (spec §9).
type Table struct {
	entries map[string][]FieldDescriptor
}

// NewTable returns an empty table with no entries defined.
func NewTable() *Table {
	return &Table{entries: make(map[string][]FieldDescriptor)}
}

// Define installs (or replaces) the field list for name. A
// DeltaDescription message on the wire always replaces wholesale —
// there is no incremental field patching (spec §4.3).
func (t *Table) Define(name string, fields []FieldDescriptor) {
	cp := make([]FieldDescriptor, len(fields))
	copy(cp, fields)
	t.entries[Key(name)] = cp
}

// Lookup returns the field list registered for name, if any.
func (t *Table) Lookup(name string) ([]FieldDescriptor, bool) {
	fields, ok := t.entries[Key(name)]
	return fields, ok
}

// Remove drops name's entry, if present.
func (t *Table) Remove(name string) {
	delete(t.entries, Key(name))
}

// Names returns every structure name currently defined, in its key form
// (trailing NUL included), for diagnostics. Order is unspecified.
func (t *Table) Names() []string {
	out := make([]string, 0, len(t.entries))
	for k := range t.entries {
		out = append(out, k)
	}
	return out
}

// Clone deep-copies the table, used by Session.Clone to support
// speculative/rollback decoding.
func (t *Table) Clone() *Table {
	out := NewTable()
	for k, v := range t.entries {
		cp := make([]FieldDescriptor, len(v))
		copy(cp, v)
		out.entries[k] = cp
	}
	return out
}
