package delta_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hlnet/gsnetmsg/delta"
)

func TestTableDefineLookupRemove(t *testing.T) {
	tbl := delta.NewTable()

	_, ok := tbl.Lookup("clientdata_t")
	require.False(t, ok)

	fields := []delta.FieldDescriptor{{Name: "health", Bits: 16, Flags: delta.FlagInteger}}
	tbl.Define("clientdata_t", fields)

	got, ok := tbl.Lookup("clientdata_t")
	require.True(t, ok)
	require.Equal(t, fields, got)

	tbl.Remove("clientdata_t")
	_, ok = tbl.Lookup("clientdata_t")
	require.False(t, ok)
}

func TestTableWireKeyMatchesSeededKey(t *testing.T) {
	tbl := delta.NewTable()
	tbl.Define("clientdata_t", []delta.FieldDescriptor{{Name: "health", Bits: 16, Flags: delta.FlagInteger}})

	// A name parsed off the wire as a C string already carries a NUL;
	// Key() must fold both forms to the same lookup key.
	_, ok := tbl.Lookup("clientdata_t\x00")
	require.True(t, ok)
	require.Equal(t, "clientdata_t\x00", delta.Key("clientdata_t"))
}

func TestTableCloneIsIndependent(t *testing.T) {
	tbl := delta.NewTable()
	tbl.Define("foo_t", []delta.FieldDescriptor{{Name: "a", Bits: 8, Flags: delta.FlagByte}})

	clone := tbl.Clone()
	clone.Define("foo_t", []delta.FieldDescriptor{{Name: "b", Bits: 8, Flags: delta.FlagByte}})

	orig, _ := tbl.Lookup("foo_t")
	require.Equal(t, "a", orig[0].Name)
}

func TestBootstrapSeedsKnownStructures(t *testing.T) {
	tbl := delta.NewTable()
	delta.Bootstrap(tbl)

	for _, name := range []string{
		"delta_description_t", "clientdata_t", "entity_state_t", "entity_state_player_t",
		"custom_entity_state_t", "weapon_data_t", "event_t",
	} {
		fields, ok := tbl.Lookup(name)
		require.True(t, ok, name)
		require.NotEmpty(t, fields, name)
		for _, f := range fields {
			require.True(t, f.Valid(), "%s field %s", name, f.Name)
		}
	}
}
