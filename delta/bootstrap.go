package delta

// Bootstrap seeds a fresh Table with the structure names every GoldSrc
// demo references before the server has had a chance to send its own
// DeltaDescription for them. A real engine ships these compiled in; we
// carry the same small seed set spec.md §4.3 calls out by name so that
// ClientData/SpawnBaseline/PacketEntities/Event have somewhere to look
// fields up from turn one. A DeltaDescription for any of these names
// still wins — Table.Define always replaces wholesale.
func Bootstrap(t *Table) {
	t.Define("delta_description_t", deltaDescriptionFields)
	t.Define("clientdata_t", clientDataFields)
	t.Define("entity_state_t", entityStateFields)
	t.Define("entity_state_player_t", entityStatePlayerFields)
	t.Define("custom_entity_state_t", customEntityStateFields)
	t.Define("weapon_data_t", weaponDataFields)
	t.Define("event_t", eventFields)
}

// deltaDescriptionFields describes one field record inside an inbound
// DeltaDescription message — the engine's hard-coded bootstrap entry
// spec §3.4/§4.3 requires ("name STRING; offset, size, bits, flags as
// small unsigned ints; divisor, pre/post-multipliers as FLOAT"). offset,
// size, premultiplier, and postmultiplier are read (when present) so the
// bit stream stays self-describing, but this package's FieldDescriptor
// only carries what the codec needs to decode/encode a structure's own
// deltas: name, bits, divisor, flags.
var deltaDescriptionFields = []FieldDescriptor{
	{Name: "name", Bits: 8, Flags: FlagString},
	{Name: "offset", Bits: 16, Flags: FlagInteger},
	{Name: "size", Bits: 8, Flags: FlagByte},
	{Name: "bits", Bits: 16, Flags: FlagInteger},
	{Name: "flags", Bits: 16, Flags: FlagInteger},
	{Name: "divisor", Bits: 32, Divisor: 65536, Flags: FlagFloat | FlagSigned},
	{Name: "premultiplier", Bits: 32, Divisor: 65536, Flags: FlagFloat | FlagSigned},
	{Name: "postmultiplier", Bits: 32, Divisor: 65536, Flags: FlagFloat | FlagSigned},
}

var clientDataFields = []FieldDescriptor{
	{Name: "origin[0]", Bits: 32, Divisor: 8, Flags: FlagFloat | FlagSigned},
	{Name: "origin[1]", Bits: 32, Divisor: 8, Flags: FlagFloat | FlagSigned},
	{Name: "origin[2]", Bits: 32, Divisor: 8, Flags: FlagFloat | FlagSigned},
	{Name: "velocity[0]", Bits: 32, Divisor: 8, Flags: FlagFloat | FlagSigned},
	{Name: "velocity[1]", Bits: 32, Divisor: 8, Flags: FlagFloat | FlagSigned},
	{Name: "velocity[2]", Bits: 32, Divisor: 8, Flags: FlagFloat | FlagSigned},
	{Name: "viewmodel", Bits: 32, Flags: FlagInteger},
	{Name: "punchangle[0]", Bits: 32, Divisor: 8, Flags: FlagFloat | FlagSigned},
	{Name: "punchangle[1]", Bits: 32, Divisor: 8, Flags: FlagFloat | FlagSigned},
	{Name: "punchangle[2]", Bits: 32, Divisor: 8, Flags: FlagFloat | FlagSigned},
	{Name: "flags", Bits: 32, Flags: FlagInteger},
	{Name: "waterlevel", Bits: 8, Flags: FlagByte},
	{Name: "watertype", Bits: 8, Flags: FlagByte | FlagSigned},
	{Name: "viewangles[0]", Bits: 32, Divisor: 8, Flags: FlagFloat | FlagSigned},
	{Name: "viewangles[1]", Bits: 32, Divisor: 8, Flags: FlagFloat | FlagSigned},
	{Name: "viewangles[2]", Bits: 32, Divisor: 8, Flags: FlagFloat | FlagSigned},
	{Name: "health", Bits: 16, Flags: FlagInteger | FlagSigned},
	{Name: "bInDuck", Bits: 8, Flags: FlagByte},
	{Name: "weapons", Bits: 32, Flags: FlagInteger},
	{Name: "flTimeStepSound", Bits: 16, Flags: FlagInteger},
	{Name: "flDuckTime", Bits: 16, Flags: FlagInteger},
	{Name: "flSwimTime", Bits: 16, Flags: FlagInteger},
	{Name: "waterjumptime", Bits: 8, Flags: FlagByte},
	{Name: "maxspeed", Bits: 32, Divisor: 8, Flags: FlagFloat},
	{Name: "fov", Bits: 8, Flags: FlagByte},
	{Name: "weaponanim", Bits: 8, Flags: FlagByte},
	{Name: "m_iId", Bits: 32, Flags: FlagInteger},
	{Name: "ammo_shells", Bits: 16, Flags: FlagInteger | FlagSigned},
	{Name: "ammo_nails", Bits: 16, Flags: FlagInteger | FlagSigned},
	{Name: "ammo_cells", Bits: 16, Flags: FlagInteger | FlagSigned},
	{Name: "ammo_rockets", Bits: 16, Flags: FlagInteger | FlagSigned},
	{Name: "m_flNextAttack", Bits: 32, Divisor: 100, Flags: FlagFloat | FlagSigned},
	{Name: "tfstate", Bits: 8, Flags: FlagByte},
	{Name: "pushmsec", Bits: 16, Flags: FlagInteger},
	{Name: "deadflag", Bits: 8, Flags: FlagByte},
	{Name: "physinfo", Bits: 8, Flags: FlagString},
	{Name: "iuser1", Bits: 32, Flags: FlagInteger | FlagSigned},
	{Name: "iuser2", Bits: 32, Flags: FlagInteger | FlagSigned},
	{Name: "iuser3", Bits: 32, Flags: FlagInteger | FlagSigned},
	{Name: "iuser4", Bits: 32, Flags: FlagInteger | FlagSigned},
	{Name: "fuser1", Bits: 32, Divisor: 1, Flags: FlagFloat | FlagSigned},
	{Name: "fuser2", Bits: 32, Divisor: 1, Flags: FlagFloat | FlagSigned},
	{Name: "fuser3", Bits: 32, Divisor: 1, Flags: FlagFloat | FlagSigned},
	{Name: "fuser4", Bits: 32, Divisor: 1, Flags: FlagFloat | FlagSigned},
}

var entityStateFields = []FieldDescriptor{
	{Name: "origin[0]", Bits: 32, Divisor: 8, Flags: FlagFloat | FlagSigned},
	{Name: "origin[1]", Bits: 32, Divisor: 8, Flags: FlagFloat | FlagSigned},
	{Name: "origin[2]", Bits: 32, Divisor: 8, Flags: FlagFloat | FlagSigned},
	{Name: "angles[0]", Bits: 16, Flags: FlagAngle | FlagSigned},
	{Name: "angles[1]", Bits: 16, Flags: FlagAngle | FlagSigned},
	{Name: "angles[2]", Bits: 16, Flags: FlagAngle | FlagSigned},
	{Name: "modelindex", Bits: 16, Flags: FlagInteger},
	{Name: "sequence", Bits: 8, Flags: FlagByte},
	{Name: "frame", Bits: 32, Divisor: 1, Flags: FlagFloat},
	{Name: "colormap", Bits: 32, Flags: FlagInteger},
	{Name: "skin", Bits: 16, Flags: FlagInteger | FlagSigned},
	{Name: "solid", Bits: 16, Flags: FlagInteger},
	{Name: "effects", Bits: 32, Flags: FlagInteger},
	{Name: "scale", Bits: 8, Divisor: 100, Flags: FlagByte},
	{Name: "eflags", Bits: 8, Flags: FlagByte},
	{Name: "rendermode", Bits: 8, Flags: FlagByte},
	{Name: "renderamt", Bits: 8, Flags: FlagByte},
	{Name: "rendercolor.r", Bits: 8, Flags: FlagByte},
	{Name: "rendercolor.g", Bits: 8, Flags: FlagByte},
	{Name: "rendercolor.b", Bits: 8, Flags: FlagByte},
	{Name: "renderfx", Bits: 8, Flags: FlagByte},
	{Name: "movetype", Bits: 8, Flags: FlagByte},
	{Name: "animtime", Bits: 8, Divisor: 100, Flags: FlagTimeWindow8},
	{Name: "framerate", Bits: 16, Divisor: 256, Flags: FlagFloat | FlagSigned},
	{Name: "body", Bits: 16, Flags: FlagInteger | FlagSigned},
	{Name: "iuser1", Bits: 8, Flags: FlagByte | FlagSigned},
	{Name: "iuser2", Bits: 8, Flags: FlagByte | FlagSigned},
}

var entityStatePlayerFields = append(append([]FieldDescriptor{}, entityStateFields...), []FieldDescriptor{
	{Name: "gaitsequence", Bits: 8, Flags: FlagByte},
	{Name: "playerclass", Bits: 8, Flags: FlagByte},
	{Name: "team", Bits: 8, Flags: FlagByte},
	{Name: "weaponmodel", Bits: 16, Flags: FlagInteger},
	{Name: "gunsight_angles[0]", Bits: 16, Flags: FlagAngle | FlagSigned},
	{Name: "gunsight_angles[1]", Bits: 16, Flags: FlagAngle | FlagSigned},
	{Name: "gunsight_angles[2]", Bits: 16, Flags: FlagAngle | FlagSigned},
}...)

var customEntityStateFields = append(append([]FieldDescriptor{}, entityStateFields...), []FieldDescriptor{
	{Name: "owner", Bits: 16, Flags: FlagInteger},
	{Name: "friction", Bits: 8, Divisor: 100, Flags: FlagByte},
	{Name: "gravity", Bits: 8, Divisor: 100, Flags: FlagByte},
}...)

var weaponDataFields = []FieldDescriptor{
	{Name: "m_iId", Bits: 8, Flags: FlagByte},
	{Name: "m_iClip", Bits: 8, Flags: FlagByte | FlagSigned},
	{Name: "m_flNextPrimaryAttack", Bits: 32, Divisor: 100, Flags: FlagFloat | FlagSigned},
	{Name: "m_flNextSecondaryAttack", Bits: 32, Divisor: 100, Flags: FlagFloat | FlagSigned},
	{Name: "m_flTimeWeaponIdle", Bits: 32, Divisor: 100, Flags: FlagFloat | FlagSigned},
	{Name: "m_fInReload", Bits: 8, Flags: FlagByte},
	{Name: "m_fInSpecialReload", Bits: 8, Flags: FlagByte},
	{Name: "fuser1", Bits: 32, Divisor: 1, Flags: FlagFloat | FlagSigned},
	{Name: "m_iAnim", Bits: 8, Flags: FlagByte},
	{Name: "m_fAimedDamage", Bits: 8, Flags: FlagByte},
}

var eventFields = []FieldDescriptor{
	{Name: "flags", Bits: 32, Flags: FlagInteger},
	{Name: "entindex", Bits: 16, Flags: FlagInteger},
	{Name: "origin[0]", Bits: 32, Divisor: 8, Flags: FlagFloat | FlagSigned},
	{Name: "origin[1]", Bits: 32, Divisor: 8, Flags: FlagFloat | FlagSigned},
	{Name: "origin[2]", Bits: 32, Divisor: 8, Flags: FlagFloat | FlagSigned},
	{Name: "angles[0]", Bits: 16, Flags: FlagAngle | FlagSigned},
	{Name: "angles[1]", Bits: 16, Flags: FlagAngle | FlagSigned},
	{Name: "angles[2]", Bits: 16, Flags: FlagAngle | FlagSigned},
	{Name: "fparam1", Bits: 32, Divisor: 100, Flags: FlagFloat | FlagSigned},
	{Name: "fparam2", Bits: 32, Divisor: 100, Flags: FlagFloat | FlagSigned},
	{Name: "iparam1", Bits: 32, Flags: FlagInteger | FlagSigned},
	{Name: "iparam2", Bits: 32, Flags: FlagInteger | FlagSigned},
	{Name: "bparam1", Bits: 8, Flags: FlagByte},
	{Name: "bparam2", Bits: 8, Flags: FlagByte},
}
