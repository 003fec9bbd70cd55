package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hlnet/gsnetmsg/delta"
	"github.com/hlnet/gsnetmsg/session"
	"github.com/hlnet/gsnetmsg/usermsg"
)

// sessionConfig primes a Session before decoding, standing in for the
// ServerInfo/DeltaDescription/NewUserMsg handshake a real demo container
// would replay first — out of scope here per spec §1, but something has
// to seed state when dumping a single standalone payload.
type sessionConfig struct {
	MaxPlayers uint8 `yaml:"max_players"`
	IsHLTV     bool  `yaml:"is_hltv"`

	UserMessages []userMessageConfig `yaml:"user_messages"`
	DeltaFields  []deltaFieldsConfig `yaml:"delta_fields"`
}

type userMessageConfig struct {
	Index  uint8  `yaml:"index"`
	Length int8   `yaml:"length"`
	Name   string `yaml:"name"`
}

type deltaFieldsConfig struct {
	Name   string               `yaml:"name"`
	Fields []deltaFieldConfig   `yaml:"fields"`
}

type deltaFieldConfig struct {
	Name    string  `yaml:"name"`
	Bits    uint16  `yaml:"bits"`
	Divisor float32 `yaml:"divisor"`
	Flags   uint16  `yaml:"flags"`
}

func loadSessionConfig(path string) (*sessionConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg sessionConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// apply primes s per cfg, on top of the bootstrap table session.New
// already seeded.
func (cfg *sessionConfig) apply(s *session.Session) {
	s.MaxPlayers = cfg.MaxPlayers
	s.IsHLTV = cfg.IsHLTV

	for _, um := range cfg.UserMessages {
		s.Messages.Insert(usermsg.Registration{Index: um.Index, Length: um.Length, Name: um.Name})
	}

	for _, df := range cfg.DeltaFields {
		fields := make([]delta.FieldDescriptor, 0, len(df.Fields))
		for _, f := range df.Fields {
			fields = append(fields, delta.FieldDescriptor{
				Name:    f.Name,
				Bits:    f.Bits,
				Divisor: f.Divisor,
				Flags:   delta.Flag(f.Flags),
			})
		}
		s.DDT.Define(df.Name, fields)
	}
}
