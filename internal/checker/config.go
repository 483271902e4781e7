package checker

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config carries the allow-lists a compatibility run consults. The zero
// value allows nothing and skips nothing.
type Config struct {
	// SkipCommands names commands excluded from checking entirely.
	SkipCommands []string
	// AllowAnyTypes names types permitted to keep bson serialization
	// type 'any' in both versions.
	AllowAnyTypes []string
	// AllowAnyCommands holds "command" or "command-field" entries exempt
	// from the bson 'any' checks.
	AllowAnyCommands []string
}

type rawConfig struct {
	Allow struct {
		AnyTypes    []string `toml:"any_types"`
		AnyCommands []string `toml:"any_commands"`
	} `toml:"allow"`
	Skip struct {
		Commands []string `toml:"commands"`
	} `toml:"skip"`
}

// LoadConfig reads an idlcheck.toml allow-list file. An empty path yields
// the zero config.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}
	var raw rawConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	return &Config{
		SkipCommands:     raw.Skip.Commands,
		AllowAnyTypes:    raw.Allow.AnyTypes,
		AllowAnyCommands: raw.Allow.AnyCommands,
	}, nil
}

func (c *Config) skipCommand(name string) bool {
	return contains(c.SkipCommands, name)
}

func (c *Config) allowAnyType(name string) bool {
	return contains(c.AllowAnyTypes, name)
}

// allowAny reports whether the command, or the command-field pair, is
// exempt from the bson 'any' checks.
func (c *Config) allowAny(command, field string) bool {
	if contains(c.AllowAnyCommands, command) {
		return true
	}
	return field != "" && contains(c.AllowAnyCommands, command+"-"+field)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
