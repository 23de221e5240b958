package config

import (
	"github.com/BurntSushi/toml"
)

// Load reads configs from a TOML file. Absent keys keep their zero values,
// which are the safe defaults everywhere in this module.
func Load(path string) (Configs, error) {
	var cfg Configs
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Configs{}, err
	}

	return cfg, nil
}
