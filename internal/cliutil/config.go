package cliutil

import "github.com/BurntSushi/toml"

// Config is the optional `--config solver.toml` file's shape: it seeds
// Options defaults before CLI flags are applied, so a flag given on the
// command line wins over the file. sat_max_red_degree is decoded but no
// solver option reads it.
type Config struct {
	IPSolver            string `toml:"ip_solver"`
	IPFormulation       string `toml:"ip_formulation"`
	IPPrefixConstraints string `toml:"ip_prefix_constraints"`

	DPMaxTime   int64 `toml:"dp_max_time"`
	DPMaxMemory int64 `toml:"dp_max_memory"`

	SATMaxRedDegree int `toml:"sat_max_red_degree"`
}

// LoadConfig decodes a toml file at path into a Config. Missing keys keep
// their zero value; callers apply those only where still unset after CLI
// flag parsing.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	_, err := toml.DecodeFile(path, &cfg)

	return cfg, err
}
