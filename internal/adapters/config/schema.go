package config

// fileConfig is the structure of $XDG_CONFIG_HOME/comma/config.yaml.
// Pointer fields distinguish absent keys from zero values.
type fileConfig struct {
	Picker       *string `yaml:"picker"`
	NixpkgsFlake *string `yaml:"nixpkgs_flake"`
	CacheLevel   *string `yaml:"cache_level"`
	Confirm      *bool   `yaml:"confirm"`
}
