package config

// ArchetypeConfig is one entry of archetypes.yaml
type ArchetypeConfig struct {
	MoveSpeed  float64 `yaml:"move_speed"`
	Hitpoints  int     `yaml:"hitpoints"`
	Damage     int     `yaml:"damage"`
	Armed      bool    `yaml:"armed"`
	Reasonable bool    `yaml:"reasonable"`
	Hostile    bool    `yaml:"hostile"`
}

// ArchetypesConfig maps archetype id to its stats
type ArchetypesConfig map[string]ArchetypeConfig
