package config

type YAMLConfig struct {
	Seek YAMLSeek `yaml:"seek"`
}

type YAMLSeek struct {
	Generator YAMLGenerator `yaml:"generator"`
	Store     YAMLStore     `yaml:"store"`
	Output    YAMLOutput    `yaml:"output"`
	Server    YAMLServer    `yaml:"server"`
}

type YAMLGenerator struct {
	Min           *int `yaml:"min"`
	Max           *int `yaml:"max"`
	DefaultLength *int `yaml:"default_length"`
	MaxLength     *int `yaml:"max_length"`
}

type YAMLStore struct {
	RunsDir         string `yaml:"runs_dir"`
	Index           *bool  `yaml:"index"`
	MaxStoredValues *int   `yaml:"max_stored_values"`
}

type YAMLOutput struct {
	Format string `yaml:"format"`
}

type YAMLServer struct {
	Addr string `yaml:"addr"`
}
