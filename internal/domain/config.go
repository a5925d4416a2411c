package domain

// Config represents the Seek configuration loaded from seek.yaml.
type Config struct {
	Generator GeneratorConfig
	Store     StoreConfig
	Output    OutputConfig
	Server    ServerConfig
}

type GeneratorConfig struct {
	// Min and Max bound the generated values (both inclusive).
	Min int
	Max int

	DefaultLength int
	MaxLength     int
}

type StoreConfig struct {
	RunsDir string
	Index   bool

	// MaxStoredValues caps how many sequence values are written per run. 0 means no cap.
	MaxStoredValues int
}

type OutputConfig struct {
	Format string
}

type ServerConfig struct {
	Addr string
}

// DefaultConfig provides sane defaults if seek.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Generator: GeneratorConfig{
			Min:           0,
			Max:           100,
			DefaultLength: 10,
			MaxLength:     100_000,
		},
		Store: StoreConfig{
			RunsDir:         "runs",
			Index:           true,
			MaxStoredValues: 10_000,
		},
		Output: OutputConfig{Format: "pretty"},
		Server: ServerConfig{Addr: ":8080"},
	}
}
