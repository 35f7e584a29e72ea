// Package config handles vectool configuration loading and management.
package config

// Config holds all vectool settings.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig holds result formatting settings.
type OutputConfig struct {
	// Precision is the number of decimal places printed for scalars and
	// vector components.
	Precision int `yaml:"precision"`
	// Degrees reports angles in degrees instead of radians.
	Degrees bool `yaml:"degrees"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Precision: 4,
			Degrees:   false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
