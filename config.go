package pivotset

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Log   LogConfig   `yaml:"log"`
	Pivot PivotConfig `yaml:"pivot"`
}

type LogConfig struct {
	Prefix string `yaml:"prefix"`
	Debug  bool   `yaml:"debug"`
}

type PivotConfig struct {
	Extremes    ExtremePolicy    `yaml:"extremes"`
	AxisCenters AxisCenterPolicy `yaml:"axis_centers"`
	Location    Location         `yaml:"location"`
}

func DefaultConfig() Config {
	return Config{
		Log:   LogConfig{Prefix: "pivotset"},
		Pivot: PivotConfig{Location: Center},
	}
}

// LoadConfig reads a YAML config file over DefaultConfig. Keys missing from the
// file keep their default values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("pivotset: load %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("pivotset: unmarshal %s: %w", path, err)
	}
	return cfg, nil
}

func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Modules returns the modules that install this configuration into an App. Nil
// writers fall back to stdout and stderr.
func (c Config) Modules(logOut, logErr io.Writer) []Module {
	return []Module{
		LoggingModule{Prefix: c.Log.Prefix, Debug: c.Log.Debug, Out: logOut, Err: logErr},
		PivotModule{Extremes: c.Pivot.Extremes, AxisCenters: c.Pivot.AxisCenters},
	}
}
