package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the settings file looked up in the working directory.
const DefaultPath = "monetary_storm.yml"

// Settings are the runtime options of the simulation window.
type Settings struct {
	Locale string `yaml:"locale" env:"STORM_LOCALE"`
	// Seed fixes the noise source; zero draws from the process-wide generator.
	Seed        uint64  `yaml:"seed" env:"STORM_SEED"`
	ChartWindow int     `yaml:"chart_window" env:"STORM_CHART_WINDOW"`
	Sound       bool    `yaml:"sound" env:"STORM_SOUND"`
	CueFile     string  `yaml:"cue_file" env:"STORM_CUE_FILE"`
	CueVolume   float64 `yaml:"cue_volume" env:"STORM_CUE_VOLUME"`

	Policy PolicyDefaults `yaml:"policy"`
}

// PolicyDefaults pre-fill the two input fields.
type PolicyDefaults struct {
	Rate  string `yaml:"rate" env:"STORM_DEFAULT_RATE"`
	Money string `yaml:"money" env:"STORM_DEFAULT_MONEY"`
}

func Default() Settings {
	return Settings{
		Locale: "zh-CN",
		Sound:  true,
		Policy: PolicyDefaults{
			Rate:  "5.0",
			Money: "100",
		},
	}
}

// Load reads settings from path and then applies environment overrides.
// STORM_CONFIG replaces path. A missing file at DefaultPath is not an error.
func Load(path string) (Settings, error) {
	cfg := Default()

	explicit := path != DefaultPath
	if p := os.Getenv("STORM_CONFIG"); p != "" {
		path, explicit = p, true
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Settings{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return Settings{}, fmt.Errorf("read %s: %w", path, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Settings{}, err
	}
	return cfg, nil
}

func (s Settings) Validate() error {
	if s.ChartWindow < 0 {
		return fmt.Errorf("chart_window must be >= 0, got %d", s.ChartWindow)
	}
	return nil
}
