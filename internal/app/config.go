package app

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the settings shared by the terminal and GUI runners.
type Config struct {
	Kind        string `mapstructure:"kind"`
	Rows        int    `mapstructure:"rows"`
	Cols        int    `mapstructure:"cols"`
	Generations int    `mapstructure:"generations"`
	IntervalMS  int    `mapstructure:"interval_ms"`
	Seed        int64  `mapstructure:"seed"`
	Random      bool   `mapstructure:"random"`
	Scale       int    `mapstructure:"scale"`
	TPS         int    `mapstructure:"tps"`
	LogLevel    string `mapstructure:"log_level"`
}

// NewConfig returns the default configuration.
func NewConfig() *Config {
	return &Config{
		Kind:        "boolean",
		Rows:        10,
		Cols:        10,
		Generations: 10,
		IntervalMS:  500,
		Seed:        1337,
		Random:      true,
		Scale:       24,
		TPS:         4,
		LogLevel:    "info",
	}
}

// Bind registers the config fields on a flag set. The GUI entry point
// parses plain flags; the CLI overlays cobra flags itself.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Kind, "kind", c.Kind, "cell kind (integer or boolean)")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed for the initial state")
	fs.BoolVar(&c.Random, "random", c.Random, "randomize the initial state")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
}

// Load overlays optional file and environment settings onto the defaults.
// The file is cellgame.yaml in the working directory or in the user config
// directory under cellgame/.
func Load() (*Config, error) {
	c := NewConfig()
	v := viper.New()
	v.SetConfigName("cellgame")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "cellgame"))
	}
	v.SetEnvPrefix("CELLGAME")
	v.AutomaticEnv()

	v.SetDefault("kind", c.Kind)
	v.SetDefault("rows", c.Rows)
	v.SetDefault("cols", c.Cols)
	v.SetDefault("generations", c.Generations)
	v.SetDefault("interval_ms", c.IntervalMS)
	v.SetDefault("seed", c.Seed)
	v.SetDefault("random", c.Random)
	v.SetDefault("scale", c.Scale)
	v.SetDefault("tps", c.TPS)
	v.SetDefault("log_level", c.LogLevel)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	if err := v.Unmarshal(c); err != nil {
		return nil, err
	}
	return c, nil
}
