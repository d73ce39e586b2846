package config

import (
	"fmt"
	"strings"

	"github.com/10varun17/hex-a-pawn/hexapawn"
	"github.com/10varun17/hex-a-pawn/meta"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Rows        int    `mapstructure:"rows"`
	Cols        int    `mapstructure:"cols"`
	Games       int    `mapstructure:"games"`
	Goroutines  int    `mapstructure:"goroutines"`
	StrongDepth int    `mapstructure:"strong_depth"`
	WeakDepth   int    `mapstructure:"weak_depth"`
	PlayDepth   int    `mapstructure:"play_depth"`
	OutputDir   string `mapstructure:"output_dir"`
	LogLevel    string `mapstructure:"log_level"`
}

// Setup reads cfgPath when given, then applies HEXAPAWN_* environment
// overrides on top of the defaults in package meta.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	v.SetDefault("rows", meta.ROWS)
	v.SetDefault("cols", meta.COLS)
	v.SetDefault("games", meta.GAMES)
	v.SetDefault("goroutines", meta.GO_ROUTINES)
	v.SetDefault("strong_depth", meta.STRONG_DEPTH)
	v.SetDefault("weak_depth", meta.WEAK_DEPTH)
	v.SetDefault("play_depth", meta.PLAY_DEPTH)
	v.SetDefault("output_dir", meta.OUTPUT_DIR)
	v.SetDefault("log_level", meta.LOG_LEVEL)

	v.SetEnvPrefix("hexapawn")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config %s", cfgPath)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var result *multierror.Error
	if c.Rows < hexapawn.MinSize || c.Cols < hexapawn.MinSize {
		result = multierror.Append(result, fmt.Errorf("board must be at least %dx%d, got %dx%d", hexapawn.MinSize, hexapawn.MinSize, c.Rows, c.Cols))
	}
	if c.Games < 1 {
		result = multierror.Append(result, fmt.Errorf("games must be positive, got %d", c.Games))
	}
	if c.Goroutines < 1 {
		result = multierror.Append(result, fmt.Errorf("goroutines must be positive, got %d", c.Goroutines))
	}
	for name, depth := range map[string]int{
		"strong_depth": c.StrongDepth,
		"weak_depth":   c.WeakDepth,
		"play_depth":   c.PlayDepth,
	} {
		if depth < 1 {
			result = multierror.Append(result, fmt.Errorf("%s must be at least 1, got %d", name, depth))
		}
	}
	if c.OutputDir == "" {
		result = multierror.Append(result, fmt.Errorf("output_dir must not be empty"))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		result = multierror.Append(result, fmt.Errorf("log_level: %w", err))
	}

	if err := result.ErrorOrNil(); err != nil {
		return errors.WithMessage(ErrInvalid, err.Error())
	}
	return nil
}

// Level returns the configured zerolog level, info when it cannot be parsed.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
