package config

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/spacemeshos/smutil"
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/colorbits/color"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultOrder          = "grb"
	DefaultFormat         = FormatBits
	DefaultLogLevel       = "info"
)

// Output formats.
const (
	FormatBits  = "bits"
	FormatTable = "table"
	FormatRaw   = "raw"
	FormatHex   = "hex"
)

var (
	DefaultHomeDir    = filepath.Join(smutil.GetUserHomeDirectory(), ".colorbits")
	DefaultConfigFile = filepath.Join(DefaultHomeDir, DefaultConfigFileName)

	Formats = []string{FormatBits, FormatTable, FormatRaw, FormatHex}
)

type Config struct {
	ConfigFile string `mapstructure:"config"`
	Order      string `mapstructure:"order"`
	Format     string `mapstructure:"format"`
	LogLevel   string `mapstructure:"log-level"`
}

func DefaultConfig() *Config {
	return &Config{
		ConfigFile: DefaultConfigFile,
		Order:      DefaultOrder,
		Format:     DefaultFormat,
		LogLevel:   DefaultLogLevel,
	}
}

func (cfg *Config) Validate() error {
	if _, err := color.OrderByName(cfg.Order); err != nil {
		return fmt.Errorf("invalid `Order`: %w", err)
	}

	if !slices.Contains(Formats, cfg.Format) {
		return fmt.Errorf("invalid `Format`; expected: one of %v, given: %v", Formats, cfg.Format)
	}

	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid `LogLevel`; expected: one of debug, info, warn, error, given: %v", cfg.LogLevel)
	}

	return nil
}

// ComponentOrder returns the component order named by cfg.Order.
func (cfg *Config) ComponentOrder() (color.Order, error) {
	return color.OrderByName(cfg.Order)
}

// Level returns the zap level named by cfg.LogLevel.
func (cfg *Config) Level() (zapcore.Level, error) {
	return zapcore.ParseLevel(cfg.LogLevel)
}
