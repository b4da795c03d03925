package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spacemeshos/smutil"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/colorbits/config"
)

var (
	// Version is the version of the binary.
	Version string

	// Commit is the commit hash of the binary.
	Commit string
)

// app holds the state shared by the commands of one command tree.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
}

// Execute runs the root command and exits with a non-zero status on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{
		cfg:    config.DefaultConfig(),
		logger: zap.NewNop(),
	}

	rootCmd := &cobra.Command{
		Use:   "colorbits",
		Short: "Convert RGB colors into bit sequences for addressable LEDs",
		Long: `colorbits flattens 24-bit RGB colors into the ordered bit sequence a
bit-serial LED protocol transmits, one channel at a time, MSB first.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfg.ConfigFile, "config",
		a.cfg.ConfigFile, "Path to configuration file")
	flags.StringVar(&a.cfg.Order, "order",
		a.cfg.Order, "Component order of the target LED protocol")
	flags.StringVar(&a.cfg.Format, "format",
		a.cfg.Format, fmt.Sprintf("Output format %v", config.Formats))
	flags.StringVar(&a.cfg.LogLevel, "log-level",
		a.cfg.LogLevel, "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newBitsCmd(a),
		newOrdersCmd(),
		newConfigCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// load reads the config file, if any, lets changed flags take precedence
// over it, and builds the logger.
func (a *app) load(cmd *cobra.Command) error {
	vip := viper.New()
	if err := vip.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	fileLocation := smutil.GetCanonicalPath(a.cfg.ConfigFile)
	if err := loadConfigFile(fileLocation, vip, !cmd.Flags().Changed("config")); err != nil {
		return err
	}

	if err := vip.Unmarshal(a.cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	if err := a.cfg.Validate(); err != nil {
		return err
	}

	level, err := a.cfg.Level()
	if err != nil {
		return err
	}
	logger, err := newLogger(level)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	a.logger = logger

	cmd.Flags().Visit(func(f *pflag.Flag) {
		a.logger.Debug("flag override", zap.String("flag", f.Name), zap.String("value", f.Value.String()))
	})

	return nil
}

// loadConfigFile reads fileLocation into vip. A missing file is not an error
// if optional is set.
func loadConfigFile(fileLocation string, vip *viper.Viper, optional bool) error {
	if fileLocation == "" {
		fileLocation = config.DefaultConfigFile
	}

	vip.SetConfigFile(fileLocation)
	if err := vip.ReadInConfig(); err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	return nil
}

func newLogger(level zapcore.Level) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.Encoding = "console"
	zcfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	return zcfg.Build()
}
