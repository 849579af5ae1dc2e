// Package cli wires vnspell's correction engine into a Cobra command tree,
// with configuration layered through Viper (YAML file, environment, then
// flags) and structured logging through zap.
package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	// Version is set at build time via -ldflags.
	Version = "dev"

	cfgFile string
	logger  *zap.Logger
)

// Execute builds the root command and runs it against os.Args (via
// cobra's own arg parsing), returning the first error any subcommand
// produces.
func Execute(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:     "vnspell",
		Short:   "Context-aware Vietnamese spelling corrector",
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logger != nil {
				return logger.Sync()
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.vnspell.yaml)")
	rootCmd.PersistentFlags().String("freq", "vnspell.freq", "path to the bigram frequency file")
	rootCmd.PersistentFlags().String("wordlist", "vnspell.words", "path to the phrase wordlist file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")

	for _, name := range []string{"freq", "wordlist", "log-level"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			return &ConfigBindError{Flag: name, Err: err}
		}
	}

	rootCmd.AddCommand(
		newLearnCmd(),
		newCorrectCmd(),
		newReplCmd(),
		newConfigCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}

// ConfigBindError reports a failure to bind a persistent flag into Viper.
type ConfigBindError struct {
	Flag string
	Err  error
}

func (e *ConfigBindError) Error() string {
	return "bind flag " + e.Flag + ": " + e.Err.Error()
}

func (e *ConfigBindError) Unwrap() error { return e.Err }

func initConfig(cmd *cobra.Command) error {
	viper.SetEnvPrefix("VNSPELL")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".vnspell")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("$HOME")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return &configError{path: viper.ConfigFileUsed(), err: err}
		}
	}

	level, err := zap.ParseAtomicLevel(viper.GetString("log-level"))
	if err != nil {
		return &configError{path: "log-level", err: err}
	}
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = level
	zapCfg.Encoding = "console"
	zapCfg.EncoderConfig.TimeKey = "" // quiet for a CLI, timestamps add no value on a terminal
	built, err := zapCfg.Build()
	if err != nil {
		return &configError{path: "logger", err: err}
	}
	logger = built
	return nil
}

type configError struct {
	path string
	err  error
}

func (e *configError) Error() string {
	return "config: " + e.path + ": " + e.err.Error()
}

func (e *configError) Unwrap() error { return e.err }
