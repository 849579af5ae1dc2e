package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/vnspell/vnspell"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the handful of keys a .vnspell.yaml file may set; it
// exists only to give `vnspell config init` something typed to marshal,
// since Viper itself reads config files generically into a map.
type fileConfig struct {
	Freq                  string  `yaml:"freq"`
	Wordlist              string  `yaml:"wordlist"`
	LogLevel              string  `yaml:"log-level"`
	EditDistanceThreshold int     `yaml:"edit-distance-threshold"`
	MaxCandidatesPerToken int     `yaml:"max-candidates-per-token"`
	EditPenaltyFactor     float64 `yaml:"edit-penalty-factor"`
	MinFrequency          uint32  `yaml:"min-frequency"`
	SymmetricMerge        bool    `yaml:"symmetric-merge"`
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or scaffold vnspell configuration",
	}
	cmd.AddCommand(newConfigInitCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default .vnspell.yaml config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			d := vnspell.DefaultConfig()
			fc := fileConfig{
				Freq:                  "vnspell.freq",
				Wordlist:              "vnspell.words",
				LogLevel:              "info",
				EditDistanceThreshold: d.EditDistanceThreshold,
				MaxCandidatesPerToken: d.MaxCandidatesPerToken,
				EditPenaltyFactor:     d.EditPenaltyFactor,
				MinFrequency:          d.MinFrequency,
				SymmetricMerge:        d.SymmetricMerge,
			}

			out, err := yaml.Marshal(fc)
			if err != nil {
				return &vnspell.ConfigError{Field: "default config", Cause: err}
			}
			if err := os.WriteFile(path, out, 0644); err != nil {
				return &vnspell.IoError{Path: path, Op: "create", Err: err}
			}
			logger.Info("wrote config", zap.String("path", path))
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "path", ".vnspell.yaml", "where to write the config file")
	return cmd
}
