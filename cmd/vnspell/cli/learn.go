package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vnspell/vnspell"
	"go.uber.org/zap"
)

func newLearnCmd() *cobra.Command {
	var minFrequency uint32

	cmd := &cobra.Command{
		Use:   "learn <corpus...>",
		Short: "Train a bigram frequency table from one or more text corpora",
		Long: `learn reads whitespace-separated tokens from each corpus file
(or from stdin if none is given), accumulates adjacent-token bigram
counts, and writes the result to the file named by --freq.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			learner := vnspell.NewLearner(nil)

			if len(args) == 0 {
				if err := learner.Feed(os.Stdin); err != nil {
					return &vnspell.IoError{Path: "<stdin>", Op: "read", Err: err}
				}
			}
			for _, path := range args {
				f, err := os.Open(path)
				if err != nil {
					return &vnspell.IoError{Path: path, Op: "open", Err: err}
				}
				err = learner.Feed(f)
				f.Close()
				if err != nil {
					return &vnspell.IoError{Path: path, Op: "read", Err: err}
				}
				logger.Info("fed corpus", zap.String("path", path))
			}

			cfg := domainConfig()
			if cmd.Flags().Changed("min-frequency") {
				cfg.MinFrequency = minFrequency
			}

			index := vnspell.Build(learner, nil, cfg)

			freqPath := viper.GetString("freq")
			out, err := os.Create(freqPath)
			if err != nil {
				return &vnspell.IoError{Path: freqPath, Op: "create", Err: err}
			}
			defer out.Close()

			if err := index.WriteFrequencies(out); err != nil {
				return &vnspell.IoError{Path: freqPath, Op: "write", Err: err}
			}

			logger.Info("wrote frequency table",
				zap.String("path", freqPath),
				zap.Int("vocabulary", index.Interner().Len()),
			)
			return nil
		},
	}

	cmd.Flags().Uint32Var(&minFrequency, "min-frequency", vnspell.DefaultConfig().MinFrequency,
		"drop bigrams observed fewer than this many times")
	return cmd
}
