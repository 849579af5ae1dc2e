package cli

import (
	"os"
	"strings"

	"github.com/spf13/viper"
	"github.com/vnspell/vnspell"
	"go.uber.org/zap"
)

func domainConfig() vnspell.Config {
	cfg := vnspell.DefaultConfig()
	if viper.IsSet("edit-distance-threshold") {
		cfg.EditDistanceThreshold = viper.GetInt("edit-distance-threshold")
	}
	if viper.IsSet("max-candidates-per-token") {
		cfg.MaxCandidatesPerToken = viper.GetInt("max-candidates-per-token")
	}
	if viper.IsSet("edit-penalty-factor") {
		cfg.EditPenaltyFactor = viper.GetFloat64("edit-penalty-factor")
	}
	if viper.IsSet("min-frequency") {
		cfg.MinFrequency = uint32(viper.GetUint("min-frequency"))
	}
	if viper.IsSet("symmetric-merge") {
		cfg.SymmetricMerge = viper.GetBool("symmetric-merge")
	}
	return cfg
}

func loadIndex() (*vnspell.Index, error) {
	freqPath := viper.GetString("freq")
	wordlistPath := viper.GetString("wordlist")
	cfg := domainConfig()

	freqFile, err := os.Open(freqPath)
	if err != nil {
		return nil, &vnspell.IoError{Path: freqPath, Op: "open", Err: err}
	}
	defer freqFile.Close()

	words, err := readWordlist(wordlistPath)
	if err != nil {
		return nil, err
	}

	index, err := vnspell.Load(freqFile, freqPath, words, cfg)
	if err != nil {
		if _, ok := err.(*vnspell.FormatError); ok {
			logger.Warn("skipped malformed frequency entries", zap.Error(err))
			return index, nil
		}
		return nil, err
	}
	return index, nil
}

func readWordlist(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &vnspell.IoError{Path: path, Op: "read", Err: err}
	}
	var words []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			words = append(words, line)
		}
	}
	return words, nil
}
