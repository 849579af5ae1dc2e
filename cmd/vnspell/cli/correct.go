package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/vnspell/vnspell"
)

func newCorrectCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "correct [input]",
		Short: "Correct Vietnamese text read from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := loadIndex()
			if err != nil {
				return err
			}
			corrector := vnspell.NewCorrector(index, domainConfig())

			in := os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return &vnspell.IoError{Path: args[0], Op: "open", Err: err}
				}
				defer f.Close()
				in = f
			}

			out := os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return &vnspell.IoError{Path: output, Op: "create", Err: err}
				}
				defer f.Close()
				out = f
			}

			return corrector.Correct(in, out)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write corrected text here instead of stdout")
	return cmd
}
