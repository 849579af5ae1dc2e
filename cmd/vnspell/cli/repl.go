package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/vnspell/vnspell"
)

var (
	promptStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
	unchangedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	correctedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively correct lines of Vietnamese text",
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := loadIndex()
			if err != nil {
				return err
			}
			corrector := vnspell.NewCorrector(index, domainConfig())

			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Fprint(os.Stdout, promptStyle.Render("vnspell> "))
				if !scanner.Scan() {
					fmt.Fprintln(os.Stdout)
					return scanner.Err()
				}
				line := scanner.Text()
				corrected := corrector.CorrectLine(line)
				if corrected == line {
					fmt.Fprintln(os.Stdout, unchangedStyle.Render(corrected))
				} else {
					fmt.Fprintln(os.Stdout, correctedStyle.Render(corrected))
				}
			}
		},
	}
}
