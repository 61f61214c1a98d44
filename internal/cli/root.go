package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

// NewRootCommand creates the root command. Running it without a subcommand
// starts an interactive game.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "asciiliens",
		Short: "ASCIIliens - a turn-based invasion in your terminal",
		Long: `ASCIIliens is a turn-based Space Invaders game played in the terminal.
The swarm only moves when you do: every move or shot is one turn.

Examples:
  asciiliens
  asciiliens --config ./asciiliens.yaml
  asciiliens simulate
  asciiliens simulate --script FFRRF --formation wedge`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to a config file (default ./asciiliens.yaml or ~/.config/asciiliens/asciiliens.yaml)")

	rootCmd.AddCommand(NewPlayCommand())
	rootCmd.AddCommand(NewSimulateCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
