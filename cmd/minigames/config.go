package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/minigames/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print a game's default config",
	Long: `Print the embedded default YAML for a game. Save it to
~/.minigames/configs/<game>.yaml or ./configs/<game>.yaml to customize it,
or pass a copy to 'minigames play <game> --config'.

Examples:
  minigames config tetris > ~/.minigames/configs/tetris.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data := config.GetDefaultYAML(args[0])
		if data == nil {
			return fmt.Errorf("no default config for %q", args[0])
		}
		_, err := cmd.OutOrStdout().Write(data)
		return err
	},
}
