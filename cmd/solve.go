package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/they4kman/golightsout/director/solver"
	"github.com/they4kman/golightsout/game"
)

type solution struct {
	game.BoardSnapshot `yaml:",inline"`

	Solvable bool  `yaml:"solvable"`
	Presses  []int `yaml:"presses,flow"`
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Deal a board and print the presses that switch it off",
	Long: `Deal a board from the given settings (or load it with --layout) and
print it as a YAML snapshot, along with the cell ids to press to switch
every light off. Ids are row-major, starting at 0 in the top-left corner.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		board, err := config.CreateBoard()
		if err != nil {
			return err
		}

		presses, ok := solver.Solve(board.Width(), board.Height(), board.Mode(), board.Lights())
		out, err := yaml.Marshal(solution{
			BoardSnapshot: *board.Snapshot(),
			Solvable:      ok,
			Presses:       presses,
		})
		if err != nil {
			return err
		}

		_, err = fmt.Fprint(cmd.OutOrStdout(), string(out))
		return err
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
}
