package cmd

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/they4kman/golightsout/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Play in the terminal",
	Long: `Play in the terminal. Lights can be pressed with the mouse, or by
moving the cursor with the arrow keys and pressing space.

The terminal is taken over by the game, so logs are discarded unless
--log-file is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if logFile == "" {
			logrus.SetOutput(io.Discard)
		}

		config, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		return tui.Run(config)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
