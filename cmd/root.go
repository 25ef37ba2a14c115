package cmd

import (
	"fmt"
	"os"

	"github.com/faiface/pixel/pixelgl"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/they4kman/golightsout/director/solver"
	"github.com/they4kman/golightsout/game"
	"github.com/they4kman/golightsout/gui"
)

var (
	flagConfig  = game.NewGameConfig()
	configPath  string
	useDirector = false
	logLevel    string
	logFile     string
)

var rootCmd = &cobra.Command{
	Use:   "golightsout",
	Short: "Play Lights Out in a window or a terminal",
	Long: `golightsout is a Lights Out puzzle: pressing a light toggles it
and its neighbours, and the game is won once every light is off.

Run with no arguments to play in a window
	golightsout

Play in the terminal instead
	golightsout tui

Use the director flag to make the computer play for you
	golightsout -d
`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		var runErr error
		pixelgl.Run(func() {
			runErr = gui.Run(config)
		})
		return runErr
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

type gameModeValue game.GameMode

func newGameModeValue(val game.GameMode, p *game.GameMode) *gameModeValue {
	*p = val
	return (*gameModeValue)(p)
}

func (modeVal *gameModeValue) String() string {
	return game.GameMode(*modeVal).String()
}

func (modeVal *gameModeValue) Set(value string) error {
	mode, err := game.ParseGameMode(value)
	if err != nil {
		return err
	}
	*modeVal = gameModeValue(mode)
	return nil
}

func (modeVal *gameModeValue) Type() string {
	return "game.GameMode"
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)

	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return errors.Wrap(err, "opening log file")
		}
		logrus.SetOutput(file)
	}
	return nil
}

// resolveConfig starts from the defaults, applies the config file if one
// was given, then every flag set explicitly on the command line
func resolveConfig(cmd *cobra.Command) (game.GameConfig, error) {
	config := game.NewGameConfig()
	if configPath != "" {
		if err := game.LoadConfig(configPath, &config); err != nil {
			return config, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		config.Width = flagConfig.Width
	}
	if flags.Changed("height") {
		config.Height = flagConfig.Height
	}
	if flags.Changed("mode") {
		config.Mode = flagConfig.Mode
	}
	if flags.Changed("color") {
		config.Color = flagConfig.Color
	}
	if flags.Changed("probability") {
		config.Probability = flagConfig.Probability
	}
	if flags.Changed("seed") {
		config.Seed = flagConfig.Seed
	}
	if flags.Changed("layout") {
		config.LayoutPath = flagConfig.LayoutPath
	}
	if flags.Changed("director-interval") {
		config.DirectorInterval = flagConfig.DirectorInterval
	}
	if flags.Changed("sound") {
		config.Sound = flagConfig.Sound
	}

	if useDirector {
		config.Director = &solver.Director{}
	}
	config.Logger = logrus.StandardLogger()

	return config, nil
}

func init() {
	flags := rootCmd.PersistentFlags()

	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	flags.Bool("help", false, "Help for this command")

	flags.StringVar(&configPath, "config", "", "YAML file to read game settings from")
	flags.IntVarP(&flagConfig.Width, "width", "w", game.DefaultWidth, "Width of game board, in cells")
	flags.IntVarP(&flagConfig.Height, "height", "h", game.DefaultHeight, "Height of game board, in cells")
	flags.Var(newGameModeValue(game.Cardinal, &flagConfig.Mode), "mode", `Game mode, controlling which lights a press toggles.
cardinal: the light and the ones above, below, left and right of it
diagonal: the light and its four diagonal neighbours
rowcol: every light in the same row and column`)
	flags.StringVarP(&flagConfig.Color, "color", "c", flagConfig.Color, `Color of lit cells: "rgb(r, g, b)", "#rrggbb" or a color name`)
	flags.Float64VarP(&flagConfig.Probability, "probability", "p", game.DefaultProbability, "Chance of each light being on in a new game")
	flags.Int64Var(&flagConfig.Seed, "seed", 0, "Seed for dealing boards (0 picks one from the clock)")
	flags.StringVarP(&flagConfig.LayoutPath, "layout", "l", "", "YAML board snapshot to use as the first puzzle")
	flags.BoolVarP(&useDirector, "director", "d", false, "Make the computer play")
	flags.DurationVar(&flagConfig.DirectorInterval, "director-interval", flagConfig.DirectorInterval, "Time between two presses of the director")
	flags.BoolVar(&flagConfig.Sound, "sound", false, "Play a tone on presses and a chime on wins")
	flags.StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	flags.StringVar(&logFile, "log-file", "", "File to append logs to")
}
