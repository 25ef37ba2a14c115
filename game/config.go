package game

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

type GameConfig struct {
	Width       int      `yaml:"width"`
	Height      int      `yaml:"height"`
	Mode        GameMode `yaml:"mode"`
	Color       string   `yaml:"color"`
	Probability float64  `yaml:"probability"`
	Seed        int64    `yaml:"seed"`

	// Path of a BoardSnapshot to use as the first puzzle
	LayoutPath string `yaml:"layout"`
	// Snapshot to use as the first puzzle; takes precedence over LayoutPath
	Layout *BoardSnapshot `yaml:"-"`

	Director Director `yaml:"-"`
	// Time between two director presses
	DirectorInterval time.Duration `yaml:"director_interval"`

	// Play a tone on every press and a chime on wins
	Sound bool `yaml:"sound"`

	Logger logrus.FieldLogger `yaml:"-"`
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Width:            DefaultWidth,
		Height:           DefaultHeight,
		Mode:             Cardinal,
		Color:            FormatColor(DefaultOnColor),
		Probability:      DefaultProbability,
		DirectorInterval: 500 * time.Millisecond,
	}
}

// LoadConfig reads a YAML config file over the values already in config
func LoadConfig(path string, config *GameConfig) error {
	in, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.UnmarshalStrict(in, config); err != nil {
		return errors.Wrapf(err, "parsing config %s", path)
	}
	return nil
}

func LoadSnapshotFile(path string) (*BoardSnapshot, error) {
	in, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading layout %s", path)
	}
	return LoadSnapshot(string(in))
}

func (config GameConfig) BoardConfig() (BoardConfig, error) {
	onColor, err := ParseColor(config.Color)
	if err != nil {
		return BoardConfig{}, err
	}

	layout := config.Layout
	if layout == nil && config.LayoutPath != "" {
		if layout, err = LoadSnapshotFile(config.LayoutPath); err != nil {
			return BoardConfig{}, err
		}
	}

	boardConfig := BoardConfig{
		Width:       config.Width,
		Height:      config.Height,
		Mode:        config.Mode,
		OnColor:     onColor,
		Probability: config.Probability,
		Seed:        config.Seed,
		Layout:      layout,
		Logger:      config.Logger,
	}
	if layout != nil && layout.Mode != nil {
		boardConfig.Mode = *layout.Mode
	}

	return boardConfig, nil
}

func (config GameConfig) CreateBoard() (*Board, error) {
	boardConfig, err := config.BoardConfig()
	if err != nil {
		return nil, err
	}
	return NewBoard(boardConfig)
}
