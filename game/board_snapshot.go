package game

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// BoardSnapshot describes a board layout: one line per row, '#' for a lit
// cell and '.' for a dark one
type BoardSnapshot struct {
	Seed            int64     `yaml:"seed,omitempty"`
	Mode            *GameMode `yaml:"mode,omitempty"`
	SerializedBoard string    `yaml:"board"`
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

// Lights parses the serialized board into its size and row-major light states
func (snapshot *BoardSnapshot) Lights() (width, height int, lights []bool, err error) {
	rows := strings.Split(strings.TrimSpace(snapshot.SerializedBoard), "\n")
	for i := range rows {
		rows[i] = strings.TrimSpace(rows[i])
	}

	height = len(rows)
	width = len(rows[0])
	if width == 0 {
		return 0, 0, nil, errors.New("empty board")
	}
	if err := validateSize(width, height); err != nil {
		return 0, 0, nil, err
	}

	numLit := 0
	lights = make([]bool, 0, width*height)
	for y, row := range rows {
		if len(row) != width {
			return 0, 0, nil, fmt.Errorf("row %d has %d cells, expected %d", y, len(row), width)
		}

		for x, c := range row {
			switch c {
			case '#':
				lights = append(lights, true)
				numLit++
			case '.':
				lights = append(lights, false)
			default:
				return 0, 0, nil, fmt.Errorf("unexpected %q at (%d, %d)", c, x, y)
			}
		}
	}

	if numLit == 0 {
		return 0, 0, nil, errors.New("board has no lit cells")
	}

	return width, height, lights, nil
}

// CreateBoard builds a board whose first game uses the snapshot's layout
func (snapshot *BoardSnapshot) CreateBoard(config BoardConfig) (*Board, error) {
	config.Layout = snapshot
	if snapshot.Mode != nil {
		config.Mode = *snapshot.Mode
	}
	return NewBoard(config)
}

func (board *Board) Snapshot() *BoardSnapshot {
	var serialized strings.Builder
	for y := 0; y < board.height; y++ {
		for x := 0; x < board.width; x++ {
			serialized.WriteString(board.CellAt(x, y).serialize())
		}
		serialized.WriteString("\n")
	}

	mode := board.mode
	return &BoardSnapshot{
		Seed:            board.seed,
		Mode:            &mode,
		SerializedBoard: serialized.String(),
	}
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, errors.Wrap(err, "parsing board snapshot")
	}
	return &snapshot, nil
}
