package game

import (
	"fmt"

	"github.com/they4kman/golightsout/util/collections"
)

type GameMode int

const (
	Cardinal GameMode = iota
	Diagonal
	RowColumn
)

var GameModes = []GameMode{
	Cardinal,
	Diagonal,
	RowColumn,
}

var gameModeNames = map[GameMode]string{
	Cardinal:  "cardinal",
	Diagonal:  "diagonal",
	RowColumn: "rowcol",
}

func (mode GameMode) String() string {
	if name, ok := gameModeNames[mode]; ok {
		return name
	}
	return fmt.Sprintf("GameMode(%d)", int(mode))
}

// Title is the human-readable name shown by the front-ends
func (mode GameMode) Title() string {
	switch mode {
	case Cardinal:
		return "Cardinal Neighbors"
	case Diagonal:
		return "Diagonal Neighbors"
	case RowColumn:
		return "Rows and Columns"
	default:
		return mode.String()
	}
}

func (mode GameMode) IsValid() bool {
	_, ok := gameModeNames[mode]
	return ok
}

// Next cycles through GameModes
func (mode GameMode) Next() GameMode {
	return GameModes[(int(mode)+1)%len(GameModes)]
}

func ParseGameMode(name string) (GameMode, error) {
	for mode, modeName := range gameModeNames {
		if modeName == name {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("invalid game mode %q", name)
}

func (mode GameMode) MarshalYAML() (interface{}, error) {
	return mode.String(), nil
}

func (mode *GameMode) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := ParseGameMode(name)
	if err != nil {
		return err
	}
	*mode = parsed
	return nil
}

// Neighborhood returns the ids toggled by pressing id on a width x height board
type Neighborhood func(id, width, height int) []int

func (mode GameMode) Neighborhood() Neighborhood {
	switch mode {
	case Diagonal:
		return DiagonalNeighbors
	case RowColumn:
		return RowAndColumn
	default:
		return CardinalNeighbors
	}
}

func (mode GameMode) Neighbors(id, width, height int) []int {
	return mode.Neighborhood()(id, width, height)
}

type borders struct {
	top, bottom, left, right bool
}

func bordersOf(id, width, height int) borders {
	return borders{
		top:    id < width,
		bottom: id >= width*(height-1),
		left:   id%width == 0,
		right:  id%width == width-1,
	}
}

// inBoard drops candidates outside [0, width*height), returning the ids in
// ascending order with duplicates collapsed
func inBoard(candidates collections.Set[int], width, height int) []int {
	numCells := width * height
	return candidates.Filter(func(id int) bool {
		return id >= 0 && id < numCells
	}).Sorted()
}

// CardinalNeighbors returns id along with the lights directly above, below,
// left and right of it
func CardinalNeighbors(id, width, height int) []int {
	at := bordersOf(id, width, height)
	affected := collections.SetOf(id)

	if !at.top {
		affected.Add(id - width)
	}
	if !at.bottom {
		affected.Add(id + width)
	}
	if !at.right {
		affected.Add(id + 1)
	}
	if !at.left {
		affected.Add(id - 1)
	}

	return inBoard(affected, width, height)
}

// DiagonalNeighbors returns id along with its four diagonal lights
func DiagonalNeighbors(id, width, height int) []int {
	at := bordersOf(id, width, height)
	affected := collections.SetOf(id)

	if !at.top && !at.left {
		affected.Add(id - width - 1)
	}
	if !at.top && !at.right {
		affected.Add(id - width + 1)
	}
	if !at.bottom && !at.left {
		affected.Add(id + width - 1)
	}
	if !at.bottom && !at.right {
		affected.Add(id + width + 1)
	}

	return inBoard(affected, width, height)
}

// RowAndColumn returns every light sharing a row or a column with id
func RowAndColumn(id, width, height int) []int {
	column := make(collections.Set[int], height)
	for k := -(height - 1); k < height; k++ {
		if k != 0 {
			column.Add(id + k*width)
		}
	}

	row := make(collections.Set[int], width)
	rowStart := id - id%width
	for j := 0; j < width; j++ {
		row.Add(rowStart + j)
	}

	return inBoard(row.Union(column), width, height)
}
