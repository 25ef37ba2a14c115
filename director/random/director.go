package random

import (
	"github.com/they4kman/golightsout/game"
)

// Director presses cells at random
type Director struct {
	board *game.Board
}

func (director *Director) Init(board *game.Board) {
	director.board = board
}

func (director *Director) Act() (int, bool) {
	if director.board == nil || director.board.NumCells() == 0 {
		return 0, false
	}
	return director.board.Rand().Intn(director.board.NumCells()), true
}

func (director *Director) End() {
	director.board = nil
}
