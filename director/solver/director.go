package solver

import (
	"github.com/sirupsen/logrus"

	"github.com/they4kman/golightsout/director/random"
	"github.com/they4kman/golightsout/game"
)

// Director presses the cells of a computed solution one at a time, falling
// back to random presses on boards that cannot be cleared
type Director struct {
	board    *game.Board
	fallback random.Director
	log      logrus.FieldLogger
}

func (director *Director) Init(board *game.Board) {
	director.board = board
	director.fallback.Init(board)
	if director.log == nil {
		director.log = logrus.WithField("component", "director")
	}
}

// Hint returns the first press of a solution of the board's current lights
func Hint(board *game.Board) (int, bool) {
	presses, ok := Solve(board.Width(), board.Height(), board.Mode(), board.Lights())
	if !ok || len(presses) == 0 {
		return 0, false
	}
	return presses[0], true
}

func (director *Director) Act() (int, bool) {
	if director.board == nil {
		return 0, false
	}

	if id, ok := Hint(director.board); ok {
		return id, true
	}

	director.log.WithField("lit", director.board.NumLit()).Debug("board has no solution, pressing at random")
	return director.fallback.Act()
}

func (director *Director) End() {
	director.fallback.End()
	director.board = nil
}
