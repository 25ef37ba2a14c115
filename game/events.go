package game

type (
	CellsChangedFunc func(cells []*Cell)
	GameWonFunc      func(result GameResult)
	NewGameFunc      func(board *Board)
)

// listeners holds the observers registered on a Board. Each list is invoked
// synchronously, in registration order.
type listeners struct {
	onCellsChanged []CellsChangedFunc
	onGameWon      []GameWonFunc
	onNewGame      []NewGameFunc
}

// OnCellsChanged registers a callback receiving the cells whose light,
// color or highlight just changed
func (board *Board) OnCellsChanged(fn CellsChangedFunc) {
	board.listeners.onCellsChanged = append(board.listeners.onCellsChanged, fn)
}

// OnGameWon registers a callback run when the last light is switched off,
// before the next game is dealt
func (board *Board) OnGameWon(fn GameWonFunc) {
	board.listeners.onGameWon = append(board.listeners.onGameWon, fn)
}

// OnNewGame registers a callback run after every fresh deal
func (board *Board) OnNewGame(fn NewGameFunc) {
	board.listeners.onNewGame = append(board.listeners.onNewGame, fn)
}

func (l *listeners) cellsChanged(cells []*Cell) {
	for _, fn := range l.onCellsChanged {
		fn(cells)
	}
}

func (l *listeners) gameWon(result GameResult) {
	for _, fn := range l.onGameWon {
		fn(result)
	}
}

func (l *listeners) newGame(board *Board) {
	for _, fn := range l.onNewGame {
		fn(board)
	}
}
