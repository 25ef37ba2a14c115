package game

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type BoardConfig struct {
	Width, Height int // in number of cells
	Mode          GameMode
	OnColor       color.RGBA

	// Chance of each light being on when a new game is dealt
	Probability float64
	// Seed for the board's random source; 0 picks one from the clock
	Seed int64

	// Layout of the first game; later games are dealt randomly
	Layout *BoardSnapshot

	Logger logrus.FieldLogger
	Clock  func() time.Time
}

type Board struct {
	width, height int
	mode          GameMode
	onColor       color.RGBA
	probability   float64

	cells  []Cell
	numLit int

	state      BoardState
	clickCount int
	startTime  time.Time

	seed   int64
	rand   *rand.Rand
	layout []bool

	clock     func() time.Time
	log       logrus.FieldLogger
	listeners listeners
}

// GameResult is reported when every light has been switched off
type GameResult struct {
	Clicks  int
	Elapsed time.Duration
	Mode    GameMode
}

func (result GameResult) String() string {
	return fmt.Sprintf("%d clicks in %s", result.Clicks, result.Elapsed.Round(time.Second))
}

func validateSize(width, height int) error {
	if width < 1 || width > MaxSize || height < 1 || height > MaxSize {
		return fmt.Errorf("board size %dx%d out of range 1..%d", width, height, MaxSize)
	}
	return nil
}

func NewBoard(config BoardConfig) (*Board, error) {
	board := &Board{
		width:       config.Width,
		height:      config.Height,
		mode:        config.Mode,
		onColor:     config.OnColor,
		probability: config.Probability,
		seed:        config.Seed,
		clock:       config.Clock,
	}

	if config.Layout != nil {
		width, height, lights, err := config.Layout.Lights()
		if err != nil {
			return nil, errors.Wrap(err, "invalid layout")
		}
		board.width, board.height = width, height
		board.layout = lights
		if config.Layout.Seed != 0 && board.seed == 0 {
			board.seed = config.Layout.Seed
		}
	}

	if err := validateSize(board.width, board.height); err != nil {
		return nil, err
	}
	if !board.mode.IsValid() {
		return nil, fmt.Errorf("invalid game mode %d", int(board.mode))
	}
	if board.probability == 0 {
		board.probability = DefaultProbability
	}
	if board.probability < 0 || board.probability > 1 {
		return nil, fmt.Errorf("light probability %v out of range (0, 1]", board.probability)
	}
	if board.onColor == (color.RGBA{}) {
		board.onColor = DefaultOnColor
	}
	if board.seed == 0 {
		board.seed = time.Now().UnixNano()
	}
	if board.clock == nil {
		board.clock = time.Now
	}

	logger := config.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	board.log = logger.WithField("component", "board")
	board.rand = rand.New(rand.NewSource(board.seed))

	board.NewGame()
	return board, nil
}

func (board *Board) Width() int {
	return board.width
}

func (board *Board) Height() int {
	return board.height
}

func (board *Board) NumCells() int {
	return board.width * board.height
}

func (board *Board) Mode() GameMode {
	return board.mode
}

func (board *Board) OnColor() color.RGBA {
	return board.onColor
}

func (board *Board) Probability() float64 {
	return board.probability
}

func (board *Board) Seed() int64 {
	return board.seed
}

func (board *Board) Rand() *rand.Rand {
	return board.rand
}

func (board *Board) State() BoardState {
	return board.state
}

func (board *Board) ClickCount() int {
	return board.clickCount
}

func (board *Board) StartTime() time.Time {
	return board.startTime
}

func (board *Board) Elapsed() time.Duration {
	return board.clock().Sub(board.startTime)
}

// NumLit returns how many lights are currently on
func (board *Board) NumLit() int {
	return board.numLit
}

func (board *Board) Contains(id int) bool {
	return id >= 0 && id < len(board.cells)
}

func (board *Board) Cell(id int) *Cell {
	board.mustContain(id)
	return &board.cells[id]
}

func (board *Board) CellAt(x, y int) *Cell {
	if x >= 0 && y >= 0 && x < board.width && y < board.height {
		return &board.cells[y*board.width+x]
	}
	return nil
}

// Cells returns every cell in row-major order
func (board *Board) Cells() []*Cell {
	cells := make([]*Cell, len(board.cells))
	for id := range board.cells {
		cells[id] = &board.cells[id]
	}
	return cells
}

// Lights returns the on/off state of every cell in row-major order
func (board *Board) Lights() []bool {
	lights := make([]bool, len(board.cells))
	for id := range board.cells {
		lights[id] = board.cells[id].isOn
	}
	return lights
}

// Neighbors returns the ids a press on id would toggle under the current mode
func (board *Board) Neighbors(id int) []int {
	board.mustContain(id)
	return board.mode.Neighbors(id, board.width, board.height)
}

func (board *Board) mustContain(id int) {
	if !board.Contains(id) {
		panic(fmt.Sprintf("cell id %d out of range [0, %d)", id, len(board.cells)))
	}
}

func (board *Board) affectedCells(id int) []*Cell {
	ids := board.Neighbors(id)
	cells := make([]*Cell, len(ids))
	for i, affectedID := range ids {
		cells[i] = &board.cells[affectedID]
	}
	return cells
}

func (board *Board) setLight(cell *Cell, isOn bool) {
	if cell.isOn != isOn {
		if isOn {
			board.numLit++
		} else {
			board.numLit--
		}
	}
	cell.setOn(isOn)
}

// NewGame discards the current cells and deals a fresh board of the current
// size. A dealt board always has at least one light on.
func (board *Board) NewGame() {
	board.cells = make([]Cell, board.width*board.height)
	board.numLit = 0

	for id := range board.cells {
		cell := &board.cells[id]
		cell.board = board
		cell.id = id
		cell.refreshColor()
	}

	if board.layout != nil {
		for id, isOn := range board.layout {
			board.setLight(&board.cells[id], isOn)
		}
		board.layout = nil
	}

	for roll := 0; board.numLit == 0; roll++ {
		if roll == maxDealRolls {
			// Unlikely lights may never come on by chance
			board.setLight(&board.cells[board.rand.Intn(len(board.cells))], true)
			break
		}
		for id := range board.cells {
			board.setLight(&board.cells[id], board.rand.Float64() < board.probability)
		}
	}

	board.clickCount = 0
	board.startTime = board.clock()
	board.state = Idle

	board.log.WithFields(logrus.Fields{
		"width":  board.width,
		"height": board.height,
		"mode":   board.mode,
		"lit":    board.numLit,
	}).Debug("new game")

	board.listeners.newGame(board)
}

func (board *Board) SetSize(width, height int) error {
	if err := validateSize(width, height); err != nil {
		return err
	}
	board.width, board.height = width, height
	board.NewGame()
	return nil
}

func (board *Board) SetMode(mode GameMode) error {
	if !mode.IsValid() {
		return fmt.Errorf("invalid game mode %d", int(mode))
	}
	board.mode = mode
	board.NewGame()
	return nil
}

// SetColor changes the color of lit cells without dealing a new board
func (board *Board) SetColor(onColor color.RGBA) {
	board.onColor = onColor

	changed := make([]*Cell, 0, board.numLit)
	for id := range board.cells {
		cell := &board.cells[id]
		if cell.isOn {
			cell.refreshColor()
			changed = append(changed, cell)
		}
	}

	if len(changed) > 0 {
		board.listeners.cellsChanged(changed)
	}
}

// HandleClick toggles every light in the neighborhood of id, then checks
// whether the game has been won
func (board *Board) HandleClick(id int) {
	affected := board.affectedCells(id)

	board.state = Evaluating
	for _, cell := range affected {
		board.setLight(cell, !cell.isOn)
	}
	board.listeners.cellsChanged(affected)

	board.evaluate()
}

func (board *Board) evaluate() {
	if board.numLit > 0 {
		board.clickCount++
		board.state = Idle
		return
	}

	board.state = Won
	result := GameResult{
		Clicks:  board.clickCount,
		Elapsed: board.Elapsed(),
		Mode:    board.mode,
	}

	board.log.WithFields(logrus.Fields{
		"clicks":  result.Clicks,
		"elapsed": result.Elapsed,
		"mode":    result.Mode,
	}).Info("game won")

	board.listeners.gameWon(result)
	board.NewGame()
}

// HandleHover highlights (or clears) the cells a click on id would toggle
func (board *Board) HandleHover(id int, entering bool) {
	affected := board.affectedCells(id)
	for _, cell := range affected {
		cell.setHighlighted(entering)
	}
	board.listeners.cellsChanged(affected)
}
