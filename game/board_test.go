package game_test

import (
	"image/color"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/they4kman/golightsout/game"
)

func quietLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.Out = io.Discard
	return logger
}

type fakeClock struct {
	now time.Time
}

func (clock *fakeClock) Now() time.Time {
	return clock.now
}

func (clock *fakeClock) Advance(d time.Duration) {
	clock.now = clock.now.Add(d)
}

// BoardSuite exercises the board lifecycle: dealing, pressing, winning and
// reconfiguration
type BoardSuite struct {
	suite.Suite
	clock *fakeClock
}

func (s *BoardSuite) SetupTest() {
	s.clock = &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (s *BoardSuite) config() game.BoardConfig {
	return game.BoardConfig{
		Width:  5,
		Height: 5,
		Seed:   7,
		Logger: quietLogger(),
		Clock:  s.clock.Now,
	}
}

// layoutBoard builds a board whose first game follows layout
func (s *BoardSuite) layoutBoard(mode game.GameMode, layout string) *game.Board {
	config := s.config()
	config.Mode = mode
	config.Layout = &game.BoardSnapshot{SerializedBoard: layout}

	board, err := game.NewBoard(config)
	require.NoError(s.T(), err)
	return board
}

func litIds(board *game.Board) []int {
	var ids []int
	for _, cell := range board.Cells() {
		if cell.IsOn() {
			ids = append(ids, cell.ID())
		}
	}
	return ids
}

// TestNewBoardDealsGame verifies the initial deal covers the whole board in
// row-major order with at least one light on
func (s *BoardSuite) TestNewBoardDealsGame() {
	board, err := game.NewBoard(s.config())
	require.NoError(s.T(), err)

	cells := board.Cells()
	require.Len(s.T(), cells, 25)
	for i, cell := range cells {
		require.Equal(s.T(), i, cell.ID())
		require.Equal(s.T(), i%5, cell.X())
		require.Equal(s.T(), i/5, cell.Y())
		if cell.IsOn() {
			require.Equal(s.T(), game.DefaultOnColor, cell.Color())
		} else {
			require.Equal(s.T(), game.OffColor, cell.Color())
		}
	}

	require.Greater(s.T(), board.NumLit(), 0)
	require.Equal(s.T(), len(litIds(board)), board.NumLit())
	require.Equal(s.T(), 0, board.ClickCount())
	require.Equal(s.T(), game.Idle, board.State())
	require.Equal(s.T(), s.clock.now, board.StartTime())
	require.Equal(s.T(), game.DefaultProbability, board.Probability())
}

// TestSameSeedSameDeal checks boards are reproducible from their seed
func (s *BoardSuite) TestSameSeedSameDeal() {
	first, err := game.NewBoard(s.config())
	require.NoError(s.T(), err)
	second, err := game.NewBoard(s.config())
	require.NoError(s.T(), err)

	require.Equal(s.T(), first.Lights(), second.Lights())
	require.Equal(s.T(), int64(7), first.Seed())
}

// TestInvalidConfig ensures out-of-range settings are rejected
func (s *BoardSuite) TestInvalidConfig() {
	for name, mutate := range map[string]func(*game.BoardConfig){
		"zero width":        func(c *game.BoardConfig) { c.Width = 0 },
		"huge height":       func(c *game.BoardConfig) { c.Height = game.MaxSize + 1 },
		"bad mode":          func(c *game.BoardConfig) { c.Mode = game.GameMode(9) },
		"negative chance":   func(c *game.BoardConfig) { c.Probability = -0.1 },
		"chance above one":  func(c *game.BoardConfig) { c.Probability = 1.5 },
		"layout without on": func(c *game.BoardConfig) { c.Layout = &game.BoardSnapshot{SerializedBoard: "...\n..."} },
	} {
		config := s.config()
		mutate(&config)
		_, err := game.NewBoard(config)
		require.Error(s.T(), err, name)
	}
}

// TestClickTogglesNeighborhood verifies a press toggles exactly the
// neighborhood and recolors it
func (s *BoardSuite) TestClickTogglesNeighborhood() {
	board := s.layoutBoard(game.Cardinal, "#..\n...\n...")

	board.HandleClick(4)

	require.Equal(s.T(), []int{0, 1, 3, 4, 5, 7}, litIds(board))
	require.Equal(s.T(), 1, board.ClickCount())
	require.Equal(s.T(), game.Idle, board.State())
	require.Equal(s.T(), game.DefaultOnColor, board.Cell(1).Color())
	require.Equal(s.T(), game.OffColor, board.Cell(2).Color())
}

// TestRowAndColumnClick verifies the row and column mode toggles a cross
func (s *BoardSuite) TestRowAndColumnClick() {
	board := s.layoutBoard(game.RowColumn, "#..\n...\n...")

	board.HandleClick(4)

	require.Equal(s.T(), []int{0, 1, 3, 4, 5, 7}, litIds(board))

	board.HandleClick(0)
	require.Equal(s.T(), []int{2, 4, 5, 6, 7}, litIds(board))
}

// TestDoubleClickRestores checks that pressing the same cell twice restores
// every light and color
func (s *BoardSuite) TestDoubleClickRestores() {
	for _, mode := range game.GameModes {
		board := s.layoutBoard(mode, "#.#.\n.##.\n#..#")
		lights := board.Lights()
		colors := make([]color.RGBA, board.NumCells())
		for i, cell := range board.Cells() {
			colors[i] = cell.Color()
		}

		board.HandleClick(5)
		require.NotEqual(s.T(), lights, board.Lights(), mode.String())
		board.HandleClick(5)

		require.Equal(s.T(), lights, board.Lights(), mode.String())
		for i, cell := range board.Cells() {
			require.Equal(s.T(), colors[i], cell.Color(), mode.String())
		}
		require.Equal(s.T(), 2, board.ClickCount())
	}
}

// TestWinReportedOnce verifies the win is reported a single time, before a
// fresh game is dealt
func (s *BoardSuite) TestWinReportedOnce() {
	board := s.layoutBoard(game.Cardinal, ".#.\n###\n.#.")

	var events []string
	var results []game.GameResult
	board.OnGameWon(func(result game.GameResult) {
		events = append(events, "won")
		results = append(results, result)
		require.Equal(s.T(), game.Won, board.State())
		require.Equal(s.T(), 0, board.NumLit())
	})
	board.OnNewGame(func(*game.Board) {
		events = append(events, "new game")
	})

	s.clock.Advance(3 * time.Second)
	board.HandleClick(4)

	require.Equal(s.T(), []string{"won", "new game"}, events)
	require.Len(s.T(), results, 1)
	require.Equal(s.T(), 0, results[0].Clicks)
	require.Equal(s.T(), 3*time.Second, results[0].Elapsed)
	require.Equal(s.T(), game.Cardinal, results[0].Mode)

	// The next deal is a playable game
	require.Equal(s.T(), game.Idle, board.State())
	require.Greater(s.T(), board.NumLit(), 0)
	require.Equal(s.T(), 0, board.ClickCount())
	require.Equal(s.T(), s.clock.now, board.StartTime())
}

// TestWinCountsEarlierClicks checks the reported count covers the presses
// before the winning one
func (s *BoardSuite) TestWinCountsEarlierClicks() {
	board := s.layoutBoard(game.Cardinal, "#.#")

	var results []game.GameResult
	board.OnGameWon(func(result game.GameResult) {
		results = append(results, result)
	})

	board.HandleClick(0)
	require.Equal(s.T(), []int{1, 2}, litIds(board))
	require.Empty(s.T(), results)

	board.HandleClick(2)
	require.Len(s.T(), results, 1)
	require.Equal(s.T(), 1, results[0].Clicks)
}

// TestSetSizeRebuildsCells verifies resizing deals a new row-major board
func (s *BoardSuite) TestSetSizeRebuildsCells() {
	board, err := game.NewBoard(s.config())
	require.NoError(s.T(), err)
	board.HandleClick(0)

	require.NoError(s.T(), board.SetSize(3, 4))
	require.Equal(s.T(), 3, board.Width())
	require.Equal(s.T(), 4, board.Height())
	require.Len(s.T(), board.Cells(), 12)
	for i, cell := range board.Cells() {
		require.Equal(s.T(), i, cell.ID())
	}
	require.Equal(s.T(), 0, board.ClickCount())
	require.Greater(s.T(), board.NumLit(), 0)

	require.Error(s.T(), board.SetSize(0, 3))
	require.Error(s.T(), board.SetSize(3, game.MaxSize+1))
	require.Len(s.T(), board.Cells(), 12)
}

// TestSetModeDealsNewGame checks a mode change resets the game
func (s *BoardSuite) TestSetModeDealsNewGame() {
	board, err := game.NewBoard(s.config())
	require.NoError(s.T(), err)

	newGames := 0
	board.OnNewGame(func(*game.Board) { newGames++ })

	require.NoError(s.T(), board.SetMode(game.Diagonal))
	require.Equal(s.T(), game.Diagonal, board.Mode())
	require.Equal(s.T(), 1, newGames)

	require.Error(s.T(), board.SetMode(game.GameMode(-1)))
	require.Equal(s.T(), game.Diagonal, board.Mode())
	require.Equal(s.T(), 1, newGames)
}

// TestSetColorKeepsBoard verifies only lit cells are recolored, and nothing
// else changes
func (s *BoardSuite) TestSetColorKeepsBoard() {
	board := s.layoutBoard(game.Cardinal, "#.#\n.#.")
	board.HandleClick(0)
	lights := board.Lights()
	start := board.StartTime()

	var changed []int
	board.OnCellsChanged(func(cells []*game.Cell) {
		for _, cell := range cells {
			changed = append(changed, cell.ID())
		}
	})

	gold := color.RGBA{R: 255, G: 215, A: 255}
	board.SetColor(gold)

	require.Equal(s.T(), lights, board.Lights())
	require.Equal(s.T(), start, board.StartTime())
	require.Equal(s.T(), 1, board.ClickCount())
	require.Equal(s.T(), litIds(board), changed)
	for _, cell := range board.Cells() {
		if cell.IsOn() {
			require.Equal(s.T(), gold, cell.Color())
		} else {
			require.Equal(s.T(), game.OffColor, cell.Color())
		}
	}

	// Lights switched on afterwards use the new color
	board.HandleClick(5)
	require.True(s.T(), board.Cell(5).IsOn())
	require.Equal(s.T(), gold, board.Cell(5).Color())
}

// TestHoverHighlightsOnly verifies hovering marks the neighborhood without
// touching the lights
func (s *BoardSuite) TestHoverHighlightsOnly() {
	board := s.layoutBoard(game.Diagonal, "#..\n...\n...")
	lights := board.Lights()

	board.HandleHover(4, true)
	for _, cell := range board.Cells() {
		expected := cell.ID() == 0 || cell.ID() == 2 || cell.ID() == 4 || cell.ID() == 6 || cell.ID() == 8
		require.Equal(s.T(), expected, cell.IsHighlighted(), cell.String())
	}
	require.Equal(s.T(), lights, board.Lights())
	require.Equal(s.T(), 0, board.ClickCount())

	board.HandleHover(4, false)
	for _, cell := range board.Cells() {
		require.False(s.T(), cell.IsHighlighted())
	}
}

// TestOutOfRangePanics ensures ids outside the board fail fast
func (s *BoardSuite) TestOutOfRangePanics() {
	board := s.layoutBoard(game.Cardinal, "#..\n...\n...")

	require.Panics(s.T(), func() { board.HandleClick(9) })
	require.Panics(s.T(), func() { board.HandleClick(-1) })
	require.Panics(s.T(), func() { board.HandleHover(9, true) })
	require.Equal(s.T(), []int{0}, litIds(board))
}

// TestRerollsDarkBoards checks a deal never starts already won, even when
// lights are unlikely to be on
func (s *BoardSuite) TestRerollsDarkBoards() {
	config := s.config()
	config.Width, config.Height = 1, 1
	config.Probability = 0.01

	board, err := game.NewBoard(config)
	require.NoError(s.T(), err)
	for i := 0; i < 20; i++ {
		board.NewGame()
		require.Equal(s.T(), 1, board.NumLit())
	}
}

// TestNegligibleProbabilityStillDeals checks a deal finishes with a light on
// even when random rolls practically never light one
func (s *BoardSuite) TestNegligibleProbabilityStillDeals() {
	config := s.config()
	config.Width, config.Height = 2, 1
	config.Probability = 1e-12

	board, err := game.NewBoard(config)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, board.NumLit())

	board.NewGame()
	require.Equal(s.T(), 1, board.NumLit())
}

// TestFullProbability verifies every light is on with a probability of one
func (s *BoardSuite) TestFullProbability() {
	config := s.config()
	config.Probability = 1

	board, err := game.NewBoard(config)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 25, board.NumLit())
}

// TestLayoutOnlyFirstGame verifies a layout is used for the first deal only
func (s *BoardSuite) TestLayoutOnlyFirstGame() {
	config := s.config()
	config.Probability = 1
	config.Layout = &game.BoardSnapshot{SerializedBoard: "#.\n.."}

	board, err := game.NewBoard(config)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, board.Width())
	require.Equal(s.T(), 2, board.Height())
	require.Equal(s.T(), []int{0}, litIds(board))

	board.NewGame()
	require.Equal(s.T(), []int{0, 1, 2, 3}, litIds(board))
}

func TestBoardSuite(t *testing.T) {
	suite.Run(t, new(BoardSuite))
}
