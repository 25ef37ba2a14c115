package frontend

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/they4kman/golightsout/director/solver"
	"github.com/they4kman/golightsout/game"
	"github.com/they4kman/golightsout/sound"
)

// NoCell marks the absence of a hovered cell
const NoCell = -1

// Session is the state a front-end keeps around a Board: its event queue,
// the hovered cell, the optional director and the pending win message.
// Every method must be called from the front-end's UI loop.
type Session struct {
	Board      *game.Board
	Dispatcher *game.Dispatcher

	hovered int

	director         game.Director
	directorActive   bool
	directorInterval time.Duration
	lastAct          time.Time

	sound *sound.Player

	message     string
	hasMessage  bool
	lastResult  game.GameResult
	gamesPlayed int

	log logrus.FieldLogger
}

func NewSession(config game.GameConfig) (*Session, error) {
	logger := config.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
		config.Logger = logger
	}

	board, err := config.CreateBoard()
	if err != nil {
		return nil, err
	}

	session := &Session{
		Board:            board,
		Dispatcher:       game.NewDispatcher(board, logger),
		hovered:          NoCell,
		director:         config.Director,
		directorActive:   config.Director != nil,
		directorInterval: config.DirectorInterval,
		log:              logger.WithField("component", "session"),
	}

	if session.director == nil {
		session.director = &solver.Director{}
	}
	session.director.Init(board)

	if config.Sound {
		session.sound = sound.NewPlayer(logger)
		session.sound.Attach(board)
	}

	width, height := board.Width(), board.Height()
	board.OnNewGame(func(board *game.Board) {
		// Highlights are dropped with the old cells. The hovered cell keeps its
		// place on a same-sized board, so its highlight is queued again
		// behind any hover events still pending from the old board.
		resized := board.Width() != width || board.Height() != height
		width, height = board.Width(), board.Height()
		if resized || session.hovered == NoCell {
			session.hovered = NoCell
			return
		}
		session.Dispatcher.Post(game.HoverEnter(session.hovered))
	})
	board.OnGameWon(func(result game.GameResult) {
		session.lastResult = result
		session.gamesPlayed++
		session.message = fmt.Sprintf("You win! Number of clicks: %d, time: %s",
			result.Clicks, result.Elapsed.Round(time.Second))
		session.hasMessage = true
	})

	return session, nil
}

// Click queues a press of the cell id
func (session *Session) Click(id int) {
	if session.sound != nil {
		session.sound.Press()
	}
	session.Dispatcher.Post(game.Click(id))
}

// Hover moves the hover highlight to id, or clears it when id is NoCell
func (session *Session) Hover(id int) {
	if id == session.hovered {
		return
	}
	if session.hovered != NoCell {
		session.Dispatcher.Post(game.HoverExit(session.hovered))
	}
	if id != NoCell {
		session.Dispatcher.Post(game.HoverEnter(id))
	}
	session.hovered = id
}

func (session *Session) Hovered() int {
	return session.hovered
}

func (session *Session) NewGame() {
	session.Dispatcher.Post(game.Event{Type: game.NewGameRequested})
}

func (session *Session) CycleMode() {
	session.Dispatcher.Post(game.Event{Type: game.ModeChanged, Mode: session.Board.Mode().Next()})
}

func (session *Session) CycleColor() {
	session.Dispatcher.Post(game.Event{Type: game.ColorChanged, Color: game.NextColor(session.Board.OnColor())})
}

// Resize grows or shrinks the board by the given number of cells
func (session *Session) Resize(dWidth, dHeight int) {
	if dWidth != 0 {
		session.Dispatcher.Post(game.Event{Type: game.WidthChanged, Size: session.Board.Width() + dWidth})
	}
	if dHeight != 0 {
		session.Dispatcher.Post(game.Event{Type: game.HeightChanged, Size: session.Board.Height() + dHeight})
	}
}

func (session *Session) ToggleDirector() {
	session.directorActive = !session.directorActive
	session.log.WithField("active", session.directorActive).Info("director toggled")
}

func (session *Session) DirectorActive() bool {
	return session.directorActive
}

// Tick lets an active director press its next cell once its interval has
// passed. Directors wait while a win message is displayed.
func (session *Session) Tick(now time.Time) {
	if !session.directorActive || session.hasMessage {
		return
	}
	if now.Sub(session.lastAct) < session.directorInterval {
		return
	}
	session.lastAct = now

	if id, ok := session.director.Act(); ok {
		session.Click(id)
	}
}

// Update applies every queued event to the board
func (session *Session) Update() int {
	return session.Dispatcher.Drain()
}

// Message returns the win message waiting for acknowledgement, if any
func (session *Session) Message() (string, bool) {
	return session.message, session.hasMessage
}

func (session *Session) Acknowledge() {
	session.message = ""
	session.hasMessage = false
}

func (session *Session) LastResult() (game.GameResult, bool) {
	return session.lastResult, session.gamesPlayed > 0
}

// Status is the one-line summary shown above the board
func (session *Session) Status() string {
	board := session.Board
	status := fmt.Sprintf("%s | %dx%d | clicks: %d | time: %s",
		board.Mode().Title(), board.Width(), board.Height(),
		board.ClickCount(), board.Elapsed().Round(time.Second))
	if session.directorActive {
		status += " | director"
	}
	return status
}

func (session *Session) Close() {
	session.director.End()
	if session.sound != nil {
		session.sound.Close()
	}
}
