package game

import (
	"fmt"
	"image/color"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
)

type EventType int

const (
	CellClicked EventType = iota
	CellHoverEntered
	CellHoverExited
	WidthChanged
	HeightChanged
	ModeChanged
	ColorChanged
	NewGameRequested
)

var eventTypeNames = map[EventType]string{
	CellClicked:      "cellClicked",
	CellHoverEntered: "cellHoverEntered",
	CellHoverExited:  "cellHoverExited",
	WidthChanged:     "widthChanged",
	HeightChanged:    "heightChanged",
	ModeChanged:      "modeChanged",
	ColorChanged:     "colorChanged",
	NewGameRequested: "newGameRequested",
}

func (eventType EventType) String() string {
	if name, ok := eventTypeNames[eventType]; ok {
		return name
	}
	return fmt.Sprintf("EventType(%d)", int(eventType))
}

// Event is a single notification from a front-end to the board
type Event struct {
	Type EventType

	// Cell id, for click and hover events
	Cell int
	// New width or height, in cells
	Size  int
	Mode  GameMode
	Color color.RGBA
}

func Click(id int) Event {
	return Event{Type: CellClicked, Cell: id}
}

func HoverEnter(id int) Event {
	return Event{Type: CellHoverEntered, Cell: id}
}

func HoverExit(id int) Event {
	return Event{Type: CellHoverExited, Cell: id}
}

// Dispatcher queues front-end events and applies them to a Board one at a
// time, each running to completion before the next is looked at
type Dispatcher struct {
	board *Board
	queue deque.Deque
	log   logrus.FieldLogger
}

func NewDispatcher(board *Board, logger logrus.FieldLogger) *Dispatcher {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Dispatcher{
		board: board,
		log:   logger.WithField("component", "dispatcher"),
	}
}

func (dispatcher *Dispatcher) Board() *Board {
	return dispatcher.board
}

func (dispatcher *Dispatcher) Post(event Event) {
	dispatcher.queue.PushBack(event)
}

// Len returns the number of events waiting to be applied
func (dispatcher *Dispatcher) Len() int {
	return dispatcher.queue.Len()
}

// Drain applies every queued event, including any posted while draining, and
// returns how many were applied
func (dispatcher *Dispatcher) Drain() int {
	applied := 0
	for dispatcher.queue.Len() > 0 {
		event := dispatcher.queue.PopFront().(Event)
		if dispatcher.apply(event) {
			applied++
		}
	}
	return applied
}

func (dispatcher *Dispatcher) apply(event Event) bool {
	board := dispatcher.board
	logger := dispatcher.log.WithField("event", event.Type)

	switch event.Type {
	case CellClicked, CellHoverEntered, CellHoverExited:
		// Cell events queued before a resize may refer to cells that no longer exist
		if !board.Contains(event.Cell) {
			logger.WithField("cell", event.Cell).Warn("dropping event for stale cell")
			return false
		}

		switch event.Type {
		case CellClicked:
			board.HandleClick(event.Cell)
		case CellHoverEntered:
			board.HandleHover(event.Cell, true)
		default:
			board.HandleHover(event.Cell, false)
		}

	case WidthChanged, HeightChanged:
		width, height := board.Width(), board.Height()
		if event.Type == WidthChanged {
			width = event.Size
		} else {
			height = event.Size
		}
		if err := board.SetSize(width, height); err != nil {
			logger.WithError(err).Warn("ignoring size change")
			return false
		}

	case ModeChanged:
		if err := board.SetMode(event.Mode); err != nil {
			logger.WithError(err).Warn("ignoring mode change")
			return false
		}

	case ColorChanged:
		board.SetColor(event.Color)

	case NewGameRequested:
		board.NewGame()

	default:
		logger.Warn("ignoring unknown event")
		return false
	}

	return true
}
