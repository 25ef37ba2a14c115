package game

import "image/color"

type BoardState int

const (
	Idle BoardState = iota
	Evaluating
	Won
)

func (state BoardState) String() string {
	switch state {
	case Idle:
		return "idle"
	case Evaluating:
		return "evaluating"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

const (
	// Side of a single light, in logical pixels
	CellSize = 64

	// Random deals tried before a dark board gets one light switched on
	maxDealRolls = 100

	// Largest accepted board side, in cells
	MaxSize = 32

	DefaultWidth       = 5
	DefaultHeight      = 5
	DefaultProbability = 0.3
)

var (
	DefaultOnColor = color.RGBA{R: 12, G: 204, B: 216, A: 255}
	OffColor       = color.RGBA{R: 99, G: 99, B: 99, A: 255}
	HighlightColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)
