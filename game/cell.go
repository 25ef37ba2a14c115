package game

import (
	"fmt"
	"image/color"
)

type Cell struct {
	board *Board

	id   int
	isOn bool

	color       color.RGBA
	highlighted bool
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.X(), cell.Y())
}

func (cell *Cell) ID() int {
	return cell.id
}

func (cell *Cell) X() int {
	return cell.id % cell.board.width
}

func (cell *Cell) Y() int {
	return cell.id / cell.board.width
}

func (cell *Cell) IsOn() bool {
	return cell.isOn
}

func (cell *Cell) Color() color.RGBA {
	return cell.color
}

func (cell *Cell) IsHighlighted() bool {
	return cell.highlighted
}

func (cell *Cell) serialize() string {
	if cell.isOn {
		return "#"
	}
	return "."
}

func (cell *Cell) setOn(isOn bool) {
	cell.isOn = isOn
	cell.refreshColor()
}

func (cell *Cell) toggle() {
	cell.setOn(!cell.isOn)
}

func (cell *Cell) refreshColor() {
	if cell.isOn {
		cell.color = cell.board.onColor
	} else {
		cell.color = OffColor
	}
}

func (cell *Cell) setHighlighted(highlighted bool) {
	cell.highlighted = highlighted
}
