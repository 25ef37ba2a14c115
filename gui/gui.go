package gui

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/they4kman/golightsout/frontend"
	"github.com/they4kman/golightsout/game"
)

const (
	cellWidth      = game.CellSize
	headerHeight   = 50
	minWindowWidth = 320
	// Gap drawn between neighbouring lights
	cellGap = 2
	// Thickness of the hover border
	highlightWidth = 3
)

// Run opens a window and plays until it is closed. It must be called from
// within pixelgl.Run.
func Run(config game.GameConfig) error {
	session, err := frontend.NewSession(config)
	if err != nil {
		return err
	}
	defer session.Close()

	board := session.Board

	cfg := pixelgl.WindowConfig{
		Title:  "golightsout",
		Bounds: windowBounds(board),
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return err
	}
	defer win.Destroy()

	basicAtlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	statusText := text.New(pixel.ZV, basicAtlas)
	messageText := text.New(pixel.ZV, basicAtlas)
	imd := imdraw.New(nil)

	width, height := board.Width(), board.Height()

	bgColor := colornames.Gainsboro
	for !win.Closed() {
		if win.JustPressed(pixelgl.KeyEscape) {
			win.SetClosed(true)
			continue
		}

		win.Update()

		if board.Width() != width || board.Height() != height {
			width, height = board.Width(), board.Height()
			win.SetBounds(windowBounds(board))
		}
		boardTop := win.Bounds().Max.Y - headerHeight

		if _, hasMessage := session.Message(); hasMessage {
			if win.JustPressed(pixelgl.MouseButtonLeft) || win.JustPressed(pixelgl.KeyEnter) {
				session.Acknowledge()
			}
		} else {
			handleInput(win, session, boardTop)
		}

		session.Tick(time.Now())
		session.Update()

		win.Clear(bgColor)

		imd.Clear()
		drawCells(imd, board, boardTop)
		imd.Draw(win)

		statusText.Clear()
		statusText.Orig = pixel.V(12, win.Bounds().Max.Y-30)
		statusText.Dot = statusText.Orig
		statusText.Color = colornames.Black
		fmt.Fprint(statusText, session.Status())
		statusText.Draw(win, pixel.IM)

		if message, hasMessage := session.Message(); hasMessage {
			drawMessage(win, messageText, message)
		}
	}

	return nil
}

func windowBounds(board *game.Board) pixel.Rect {
	return pixel.R(
		0, 0,
		math.Max(float64(board.Width()*cellWidth), minWindowWidth),
		float64(board.Height()*cellWidth+headerHeight),
	)
}

func screenToGridCoords(pos pixel.Vec, boardTop float64) (int, int, bool) {
	if pos.X < 0 || pos.Y > boardTop {
		return 0, 0, false
	}
	x := int(pos.X) / cellWidth
	y := int(boardTop-pos.Y) / cellWidth
	return x, y, true
}

func handleInput(win *pixelgl.Window, session *frontend.Session, boardTop float64) {
	board := session.Board

	hovered := frontend.NoCell
	if win.MouseInsideWindow() {
		if x, y, ok := screenToGridCoords(win.MousePosition(), boardTop); ok {
			if cell := board.CellAt(x, y); cell != nil {
				hovered = cell.ID()
			}
		}
	}
	session.Hover(hovered)

	if win.JustPressed(pixelgl.MouseButtonLeft) && hovered != frontend.NoCell {
		session.Click(hovered)
	}

	switch {
	case win.JustPressed(pixelgl.KeyN):
		session.NewGame()
	case win.JustPressed(pixelgl.KeyM):
		session.CycleMode()
	case win.JustPressed(pixelgl.KeyC):
		session.CycleColor()
	case win.JustPressed(pixelgl.KeyD):
		session.ToggleDirector()
	case win.JustPressed(pixelgl.KeyLeft):
		session.Resize(-1, 0)
	case win.JustPressed(pixelgl.KeyRight):
		session.Resize(1, 0)
	case win.JustPressed(pixelgl.KeyUp):
		session.Resize(0, -1)
	case win.JustPressed(pixelgl.KeyDown):
		session.Resize(0, 1)
	}
}

func drawCells(imd *imdraw.IMDraw, board *game.Board, boardTop float64) {
	for _, cell := range board.Cells() {
		lo := pixel.V(
			float64(cell.X()*cellWidth+cellGap),
			boardTop-float64((cell.Y()+1)*cellWidth-cellGap),
		)
		hi := pixel.V(
			float64((cell.X()+1)*cellWidth-cellGap),
			boardTop-float64(cell.Y()*cellWidth+cellGap),
		)

		imd.Color = cell.Color()
		imd.Push(lo, hi)
		imd.Rectangle(0) // 0 = filled

		if cell.IsHighlighted() {
			imd.Color = game.HighlightColor
			imd.Push(lo, hi)
			imd.Rectangle(highlightWidth)
		}
	}
}

func drawMessage(win *pixelgl.Window, messageText *text.Text, message string) {
	bounds := win.Bounds()

	overlay := imdraw.New(nil)
	overlay.Color = pixel.RGB(0, 0, 0).Mul(pixel.Alpha(0.6))
	overlay.Push(bounds.Min, bounds.Max)
	overlay.Rectangle(0)
	overlay.Draw(win)

	messageText.Clear()
	messageText.Color = colornames.White
	lines := []string{message, "click or press Enter to continue"}
	for _, line := range lines {
		messageText.Dot.X -= messageText.BoundsOf(line).W() / 2
		fmt.Fprintln(messageText, line)
	}
	messageText.Draw(win, pixel.IM.Moved(bounds.Center()))
}
