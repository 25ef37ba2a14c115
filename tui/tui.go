package tui

import (
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/they4kman/golightsout/frontend"
	"github.com/they4kman/golightsout/game"
)

const (
	// Size of a light on screen, in terminal cells
	cellCols = 6
	cellRows = 3

	boardLeft = 1
	boardTop  = 2

	// Interval between director ticks
	tickInterval = 50 * time.Millisecond
)

const helpLine = "click/space: press  arrows: move  n: new  m: mode  c: color  [ ]: width  - =: height  d: director  q: quit"

type terminal struct {
	screen  tcell.Screen
	session *frontend.Session

	// Keyboard cursor, in board cells
	cursorX, cursorY int
	// Mouse buttons held at the previous mouse event
	buttons tcell.ButtonMask
}

// Run plays in the terminal until the user quits
func Run(config game.GameConfig) error {
	session, err := frontend.NewSession(config)
	if err != nil {
		return err
	}
	defer session.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseMotionEvents)
	screen.HideCursor()

	term := &terminal{
		screen:  screen,
		session: session,
	}

	session.Board.OnNewGame(func(board *game.Board) {
		term.clampCursor()
	})

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(tickInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case now := <-ticker.C:
				// Ticks are handled on the event loop, which owns the board
				screen.PostEvent(tcell.NewEventInterrupt(now))
			}
		}
	}()

	term.draw()
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		if !term.handleEvent(ev) {
			return nil
		}
		session.Update()
		term.draw()
	}
}

func (term *terminal) handleEvent(ev tcell.Event) bool {
	session := term.session

	switch ev := ev.(type) {
	case *tcell.EventResize:
		term.screen.Sync()

	case *tcell.EventInterrupt:
		if now, ok := ev.Data().(time.Time); ok {
			session.Tick(now)
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		id := term.cellAt(x, y)

		pressed := ev.Buttons() &^ term.buttons
		term.buttons = ev.Buttons()

		if id != frontend.NoCell {
			session.Hover(id)
		}
		if pressed&tcell.Button1 != 0 {
			if _, hasMessage := session.Message(); hasMessage {
				session.Acknowledge()
			} else if id != frontend.NoCell {
				term.cursorX, term.cursorY = id%session.Board.Width(), id/session.Board.Width()
				session.Click(id)
			}
		}

	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}

		if _, hasMessage := session.Message(); hasMessage {
			session.Acknowledge()
			return true
		}

		term.handleKey(ev)
	}

	return true
}

func (term *terminal) handleKey(ev *tcell.EventKey) {
	session := term.session

	switch ev.Key() {
	case tcell.KeyLeft:
		term.moveCursor(-1, 0)
	case tcell.KeyRight:
		term.moveCursor(1, 0)
	case tcell.KeyUp:
		term.moveCursor(0, -1)
	case tcell.KeyDown:
		term.moveCursor(0, 1)
	case tcell.KeyEnter:
		session.Click(term.cursorID())
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			session.Click(term.cursorID())
		case 'h':
			term.moveCursor(-1, 0)
		case 'l':
			term.moveCursor(1, 0)
		case 'k':
			term.moveCursor(0, -1)
		case 'j':
			term.moveCursor(0, 1)
		case 'n':
			session.NewGame()
		case 'm':
			session.CycleMode()
		case 'c':
			session.CycleColor()
		case 'd':
			session.ToggleDirector()
		case '[':
			session.Resize(-1, 0)
		case ']':
			session.Resize(1, 0)
		case '-':
			session.Resize(0, -1)
		case '=', '+':
			session.Resize(0, 1)
		}
	}
}

func (term *terminal) cursorID() int {
	return term.cursorY*term.session.Board.Width() + term.cursorX
}

func (term *terminal) moveCursor(dx, dy int) {
	term.cursorX += dx
	term.cursorY += dy
	term.clampCursor()
	term.session.Hover(term.cursorID())
}

func (term *terminal) clampCursor() {
	board := term.session.Board
	term.cursorX = min(max(term.cursorX, 0), board.Width()-1)
	term.cursorY = min(max(term.cursorY, 0), board.Height()-1)
}

// cellAt maps a screen position to the id of the light drawn there
func (term *terminal) cellAt(x, y int) int {
	if x < boardLeft || y < boardTop {
		return frontend.NoCell
	}
	cell := term.session.Board.CellAt((x-boardLeft)/cellCols, (y-boardTop)/cellRows)
	if cell == nil {
		return frontend.NoCell
	}
	return cell.ID()
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (term *terminal) draw() {
	screen := term.screen
	session := term.session
	board := session.Board

	screen.Clear()

	term.drawText(boardLeft, 0, tcell.StyleDefault.Bold(true), session.Status())

	for _, cell := range board.Cells() {
		background := cell.Color()
		border := background
		if cell.IsHighlighted() {
			border = game.Blend(background, game.HighlightColor, 0.6)
		}

		left := boardLeft + cell.X()*cellCols
		top := boardTop + cell.Y()*cellRows
		for dy := 0; dy < cellRows; dy++ {
			for dx := 0; dx < cellCols-1; dx++ {
				style := tcell.StyleDefault.Background(rgb(background))
				isEdge := dy == 0 || dy == cellRows-1 || dx == 0 || dx == cellCols-2
				if isEdge {
					style = style.Background(rgb(border))
				}
				screen.SetContent(left+dx, top+dy, ' ', nil, style)
			}
		}

		if cell.X() == term.cursorX && cell.Y() == term.cursorY {
			screen.SetContent(left+cellCols/2-1, top+cellRows/2, '◆', nil,
				tcell.StyleDefault.Background(rgb(background)).Foreground(tcell.ColorBlack))
		}
	}

	helpY := boardTop + board.Height()*cellRows + 1
	term.drawText(boardLeft, helpY, tcell.StyleDefault.Foreground(tcell.ColorGray), helpLine)

	if message, hasMessage := session.Message(); hasMessage {
		term.drawMessage(message)
	}

	screen.Show()
}

func (term *terminal) drawMessage(message string) {
	width, height := term.screen.Size()
	lines := []string{"", "  " + message + "  ", "  press any key to continue  ", ""}

	boxWidth := 0
	for _, line := range lines {
		boxWidth = max(boxWidth, len([]rune(line)))
	}

	style := tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	left := max((width-boxWidth)/2, 0)
	top := max((height-len(lines))/2, 0)
	for i, line := range lines {
		for x := 0; x < boxWidth; x++ {
			term.screen.SetContent(left+x, top+i, ' ', nil, style)
		}
		term.drawText(left, top+i, style, line)
	}
}

func (term *terminal) drawText(x, y int, style tcell.Style, s string) {
	for _, r := range s {
		term.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
