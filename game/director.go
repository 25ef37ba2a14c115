package game

// Director is a computer player. It only suggests presses; the front-end
// posts them through its Dispatcher like any other click.
type Director interface {
	/**
	 * Initialize the director
	 */
	Init(*Board)

	/**
	 * Choose the next cell to press, if any
	 */
	Act() (id int, ok bool)

	/**
	 * Stop acting
	 */
	End()
}
