package solver

import (
	"math/bits"
	"slices"

	"github.com/they4kman/golightsout/game"
)

// Boards with more free variables than this are not searched for the
// shortest solution; the first solution found is returned instead
const maxEnumeratedNullity = 12

type bitset []uint64

func newBitset(size int) bitset {
	return make(bitset, (size+63)/64)
}

func (set bitset) get(i int) bool {
	return set[i/64]&(1<<(uint(i)%64)) != 0
}

func (set bitset) set(i int) {
	set[i/64] |= 1 << (uint(i) % 64)
}

func (set bitset) flip(i int) {
	set[i/64] ^= 1 << (uint(i) % 64)
}

func (set bitset) xor(other bitset) {
	for i := range set {
		set[i] ^= other[i]
	}
}

func (set bitset) count() int {
	n := 0
	for _, word := range set {
		n += bits.OnesCount64(word)
	}
	return n
}

// Solve finds a set of presses switching off every lit cell of a width x
// height board under the given mode. Each press appears at most once, since
// pressing a cell twice cancels out. ok is false when no combination of
// presses clears the board.
func Solve(width, height int, mode game.GameMode, lit []bool) (presses []int, ok bool) {
	numCells := width * height
	if len(lit) != numCells {
		return nil, false
	}

	// Row i is the equation for light i: the presses toggling it, augmented
	// with its current state in column numCells
	rows := make([]bitset, numCells)
	for i := range rows {
		rows[i] = newBitset(numCells + 1)
		if lit[i] {
			rows[i].set(numCells)
		}
	}
	for press := 0; press < numCells; press++ {
		for _, toggled := range mode.Neighbors(press, width, height) {
			rows[toggled].set(press)
		}
	}

	pivotCols := make([]int, 0, numCells)
	isPivot := make([]bool, numCells)
	rank := 0
	for col := 0; col < numCells && rank < numCells; col++ {
		pivot := -1
		for r := rank; r < numCells; r++ {
			if rows[r].get(col) {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			continue
		}

		rows[rank], rows[pivot] = rows[pivot], rows[rank]
		for r := 0; r < numCells; r++ {
			if r != rank && rows[r].get(col) {
				rows[r].xor(rows[rank])
			}
		}

		pivotCols = append(pivotCols, col)
		isPivot[col] = true
		rank++
	}

	for r := rank; r < numCells; r++ {
		if rows[r].get(numCells) {
			return nil, false
		}
	}

	// Particular solution, with every free press left out
	solution := newBitset(numCells)
	for r, col := range pivotCols {
		if rows[r].get(numCells) {
			solution.set(col)
		}
	}

	// Each free press, combined with the pivot presses it forces, leaves the
	// board unchanged
	var nullSpace []bitset
	for free := 0; free < numCells; free++ {
		if isPivot[free] {
			continue
		}
		vector := newBitset(numCells)
		vector.set(free)
		for r, col := range pivotCols {
			if rows[r].get(free) {
				vector.set(col)
			}
		}
		nullSpace = append(nullSpace, vector)
	}

	if len(nullSpace) > 0 && len(nullSpace) <= maxEnumeratedNullity {
		solution = shortest(solution, nullSpace)
	}

	for press := 0; press < numCells; press++ {
		if solution.get(press) {
			presses = append(presses, press)
		}
	}
	return presses, true
}

// shortest walks every combination of null space vectors in Gray code order,
// keeping the solution with the fewest presses
func shortest(solution bitset, nullSpace []bitset) bitset {
	best := slices.Clone(solution)
	bestCount := best.count()

	current := slices.Clone(solution)
	for i := 1; i < 1<<len(nullSpace); i++ {
		current.xor(nullSpace[bits.TrailingZeros(uint(i))])
		if count := current.count(); count < bestCount {
			best = slices.Clone(current)
			bestCount = count
		}
	}
	return best
}

// Apply presses every cell of presses on lit, returning the resulting lights
func Apply(width, height int, mode game.GameMode, lit []bool, presses []int) []bool {
	result := newBitset(width * height)
	for i, isOn := range lit {
		if isOn {
			result.set(i)
		}
	}
	for _, press := range presses {
		for _, toggled := range mode.Neighbors(press, width, height) {
			result.flip(toggled)
		}
	}

	lights := make([]bool, width*height)
	for i := range lights {
		lights[i] = result.get(i)
	}
	return lights
}
