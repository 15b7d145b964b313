package entity

const (
	GridSize = 9
	BoxSize  = 3

	EmptyCell = 0
)

// Grid is a 9x9 sudoku grid. A zero cell is blank; 1..9 are filled digits.
// The shape is not enforced by the type so that malformed caller input can be
// carried to the validator and rejected there.
type Grid [][]int

// BlankGrid returns a well-shaped grid with every cell blank.
func BlankGrid() Grid {
	grid := make(Grid, GridSize)
	for row := range grid {
		grid[row] = make([]int, GridSize)
	}

	return grid
}

// IsWellShaped reports whether the grid has exactly 9 rows of 9 cells each.
func (that Grid) IsWellShaped() bool {
	if len(that) != GridSize {
		return false
	}

	for _, row := range that {
		if len(row) != GridSize {
			return false
		}
	}

	return true
}

// Clone returns a deep copy of the grid.
func (that Grid) Clone() Grid {
	grid := make(Grid, len(that))
	for row := range that {
		grid[row] = make([]int, len(that[row]))
		copy(grid[row], that[row])
	}

	return grid
}
