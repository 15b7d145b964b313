package sudoku

import (
	"fmt"

	"github.com/gridlab/sudoku-pool-backend/internal/apperror"
	"github.com/gridlab/sudoku-pool-backend/internal/entity"
)

// ValidateShape - checks that the grid is exactly 9 rows of 9 cells.
func ValidateShape(grid entity.Grid) error {
	if len(grid) != entity.GridSize {
		return fmt.Errorf("%w: %d rows", apperror.ErrBadGridShape, len(grid))
	}

	for row := range grid {
		if len(grid[row]) != entity.GridSize {
			return fmt.Errorf("%w: row %d has %d cells", apperror.ErrBadGridShape, row, len(grid[row]))
		}
	}

	return nil
}

// CheckUnit - checks that a 9-cell unit is a permutation of 1..9. Duplicates,
// blanks and out-of-range values all fail.
func CheckUnit(values []int) error {
	if len(values) != entity.GridSize {
		return fmt.Errorf("%w: %d values", apperror.ErrIncompleteUnit, len(values))
	}

	var seen [entity.GridSize + 1]bool

	for _, value := range values {
		if value < 1 || value > entity.GridSize {
			return fmt.Errorf("%w: value %d out of range", apperror.ErrIncompleteUnit, value)
		}

		if seen[value] {
			return fmt.Errorf("%w: duplicate %d", apperror.ErrIncompleteUnit, value)
		}

		seen[value] = true
	}

	return nil
}

// Check - validates a solution against a board: shape on both grids, clue
// compatibility, then the three constraint families on the solution. The
// first failure is returned.
func Check(board, solution entity.Grid) error {
	if err := ValidateShape(board); err != nil {
		return fmt.Errorf("%w: board: %w", apperror.ErrInvalidBoard, err)
	}

	if err := ValidateShape(solution); err != nil {
		return fmt.Errorf("%w: solution: %w", apperror.ErrInvalidBoard, err)
	}

	if err := checkCompatibility(board, solution); err != nil {
		return err
	}

	if err := checkRows(solution); err != nil {
		return err
	}

	if err := checkColumns(solution); err != nil {
		return err
	}

	return checkBoxes(solution)
}

// checkCompatibility - every non-blank board cell must survive unchanged in
// the solution.
func checkCompatibility(board, solution entity.Grid) error {
	for row := 0; row < entity.GridSize; row++ {
		for col := 0; col < entity.GridSize; col++ {
			clue := board[row][col]
			if clue != entity.EmptyCell && clue != solution[row][col] {
				return fmt.Errorf("%w: clue %d at (%d,%d) changed to %d",
					apperror.ErrInvalidBoard, clue, row, col, solution[row][col])
			}
		}
	}

	return nil
}

func checkRows(solution entity.Grid) error {
	for row := 0; row < entity.GridSize; row++ {
		if err := CheckUnit(solution[row]); err != nil {
			return fmt.Errorf("%w: row %d: %w", apperror.ErrInvalidSolution, row, err)
		}
	}

	return nil
}

func checkColumns(solution entity.Grid) error {
	for col := 0; col < entity.GridSize; col++ {
		unit := make([]int, 0, entity.GridSize)
		for row := 0; row < entity.GridSize; row++ {
			unit = append(unit, solution[row][col])
		}

		if err := CheckUnit(unit); err != nil {
			return fmt.Errorf("%w: column %d: %w", apperror.ErrInvalidSolution, col, err)
		}
	}

	return nil
}

// checkBoxes - walks the nine 3x3 blocks. A cell of block (blockRow,
// blockCol) lives at [blockRow*3+localRow][blockCol*3+localCol]; the block
// and local offsets must not be cross-composed.
func checkBoxes(solution entity.Grid) error {
	for blockRow := 0; blockRow < entity.BoxSize; blockRow++ {
		for blockCol := 0; blockCol < entity.BoxSize; blockCol++ {
			unit := make([]int, 0, entity.GridSize)
			for localRow := 0; localRow < entity.BoxSize; localRow++ {
				for localCol := 0; localCol < entity.BoxSize; localCol++ {
					unit = append(unit, solution[blockRow*entity.BoxSize+localRow][blockCol*entity.BoxSize+localCol])
				}
			}

			if err := CheckUnit(unit); err != nil {
				return fmt.Errorf("%w: box (%d,%d): %w", apperror.ErrInvalidSolution, blockRow, blockCol, err)
			}
		}
	}

	return nil
}
