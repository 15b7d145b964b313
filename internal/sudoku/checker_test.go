package sudoku

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridlab/sudoku-pool-backend/internal/apperror"
	"github.com/gridlab/sudoku-pool-backend/internal/entity"
)

// solvedGrid returns a fresh copy of a known valid solved grid.
func solvedGrid() entity.Grid {
	return entity.Grid{
		{5, 3, 4, 6, 7, 8, 9, 1, 2},
		{6, 7, 2, 1, 9, 5, 3, 4, 8},
		{1, 9, 8, 3, 4, 2, 5, 6, 7},
		{8, 5, 9, 7, 6, 1, 4, 2, 3},
		{4, 2, 6, 8, 5, 3, 7, 9, 1},
		{7, 1, 3, 9, 2, 4, 8, 5, 6},
		{9, 6, 1, 5, 3, 7, 2, 8, 4},
		{2, 8, 7, 4, 1, 9, 6, 3, 5},
		{3, 4, 5, 2, 8, 6, 1, 7, 9},
	}
}

func TestValidateShape(t *testing.T) {
	t.Run("Accepts a 9x9 grid", func(t *testing.T) {
		assert.NoError(t, ValidateShape(solvedGrid()))
	})

	t.Run("Rejects a grid with the wrong row count", func(t *testing.T) {
		// Given: a grid with only 8 rows
		grid := solvedGrid()[:8]

		// Then: the shape check fails
		err := ValidateShape(grid)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperror.ErrBadGridShape)
	})

	t.Run("Rejects a grid with a short row", func(t *testing.T) {
		// Given: a grid whose fifth row has 8 cells
		grid := solvedGrid()
		grid[4] = grid[4][:8]

		// Then: the shape check fails
		err := ValidateShape(grid)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperror.ErrBadGridShape)
	})

	t.Run("Rejects a grid with a long row", func(t *testing.T) {
		// Given: a grid whose first row has 10 cells
		grid := solvedGrid()
		grid[0] = append(grid[0], 1)

		// Then: the shape check fails
		err := ValidateShape(grid)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperror.ErrBadGridShape)
	})
}

func TestCheckUnit(t *testing.T) {
	t.Run("Accepts a permutation of 1..9", func(t *testing.T) {
		assert.NoError(t, CheckUnit([]int{9, 5, 7, 6, 1, 3, 2, 8, 4}))
	})

	t.Run("Rejects a duplicate digit", func(t *testing.T) {
		// Given: two 9s and no 8
		err := CheckUnit([]int{9, 5, 7, 6, 1, 3, 2, 9, 4})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperror.ErrIncompleteUnit)
	})

	t.Run("Rejects a blank cell", func(t *testing.T) {
		err := CheckUnit([]int{0, 5, 7, 6, 1, 3, 2, 8, 4})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperror.ErrIncompleteUnit)
	})

	t.Run("Rejects an out-of-range value", func(t *testing.T) {
		err := CheckUnit([]int{10, 5, 7, 6, 1, 3, 2, 8, 4})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperror.ErrIncompleteUnit)
	})

	t.Run("Rejects a short unit", func(t *testing.T) {
		// Given: eight distinct in-range values, which without a length
		// check would sneak past the duplicate scan
		err := CheckUnit([]int{1, 2, 3, 4, 5, 6, 7, 8})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperror.ErrIncompleteUnit)
	})
}

func TestCheck(t *testing.T) {
	t.Run("Accepts a valid solution against a blank board", func(t *testing.T) {
		// Given: an all-blank board, so every cell is free
		board := entity.BlankGrid()

		// Then: any valid solved grid passes
		assert.NoError(t, Check(board, solvedGrid()))
	})

	t.Run("Accepts a valid solution against its own clues", func(t *testing.T) {
		// Given: a board whose clues are a subset of the solution
		solution := solvedGrid()
		board := entity.BlankGrid()
		board[0][0] = solution[0][0]
		board[3][5] = solution[3][5]
		board[8][8] = solution[8][8]

		assert.NoError(t, Check(board, solution))
	})

	t.Run("Rejects a malformed board as invalid board", func(t *testing.T) {
		// Given: a board with a missing row
		board := entity.BlankGrid()[:8]

		err := Check(board, solvedGrid())
		require.Error(t, err)
		assert.ErrorIs(t, err, apperror.ErrInvalidBoard)
		assert.ErrorIs(t, err, apperror.ErrBadGridShape)
	})

	t.Run("Rejects a malformed solution as invalid board", func(t *testing.T) {
		// Given: a solution with a short row
		solution := solvedGrid()
		solution[6] = solution[6][:3]

		err := Check(entity.BlankGrid(), solution)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperror.ErrInvalidBoard)
		assert.ErrorIs(t, err, apperror.ErrBadGridShape)
	})

	t.Run("Rejects a solution that alters a clue", func(t *testing.T) {
		// Given: a board with a single clue the solution contradicts
		solution := solvedGrid()
		board := entity.BlankGrid()
		board[0][6] = 2 // solution holds 9 here

		err := Check(board, solution)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperror.ErrInvalidBoard)
	})

	t.Run("Rejects a duplicate in a row", func(t *testing.T) {
		// Given: row 0 with two 9s and no 8
		solution := solvedGrid()
		solution[0] = []int{9, 5, 7, 6, 1, 3, 2, 9, 4}

		err := Check(entity.BlankGrid(), solution)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperror.ErrInvalidSolution)
		assert.ErrorContains(t, err, "row 0")
	})

	t.Run("Rejects a duplicate visible only to the column check", func(t *testing.T) {
		// Given: two adjacent cells of row 2 swapped; the row stays a
		// permutation while two columns break
		solution := solvedGrid()
		solution[2][0], solution[2][1] = solution[2][1], solution[2][0]

		err := Check(entity.BlankGrid(), solution)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperror.ErrInvalidSolution)
		assert.ErrorContains(t, err, "column")
	})

	t.Run("Rejects a duplicate visible only to the box check", func(t *testing.T) {
		// Given: rows 0 and 3 swapped; every row and column remains a
		// permutation, but the boxes of the top two bands are corrupted
		solution := solvedGrid()
		solution[0], solution[3] = solution[3], solution[0]

		err := Check(entity.BlankGrid(), solution)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperror.ErrInvalidSolution)
		assert.ErrorContains(t, err, "box")
	})
}

// Every block must be checked against its own nine cells; a traversal that
// cross-composes block and local offsets samples cells from the wrong block
// and can miss a corruption that sits entirely inside one box.
func TestCheckBoxes_EveryBlock(t *testing.T) {
	for blockRow := 0; blockRow < entity.BoxSize; blockRow++ {
		for blockCol := 0; blockCol < entity.BoxSize; blockCol++ {
			name := fmt.Sprintf("Detects a duplicate confined to box (%d,%d)", blockRow, blockCol)
			t.Run(name, func(t *testing.T) {
				// Given: a solved grid with one cell of the block overwritten
				// by the value of another cell of the same block
				solution := solvedGrid()
				solution[blockRow*3][blockCol*3] = solution[blockRow*3+1][blockCol*3+1]

				// When: checking only the box constraint family
				err := checkBoxes(solution)

				// Then: the corrupted block is reported
				require.Error(t, err)
				assert.ErrorIs(t, err, apperror.ErrIncompleteUnit)
				assert.ErrorContains(t, err, fmt.Sprintf("box (%d,%d)", blockRow, blockCol))
			})
		}
	}
}

func TestCheckBoxes_ValidGrid(t *testing.T) {
	assert.NoError(t, checkBoxes(solvedGrid()))
}
