package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlankGrid(t *testing.T) {
	t.Run("Returns a well-shaped all-blank grid", func(t *testing.T) {
		// When: creating a blank grid
		grid := BlankGrid()

		// Then: it is 9x9 and every cell is blank
		require.True(t, grid.IsWellShaped())
		for _, row := range grid {
			for _, cell := range row {
				assert.Equal(t, EmptyCell, cell)
			}
		}
	})
}

func TestGrid_IsWellShaped(t *testing.T) {
	t.Run("Accepts a 9x9 grid", func(t *testing.T) {
		// Given: a freshly built 9x9 grid
		grid := BlankGrid()

		// Then: the shape check passes
		assert.True(t, grid.IsWellShaped())
	})

	t.Run("Rejects a grid with too few rows", func(t *testing.T) {
		// Given: a grid missing its last row
		grid := BlankGrid()[:8]

		// Then: the shape check fails
		assert.False(t, grid.IsWellShaped())
	})

	t.Run("Rejects a grid with a short row", func(t *testing.T) {
		// Given: a grid whose third row has 8 cells
		grid := BlankGrid()
		grid[2] = grid[2][:8]

		// Then: the shape check fails
		assert.False(t, grid.IsWellShaped())
	})

	t.Run("Rejects a nil grid", func(t *testing.T) {
		assert.False(t, Grid(nil).IsWellShaped())
	})
}

func TestGrid_Clone(t *testing.T) {
	t.Run("Copies are independent of the original", func(t *testing.T) {
		// Given: a grid with one filled cell
		grid := BlankGrid()
		grid[4][4] = 7

		// When: cloning and mutating the clone
		clone := grid.Clone()
		clone[4][4] = 2

		// Then: the original is untouched
		assert.Equal(t, 7, grid[4][4])
		assert.Equal(t, 2, clone[4][4])
	})
}
