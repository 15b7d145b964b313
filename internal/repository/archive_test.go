package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridlab/sudoku-pool-backend/internal/entity"
	"github.com/gridlab/sudoku-pool-backend/internal/repository/storage"
)

func newArchive(t *testing.T) (context.Context, SolveArchiveRepository) {
	t.Helper()

	ctx := context.Background()

	db, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})

	require.NoError(t, db.Init(ctx))

	return ctx, NewSolveArchiveRepository(db.Connection)
}

func TestSolveArchiveRepository_TopSolvers(t *testing.T) {
	t.Run("Orders solvers by solve count", func(t *testing.T) {
		ctx, archive := newArchive(t)

		// Given: two solves for one player and one for another
		now := time.Now()
		require.NoError(t, archive.RecordSolve(ctx, "alice", 1, now))
		require.NoError(t, archive.RecordSolve(ctx, "alice", 2, now))
		require.NoError(t, archive.RecordSolve(ctx, "bob", 1, now))

		// When: querying the leaderboard
		stats, err := archive.TopSolvers(ctx, 10)

		// Then: the busier solver comes first
		require.NoError(t, err)
		require.Len(t, stats, 2)
		assert.Equal(t, entity.SolverStats{PlayerID: "alice", Solves: 2}, stats[0])
		assert.Equal(t, entity.SolverStats{PlayerID: "bob", Solves: 1}, stats[1])
	})

	t.Run("Honors the limit", func(t *testing.T) {
		ctx, archive := newArchive(t)

		now := time.Now()
		require.NoError(t, archive.RecordSolve(ctx, "alice", 1, now))
		require.NoError(t, archive.RecordSolve(ctx, "bob", 1, now))

		stats, err := archive.TopSolvers(ctx, 1)

		require.NoError(t, err)
		assert.Len(t, stats, 1)
	})

	t.Run("Returns an empty leaderboard when nothing was solved", func(t *testing.T) {
		ctx, archive := newArchive(t)

		stats, err := archive.TopSolvers(ctx, 10)

		require.NoError(t, err)
		assert.Empty(t, stats)
	})
}
