package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gridlab/sudoku-pool-backend/internal/entity"
)

// SolveArchiveRepository keeps an append-only log of completed solves in
// sqlite, backing the leaderboard.
type SolveArchiveRepository interface {
	RecordSolve(ctx context.Context, playerID string, gameID int, solvedAt time.Time) error
	TopSolvers(ctx context.Context, limit int) ([]entity.SolverStats, error)
}

type solveArchive struct {
	conn *sql.DB
}

func NewSolveArchiveRepository(conn *sql.DB) SolveArchiveRepository {
	return &solveArchive{
		conn: conn,
	}
}

func (that *solveArchive) RecordSolve(ctx context.Context, playerID string, gameID int, solvedAt time.Time) error {
	query := `INSERT INTO solves (player_id, game_id, solved_at) VALUES (?, ?, ?)`

	_, err := that.conn.ExecContext(ctx, query, playerID, gameID, solvedAt.UTC())
	if err != nil {
		return fmt.Errorf("can't record solve: %w", err)
	}

	return nil
}

func (that *solveArchive) TopSolvers(ctx context.Context, limit int) ([]entity.SolverStats, error) {
	query := `SELECT player_id, COUNT(*) AS solves
		FROM solves
		GROUP BY player_id
		ORDER BY solves DESC, player_id ASC
		LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("can't query top solvers: %w", err)
	}
	defer rows.Close()

	stats := make([]entity.SolverStats, 0, limit)
	for rows.Next() {
		var row entity.SolverStats
		if err = rows.Scan(&row.PlayerID, &row.Solves); err != nil {
			return nil, fmt.Errorf("can't scan solver stats: %w", err)
		}

		stats = append(stats, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read solver stats: %w", err)
	}

	return stats, nil
}
