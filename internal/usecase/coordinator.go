package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gridlab/sudoku-pool-backend/internal/apperror"
	"github.com/gridlab/sudoku-pool-backend/internal/entity"
	"github.com/gridlab/sudoku-pool-backend/internal/random"
	"github.com/gridlab/sudoku-pool-backend/internal/sudoku"
)

type playerRepo interface {
	Create(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
	Update(ctx context.Context, player *entity.Player) error
}

type gamePool interface {
	Append(ctx context.Context, board entity.Grid, creator string) (int, error)
	GetByIndex(ctx context.Context, index int) (*entity.Game, error)
	RecordAttempt(ctx context.Context, index int) error
	RecordCompletion(ctx context.Context, index int) error
	Len(ctx context.Context) (int, error)
}

type solveArchive interface {
	RecordSolve(ctx context.Context, playerID string, gameID int, solvedAt time.Time) error
	TopSolvers(ctx context.Context, limit int) ([]entity.SolverStats, error)
}

// SessionCoordinator drives registration, puzzle submission, solution
// attempts and passes over the shared pool. Every operation validates before
// it mutates; a failed operation leaves all records untouched.
type SessionCoordinator struct {
	logger *slog.Logger

	players  playerRepo
	pool     gamePool
	archive  solveArchive
	selector random.Selector
}

func NewSessionCoordinator(logger *slog.Logger, players playerRepo, pool gamePool, archive solveArchive, selector random.Selector) *SessionCoordinator {
	return &SessionCoordinator{
		logger:   logger,
		players:  players,
		pool:     pool,
		archive:  archive,
		selector: selector,
	}
}

// Register creates the Player record for an identity. An identity may
// register at most once.
func (that *SessionCoordinator) Register(ctx context.Context, identity string) (*entity.Player, error) {
	player := entity.NewPlayer(identity)

	if err := that.players.Create(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to register player: %w", err)
	}

	return player, nil
}

// AddGame validates a (board, solution) pair submitted by a registered
// creator and appends the board to the pool. The solution is only used for
// validation and is not stored.
func (that *SessionCoordinator) AddGame(ctx context.Context, identity string, board, solution entity.Grid) (int, error) {
	if _, err := that.players.GetByID(ctx, identity); err != nil {
		return 0, fmt.Errorf("failed to get player: %w", err)
	}

	if err := sudoku.Check(board, solution); err != nil {
		return 0, fmt.Errorf("failed to validate submitted game: %w", err)
	}

	index, err := that.pool.Append(ctx, board, identity)
	if err != nil {
		return 0, fmt.Errorf("failed to append game: %w", err)
	}

	return index, nil
}

// SubmitSolution checks the solution against the player's current game. On
// success the completion counters move and the player is reassigned; on any
// failure nothing is mutated and the player stays on the same game.
func (that *SessionCoordinator) SubmitSolution(ctx context.Context, identity string, solution entity.Grid) (*entity.Player, error) {
	player, err := that.players.GetByID(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	currentGame, err := that.pool.GetByIndex(ctx, player.CurrentGameID)
	if err != nil {
		// the assigned index is maintained by reassignment alone, so a miss
		// here is a corrupted-state bug, not user input
		that.logger.Error("assigned game missing from pool",
			"player", player.ID, "game", player.CurrentGameID, "error", err)
		return nil, fmt.Errorf("current game %d: %w", player.CurrentGameID, err)
	}

	if err = sudoku.Check(currentGame.Board, solution); err != nil {
		return nil, fmt.Errorf("failed to validate solution: %w", err)
	}

	length, err := that.poolLengthForReassignment(ctx)
	if err != nil {
		return nil, err
	}

	solvedGameID := player.CurrentGameID

	if err = that.pool.RecordCompletion(ctx, solvedGameID); err != nil {
		return nil, fmt.Errorf("failed to record completion: %w", err)
	}

	player.Completed++

	if err = that.assignNextGame(ctx, player, length); err != nil {
		return nil, err
	}

	if err = that.archive.RecordSolve(ctx, player.ID, solvedGameID, time.Now()); err != nil {
		// the archive is advisory; a write failure must not fail the solve
		that.logger.Error("failed to archive solve", "player", player.ID, "game", solvedGameID, "error", err)
	}

	return player, nil
}

// Pass reassigns the player without validation and without completion
// credit.
func (that *SessionCoordinator) Pass(ctx context.Context, identity string) (*entity.Player, error) {
	player, err := that.players.GetByID(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	length, err := that.poolLengthForReassignment(ctx)
	if err != nil {
		return nil, err
	}

	if err = that.assignNextGame(ctx, player, length); err != nil {
		return nil, err
	}

	return player, nil
}

// Progress returns the player's record and the currently assigned game.
func (that *SessionCoordinator) Progress(ctx context.Context, identity string) (*entity.Player, *entity.Game, error) {
	player, err := that.players.GetByID(ctx, identity)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get player: %w", err)
	}

	currentGame, err := that.pool.GetByIndex(ctx, player.CurrentGameID)
	if err != nil {
		return nil, nil, fmt.Errorf("current game %d: %w", player.CurrentGameID, err)
	}

	return player, currentGame, nil
}

// TopSolvers returns the leaderboard from the solve archive.
func (that *SessionCoordinator) TopSolvers(ctx context.Context, limit int) ([]entity.SolverStats, error) {
	stats, err := that.archive.TopSolvers(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top solvers: %w", err)
	}

	return stats, nil
}

// poolLengthForReassignment confirms at least one non-sentinel game exists.
// Checked before any counter moves so a failed operation stays mutation-free.
func (that *SessionCoordinator) poolLengthForReassignment(ctx context.Context) (int, error) {
	length, err := that.pool.Len(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get pool length: %w", err)
	}

	if length < 2 {
		return 0, apperror.ErrNoPlayableGames
	}

	return length, nil
}

// assignNextGame draws a uniform index in [1, length), excluding only the
// sentinel. The game just played stays eligible.
func (that *SessionCoordinator) assignNextGame(ctx context.Context, player *entity.Player, length int) error {
	next := that.selector.NextInRange(1, length)

	player.CurrentGameID = next
	player.Attempts++

	if err := that.pool.RecordAttempt(ctx, next); err != nil {
		return fmt.Errorf("failed to record attempt: %w", err)
	}

	if err := that.players.Update(ctx, player); err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}

	return nil
}
