package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/gridlab/sudoku-pool-backend/internal/apperror"
	"github.com/gridlab/sudoku-pool-backend/internal/entity"
)

const (
	poolLengthKey = "pool:length"
	gameKeyPrefix = "pool:game:"
)

// GamePoolRepository is the shared, append-only puzzle catalogue. Index 0 is
// the blank sentinel game seeded by Init.
type GamePoolRepository interface {
	Init(ctx context.Context) error
	Append(ctx context.Context, board entity.Grid, creator string) (int, error)
	GetByIndex(ctx context.Context, index int) (*entity.Game, error)
	RecordAttempt(ctx context.Context, index int) error
	RecordCompletion(ctx context.Context, index int) error
	Len(ctx context.Context) (int, error)
}

type dbGamePool struct {
	client *redis.Client
}

func NewGamePoolRepository(client *redis.Client) GamePoolRepository {
	return &dbGamePool{
		client: client,
	}
}

// Init - seeds the sentinel game at index 0 unless the pool already exists.
func (that *dbGamePool) Init(ctx context.Context) error {
	created, err := that.client.SetNX(ctx, poolLengthKey, 1, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to init pool length: %w", err)
	}

	if !created {
		return nil
	}

	if err = that.setGame(ctx, entity.SentinelGameID, entity.NewSentinelGame()); err != nil {
		return fmt.Errorf("failed to seed sentinel game: %w", err)
	}

	return nil
}

func (that *dbGamePool) Append(ctx context.Context, board entity.Grid, creator string) (int, error) {
	length, err := that.Len(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get pool length: %w", err)
	}

	if err = that.setGame(ctx, length, entity.NewGame(board, creator)); err != nil {
		return 0, fmt.Errorf("failed to append game: %w", err)
	}

	if err = that.client.Set(ctx, poolLengthKey, length+1, 0).Err(); err != nil {
		return 0, fmt.Errorf("failed to update pool length: %w", err)
	}

	return length, nil
}

func (that *dbGamePool) GetByIndex(ctx context.Context, index int) (*entity.Game, error) {
	if index < 0 {
		return nil, fmt.Errorf("%w: index %d", apperror.ErrGameNotFound, index)
	}

	response, err := that.client.Get(ctx, gameKey(index)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: index %d", apperror.ErrGameNotFound, index)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by index: %w", err)
	}

	var existingGame entity.Game
	if err = json.Unmarshal([]byte(response), &existingGame); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}

func (that *dbGamePool) RecordAttempt(ctx context.Context, index int) error {
	game, err := that.GetByIndex(ctx, index)
	if err != nil {
		return err
	}

	game.Attempts++

	if err = that.setGame(ctx, index, game); err != nil {
		return fmt.Errorf("failed to record attempt: %w", err)
	}

	return nil
}

func (that *dbGamePool) RecordCompletion(ctx context.Context, index int) error {
	game, err := that.GetByIndex(ctx, index)
	if err != nil {
		return err
	}

	game.Completed++

	if err = that.setGame(ctx, index, game); err != nil {
		return fmt.Errorf("failed to record completion: %w", err)
	}

	return nil
}

func (that *dbGamePool) Len(ctx context.Context) (int, error) {
	response, err := that.client.Get(ctx, poolLengthKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to get pool length: %w", err)
	}

	length, err := strconv.Atoi(response)
	if err != nil {
		return 0, fmt.Errorf("failed to parse pool length: %w", err)
	}

	return length, nil
}

func (that *dbGamePool) setGame(ctx context.Context, index int, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	if err = that.client.Set(ctx, gameKey(index), gameJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func gameKey(index int) string {
	return gameKeyPrefix + strconv.Itoa(index)
}
