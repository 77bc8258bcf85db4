package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/gamecenter-map-backend/internal/apperror"
	"github.com/rocketscienceinc/gamecenter-map-backend/internal/entity"
)

const (
	gameCenterKeyPrefix = "gamecenter:"
	gameCenterIndexKey  = "gamecenters"

	maxUpdateRetries = 50
)

type GameCenterRepository interface {
	CreateOrUpdate(ctx context.Context, gameCenter *entity.GameCenter) error
	GetByID(ctx context.Context, id string) (*entity.GameCenter, error)
	Update(ctx context.Context, id string, mutate func(gameCenter *entity.GameCenter) error) (*entity.GameCenter, error)
	DeleteByID(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.GameCenter, error)
}

type dbGameCenter struct {
	client *redis.Client
}

func NewGameCenterRepository(client *redis.Client) GameCenterRepository {
	return &dbGameCenter{
		client: client,
	}
}

func (that *dbGameCenter) CreateOrUpdate(ctx context.Context, gameCenter *entity.GameCenter) error {
	gameCenterJSON, err := json.Marshal(gameCenter)
	if err != nil {
		return fmt.Errorf("could not marshal game center: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, gameCenterKeyPrefix+gameCenter.ID, gameCenterJSON, 0)
		pipe.SAdd(ctx, gameCenterIndexKey, gameCenter.ID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to set game center: %w", err)
	}

	return nil
}

func (that *dbGameCenter) GetByID(ctx context.Context, id string) (*entity.GameCenter, error) {
	response, err := that.client.Get(ctx, gameCenterKeyPrefix+id).Result()

	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrGameCenterNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game center by id: %w", err)
	}

	var existingGameCenter entity.GameCenter
	if err = json.Unmarshal([]byte(response), &existingGameCenter); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game center: %w", err)
	}

	return &existingGameCenter, nil
}

// Update - applies mutate to the stored game center and saves it, retrying when another
// writer changes the record between the read and the write.
func (that *dbGameCenter) Update(
	ctx context.Context, id string, mutate func(gameCenter *entity.GameCenter) error,
) (*entity.GameCenter, error) {
	gameCenterKey := gameCenterKeyPrefix + id

	var updated *entity.GameCenter

	txf := func(tx *redis.Tx) error {
		response, err := tx.Get(ctx, gameCenterKey).Result()
		if errors.Is(err, redis.Nil) {
			return apperror.ErrGameCenterNotFound
		}

		if err != nil {
			return fmt.Errorf("failed to get game center by id: %w", err)
		}

		var gameCenter entity.GameCenter
		if err = json.Unmarshal([]byte(response), &gameCenter); err != nil {
			return fmt.Errorf("failed to unmarshal game center: %w", err)
		}

		if err = mutate(&gameCenter); err != nil {
			return err
		}

		gameCenterJSON, err := json.Marshal(&gameCenter)
		if err != nil {
			return fmt.Errorf("could not marshal game center: %w", err)
		}

		// fails with redis.TxFailedErr when the watched key changed
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, gameCenterKey, gameCenterJSON, 0)
			return nil
		})
		if err != nil {
			return err
		}

		updated = &gameCenter

		return nil
	}

	for range maxUpdateRetries {
		err := that.client.Watch(ctx, txf, gameCenterKey)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("failed to update game center: %w", err)
		}

		return updated, nil
	}

	return nil, apperror.ErrConcurrentUpdate
}

func (that *dbGameCenter) DeleteByID(ctx context.Context, id string) error {
	var deleted *redis.IntCmd

	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		deleted = pipe.Del(ctx, gameCenterKeyPrefix+id)
		pipe.SRem(ctx, gameCenterIndexKey, id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete game center by id: %w", err)
	}

	if deleted.Val() == 0 {
		return apperror.ErrGameCenterNotFound
	}

	return nil
}

func (that *dbGameCenter) List(ctx context.Context) ([]*entity.GameCenter, error) {
	ids, err := that.client.SMembers(ctx, gameCenterIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list game center ids: %w", err)
	}

	if len(ids) == 0 {
		return []*entity.GameCenter{}, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, gameCenterKeyPrefix+id)
	}

	values, err := that.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get game centers: %w", err)
	}

	gameCenters := make([]*entity.GameCenter, 0, len(values))
	for _, value := range values {
		// index may outlive a key removed outside of this repository
		raw, ok := value.(string)
		if !ok {
			continue
		}

		var gameCenter entity.GameCenter
		if err = json.Unmarshal([]byte(raw), &gameCenter); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game center: %w", err)
		}

		gameCenters = append(gameCenters, &gameCenter)
	}

	return gameCenters, nil
}
