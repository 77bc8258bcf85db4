package service

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/gamecenter-map-backend/internal/entity"
	"github.com/rocketscienceinc/gamecenter-map-backend/internal/pkg"
)

type GameCenterService interface {
	Create(ctx context.Context, gameCenter *entity.GameCenter) (*entity.GameCenter, error)
	Get(ctx context.Context, id string) (*entity.GameCenter, error)
	Update(ctx context.Context, gameCenter *entity.GameCenter) (*entity.GameCenter, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.GameCenter, error)

	AddGame(ctx context.Context, gameCenterID string, game *entity.Game) (*entity.GameCenter, error)
	RemoveGame(ctx context.Context, gameCenterID, gameID string) (*entity.GameCenter, error)
}

type gameCenterRepo interface {
	CreateOrUpdate(ctx context.Context, gameCenter *entity.GameCenter) error
	GetByID(ctx context.Context, id string) (*entity.GameCenter, error)
	Update(ctx context.Context, id string, mutate func(gameCenter *entity.GameCenter) error) (*entity.GameCenter, error)
	DeleteByID(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.GameCenter, error)
}

type gameCenterService struct {
	repo gameCenterRepo
}

func NewGameCenterService(repo gameCenterRepo) GameCenterService {
	return &gameCenterService{
		repo: repo,
	}
}

func (that *gameCenterService) Create(ctx context.Context, gameCenter *entity.GameCenter) (*entity.GameCenter, error) {
	if err := gameCenter.Validate(); err != nil {
		return nil, err
	}

	id, err := pkg.GenerateGameCenterID()
	if err != nil {
		return nil, fmt.Errorf("error generating game center ID: %w", err)
	}

	gameCenter.ID = id

	if err = that.repo.CreateOrUpdate(ctx, gameCenter); err != nil {
		return nil, fmt.Errorf("failed to create game center in storage: %w", err)
	}

	return gameCenter, nil
}

func (that *gameCenterService) Get(ctx context.Context, id string) (*entity.GameCenter, error) {
	gameCenter, err := that.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve game center from storage: %w", err)
	}

	return gameCenter, nil
}

// Update - replaces the stored game center, the games are kept when the update carries none.
func (that *gameCenterService) Update(ctx context.Context, gameCenter *entity.GameCenter) (*entity.GameCenter, error) {
	if err := gameCenter.Validate(); err != nil {
		return nil, err
	}

	updated, err := that.repo.Update(ctx, gameCenter.ID, func(existing *entity.GameCenter) error {
		games := existing.Games

		*existing = *gameCenter
		if existing.Games == nil {
			existing.Games = games
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update game center in storage: %w", err)
	}

	return updated, nil
}

func (that *gameCenterService) Delete(ctx context.Context, id string) error {
	if err := that.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game center from storage: %w", err)
	}

	return nil
}

func (that *gameCenterService) List(ctx context.Context) ([]*entity.GameCenter, error) {
	gameCenters, err := that.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list game centers from storage: %w", err)
	}

	return gameCenters, nil
}

func (that *gameCenterService) AddGame(ctx context.Context, gameCenterID string, game *entity.Game) (*entity.GameCenter, error) {
	gameCenter, err := that.repo.Update(ctx, gameCenterID, func(gameCenter *entity.GameCenter) error {
		return gameCenter.AddGame(game)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add game in storage: %w", err)
	}

	return gameCenter, nil
}

func (that *gameCenterService) RemoveGame(ctx context.Context, gameCenterID, gameID string) (*entity.GameCenter, error) {
	gameCenter, err := that.repo.Update(ctx, gameCenterID, func(gameCenter *entity.GameCenter) error {
		return gameCenter.RemoveGame(gameID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to remove game in storage: %w", err)
	}

	return gameCenter, nil
}
