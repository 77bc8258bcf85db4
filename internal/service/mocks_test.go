package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/gamecenter-map-backend/internal/entity"
)

type mockGameCenterRepo struct {
	mock.Mock
}

func (that *mockGameCenterRepo) CreateOrUpdate(ctx context.Context, gameCenter *entity.GameCenter) error {
	args := that.Called(ctx, gameCenter)
	return args.Error(0)
}

func (that *mockGameCenterRepo) GetByID(ctx context.Context, id string) (*entity.GameCenter, error) {
	args := that.Called(ctx, id)
	gameCenter, _ := args.Get(0).(*entity.GameCenter)
	return gameCenter, args.Error(1)
}

// Update - runs mutate against the game center configured for the call.
func (that *mockGameCenterRepo) Update(
	ctx context.Context, id string, mutate func(gameCenter *entity.GameCenter) error,
) (*entity.GameCenter, error) {
	args := that.Called(ctx, id)
	if err := args.Error(1); err != nil {
		return nil, err
	}

	gameCenter, _ := args.Get(0).(*entity.GameCenter)
	if err := mutate(gameCenter); err != nil {
		return nil, err
	}

	return gameCenter, nil
}

func (that *mockGameCenterRepo) DeleteByID(ctx context.Context, id string) error {
	args := that.Called(ctx, id)
	return args.Error(0)
}

func (that *mockGameCenterRepo) List(ctx context.Context) ([]*entity.GameCenter, error) {
	args := that.Called(ctx)
	gameCenters, _ := args.Get(0).([]*entity.GameCenter)
	return gameCenters, args.Error(1)
}
