package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/gamecenter-map-backend/internal/entity"
)

type mockGameCenterService struct {
	mock.Mock
}

func (that *mockGameCenterService) Create(ctx context.Context, gameCenter *entity.GameCenter) (*entity.GameCenter, error) {
	args := that.Called(ctx, gameCenter)
	result, _ := args.Get(0).(*entity.GameCenter)
	return result, args.Error(1)
}

func (that *mockGameCenterService) Get(ctx context.Context, id string) (*entity.GameCenter, error) {
	args := that.Called(ctx, id)
	result, _ := args.Get(0).(*entity.GameCenter)
	return result, args.Error(1)
}

func (that *mockGameCenterService) Update(ctx context.Context, gameCenter *entity.GameCenter) (*entity.GameCenter, error) {
	args := that.Called(ctx, gameCenter)
	result, _ := args.Get(0).(*entity.GameCenter)
	return result, args.Error(1)
}

func (that *mockGameCenterService) Delete(ctx context.Context, id string) error {
	args := that.Called(ctx, id)
	return args.Error(0)
}

func (that *mockGameCenterService) List(ctx context.Context) ([]*entity.GameCenter, error) {
	args := that.Called(ctx)
	result, _ := args.Get(0).([]*entity.GameCenter)
	return result, args.Error(1)
}

func (that *mockGameCenterService) AddGame(ctx context.Context, gameCenterID string, game *entity.Game) (*entity.GameCenter, error) {
	args := that.Called(ctx, gameCenterID, game)
	result, _ := args.Get(0).(*entity.GameCenter)
	return result, args.Error(1)
}

func (that *mockGameCenterService) RemoveGame(ctx context.Context, gameCenterID, gameID string) (*entity.GameCenter, error) {
	args := that.Called(ctx, gameCenterID, gameID)
	result, _ := args.Get(0).(*entity.GameCenter)
	return result, args.Error(1)
}

type mockPublisher struct {
	mock.Mock
}

func (that *mockPublisher) Publish(event *entity.MarkerEvent) {
	that.Called(event)
}
