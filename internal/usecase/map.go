package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/gamecenter-map-backend/internal/entity"
)

type MapUseCase interface {
	ListMarkers(ctx context.Context, bounds *entity.Bounds) ([]*entity.Marker, error)
	GetMarker(ctx context.Context, gameCenterID string) (*entity.Marker, error)

	GetGameCenter(ctx context.Context, id string) (*entity.GameCenter, error)
	CreateGameCenter(ctx context.Context, gameCenter *entity.GameCenter) (*entity.GameCenter, error)
	UpdateGameCenter(ctx context.Context, gameCenter *entity.GameCenter) (*entity.GameCenter, error)
	DeleteGameCenter(ctx context.Context, id string) error

	AddGame(ctx context.Context, gameCenterID string, game *entity.Game) (*entity.GameCenter, error)
	RemoveGame(ctx context.Context, gameCenterID, gameID string) (*entity.GameCenter, error)
}

type gameCenterService interface {
	Create(ctx context.Context, gameCenter *entity.GameCenter) (*entity.GameCenter, error)
	Get(ctx context.Context, id string) (*entity.GameCenter, error)
	Update(ctx context.Context, gameCenter *entity.GameCenter) (*entity.GameCenter, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.GameCenter, error)

	AddGame(ctx context.Context, gameCenterID string, game *entity.Game) (*entity.GameCenter, error)
	RemoveGame(ctx context.Context, gameCenterID, gameID string) (*entity.GameCenter, error)
}

type markerService interface {
	MarkerFor(gameCenter *entity.GameCenter) *entity.Marker
	Markers(gameCenters []*entity.GameCenter, bounds *entity.Bounds) []*entity.Marker
}

// Publisher - receives marker changes, implemented by the websocket hub.
type Publisher interface {
	Publish(event *entity.MarkerEvent)
}

type mapUseCase struct {
	logger *slog.Logger

	gameCenterService gameCenterService
	markerService     markerService
	publisher         Publisher
}

func NewMapUseCase(logger *slog.Logger, gameCenterService gameCenterService, markerService markerService, publisher Publisher) MapUseCase {
	return &mapUseCase{
		logger: logger.With("component", "map_usecase"),

		gameCenterService: gameCenterService,
		markerService:     markerService,
		publisher:         publisher,
	}
}

func (that *mapUseCase) ListMarkers(ctx context.Context, bounds *entity.Bounds) ([]*entity.Marker, error) {
	if bounds != nil {
		if err := bounds.Validate(); err != nil {
			return nil, err
		}
	}

	gameCenters, err := that.gameCenterService.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list game centers: %w", err)
	}

	return that.markerService.Markers(gameCenters, bounds), nil
}

func (that *mapUseCase) GetMarker(ctx context.Context, gameCenterID string) (*entity.Marker, error) {
	gameCenter, err := that.gameCenterService.Get(ctx, gameCenterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game center: %w", err)
	}

	return that.markerService.MarkerFor(gameCenter), nil
}

func (that *mapUseCase) GetGameCenter(ctx context.Context, id string) (*entity.GameCenter, error) {
	gameCenter, err := that.gameCenterService.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game center: %w", err)
	}

	return gameCenter, nil
}

func (that *mapUseCase) CreateGameCenter(ctx context.Context, gameCenter *entity.GameCenter) (*entity.GameCenter, error) {
	created, err := that.gameCenterService.Create(ctx, gameCenter)
	if err != nil {
		return nil, fmt.Errorf("failed to create game center: %w", err)
	}

	that.publishUpsert(created)

	return created, nil
}

func (that *mapUseCase) UpdateGameCenter(ctx context.Context, gameCenter *entity.GameCenter) (*entity.GameCenter, error) {
	updated, err := that.gameCenterService.Update(ctx, gameCenter)
	if err != nil {
		return nil, fmt.Errorf("failed to update game center: %w", err)
	}

	that.publishUpsert(updated)

	return updated, nil
}

func (that *mapUseCase) DeleteGameCenter(ctx context.Context, id string) error {
	if err := that.gameCenterService.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game center: %w", err)
	}

	that.logger.Debug("game center deleted", "game_center_id", id)
	that.publisher.Publish(&entity.MarkerEvent{
		Type:         entity.EventMarkerDelete,
		GameCenterID: id,
	})

	return nil
}

func (that *mapUseCase) AddGame(ctx context.Context, gameCenterID string, game *entity.Game) (*entity.GameCenter, error) {
	gameCenter, err := that.gameCenterService.AddGame(ctx, gameCenterID, game)
	if err != nil {
		return nil, fmt.Errorf("failed to add game: %w", err)
	}

	that.publishUpsert(gameCenter)

	return gameCenter, nil
}

func (that *mapUseCase) RemoveGame(ctx context.Context, gameCenterID, gameID string) (*entity.GameCenter, error) {
	gameCenter, err := that.gameCenterService.RemoveGame(ctx, gameCenterID, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to remove game: %w", err)
	}

	that.publishUpsert(gameCenter)

	return gameCenter, nil
}

func (that *mapUseCase) publishUpsert(gameCenter *entity.GameCenter) {
	marker := that.markerService.MarkerFor(gameCenter)

	that.logger.Debug("marker changed", "game_center_id", gameCenter.ID, "icon", marker.Icon)
	that.publisher.Publish(&entity.MarkerEvent{
		Type:         entity.EventMarkerUpsert,
		GameCenterID: gameCenter.ID,
		Marker:       marker,
	})
}
