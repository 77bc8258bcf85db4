package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/rocketscienceinc/gamecenter-map-backend/internal/apperror"
	"github.com/rocketscienceinc/gamecenter-map-backend/internal/entity"
)

const maxBodySize = 1 << 20

var errInvalidBody = errors.New("invalid request body")

type mapUseCase interface {
	ListMarkers(ctx context.Context, bounds *entity.Bounds) ([]*entity.Marker, error)
	GetMarker(ctx context.Context, gameCenterID string) (*entity.Marker, error)

	GetGameCenter(ctx context.Context, id string) (*entity.GameCenter, error)
	CreateGameCenter(ctx context.Context, gameCenter *entity.GameCenter) (*entity.GameCenter, error)
	UpdateGameCenter(ctx context.Context, gameCenter *entity.GameCenter) (*entity.GameCenter, error)
	DeleteGameCenter(ctx context.Context, id string) error

	AddGame(ctx context.Context, gameCenterID string, game *entity.Game) (*entity.GameCenter, error)
	RemoveGame(ctx context.Context, gameCenterID, gameID string) (*entity.GameCenter, error)
}

type Handlers struct {
	logger  *slog.Logger
	useCase mapUseCase
}

func NewHandlers(logger *slog.Logger, useCase mapUseCase) *Handlers {
	return &Handlers{
		logger:  logger.With("component", "rest"),
		useCase: useCase,
	}
}

func (that *Handlers) ListMarkers(w http.ResponseWriter, r *http.Request) {
	bounds, err := parseBounds(r.URL.Query().Get("bounds"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	markers, err := that.useCase.ListMarkers(r.Context(), bounds)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, markers)
}

func (that *Handlers) GetMarker(w http.ResponseWriter, r *http.Request) {
	marker, err := that.useCase.GetMarker(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, marker)
}

func (that *Handlers) GetGameCenter(w http.ResponseWriter, r *http.Request) {
	gameCenter, err := that.useCase.GetGameCenter(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, gameCenter)
}

func (that *Handlers) CreateGameCenter(w http.ResponseWriter, r *http.Request) {
	var gameCenter entity.GameCenter
	if err := decodeBody(w, r, &gameCenter); err != nil {
		that.writeError(w, err)
		return
	}

	created, err := that.useCase.CreateGameCenter(r.Context(), &gameCenter)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, created)
}

func (that *Handlers) UpdateGameCenter(w http.ResponseWriter, r *http.Request) {
	var gameCenter entity.GameCenter
	if err := decodeBody(w, r, &gameCenter); err != nil {
		that.writeError(w, err)
		return
	}

	gameCenter.ID = mux.Vars(r)["id"]

	updated, err := that.useCase.UpdateGameCenter(r.Context(), &gameCenter)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, updated)
}

func (that *Handlers) DeleteGameCenter(w http.ResponseWriter, r *http.Request) {
	if err := that.useCase.DeleteGameCenter(r.Context(), mux.Vars(r)["id"]); err != nil {
		that.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *Handlers) AddGame(w http.ResponseWriter, r *http.Request) {
	var game entity.Game
	if err := decodeBody(w, r, &game); err != nil {
		that.writeError(w, err)
		return
	}

	gameCenter, err := that.useCase.AddGame(r.Context(), mux.Vars(r)["id"], &game)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, gameCenter)
}

func (that *Handlers) RemoveGame(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	gameCenter, err := that.useCase.RemoveGame(r.Context(), vars["id"], vars["gameID"])
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, gameCenter)
}

// parseBounds - parses "south,west,north,east", an empty value means no bounds.
func parseBounds(raw string) (*entity.Bounds, error) {
	if raw == "" {
		return nil, nil //nolint: nilnil // no bounds requested
	}

	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("%w: expected south,west,north,east", apperror.ErrInvalidBounds)
	}

	values := make([]float64, len(parts))
	for i, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", apperror.ErrInvalidBounds, part)
		}
		values[i] = value
	}

	return &entity.Bounds{South: values[0], West: values[1], North: values[2], East: values[3]}, nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", errInvalidBody, err)
	}

	var trailing json.RawMessage
	if err := decoder.Decode(&trailing); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: body must hold a single JSON value", errInvalidBody)
	}

	return nil
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, apperror.ErrGameCenterNotFound), errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidGameCenter), errors.Is(err, apperror.ErrInvalidBounds),
		errors.Is(err, errInvalidBody):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrGameAlreadyExists), errors.Is(err, apperror.ErrConcurrentUpdate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (that *Handlers) writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "error", err)
		message = "Internal Server Error"
	}

	that.writeJSON(w, status, map[string]string{"error": message})
}

func (that *Handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
