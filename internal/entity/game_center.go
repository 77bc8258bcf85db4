package entity

import (
	"fmt"
	"math"
	"regexp"

	"github.com/rocketscienceinc/gamecenter-map-backend/internal/apperror"
)

var logoPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Game struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Platform string `json:"platform,omitempty"`
}

type GameCenter struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Address  string           `json:"address,omitempty"`
	Location Location         `json:"location"`
	Logo     string           `json:"logo,omitempty"`
	Games    map[string]*Game `json:"games,omitempty"`
}

func (that *GameCenter) GamesCount() int {
	return len(that.Games)
}

func (that *GameCenter) Validate() error {
	if that.Name == "" {
		return fmt.Errorf("%w: name is required", apperror.ErrInvalidGameCenter)
	}

	if !validLatitude(that.Location.Lat) {
		return fmt.Errorf("%w: latitude %v out of range", apperror.ErrInvalidGameCenter, that.Location.Lat)
	}

	if !validLongitude(that.Location.Lng) {
		return fmt.Errorf("%w: longitude %v out of range", apperror.ErrInvalidGameCenter, that.Location.Lng)
	}

	// logo ends up inside the marker icon path
	if that.Logo != "" && !logoPattern.MatchString(that.Logo) {
		return fmt.Errorf("%w: logo %q must match %s", apperror.ErrInvalidGameCenter, that.Logo, logoPattern)
	}

	for key, game := range that.Games {
		if game == nil {
			return fmt.Errorf("%w: game %q is empty", apperror.ErrInvalidGameCenter, key)
		}

		if game.ID != key {
			return fmt.Errorf("%w: game key %q does not match id %q", apperror.ErrInvalidGameCenter, key, game.ID)
		}
	}

	return nil
}

func validLatitude(lat float64) bool {
	return !math.IsNaN(lat) && lat >= -90 && lat <= 90
}

func validLongitude(lng float64) bool {
	return !math.IsNaN(lng) && lng >= -180 && lng <= 180
}

func (that *GameCenter) AddGame(game *Game) error {
	if game == nil || game.ID == "" {
		return fmt.Errorf("%w: game id is required", apperror.ErrInvalidGameCenter)
	}

	if _, ok := that.Games[game.ID]; ok {
		return fmt.Errorf("%w: %s", apperror.ErrGameAlreadyExists, game.ID)
	}

	if that.Games == nil {
		that.Games = make(map[string]*Game)
	}

	that.Games[game.ID] = game

	return nil
}

func (that *GameCenter) RemoveGame(gameID string) error {
	if _, ok := that.Games[gameID]; !ok {
		return fmt.Errorf("%w: %s", apperror.ErrGameNotFound, gameID)
	}

	delete(that.Games, gameID)

	return nil
}

// Bounds - map viewport, south-west and north-east corners.
type Bounds struct {
	South float64 `json:"south"`
	West  float64 `json:"west"`
	North float64 `json:"north"`
	East  float64 `json:"east"`
}

func (that *Bounds) Validate() error {
	if !validLatitude(that.South) || !validLatitude(that.North) ||
		!validLongitude(that.West) || !validLongitude(that.East) {
		return fmt.Errorf("%w: coordinates out of range", apperror.ErrInvalidBounds)
	}

	if that.South > that.North {
		return fmt.Errorf("%w: south %v is above north %v", apperror.ErrInvalidBounds, that.South, that.North)
	}

	return nil
}

// Contains - reports whether the location lies inside the viewport.
// A viewport with West > East crosses the antimeridian.
func (that *Bounds) Contains(loc Location) bool {
	if loc.Lat < that.South || loc.Lat > that.North {
		return false
	}

	if that.West <= that.East {
		return loc.Lng >= that.West && loc.Lng <= that.East
	}

	return loc.Lng >= that.West || loc.Lng <= that.East
}
