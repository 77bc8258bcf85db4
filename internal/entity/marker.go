package entity

const (
	TierLow    = "l"
	TierMedium = "m"
	TierHigh   = "h"

	DefaultLogo = "game"

	lowTierMaxGames    = 3
	mediumTierMaxGames = 15
)

type Marker struct {
	GameCenterID string   `json:"game_center_id"`
	Name         string   `json:"name"`
	Location     Location `json:"location"`
	Icon         string   `json:"icon"`
	GamesCount   int      `json:"games_count"`
}

// NewMarker - builds the map marker for a game center.
func NewMarker(gameCenter *GameCenter) *Marker {
	return &Marker{
		GameCenterID: gameCenter.ID,
		Name:         gameCenter.Name,
		Location:     gameCenter.Location,
		Icon:         SelectIconPath(gameCenter),
		GamesCount:   gameCenter.GamesCount(),
	}
}

// Tier - buckets a games count into the marker size tier.
func Tier(gamesCount int) string {
	switch {
	case gamesCount <= lowTierMaxGames:
		return TierLow
	case gamesCount > mediumTierMaxGames:
		return TierHigh
	default:
		return TierMedium
	}
}

// SelectIconPath - returns the relative path of the marker icon for a game center.
func SelectIconPath(gameCenter *GameCenter) string {
	logoName := gameCenter.Logo
	if logoName == "" {
		logoName = DefaultLogo
	}

	return "/img/marker_" + logoName + "_" + Tier(gameCenter.GamesCount()) + ".png"
}
