package service

import (
	"sort"

	"github.com/rocketscienceinc/gamecenter-map-backend/internal/entity"
)

type MarkerService interface {
	MarkerFor(gameCenter *entity.GameCenter) *entity.Marker
	Markers(gameCenters []*entity.GameCenter, bounds *entity.Bounds) []*entity.Marker
}

type markerService struct{}

func NewMarkerService() MarkerService {
	return &markerService{}
}

func (that *markerService) MarkerFor(gameCenter *entity.GameCenter) *entity.Marker {
	return entity.NewMarker(gameCenter)
}

// Markers - builds markers for the game centers inside bounds, a nil bounds keeps all of them.
func (that *markerService) Markers(gameCenters []*entity.GameCenter, bounds *entity.Bounds) []*entity.Marker {
	markers := make([]*entity.Marker, 0, len(gameCenters))

	for _, gameCenter := range gameCenters {
		if bounds != nil && !bounds.Contains(gameCenter.Location) {
			continue
		}

		markers = append(markers, that.MarkerFor(gameCenter))
	}

	sort.Slice(markers, func(i, j int) bool {
		if markers[i].Name != markers[j].Name {
			return markers[i].Name < markers[j].Name
		}
		return markers[i].GameCenterID < markers[j].GameCenterID
	})

	return markers
}
