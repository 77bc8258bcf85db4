package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gamecenter-map-backend/internal/entity"
)

func TestMarkerService_Markers(t *testing.T) {
	berlin := &entity.GameCenter{ID: "1", Name: "Berlin Arcade", Location: entity.Location{Lat: 52.52, Lng: 13.405}}
	paris := &entity.GameCenter{ID: "2", Name: "Arcade de Paris", Location: entity.Location{Lat: 48.85, Lng: 2.35}, Logo: "retro"}

	t.Run("Returns all markers sorted by name without bounds", func(t *testing.T) {
		markers := NewMarkerService().Markers([]*entity.GameCenter{berlin, paris}, nil)

		require.Len(t, markers, 2)
		assert.Equal(t, "2", markers[0].GameCenterID)
		assert.Equal(t, "/img/marker_retro_l.png", markers[0].Icon)
		assert.Equal(t, "1", markers[1].GameCenterID)
		assert.Equal(t, "/img/marker_game_l.png", markers[1].Icon)
	})

	t.Run("Filters by bounds", func(t *testing.T) {
		bounds := &entity.Bounds{South: 50, West: 10, North: 55, East: 15}

		markers := NewMarkerService().Markers([]*entity.GameCenter{berlin, paris}, bounds)

		require.Len(t, markers, 1)
		assert.Equal(t, "1", markers[0].GameCenterID)
	})

	t.Run("Returns empty slice for no game centers", func(t *testing.T) {
		markers := NewMarkerService().Markers(nil, nil)

		assert.NotNil(t, markers)
		assert.Empty(t, markers)
	})
}
