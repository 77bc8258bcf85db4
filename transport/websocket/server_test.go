package websocket

import (
	"context"
	"log/slog"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gamecenter-map-backend/internal/entity"
)

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	server := New(logger)

	httpServer := httptest.NewServer(server)
	t.Cleanup(httpServer.Close)

	return server, "ws" + strings.TrimPrefix(httpServer.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func TestServer_Publish(t *testing.T) {
	t.Run("Every client receives the event", func(t *testing.T) {
		// Given: two connected clients
		server, url := newTestServer(t)
		first := dial(t, url)
		second := dial(t, url)
		require.Eventually(t, func() bool { return server.ClientsCount() == 2 }, time.Second, 10*time.Millisecond)

		// When: an event is published
		event := &entity.MarkerEvent{
			Type:         entity.EventMarkerUpsert,
			GameCenterID: "gc",
			Marker:       &entity.Marker{GameCenterID: "gc", Name: "Arcade", Icon: "/img/marker_game_l.png"},
		}
		server.Publish(event)

		// Then: both clients get it
		for _, conn := range []*websocket.Conn{first, second} {
			require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))

			var received entity.MarkerEvent
			require.NoError(t, conn.ReadJSON(&received))
			assert.Equal(t, event, &received)
		}
	})

	t.Run("Disconnected client is forgotten", func(t *testing.T) {
		server, url := newTestServer(t)
		conn := dial(t, url)
		require.Eventually(t, func() bool { return server.ClientsCount() == 1 }, time.Second, 10*time.Millisecond)

		require.NoError(t, conn.Close())

		require.Eventually(t, func() bool { return server.ClientsCount() == 0 }, time.Second, 10*time.Millisecond)
	})

	t.Run("Publish without clients is a no-op", func(t *testing.T) {
		server, _ := newTestServer(t)

		assert.NotPanics(t, func() {
			server.Publish(&entity.MarkerEvent{Type: entity.EventMarkerDelete, GameCenterID: "gc"})
		})
	})
}

func TestServer_Close(t *testing.T) {
	// Given: a connected client
	server, url := newTestServer(t)
	conn := dial(t, url)
	require.Eventually(t, func() bool { return server.ClientsCount() == 1 }, time.Second, 10*time.Millisecond)

	// When: the server closes
	server.Close(context.Background())

	// Then: the client connection is closed and new clients are refused
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, _, err := conn.ReadMessage()
	require.Error(t, err)
	assert.Zero(t, server.ClientsCount())

	late := dial(t, url)
	require.NoError(t, late.SetReadDeadline(time.Now().Add(time.Second)))
	_, _, err = late.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway))
}
