package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

type Server struct {
	logger *slog.Logger
	srv    *http.Server
}

// Route - extra handler mounted next to the REST API, like the websocket feed.
type Route struct {
	Path    string
	Handler http.Handler
}

// NewRouter - builds the HTTP routes of the map API.
func NewRouter(handlers *Handlers, imageDir string, routes ...Route) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/ping", pingHandler).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/markers", handlers.ListMarkers).Methods(http.MethodGet)
	api.HandleFunc("/markers/{id}", handlers.GetMarker).Methods(http.MethodGet)

	api.HandleFunc("/gamecenters", handlers.CreateGameCenter).Methods(http.MethodPost)
	api.HandleFunc("/gamecenters/{id}", handlers.GetGameCenter).Methods(http.MethodGet)
	api.HandleFunc("/gamecenters/{id}", handlers.UpdateGameCenter).Methods(http.MethodPut)
	api.HandleFunc("/gamecenters/{id}", handlers.DeleteGameCenter).Methods(http.MethodDelete)
	api.HandleFunc("/gamecenters/{id}/games", handlers.AddGame).Methods(http.MethodPost)
	api.HandleFunc("/gamecenters/{id}/games/{gameID}", handlers.RemoveGame).Methods(http.MethodDelete)

	for _, route := range routes {
		router.Handle(route.Path, route.Handler)
	}

	router.PathPrefix("/img/").Handler(http.StripPrefix("/img/", http.FileServer(http.Dir(imageDir))))

	return router
}

func New(logger *slog.Logger, port string, handler http.Handler) *Server {
	return &Server{
		logger: logger.With("component", "http_server"),
		srv: &http.Server{
			Addr:              ":" + port,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       30 * time.Second,
		},
	}
}

// Start - blocks until the server stops, a graceful Shutdown is not an error.
func (that *Server) Start() error {
	that.logger.Info("Starting HTTP server", "addr", that.srv.Addr)

	if err := that.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) Shutdown(ctx context.Context) error {
	if err := that.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
