package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"github.com/wyattandrews22-lgtm/the-letter-challenge/util"
	"github.com/wyattandrews22-lgtm/the-letter-challenge/words"
	"github.com/wyattandrews22-lgtm/the-letter-challenge/ws"
)

type Server struct {
	config    *util.Config
	wsManager *ws.Manager
	dict      *words.Dictionary
	router    chi.Router
}

func NewServer(config *util.Config, dict *words.Dictionary) *Server {
	server := &Server{
		config:    config,
		wsManager: ws.NewManager(config, dict),
		dict:      dict,
		router:    chi.NewRouter(),
	}

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins(config),
		AllowedMethods: []string{http.MethodGet},
	})

	server.router.Use(c.Handler)

	server.router.Get("/ws", server.wsManager.ServeWS)
	server.router.Get("/healthz", server.Healthz)
	server.router.Get("/rooms/{id}", server.CheckRoom)

	return server
}

// Manager exposes the websocket manager, mainly for tests.
func (s *Server) Manager() *ws.Manager {
	return s.wsManager
}

func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) Start() error {
	return http.ListenAndServe(fmt.Sprintf(":%v", s.config.Port), s.router)
}

func allowedOrigins(config *util.Config) []string {
	if config.AllowedOrigins == "" {
		return []string{"*"}
	}

	origins := strings.Split(config.AllowedOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	return origins
}
