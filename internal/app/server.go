package app

import (
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"vkazarin/zametki_bot/internal/handler"
)

// Server — служебный HTTP-сервер бота (ping, health).
type Server struct {
	router *mux.Router
}

func NewServer(statusHandler *handler.StatusHandler) *Server {
	router := mux.NewRouter()
	statusHandler.RegisterRoutes(router)
	return &Server{router: router}
}

func (s *Server) Run(port string, log *zap.Logger) error {
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	srv := &http.Server{
		Handler:      cors(s.router),
		Addr:         ":" + port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	log.Info("служебный сервер запущен", zap.String("port", port))
	return srv.ListenAndServe()
}
