package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"vkazarin/zametki_bot/internal/pkg/httputils"
	"vkazarin/zametki_bot/internal/service"
)

// StatusHandler — служебные маршруты бота: ping и проверка хранилища.
type StatusHandler struct {
	storage service.StorageClient
}

func NewStatusHandler(storage service.StorageClient) *StatusHandler {
	return &StatusHandler{storage: storage}
}

func (h *StatusHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/ping", h.ping).Methods("GET", "OPTIONS")
	router.HandleFunc("/health", h.health).Methods("GET", "OPTIONS")
}

type PongResponse struct {
	Message string `json:"message"`
}

func (h *StatusHandler) ping(w http.ResponseWriter, r *http.Request) {
	httputils.ResponseJSON(w, http.StatusOK, PongResponse{Message: "Pong"})
}

type HealthResponse struct {
	Status string `json:"status"`
}

func (h *StatusHandler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.storage.HealthCheck(r.Context()); err != nil {
		httputils.ResponseError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	httputils.ResponseJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
