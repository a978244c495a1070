package server

import (
	"encoding/json"
	"net/http"

	"gravenhold-server/internal/engine"
	"gravenhold-server/pkg/logger"
)

// DebugHandler предоставляет доступ к внутреннему состоянию движка
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/state", h.handleState)
	mux.HandleFunc("/debug/entities", h.handleDumpEntities)
}

// /debug/state - сводка по всем активным партиям (ход, глубина, очередь)
func (h *DebugHandler) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.DebugState())
}

// /debug/entities?player=<id> - дамп сущностей партии со всеми
// компонентами, включая скрытые параметры ИИ
func (h *DebugHandler) handleDumpEntities(w http.ResponseWriter, r *http.Request) {
	playerID := r.URL.Query().Get("player")
	entities := h.Service.DebugEntities(playerID)
	if entities == nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	writeJSON(w, entities)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.WithError(err).Warn("failed to encode debug response")
	}
}
