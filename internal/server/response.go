package server

import (
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type successResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeJSON(log *zap.Logger, w http.ResponseWriter, code int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		log.Error("encoding response", zap.Error(err))
		http.Error(w, `{"success":false,"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(data); err != nil {
		log.Warn("writing response", zap.Error(err))
	}
}

func writeSuccess(log *zap.Logger, w http.ResponseWriter, data any) {
	writeJSON(log, w, http.StatusOK, successResponse{Success: true, Data: data})
}

func writeError(log *zap.Logger, w http.ResponseWriter, code int, msg string) {
	writeJSON(log, w, code, errorResponse{Error: msg})
}
