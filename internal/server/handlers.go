package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zaryabali001/roommate/internal/views"
)

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]any{
		"status":        "ok",
		"authenticated": s.store.Authenticated(),
	})
}

func (s *Server) snapshotHandler(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, s.store.Snapshot())
}

func (s *Server) pageHandler(w http.ResponseWriter, r *http.Request) {
	page := chi.URLParam(r, "page")
	rendered, err := s.services.View.Render(page)
	if err != nil {
		if errors.Is(err, views.ErrUnknownPage) {
			respondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		s.logger.Error("Page render failed", "page", page, "error", err)
		respondWithError(w, http.StatusInternalServerError, "failed to render page")
		return
	}
	respondWithJSON(w, http.StatusOK, rendered)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"failed to encode response"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}
