// internal/server/server.go
// Package server exposes the wizard engine over a JSON HTTP API. It is a
// host surface only: every rule lives in the wizard package and the
// handlers never validate record content themselves.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"pageant-wizard/internal/common/logger"
	"pageant-wizard/internal/models"
	"pageant-wizard/internal/wizard"
)

type Server struct {
	manager       *SessionManager
	logger        logger.Logger
	maxPhotoBytes int64
}

func New(manager *SessionManager, maxPhotoBytes int64, log logger.Logger) *Server {
	return &Server{
		manager:       manager,
		logger:        log.WithFields(map[string]interface{}{"component": "http-server"}),
		maxPhotoBytes: maxPhotoBytes,
	}
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("POST /sessions", s.handleCreateSession)
	mux.HandleFunc("GET /sessions/{id}", s.handleGetSession)
	mux.HandleFunc("DELETE /sessions/{id}", s.handleDeleteSession)
	mux.HandleFunc("POST /sessions/{id}/edit", s.handleEdit)
	mux.HandleFunc("POST /sessions/{id}/photos/{slot}", s.handlePhotoUpload)
	mux.HandleFunc("POST /sessions/{id}/advance", s.handleAdvance)
	mux.HandleFunc("POST /sessions/{id}/retreat", s.handleRetreat)
	mux.HandleFunc("POST /sessions/{id}/jump", s.handleJump)
	mux.HandleFunc("POST /sessions/{id}/submit", s.handleSubmit)
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCreateSession(w http.ResponseWriter, _ *http.Request) {
	id, ctrl := s.manager.Create()
	s.logger.Info("session created", map[string]interface{}{"sessionId": id})
	writeJSON(w, http.StatusCreated, createSessionResponse{
		SessionID: id,
		State:     ctrl.Snapshot(),
	})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := s.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, stateResponse{State: ctrl.Snapshot()})
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := s.manager.Get(id); !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "session not found"})
		return
	}
	s.manager.Delete(id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleEdit(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := s.session(w, r)
	if !ok {
		return
	}

	var req editRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	state, err := ctrl.Edit(req.Field, req.Value)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, wizard.ErrSubmissionInProgress) {
			status = http.StatusConflict
		}
		writeJSON(w, status, errorResponse{Error: err.Error(), State: state})
		return
	}
	writeJSON(w, http.StatusOK, stateResponse{State: state})
}

func (s *Server) handlePhotoUpload(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := s.session(w, r)
	if !ok {
		return
	}

	slot := models.Field(r.PathValue("slot"))
	name := r.Header.Get("X-Photo-Name")
	if name == "" {
		name = "photo"
	}

	// Read one byte past the cap so the size rule can fire instead of a
	// silent truncation.
	body := http.MaxBytesReader(w, r.Body, s.maxPhotoBytes+1)
	data, err := io.ReadAll(body)
	if err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "photo exceeds the maximum file size"})
		return
	}

	state, err := ctrl.SetPhoto(slot, &models.PhotoSlot{
		Name: name,
		Size: int64(len(data)),
		Data: data,
	})
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), State: state})
		return
	}
	writeJSON(w, http.StatusOK, stateResponse{State: state})
}

func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := s.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, stateResponse{State: ctrl.Advance()})
}

func (s *Server) handleRetreat(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := s.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, stateResponse{State: ctrl.Retreat()})
}

func (s *Server) handleJump(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := s.session(w, r)
	if !ok {
		return
	}

	var req jumpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	writeJSON(w, http.StatusOK, stateResponse{State: ctrl.JumpTo(req.Section)})
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := s.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, stateResponse{State: ctrl.Submit(r.Context())})
}

func (s *Server) session(w http.ResponseWriter, r *http.Request) (*wizard.Controller, bool) {
	id := r.PathValue("id")
	ctrl, ok := s.manager.Get(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "session not found"})
		return nil, false
	}
	return ctrl, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
