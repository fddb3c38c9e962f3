package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/medscroll/onboarding/internal/catalog"
	"github.com/medscroll/onboarding/internal/onboarding"
)

// Engine is the slice of the onboarding service the API needs.
type Engine interface {
	Ask(ctx context.Context, userID string, answer *onboarding.Answer) (catalog.Question, error)
	Reset(ctx context.Context, userID string) (int, error)
}

type askRequest struct {
	UserID string         `json:"userId"`
	Answer *answerPayload `json:"answer,omitempty"`
}

type answerPayload struct {
	Prompt   string           `json:"prompt,omitempty"`
	Progress int              `json:"progress,omitempty"`
	Options  []catalog.Option `json:"options,omitempty"`
	Response string           `json:"response"`
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.UserID == "" {
		jsonError(w, "userId is required", http.StatusBadRequest)
		return
	}

	var answer *onboarding.Answer
	if req.Answer != nil {
		answer = &onboarding.Answer{
			Prompt:   req.Answer.Prompt,
			Progress: req.Answer.Progress,
			Options:  req.Answer.Options,
			Response: req.Answer.Response,
		}
	}

	next, err := s.svc.Ask(r.Context(), req.UserID, answer)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, next)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		jsonError(w, "userID is required", http.StatusBadRequest)
		return
	}

	count, err := s.svc.Reset(r.Context(), userID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"count": count})
}

// writeError maps engine errors onto status codes: bad input → 400,
// collaborator failures → 502 (retryable), persistence → 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var (
		validation   *onboarding.ErrValidation
		collaborator *onboarding.ErrCollaborator
	)
	switch {
	case errors.As(err, &validation):
		jsonError(w, validation.Error(), http.StatusBadRequest)
	case errors.As(err, &collaborator):
		s.log.Error().Err(err).Msg("collaborator failure")
		jsonError(w, "upstream failure, retry", http.StatusBadGateway)
	default:
		s.log.Error().Err(err).Msg("request failed")
		jsonError(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}
