package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/integradaneuropsicologia/ETDAH-II/internal/domain"
)

// Response helpers

type apiResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *apiError `json:"error,omitempty"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Missing string `json:"missing,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, apiErr apiError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(apiResponse{Success: false, Error: &apiErr}); err != nil {
		slog.Error("failed to encode error response", "error", err)
	}
}

// respondDomainError maps service errors to HTTP statuses. Anything not
// recognised is an upstream failure.
func respondDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var inc *domain.IncompleteError
	switch {
	case errors.As(err, &inc):
		respondError(w, http.StatusUnprocessableEntity, apiError{Code: "incomplete", Message: err.Error(), Missing: inc.Missing})
	case errors.Is(err, domain.ErrMissingToken):
		respondError(w, http.StatusBadRequest, apiError{Code: "missing_token", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidToken):
		respondError(w, http.StatusUnauthorized, apiError{Code: "invalid_token", Message: err.Error()})
	case errors.Is(err, domain.ErrTokenExpired):
		respondError(w, http.StatusUnauthorized, apiError{Code: "token_expired", Message: err.Error()})
	case errors.Is(err, domain.ErrTokenWithoutCPF):
		respondError(w, http.StatusUnprocessableEntity, apiError{Code: "token_without_cpf", Message: err.Error()})
	case errors.Is(err, domain.ErrPatientNotFound):
		respondError(w, http.StatusNotFound, apiError{Code: "patient_not_found", Message: err.Error()})
	case errors.Is(err, domain.ErrFormNotReleased):
		respondError(w, http.StatusForbidden, apiError{Code: "form_not_released", Message: err.Error()})
	case errors.Is(err, domain.ErrAlreadySubmitted):
		respondError(w, http.StatusConflict, apiError{Code: "already_submitted", Message: err.Error()})
	default:
		slog.Error("request failed",
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
			"error", err,
		)
		respondError(w, http.StatusBadGateway, apiError{Code: "upstream_error", Message: "falha ao comunicar com a planilha"})
	}
}

// Health handler

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   s.now().UTC().Format(time.RFC3339),
	})
}

// Instrument handler

type instrumentResponse struct {
	Code                string        `json:"code"`
	ObservationQuestion string        `json:"observation_question"`
	ObservationChoices  []string      `json:"observation_choices"`
	Choices             []choiceView  `json:"choices"`
	Sections            []sectionView `json:"sections"`
}

type choiceView struct {
	domain.Choice
	Label string `json:"label"`
}

type sectionView struct {
	Area  domain.AreaID `json:"area"`
	Title string        `json:"title"`
	Items []domain.Item `json:"items"`
}

func (s *Server) handleInstrument(w http.ResponseWriter, r *http.Request) {
	resp := instrumentResponse{
		Code:                domain.Code,
		ObservationQuestion: domain.ObservationQuestion,
		ObservationChoices:  domain.ObservationChoices(),
	}
	for _, c := range domain.Choices() {
		resp.Choices = append(resp.Choices, choiceView{Choice: c, Label: c.Label()})
	}
	items := domain.Items()
	for _, a := range domain.Areas() {
		resp.Sections = append(resp.Sections, sectionView{
			Area:  a.ID,
			Title: a.Title,
			Items: items[a.First-1 : a.Last],
		})
	}
	respondJSON(w, http.StatusOK, resp)
}

// Session handler

type sessionResponse struct {
	Session     *domain.Session `json:"session"`
	BirthDateBR string          `json:"birth_date_br"`
	Draft       domain.Draft    `json:"draft"`
	Progress    domain.Progress `json:"progress"`
}

func (s *Server) handleOpenSession(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")

	sess, err := s.sessions.Open(r.Context(), token)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	d, progress, err := s.drafts.Load(r.Context(), token)
	if err != nil {
		slog.Warn("failed to load draft", "error", err)
		d, progress = domain.Draft{Answers: domain.Answers{}}, domain.Progress{Total: domain.RequiredAnswers}
	}

	respondJSON(w, http.StatusOK, sessionResponse{
		Session:     sess,
		BirthDateBR: sess.Patient.BirthDateBR(),
		Draft:       d,
		Progress:    progress,
	})
}

// Score handler

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var sub domain.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		respondError(w, http.StatusBadRequest, apiError{Code: "invalid_request", Message: "invalid JSON body"})
		return
	}
	strict, _ := strconv.ParseBool(r.URL.Query().Get("strict"))

	res, err := s.scores.Score(sub, strict)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// Submit handler

type submitRequest struct {
	Token        string         `json:"token"`
	StartedAt    *time.Time     `json:"started_at,omitempty"`
	Observations []string       `json:"obs"`
	Answers      domain.Answers `json:"answers"`
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, apiError{Code: "invalid_request", Message: "invalid JSON body"})
		return
	}

	sess, err := s.sessions.Open(r.Context(), req.Token)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	if req.StartedAt != nil && req.StartedAt.Before(sess.StartedAt) {
		sess.StartedAt = *req.StartedAt
	}

	receipt, err := s.submits.Submit(r.Context(), sess, domain.Submission{
		Observations: req.Observations,
		Answers:      req.Answers,
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	slog.Info("submission saved",
		"result_id", receipt.ResultID,
		"total", receipt.Result.Total,
		"duration_sec", receipt.DurationSec,
	)
	respondJSON(w, http.StatusCreated, receipt)
}

// Draft handlers

type draftResponse struct {
	Draft    *domain.Draft   `json:"draft,omitempty"`
	Progress domain.Progress `json:"progress"`
}

func (s *Server) handleLoadDraft(w http.ResponseWriter, r *http.Request) {
	d, progress, err := s.drafts.Load(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, draftResponse{Draft: &d, Progress: progress})
}

func (s *Server) handleSaveDraft(w http.ResponseWriter, r *http.Request) {
	var d domain.Draft
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		respondError(w, http.StatusBadRequest, apiError{Code: "invalid_request", Message: "invalid JSON body"})
		return
	}

	progress, err := s.drafts.Save(r.Context(), r.URL.Query().Get("token"), d)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, draftResponse{Progress: progress})
}

func (s *Server) handleClearDraft(w http.ResponseWriter, r *http.Request) {
	if err := s.drafts.Clear(r.Context(), r.URL.Query().Get("token")); err != nil {
		respondDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
