package application

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/integradaneuropsicologia/ETDAH-II/internal/domain"
	"github.com/integradaneuropsicologia/ETDAH-II/internal/domain/scoring"
)

// isoMillis matches JavaScript's Date.toISOString, the format already
// present in the sheets.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// SubmitService orchestrates a submission:
// completeness → duplicate check → score → scores row → patient flag → cleanup.
// Only one submission per CPF is in flight at a time; a concurrent one fails
// with domain.ErrAlreadySubmitted.
type SubmitService struct {
	sheets   domain.SheetStore
	sessions *SessionService
	drafts   domain.DraftStore
	history  domain.SubmissionHistory
	cfg      domain.FormConfig
	now      func() time.Time

	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewSubmitService wires the service. drafts and history may be nil.
func NewSubmitService(
	sheets domain.SheetStore,
	drafts domain.DraftStore,
	history domain.SubmissionHistory,
	cfg domain.FormConfig,
	now func() time.Time,
) *SubmitService {
	if now == nil {
		now = time.Now
	}
	return &SubmitService{
		sheets:   sheets,
		sessions: NewSessionService(sheets, cfg, now),
		drafts:   drafts,
		history:  history,
		cfg:      cfg,
		now:      now,
		inflight: map[string]struct{}{},
	}
}

// Submit scores and persists a complete submission for an open session.
func (s *SubmitService) Submit(ctx context.Context, sess *domain.Session, sub domain.Submission) (*domain.SubmissionReceipt, error) {
	if sess == nil {
		return nil, domain.ErrNoSession
	}

	// 1. Completeness
	if err := sub.Validate(); err != nil {
		return nil, err
	}

	// 2. Someone may have answered in another tab since the session opened,
	// or the same form may be sending right now
	if !s.acquire(sess.CPF) {
		return nil, domain.ErrAlreadySubmitted
	}
	defer s.release(sess.CPF)

	done, err := s.sessions.AlreadySubmitted(ctx, sess.Patient.CPF)
	if err != nil {
		return nil, err
	}
	if done {
		return nil, domain.ErrAlreadySubmitted
	}

	// 3. Score
	now := s.now()
	result := scoring.ComputeScores(sub.Answers)
	categoria, err := json.Marshal(result.Document())
	if err != nil {
		return nil, fmt.Errorf("encoding scores: %w", err)
	}

	questions := ""
	if s.cfg.RecordQuestions {
		questions = domain.BuildQuestionsString(sub.Observations, sub.Answers)
	}

	// 4. Scores row
	resultID := fmt.Sprintf("%s_%s_%d", sess.Patient.CPF, s.cfg.Code, now.UnixMilli())
	row := domain.Row{
		"result_id":    resultID,
		"token":        sess.Token,
		"cpf":          sess.Patient.CPF,
		"code":         s.cfg.Code,
		"source":       s.cfg.Source,
		"submitted_at": now.UTC().Format(isoMillis),
		"questions":    questions,
		"categoria":    string(categoria),
		"metrics":      "",
	}
	if err := s.sheets.Create(ctx, s.cfg.Sheets.Scores, row); err != nil {
		return nil, fmt.Errorf("saving scores: %w", err)
	}

	// 5. Patient flag
	if err := s.sheets.PatchBy(ctx, s.cfg.Sheets.Patients, "cpf", sess.Patient.CPF, domain.Row{
		s.cfg.DoneColumn():   "sim",
		s.cfg.DoneAtColumn(): now.UTC().Format(isoMillis),
	}); err != nil {
		return nil, fmt.Errorf("marking patient as done: %w", err)
	}

	receipt := &domain.SubmissionReceipt{
		ID:          uuid.NewString(),
		ResultID:    resultID,
		CPF:         sess.CPF,
		SubmittedAt: now,
		DurationSec: int(math.Round(now.Sub(sess.StartedAt).Seconds())),
		Result:      result,
		PortalURL:   domain.PortalURL(s.cfg.PortalURL, sess.Token),
	}

	// 6. Cleanup, best-effort
	if s.drafts != nil {
		if err := s.drafts.Clear(ctx, domain.DraftKey(s.cfg.Code, sess.Token)); err != nil {
			slog.Warn("clearing draft after submit", "result_id", resultID, "error", err)
		}
	}
	if s.history != nil {
		if err := s.history.Save(s.cfg.DataDir, entryFor(receipt)); err != nil {
			slog.Warn("recording submission history", "result_id", resultID, "error", err)
		}
	}

	return receipt, nil
}

func (s *SubmitService) acquire(cpf string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[cpf]; busy {
		return false
	}
	s.inflight[cpf] = struct{}{}
	return true
}

func (s *SubmitService) release(cpf string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, cpf)
}

func entryFor(r *domain.SubmissionReceipt) domain.SubmissionEntry {
	classes := make(map[domain.AreaID]domain.Classification, len(r.Result.Areas))
	for _, a := range r.Result.Areas {
		classes[a.Area] = a.Classification
	}
	return domain.SubmissionEntry{
		ID:          r.ID,
		ResultID:    r.ResultID,
		CPF:         r.CPF,
		SubmittedAt: r.SubmittedAt.UTC().Format(time.RFC3339),
		Total:       r.Result.Total,
		Classes:     classes,
	}
}
