package application

import (
	"context"
	"fmt"
	"time"

	"github.com/integradaneuropsicologia/ETDAH-II/internal/domain"
)

// DraftService autosaves partially answered forms per token.
type DraftService struct {
	store domain.DraftStore
	code  string
	now   func() time.Time
}

func NewDraftService(store domain.DraftStore, code string, now func() time.Time) *DraftService {
	if now == nil {
		now = time.Now
	}
	return &DraftService{store: store, code: code, now: now}
}

// Save stores the draft, dropping answers for unknown items, and returns the
// resulting progress.
func (s *DraftService) Save(ctx context.Context, token string, d domain.Draft) (domain.Progress, error) {
	clean := domain.Draft{
		Observations: d.Observations,
		Answers:      domain.Answers{},
		SavedAt:      s.now().UTC().Format(time.RFC3339),
	}
	for id, v := range d.Answers {
		if _, ok := domain.ItemByID(id); ok && v != "" {
			clean.Answers[id] = v
		}
	}

	if err := s.store.Save(ctx, domain.DraftKey(s.code, token), clean); err != nil {
		return domain.Progress{}, fmt.Errorf("saving draft: %w", err)
	}
	return progressOf(clean), nil
}

// Load returns the saved draft, or an empty one when nothing was saved.
func (s *DraftService) Load(ctx context.Context, token string) (domain.Draft, domain.Progress, error) {
	d, err := s.store.Load(ctx, domain.DraftKey(s.code, token))
	if err != nil {
		return domain.Draft{}, domain.Progress{}, fmt.Errorf("loading draft: %w", err)
	}
	if d == nil {
		d = &domain.Draft{Answers: domain.Answers{}}
	}
	return *d, progressOf(*d), nil
}

// Clear removes the draft.
func (s *DraftService) Clear(ctx context.Context, token string) error {
	if err := s.store.Clear(ctx, domain.DraftKey(s.code, token)); err != nil {
		return fmt.Errorf("clearing draft: %w", err)
	}
	return nil
}

func progressOf(d domain.Draft) domain.Progress {
	return domain.Progress{Answered: d.Answered(), Total: domain.RequiredAnswers}
}
