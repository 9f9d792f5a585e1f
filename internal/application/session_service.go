package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/integradaneuropsicologia/ETDAH-II/internal/domain"
)

// expiresLayouts are the expires_at formats found in the tokens sheet.
var expiresLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// SessionService opens a form session from a link token:
// token → tokens sheet → patient → release flag → duplicate check.
type SessionService struct {
	sheets domain.SheetStore
	cfg    domain.FormConfig
	now    func() time.Time
}

func NewSessionService(sheets domain.SheetStore, cfg domain.FormConfig, now func() time.Time) *SessionService {
	if now == nil {
		now = time.Now
	}
	return &SessionService{sheets: sheets, cfg: cfg, now: now}
}

// Open validates the token and returns a session ready to be answered.
func (s *SessionService) Open(ctx context.Context, token string) (*domain.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domain.ErrMissingToken
	}

	// 1. Token row
	tokens, err := s.sheets.Search(ctx, s.cfg.Sheets.Tokens, map[string]string{"token": token})
	if err != nil {
		return nil, fmt.Errorf("looking up token: %w", err)
	}
	if len(tokens) == 0 {
		return nil, domain.ErrInvalidToken
	}
	tok := tokens[0]

	// 2. Disabled or expired
	if domain.IsYes(tok["disabled"]) || s.expired(tok["expires_at"]) {
		return nil, domain.ErrTokenExpired
	}

	cpf := domain.OnlyDigits(tok["cpf"])
	if cpf == "" {
		return nil, domain.ErrTokenWithoutCPF
	}

	// 3. Patient
	patients, err := s.sheets.Search(ctx, s.cfg.Sheets.Patients, map[string]string{"cpf": cpf})
	if err != nil {
		return nil, fmt.Errorf("looking up patient: %w", err)
	}
	if len(patients) == 0 {
		return nil, domain.ErrPatientNotFound
	}
	row := patients[0]

	// 4. Released for this instrument
	if !domain.IsYes(row[s.cfg.Code]) {
		return nil, domain.ErrFormNotReleased
	}

	// 5. Already answered, by flag or by an existing score row
	if domain.IsYes(row[s.cfg.DoneColumn()]) {
		return nil, domain.ErrAlreadySubmitted
	}
	done, err := s.AlreadySubmitted(ctx, cpf)
	if err != nil {
		return nil, err
	}
	if done {
		return nil, domain.ErrAlreadySubmitted
	}

	return &domain.Session{
		Token:     token,
		CPF:       cpf,
		Patient:   domain.PatientFromRow(row),
		StartedAt: s.now(),
	}, nil
}

// AlreadySubmitted reports whether the scores sheet holds a row for this
// patient and instrument.
func (s *SessionService) AlreadySubmitted(ctx context.Context, cpf string) (bool, error) {
	rows, err := s.sheets.Search(ctx, s.cfg.Sheets.Scores, map[string]string{
		"cpf":  domain.OnlyDigits(cpf),
		"code": s.cfg.Code,
	})
	if err != nil {
		return false, fmt.Errorf("checking previous submissions: %w", err)
	}
	return len(rows) > 0, nil
}

// expired reports whether expires_at lies in the past. Empty or unparsable
// values never expire.
func (s *SessionService) expired(expiresAt string) bool {
	expiresAt = strings.TrimSpace(expiresAt)
	if expiresAt == "" {
		return false
	}
	for _, layout := range expiresLayouts {
		if t, err := time.Parse(layout, expiresAt); err == nil {
			return t.Before(s.now())
		}
	}
	return false
}
