package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/integradaneuropsicologia/ETDAH-II/internal/application"
	"github.com/integradaneuropsicologia/ETDAH-II/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

// seeded returns a store with one valid token bound to a released patient.
func seeded() *fakeSheets {
	f := newFakeSheets()
	f.add("LinkTokens", domain.Row{"token": "tok-1", "cpf": "123.456.789-01", "disabled": "não", "expires_at": "2026-12-31"})
	f.add("Patients", domain.Row{"cpf": "12345678901", "nome": "Ana", "data_nascimento": "2016-04-09", "ETDAH_II": "sim"})
	return f
}

func TestSessionService_Open(t *testing.T) {
	svc := application.NewSessionService(seeded(), domain.DefaultConfig(), clock)

	sess, err := svc.Open(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", sess.Token)
	assert.Equal(t, "12345678901", sess.CPF)
	assert.Equal(t, "Ana", sess.Patient.Name)
	assert.Equal(t, "09/04/2016", sess.Patient.BirthDateBR())
	assert.Equal(t, fixedNow, sess.StartedAt)
}

func TestSessionService_OpenErrors(t *testing.T) {
	tests := []struct {
		name  string
		token string
		setup func(f *fakeSheets)
		want  error
	}{
		{"missing token", "  ", nil, domain.ErrMissingToken},
		{"unknown token", "nope", nil, domain.ErrInvalidToken},
		{"disabled", "tok-1", func(f *fakeSheets) { f.rows["LinkTokens"][0]["disabled"] = "SIM" }, domain.ErrTokenExpired},
		{"expired", "tok-1", func(f *fakeSheets) { f.rows["LinkTokens"][0]["expires_at"] = "2026-03-10T13:59:00Z" }, domain.ErrTokenExpired},
		{"no cpf", "tok-1", func(f *fakeSheets) { f.rows["LinkTokens"][0]["cpf"] = "---" }, domain.ErrTokenWithoutCPF},
		{"no patient", "tok-1", func(f *fakeSheets) { f.rows["Patients"] = nil }, domain.ErrPatientNotFound},
		{"not released", "tok-1", func(f *fakeSheets) { f.rows["Patients"][0]["ETDAH_II"] = "não" }, domain.ErrFormNotReleased},
		{"done flag", "tok-1", func(f *fakeSheets) { f.rows["Patients"][0]["ETDAH_II_FEITO"] = "sim" }, domain.ErrAlreadySubmitted},
		{"score row exists", "tok-1", func(f *fakeSheets) {
			f.add("Scores_ETDAH_II", domain.Row{"cpf": "12345678901", "code": "ETDAH_II"})
		}, domain.ErrAlreadySubmitted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := seeded()
			if tt.setup != nil {
				tt.setup(f)
			}
			svc := application.NewSessionService(f, domain.DefaultConfig(), clock)

			_, err := svc.Open(context.Background(), tt.token)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSessionService_UnparsableExpiryDoesNotExpire(t *testing.T) {
	f := seeded()
	f.rows["LinkTokens"][0]["expires_at"] = "amanhã"
	svc := application.NewSessionService(f, domain.DefaultConfig(), clock)

	_, err := svc.Open(context.Background(), "tok-1")
	assert.NoError(t, err)
}

func TestSessionService_ScoreRowForOtherInstrumentIgnored(t *testing.T) {
	f := seeded()
	f.add("Scores_ETDAH_II", domain.Row{"cpf": "12345678901", "code": "SNAP_IV"})
	svc := application.NewSessionService(f, domain.DefaultConfig(), clock)

	_, err := svc.Open(context.Background(), "tok-1")
	assert.NoError(t, err)
}

func TestSessionService_StoreErrorIsWrapped(t *testing.T) {
	f := seeded()
	f.searchErr = errBoom
	svc := application.NewSessionService(f, domain.DefaultConfig(), clock)

	_, err := svc.Open(context.Background(), "tok-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "looking up token")
}
