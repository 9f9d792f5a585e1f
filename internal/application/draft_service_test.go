package application_test

import (
	"context"
	"testing"

	"github.com/integradaneuropsicologia/ETDAH-II/internal/application"
	"github.com/integradaneuropsicologia/ETDAH-II/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftService_SaveAndLoad(t *testing.T) {
	store := newMemDrafts()
	svc := application.NewDraftService(store, "ETDAH_II", clock)
	ctx := context.Background()

	progress, err := svc.Save(ctx, "tok-1", domain.Draft{
		Observations: []string{"É agitada."},
		Answers:      domain.Answers{1: "DT", 2: "", 99: "CT", 46: "C"},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.Progress{Answered: 3, Total: 47}, progress)
	assert.Equal(t, "3/47 respondidas", progress.String())

	saved := store.drafts["ETDAH_II_tok-1"]
	assert.Equal(t, domain.Answers{1: "DT", 46: "C"}, saved.Answers)
	assert.Equal(t, "2026-03-10T14:00:00Z", saved.SavedAt)

	d, p, err := svc.Load(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, saved, d)
	assert.Equal(t, 3, p.Answered)
}

func TestDraftService_LoadMissingReturnsEmpty(t *testing.T) {
	svc := application.NewDraftService(newMemDrafts(), "ETDAH_II", clock)

	d, p, err := svc.Load(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, d.Answers)
	assert.Equal(t, 0, p.Answered)
	assert.Equal(t, domain.RequiredAnswers, p.Total)
}

func TestDraftService_NoTokenKey(t *testing.T) {
	store := newMemDrafts()
	svc := application.NewDraftService(store, "ETDAH_II", clock)

	_, err := svc.Save(context.Background(), "", domain.Draft{Answers: domain.Answers{5: "D"}})
	require.NoError(t, err)
	assert.Contains(t, store.drafts, "ETDAH_II_no_token")

	require.NoError(t, svc.Clear(context.Background(), ""))
	assert.Empty(t, store.drafts)
}

func TestDraftService_StoreError(t *testing.T) {
	store := newMemDrafts()
	store.err = errBoom
	svc := application.NewDraftService(store, "ETDAH_II", clock)

	_, err := svc.Save(context.Background(), "t", domain.Draft{})
	assert.ErrorIs(t, err, errBoom)
	_, _, err = svc.Load(context.Background(), "t")
	assert.ErrorIs(t, err, errBoom)
}
