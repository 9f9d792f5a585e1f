package application_test

import (
	"testing"

	"github.com/integradaneuropsicologia/ETDAH-II/internal/application"
	"github.com/integradaneuropsicologia/ETDAH-II/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreService_ScoreFile(t *testing.T) {
	svc := application.NewScoreService(staticReader{sub: completeSubmission()})

	res, err := svc.ScoreFile("answers.yaml", true)
	require.NoError(t, err)
	assert.True(t, res.Complete())
	// CP scores 4 on normal items and 3 on the 21 inverted ones
	assert.Equal(t, 25*4+21*3, res.Total)
}

func TestScoreService_ReaderError(t *testing.T) {
	svc := application.NewScoreService(staticReader{err: errBoom})

	_, err := svc.ScoreFile("answers.yaml", false)
	require.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "reading answers")
}

func TestScoreService_PartialAnswers(t *testing.T) {
	svc := application.NewScoreService(nil)
	sub := domain.Submission{Answers: domain.Answers{16: "CT", 17: "CT"}}

	res, err := svc.Score(sub, false)
	require.NoError(t, err)
	a, _ := res.Area(domain.AreaHyperactivity)
	assert.Equal(t, 12, a.Score)
	assert.Len(t, res.Unanswered(), 44)

	_, err = svc.Score(sub, true)
	var inc *domain.IncompleteError
	require.ErrorAs(t, err, &inc)
	assert.Equal(t, domain.ObservationField, inc.Missing)
}
