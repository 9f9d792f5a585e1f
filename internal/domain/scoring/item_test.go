package scoring_test

import (
	"testing"

	"github.com/integradaneuropsicologia/ETDAH-II/internal/domain"
	"github.com/integradaneuropsicologia/ETDAH-II/internal/domain/scoring"
	"github.com/stretchr/testify/assert"
)

func TestScoreItem_ValidCodesStayOnScale(t *testing.T) {
	for id := 1; id <= domain.ItemCount; id++ {
		for _, c := range domain.Choices() {
			got := scoring.ScoreItem(id, c.Code)
			assert.GreaterOrEqual(t, got, 1, "item %d code %s", id, c.Code)
			assert.LessOrEqual(t, got, 6, "item %d code %s", id, c.Code)
		}
	}
}

func TestScoreItem_EmptyOrUnknownScoresZero(t *testing.T) {
	tests := []struct {
		name string
		id   int
		raw  string
	}{
		{"empty", 1, ""},
		{"blank", 10, "   "},
		{"unknown code", 10, "XX"},
		{"lowercase code", 10, "ct"},
		{"unknown label", 1, "ZZ - Talvez"},
		{"item zero", 0, "CT"},
		{"item past end", 47, "CT"},
		{"negative item", -3, "DT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 0, scoring.ScoreItem(tt.id, tt.raw))
		})
	}
}

func TestScoreItem_InversionLaw(t *testing.T) {
	for id := 1; id <= domain.ItemCount; id++ {
		item, ok := domain.ItemByID(id)
		assert.True(t, ok)
		for _, c := range domain.Choices() {
			got := scoring.ScoreItem(id, c.Code)
			if item.Inverted() {
				assert.Equal(t, 7-c.Points, got, "inverted item %d code %s", id, c.Code)
			} else {
				assert.Equal(t, c.Points, got, "item %d code %s", id, c.Code)
			}
		}
	}
}

func TestScoreItem_InvertedAndNormalTwinsSumToSeven(t *testing.T) {
	// item 1 is inverted, item 10 is not
	for _, c := range domain.Choices() {
		assert.Equal(t, 7, scoring.ScoreItem(1, c.Code)+scoring.ScoreItem(10, c.Code), c.Code)
	}
}

func TestScoreItem_AcceptsFormLabel(t *testing.T) {
	assert.Equal(t, 6, scoring.ScoreItem(1, "DT - Discordo Totalmente"))
	assert.Equal(t, 1, scoring.ScoreItem(10, "DT - Discordo Totalmente"))
	assert.Equal(t, 4, scoring.ScoreItem(16, "CP - Concordo Parcialmente"))
	assert.Equal(t, 3, scoring.ScoreItem(45, "CP - Concordo Parcialmente"))
	assert.Equal(t, 5, scoring.ScoreItem(44, " C "))
}

func TestScoreAnswer_KeepsUnansweredDistinct(t *testing.T) {
	missing := scoring.ScoreAnswer(12, "")
	assert.False(t, missing.Answered)
	assert.Equal(t, 0, missing.Points)
	assert.Equal(t, 12, missing.ItemID)

	low := scoring.ScoreAnswer(12, "DT")
	assert.True(t, low.Answered)
	assert.Equal(t, 1, low.Points)

	unknown := scoring.ScoreAnswer(12, "??")
	assert.False(t, unknown.Answered)
}

func TestInvertedItemSet(t *testing.T) {
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 25, 26, 27, 34, 35, 36, 37, 38, 39, 40, 45, 46}
	assert.Equal(t, want, domain.InvertedItemIDs())
}
