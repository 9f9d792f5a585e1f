package scoring

import "github.com/integradaneuropsicologia/ETDAH-II/internal/domain"

// reflect mirrors a value on the 1..6 scale so that a high value always
// means more of the measured trait.
const reflectionBase = domain.MinPoints + domain.MaxPoints

// ScoreItem returns the points an answer contributes to its area: the
// choice's base points, reflected as 7-v for inverted items. Empty or
// unknown codes and unknown item ids score 0.
func ScoreItem(itemID int, raw string) int {
	return ScoreAnswer(itemID, raw).Points
}

// ScoreAnswer is ScoreItem with the answered state kept explicit, so that a
// missing answer is never mistaken for a low score.
func ScoreAnswer(itemID int, raw string) domain.ItemScore {
	s := domain.ItemScore{ItemID: itemID}
	if itemID < 1 || itemID > domain.ItemCount {
		return s
	}
	base := domain.ChoicePoints(raw)
	if base == 0 {
		return s
	}
	s.Answered = true
	if domain.PolarityOf(itemID) == domain.PolarityInverted {
		s.Points = reflectionBase - base
	} else {
		s.Points = base
	}
	return s
}
