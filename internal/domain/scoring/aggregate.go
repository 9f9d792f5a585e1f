package scoring

import "github.com/integradaneuropsicologia/ETDAH-II/internal/domain"

// ComputeScores scores all 46 items, sums each area, classifies the sums
// and totals them. Missing or unrecognised answers contribute 0; the caller
// is expected to have checked completeness beforehand.
func ComputeScores(answers domain.Answers) domain.ScoringResult {
	var res domain.ScoringResult

	res.Items = make([]domain.ItemScore, 0, domain.ItemCount)
	for id := 1; id <= domain.ItemCount; id++ {
		res.Items = append(res.Items, ScoreAnswer(id, answers[id]))
	}

	for i, area := range domain.Areas() {
		sum := sumRange(res.Items, area.First, area.Last)
		class := area.Classify(sum)
		res.Areas[i] = domain.AreaResult{
			Area:           area.ID,
			Score:          sum,
			Classification: class,
			Description:    domain.DescriptionFor(class),
		}
		res.Total += sum
	}

	return res
}

// sumRange adds the points of items first..last inclusive. items is indexed
// by id-1.
func sumRange(items []domain.ItemScore, first, last int) int {
	s := 0
	for id := first; id <= last; id++ {
		s += items[id-1].Points
	}
	return s
}
