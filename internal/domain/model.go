package domain

// Polarity tells whether an item is worded in the direction of the trait its
// area measures or against it.
type Polarity string

const (
	PolarityNormal   Polarity = "normal"
	PolarityInverted Polarity = "inverted"
)

// Item is one statement of the rating scale.
type Item struct {
	ID       int      `json:"id"`
	Text     string   `json:"text"`
	Polarity Polarity `json:"polarity"`
}

// Inverted reports whether the item is reverse-coded.
func (i Item) Inverted() bool { return i.Polarity == PolarityInverted }

// Choice is one of the six Likert categories.
type Choice struct {
	Code   string `json:"code"`
	Text   string `json:"text"`
	Points int    `json:"points"`
}

// Label is the radio value the form submits for this choice, e.g.
// "DT - Discordo Totalmente".
func (c Choice) Label() string { return c.Code + " - " + c.Text }

// Answers maps an item id to the raw choice value picked for it.
// A missing key means the item was left unanswered.
type Answers map[int]string

// Classification is the ordinal band an area score falls into.
type Classification string

const (
	ClassInferior      Classification = "INFERIOR"
	ClassMediaInferior Classification = "MÉDIA INFERIOR"
	ClassMedia         Classification = "MÉDIA"
	ClassMediaSuperior Classification = "MÉDIA SUPERIOR"
	ClassSuperior      Classification = "SUPERIOR"
)

// Classifications lists the bands from lowest to highest.
func Classifications() []Classification {
	out := make([]Classification, len(classifications))
	copy(out, classifications[:])
	return out
}

var classifications = [...]Classification{ClassInferior, ClassMediaInferior, ClassMedia, ClassMediaSuperior, ClassSuperior}

// AreaID identifies one of the four behavioural areas.
type AreaID string

const (
	AreaAttention     AreaID = "atencao"
	AreaHyperactivity AreaID = "hiperatividade_impulsividade"
	AreaLearning      AreaID = "aprendizagem"
	AreaSocial        AreaID = "comportamento_social"
)

// Area is a contiguous block of items summed into one sub-score.
// Cutpoints holds the inclusive upper bounds of the four lower bands;
// anything above the last one is SUPERIOR.
type Area struct {
	ID        AreaID `json:"id"`
	Title     string `json:"title"`
	First     int    `json:"first_item"`
	Last      int    `json:"last_item"`
	Cutpoints [4]int `json:"cutpoints"`
}

// Size is the number of items in the area.
func (a Area) Size() int { return a.Last - a.First + 1 }

// Contains reports whether the item id belongs to the area.
func (a Area) Contains(itemID int) bool { return itemID >= a.First && itemID <= a.Last }

// MinScore and MaxScore bound the sum of a fully answered area.
func (a Area) MinScore() int { return a.Size() * MinPoints }
func (a Area) MaxScore() int { return a.Size() * MaxPoints }

// Classify maps an area sum onto its band. Bands are scanned in ascending
// order with <=; the first bound not exceeded wins.
func (a Area) Classify(score int) Classification {
	for i, upper := range a.Cutpoints {
		if score <= upper {
			return classifications[i]
		}
	}
	return ClassSuperior
}

// ItemScore is the scored value of one item. Points is 0 when the item was
// not answered or the choice code was not recognised.
type ItemScore struct {
	ItemID   int  `json:"item_id"`
	Points   int  `json:"points"`
	Answered bool `json:"answered"`
}

// AreaResult is the score, band and description of one area.
type AreaResult struct {
	Area           AreaID         `json:"area"`
	Score          int            `json:"score"`
	Classification Classification `json:"classification"`
	Description    string         `json:"description"`
}

// ScoringResult is the complete outcome of scoring one answer set.
type ScoringResult struct {
	Areas [4]AreaResult `json:"areas"`
	Items []ItemScore   `json:"items"`
	Total int           `json:"total"`
}

// Area returns the result for the given area.
func (r ScoringResult) Area(id AreaID) (AreaResult, bool) {
	for _, a := range r.Areas {
		if a.Area == id {
			return a, true
		}
	}
	return AreaResult{}, false
}

// Unanswered lists the ids of items that contributed no points because no
// valid choice was recorded for them.
func (r ScoringResult) Unanswered() []int {
	var ids []int
	for _, it := range r.Items {
		if !it.Answered {
			ids = append(ids, it.ItemID)
		}
	}
	return ids
}

// Complete reports whether every item carried a valid choice.
func (r ScoringResult) Complete() bool { return len(r.Unanswered()) == 0 }

// AreaEntry is one area block of the persisted document.
type AreaEntry struct {
	Score         int            `json:"score"`
	Classificacao Classification `json:"classificacao"`
	Resultado     string         `json:"resultado"`
}

// TotalScore is the grand total block of the persisted document.
type TotalScore struct {
	Score int `json:"score"`
}

// ScoreDocument is the nested object stored in the "categoria" column of
// the scores sheet. Field order is the order the form always wrote.
type ScoreDocument struct {
	Atencao             AreaEntry  `json:"atencao"`
	Hiperatividade      AreaEntry  `json:"hiperatividade_impulsividade"`
	Aprendizagem        AreaEntry  `json:"aprendizagem"`
	ComportamentoSocial AreaEntry  `json:"comportamento_social"`
	TotalGeral          TotalScore `json:"total_geral"`
}

// Document converts the result into the persisted layout.
func (r ScoringResult) Document() ScoreDocument {
	entry := func(id AreaID) AreaEntry {
		a, _ := r.Area(id)
		return AreaEntry{Score: a.Score, Classificacao: a.Classification, Resultado: a.Description}
	}
	return ScoreDocument{
		Atencao:             entry(AreaAttention),
		Hiperatividade:      entry(AreaHyperactivity),
		Aprendizagem:        entry(AreaLearning),
		ComportamentoSocial: entry(AreaSocial),
		TotalGeral:          TotalScore{Score: r.Total},
	}
}
