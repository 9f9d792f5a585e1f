package domain

import (
	"strconv"
	"strings"
	"time"
)

// Submission is what the respondent sends when finishing the form.
type Submission struct {
	Observations []string `json:"obs"     yaml:"obs"`
	Answers      Answers  `json:"answers" yaml:"answers"`
}

// FirstMissing returns the first unanswered question in form order: the
// initial observation, then items 1..46. The observation counts as missing
// unless every entry is one of ObservationChoices, and an answer whose code
// is not on the Likert scale counts as missing too. ok is false when nothing
// is missing.
func (s Submission) FirstMissing() (missing string, ok bool) {
	if !validObservations(s.Observations) {
		return ObservationField, true
	}
	for id := 1; id <= ItemCount; id++ {
		if ChoicePoints(s.Answers[id]) == 0 {
			return strconv.Itoa(id), true
		}
	}
	return "", false
}

func validObservations(obs []string) bool {
	if len(obs) == 0 {
		return false
	}
	for _, o := range obs {
		if !IsObservationChoice(o) {
			return false
		}
	}
	return true
}

// Validate returns an *IncompleteError for the first missing answer.
func (s Submission) Validate() error {
	if missing, ok := s.FirstMissing(); ok {
		return &IncompleteError{Missing: missing}
	}
	return nil
}

// Draft is the autosaved, possibly partial state of a form.
type Draft struct {
	Observations []string `json:"obs"`
	Answers      Answers  `json:"answers"`
	SavedAt      string   `json:"saved_at,omitempty"`
}

// Answered counts the answered questions, observation included.
func (d Draft) Answered() int {
	n := 0
	if len(d.Observations) > 0 {
		n++
	}
	for id := 1; id <= ItemCount; id++ {
		if d.Answers[id] != "" {
			n++
		}
	}
	return n
}

// Submission converts the draft into a submission.
func (d Draft) Submission() Submission {
	return Submission{Observations: d.Observations, Answers: d.Answers}
}

// Progress is the "answered/total" counter shown while filling the form.
type Progress struct {
	Answered int `json:"answered"`
	Total    int `json:"total"`
}

func (p Progress) String() string {
	return strconv.Itoa(p.Answered) + "/" + strconv.Itoa(p.Total) + " respondidas"
}

// DraftKey is the cache key of a draft: the instrument code plus the token,
// or "no_token" when the link carried none.
func DraftKey(code, token string) string {
	if token == "" {
		token = "no_token"
	}
	return code + "_" + token
}

// BuildQuestionsString flattens the observation and every item with its
// answer into a single " | " separated line.
func BuildQuestionsString(observations []string, answers Answers) string {
	var lines []string
	if len(observations) > 0 {
		lines = append(lines, "Observação inicial: "+strings.Join(observations, ", "))
	}
	for _, it := range Items() {
		lines = append(lines, strconv.Itoa(it.ID)+". "+it.Text+" => "+answers[it.ID])
	}
	return strings.Join(lines, " | ")
}

// SubmissionReceipt is returned once a submission has been persisted.
type SubmissionReceipt struct {
	ID          string        `json:"id"`
	ResultID    string        `json:"result_id"`
	CPF         string        `json:"cpf"`
	SubmittedAt time.Time     `json:"submitted_at"`
	DurationSec int           `json:"duration_sec"`
	Result      ScoringResult `json:"result"`
	PortalURL   string        `json:"portal_url"`
}

// SubmissionEntry is one line of the local submission log.
type SubmissionEntry struct {
	ID          string                    `json:"id"`
	ResultID    string                    `json:"result_id"`
	CPF         string                    `json:"cpf"`
	SubmittedAt string                    `json:"submitted_at"`
	Total       int                       `json:"total"`
	Classes     map[AreaID]Classification `json:"classes"`
}
