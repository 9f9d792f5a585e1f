package application

import (
	"fmt"

	"github.com/integradaneuropsicologia/ETDAH-II/internal/domain"
	"github.com/integradaneuropsicologia/ETDAH-II/internal/domain/scoring"
)

// ScoreService scores answer sets outside of a form session: files handed
// to the CLI and payloads sent over MCP or HTTP.
type ScoreService struct {
	reader domain.SubmissionReader
}

func NewScoreService(reader domain.SubmissionReader) *ScoreService {
	return &ScoreService{reader: reader}
}

// ScoreFile reads a submission from path and scores it.
func (s *ScoreService) ScoreFile(path string, requireComplete bool) (*domain.ScoringResult, error) {
	sub, err := s.reader.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading answers: %w", err)
	}
	return s.Score(sub, requireComplete)
}

// Score scores a submission. With requireComplete, a missing observation or
// item is reported as *domain.IncompleteError instead of scoring 0.
func (s *ScoreService) Score(sub domain.Submission, requireComplete bool) (*domain.ScoringResult, error) {
	if requireComplete {
		if err := sub.Validate(); err != nil {
			return nil, err
		}
	}
	res := scoring.ComputeScores(sub.Answers)
	return &res, nil
}
