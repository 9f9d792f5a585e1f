package answerfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/integradaneuropsicologia/ETDAH-II/internal/domain"
	"gopkg.in/yaml.v3"
)

// Reader implements domain.SubmissionReader for YAML and JSON answer files:
//
//	obs: ["É agitada."]
//	answers:
//	  1: DT
//	  2: "CP - Concordo Parcialmente"
type Reader struct{}

var _ domain.SubmissionReader = (*Reader)(nil)

func New() *Reader { return &Reader{} }

// Read decodes path as JSON when it ends in .json and as YAML otherwise.
func (r *Reader) Read(path string) (domain.Submission, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Submission{}, err
	}

	var sub domain.Submission
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &sub)
	} else {
		err = yaml.Unmarshal(data, &sub)
	}
	if err != nil {
		return domain.Submission{}, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	if sub.Answers == nil {
		sub.Answers = domain.Answers{}
	}
	for id := range sub.Answers {
		if _, ok := domain.ItemByID(id); !ok {
			return domain.Submission{}, fmt.Errorf("parsing %s: unknown item %d (valid: 1-%d)",
				filepath.Base(path), id, domain.ItemCount)
		}
	}
	return sub, nil
}
