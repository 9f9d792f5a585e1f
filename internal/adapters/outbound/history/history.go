package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/integradaneuropsicologia/ETDAH-II/internal/domain"
)

const historyFile = "history/submissions.json"

var _ domain.SubmissionHistory = (*FileHistory)(nil)

// FileHistory implements domain.SubmissionHistory using JSON file storage
// under the data directory. It is safe for concurrent use; the file is
// replaced atomically on every save.
type FileHistory struct {
	mu sync.Mutex
}

func New() *FileHistory {
	return &FileHistory{}
}

func (h *FileHistory) Save(dataDir string, entry domain.SubmissionEntry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries, err := h.load(dataDir)
	if err != nil {
		return err
	}

	entries = append(entries, entry)

	fp := filepath.Join(dataDir, historyFile)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return writeFileAtomic(fp, data)
}

func (h *FileHistory) Load(dataDir string) ([]domain.SubmissionEntry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.load(dataDir)
}

func (h *FileHistory) load(dataDir string) ([]domain.SubmissionEntry, error) {
	fp := filepath.Join(dataDir, historyFile)

	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.SubmissionEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

// writeFileAtomic writes to a temp file in the same directory and renames it
// over fp, so readers never see a partial file.
func writeFileAtomic(fp string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(fp), filepath.Base(fp)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), fp)
}
