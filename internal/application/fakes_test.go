package application_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/integradaneuropsicologia/ETDAH-II/internal/domain"
)

type patchCall struct {
	sheet, column, value string
	data                 domain.Row
}

// fakeSheets is an in-memory domain.SheetStore. Search matches rows whose
// columns equal every param, after waiting delay.
type fakeSheets struct {
	mu        sync.Mutex
	rows      map[string][]domain.Row
	created   map[string][]domain.Row
	patches   []patchCall
	searchErr error
	createErr error
	delay     time.Duration
}

func newFakeSheets() *fakeSheets {
	return &fakeSheets{rows: map[string][]domain.Row{}, created: map[string][]domain.Row{}}
}

func (f *fakeSheets) add(sheet string, r domain.Row) {
	f.rows[sheet] = append(f.rows[sheet], r)
}

func (f *fakeSheets) Search(_ context.Context, sheet string, params map[string]string) ([]domain.Row, error) {
	time.Sleep(f.delay)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	var out []domain.Row
	for _, r := range f.rows[sheet] {
		match := true
		for k, v := range params {
			if r[k] != v {
				match = false
				break
			}
		}
		if match {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeSheets) Create(_ context.Context, sheet string, row domain.Row) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.created[sheet] = append(f.created[sheet], row)
	f.rows[sheet] = append(f.rows[sheet], row)
	return nil
}

func (f *fakeSheets) PatchBy(_ context.Context, sheet, column, value string, data domain.Row) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.patches = append(f.patches, patchCall{sheet: sheet, column: column, value: value, data: data})
	return nil
}

type memDrafts struct {
	drafts map[string]domain.Draft
	err    error
}

func newMemDrafts() *memDrafts { return &memDrafts{drafts: map[string]domain.Draft{}} }

func (m *memDrafts) Load(_ context.Context, key string) (*domain.Draft, error) {
	if m.err != nil {
		return nil, m.err
	}
	d, ok := m.drafts[key]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (m *memDrafts) Save(_ context.Context, key string, d domain.Draft) error {
	if m.err != nil {
		return m.err
	}
	m.drafts[key] = d
	return nil
}

func (m *memDrafts) Clear(_ context.Context, key string) error {
	delete(m.drafts, key)
	return nil
}

type memHistory struct {
	entries []domain.SubmissionEntry
	dirs    []string
}

func (h *memHistory) Save(dir string, e domain.SubmissionEntry) error {
	h.dirs = append(h.dirs, dir)
	h.entries = append(h.entries, e)
	return nil
}

func (h *memHistory) Load(string) ([]domain.SubmissionEntry, error) { return h.entries, nil }

type staticReader struct {
	sub domain.Submission
	err error
}

func (r staticReader) Read(string) (domain.Submission, error) { return r.sub, r.err }

var errBoom = errors.New("boom")
