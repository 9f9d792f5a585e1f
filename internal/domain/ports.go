package domain

import "context"

// SheetStore is the spreadsheet-backed REST API holding tokens, patients
// and scores.
type SheetStore interface {
	Search(ctx context.Context, sheet string, params map[string]string) ([]Row, error)
	Create(ctx context.Context, sheet string, row Row) error
	PatchBy(ctx context.Context, sheet, column, value string, data Row) error
}

// DraftStore keeps autosaved drafts keyed by DraftKey. Load returns
// (nil, nil) when no draft exists.
type DraftStore interface {
	Load(ctx context.Context, key string) (*Draft, error)
	Save(ctx context.Context, key string, draft Draft) error
	Clear(ctx context.Context, key string) error
}

// ConfigLoader loads the form configuration from a directory.
type ConfigLoader interface {
	Load(dir string) (FormConfig, error)
}

// SubmissionHistory is the local log of persisted submissions.
type SubmissionHistory interface {
	Save(dir string, entry SubmissionEntry) error
	Load(dir string) ([]SubmissionEntry, error)
}

// SubmissionReader reads an answer set from a file.
type SubmissionReader interface {
	Read(path string) (Submission, error)
}
