package domain

import (
	"fmt"
	"net/url"
)

// DraftBackend selects where autosaved drafts live.
type DraftBackend string

const (
	DraftBackendFile  DraftBackend = "file"
	DraftBackendRedis DraftBackend = "redis"
)

// ValidDraftBackends enumerates all recognized draft backends.
var ValidDraftBackends = []DraftBackend{DraftBackendFile, DraftBackendRedis}

// FormConfig holds the form configuration loaded from .etdah.yaml.
type FormConfig struct {
	SheetDBBase        string       `yaml:"sheetdb_base"         json:"sheetdb_base"`
	Sheets             SheetsConfig `yaml:"sheets"               json:"sheets"`
	Code               string       `yaml:"code"                 json:"code"`
	PortalURL          string       `yaml:"portal_url"           json:"portal_url"`
	Source             string       `yaml:"source"               json:"source"`
	HTTPTimeoutSeconds int          `yaml:"http_timeout_seconds" json:"http_timeout_seconds"`
	DataDir            string       `yaml:"data_dir"             json:"data_dir"`
	RecordQuestions    bool         `yaml:"record_questions"     json:"record_questions"`
	Draft              DraftConfig  `yaml:"draft"                json:"draft"`
	Server             ServerConfig `yaml:"server"               json:"server"`
}

// SheetsConfig names the three sheets of the SheetDB spreadsheet.
type SheetsConfig struct {
	Patients string `yaml:"patients" json:"patients"`
	Tokens   string `yaml:"tokens"   json:"tokens"`
	Scores   string `yaml:"scores"   json:"scores"`
}

// DraftConfig configures the autosave cache.
type DraftConfig struct {
	Backend       DraftBackend `yaml:"backend"        json:"backend"`
	Dir           string       `yaml:"dir"            json:"dir,omitempty"`
	RedisAddr     string       `yaml:"redis_addr"     json:"redis_addr,omitempty"`
	RedisPassword string       `yaml:"redis_password" json:"-"`
	RedisDB       int          `yaml:"redis_db"       json:"redis_db,omitempty"`
	TTLHours      int          `yaml:"ttl_hours"      json:"ttl_hours,omitempty"`
}

// ServerConfig configures the HTTP form backend.
type ServerConfig struct {
	Addr           string   `yaml:"addr"            json:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins" json:"allowed_origins,omitempty"`
}

// DefaultConfig returns the configuration the form shipped with.
func DefaultConfig() FormConfig {
	return FormConfig{
		SheetDBBase: "https://sheetdb.io/api/v1/8pmdh33s9fvy8",
		Sheets: SheetsConfig{
			Patients: "Patients",
			Tokens:   "LinkTokens",
			Scores:   "Scores_ETDAH_II",
		},
		Code:               Code,
		PortalURL:          "https://integradaneuropsicologia.github.io/formularios/",
		Source:             "professor",
		HTTPTimeoutSeconds: 30,
		DataDir:            ".etdah",
		Draft: DraftConfig{
			Backend:  DraftBackendFile,
			Dir:      ".etdah/drafts",
			TTLHours: 72,
		},
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"*"},
		},
	}
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c FormConfig) Validate() error {
	// 1. sheetdb_base must be an absolute http(s) URL
	u, err := url.Parse(c.SheetDBBase)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("sheetdb_base %q must be an absolute http(s) URL", c.SheetDBBase)
	}

	// 2. every sheet must be named
	if c.Sheets.Patients == "" || c.Sheets.Tokens == "" || c.Sheets.Scores == "" {
		return fmt.Errorf("sheets.patients, sheets.tokens and sheets.scores must all be set")
	}

	// 3. code is used as a column prefix
	if c.Code == "" {
		return fmt.Errorf("code must not be empty")
	}

	// 4. timeout
	if c.HTTPTimeoutSeconds < 0 {
		return fmt.Errorf("http_timeout_seconds must be >= 0 (got %d)", c.HTTPTimeoutSeconds)
	}

	// 5. draft backend must be known, and redis needs an address
	valid := false
	for _, b := range ValidDraftBackends {
		if c.Draft.Backend == b {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unknown draft.backend %q (valid: file, redis)", c.Draft.Backend)
	}
	if c.Draft.Backend == DraftBackendRedis && c.Draft.RedisAddr == "" {
		return fmt.Errorf("draft.redis_addr is required when draft.backend is redis")
	}
	if c.Draft.Backend == DraftBackendFile && c.Draft.Dir == "" {
		return fmt.Errorf("draft.dir is required when draft.backend is file")
	}
	if c.Draft.TTLHours < 0 {
		return fmt.Errorf("draft.ttl_hours must be >= 0 (got %d)", c.Draft.TTLHours)
	}

	return nil
}

// DoneColumn is the patients column flagging a finished form.
func (c FormConfig) DoneColumn() string { return c.Code + "_FEITO" }

// DoneAtColumn is the patients column holding the completion timestamp.
func (c FormConfig) DoneAtColumn() string { return c.Code + "_FEITO_AT" }
