package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/integradaneuropsicologia/ETDAH-II/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the working directory.
const FileName = ".etdah.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .etdah.yaml.
type YAMLLoader struct{}

var _ domain.ConfigLoader = (*YAMLLoader)(nil)

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .etdah.yaml from dir on top of DefaultConfig, applies ETDAH_*
// environment overrides and validates the result. A missing file is not an
// error.
func (l *YAMLLoader) Load(dir string) (domain.FormConfig, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return domain.FormConfig{}, err
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return domain.FormConfig{}, fmt.Errorf("parsing %s: %w", FileName, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return domain.FormConfig{}, err
	}

	if err := cfg.Validate(); err != nil {
		return domain.FormConfig{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}
	return cfg, nil
}

func applyEnv(cfg *domain.FormConfig) error {
	envOverride(&cfg.SheetDBBase, "ETDAH_SHEETDB_BASE")
	envOverride(&cfg.PortalURL, "ETDAH_PORTAL_URL")
	envOverride(&cfg.DataDir, "ETDAH_DATA_DIR")
	envOverride(&cfg.Draft.RedisAddr, "ETDAH_REDIS_ADDR")
	envOverride(&cfg.Draft.RedisPassword, "ETDAH_REDIS_PASSWORD")
	if v := os.Getenv("ETDAH_DRAFT_BACKEND"); v != "" {
		cfg.Draft.Backend = domain.DraftBackend(v)
	}
	return envOverrideInt(&cfg.HTTPTimeoutSeconds, "ETDAH_HTTP_TIMEOUT_SECONDS")
}

func envOverride(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}

func envOverrideInt(field *int, envKey string) error {
	if val := os.Getenv(envKey); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid %s '%s': %w", envKey, val, err)
		}
		*field = parsed
	}
	return nil
}
