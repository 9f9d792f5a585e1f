package draft

import (
	"context"
	"fmt"
	"time"

	"github.com/integradaneuropsicologia/ETDAH-II/internal/domain"
)

// Open returns the draft store selected by cfg.Draft.Backend, plus a close
// function for the caller to defer.
func Open(ctx context.Context, cfg domain.FormConfig) (domain.DraftStore, func() error, error) {
	ttl := time.Duration(cfg.Draft.TTLHours) * time.Hour

	switch cfg.Draft.Backend {
	case domain.DraftBackendRedis:
		s, err := NewRedisStore(ctx, cfg.Draft.RedisAddr, cfg.Draft.RedisPassword, cfg.Draft.RedisDB, ttl)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case domain.DraftBackendFile, "":
		return NewFileStore(cfg.Draft.Dir, ttl), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown draft backend %q", cfg.Draft.Backend)
	}
}
