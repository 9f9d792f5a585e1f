package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/integradaneuropsicologia/ETDAH-II/internal/adapters/outbound/config"
	"github.com/integradaneuropsicologia/ETDAH-II/internal/adapters/outbound/draft"
	"github.com/integradaneuropsicologia/ETDAH-II/internal/adapters/outbound/sheetdb"
	"github.com/integradaneuropsicologia/ETDAH-II/internal/domain"
	"github.com/spf13/cobra"
)

func loadConfig(cmd *cobra.Command) (domain.FormConfig, error) {
	dir, _ := cmd.Flags().GetString("config-dir")
	if dir == "" {
		dir = "."
	}
	cfg, err := config.New().Load(dir)
	if err != nil {
		return domain.FormConfig{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func newSheetStore(cfg domain.FormConfig) domain.SheetStore {
	return sheetdb.New(cfg.SheetDBBase, time.Duration(cfg.HTTPTimeoutSeconds)*time.Second)
}

func openDraftStore(ctx context.Context, cfg domain.FormConfig) (domain.DraftStore, func() error, error) {
	store, closeFn, err := draft.Open(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("opening draft store: %w", err)
	}
	return store, closeFn, nil
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
