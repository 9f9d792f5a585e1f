package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/integradaneuropsicologia/ETDAH-II/internal/adapters/outbound/config"
	"github.com/integradaneuropsicologia/ETDAH-II/internal/domain"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var (
		backend string
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .etdah.yaml configuration file",
		Long:  "Create a .etdah.yaml with the defaults the form ships with.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			b := domain.DraftBackend(backend)
			valid := false
			for _, vb := range domain.ValidDraftBackends {
				if b == vb {
					valid = true
					break
				}
			}
			if !valid {
				return fmt.Errorf("unknown draft backend %q (valid: file, redis)", backend)
			}

			if err := os.WriteFile(dest, []byte(generateConfig(b)), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&backend, "draft-backend", "file", "Draft store (file, redis)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .etdah.yaml")

	return cmd
}

func generateConfig(backend domain.DraftBackend) string {
	cfg := domain.DefaultConfig()

	result := fmt.Sprintf(`# ETDAH-II form configuration
# Environment variables ETDAH_SHEETDB_BASE, ETDAH_PORTAL_URL, ETDAH_REDIS_ADDR,
# ETDAH_HTTP_TIMEOUT_SECONDS, ETDAH_DRAFT_BACKEND and ETDAH_DATA_DIR override these values.

sheetdb_base: %s
sheets:
  patients: %s
  tokens: %s
  scores: %s

code: %s
source: %s
portal_url: %s
http_timeout_seconds: %d
data_dir: %s
record_questions: false

`, cfg.SheetDBBase, cfg.Sheets.Patients, cfg.Sheets.Tokens, cfg.Sheets.Scores,
		cfg.Code, cfg.Source, cfg.PortalURL, cfg.HTTPTimeoutSeconds, cfg.DataDir)

	if backend == domain.DraftBackendRedis {
		result += fmt.Sprintf(`draft:
  backend: redis
  redis_addr: localhost:6379
  # redis_password: ""
  redis_db: 0
  ttl_hours: %d
`, cfg.Draft.TTLHours)
	} else {
		result += fmt.Sprintf(`draft:
  backend: file
  dir: %s
  ttl_hours: %d
`, cfg.Draft.Dir, cfg.Draft.TTLHours)
	}

	result += fmt.Sprintf(`
server:
  addr: "%s"
  # allowed_origins:
  #   - https://integradaneuropsicologia.github.io
`, cfg.Server.Addr)

	return result
}
