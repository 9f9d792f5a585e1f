package cli

import (
	"fmt"

	"github.com/integradaneuropsicologia/ETDAH-II/internal/adapters/outbound/answerfile"
	"github.com/integradaneuropsicologia/ETDAH-II/internal/adapters/outbound/history"
	"github.com/integradaneuropsicologia/ETDAH-II/internal/adapters/outbound/tui"
	"github.com/integradaneuropsicologia/ETDAH-II/internal/application"
	"github.com/spf13/cobra"
)

func newSubmitCmd() *cobra.Command {
	var (
		jsonOutput  bool
		showHistory bool
	)

	cmd := &cobra.Command{
		Use:   "submit <token> <answers-file>",
		Short: "Score and persist a completed form",
		Long: "Open the session for a link token, score the answer file and write the result " +
			"to the scores sheet, marking the patient as done. Use --history to list past submissions.",
		Args: func(cmd *cobra.Command, args []string) error {
			if showHistory {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			hist := history.New()

			if showHistory {
				entries, err := hist.Load(cfg.DataDir)
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			}

			sub, err := answerfile.New().Read(args[1])
			if err != nil {
				return fmt.Errorf("reading answers: %w", err)
			}

			ctx := cmd.Context()
			drafts, closeDrafts, err := openDraftStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeDrafts()

			sheets := newSheetStore(cfg)
			sess, err := application.NewSessionService(sheets, cfg, nil).Open(ctx, args[0])
			if err != nil {
				return fmt.Errorf("opening session: %w", err)
			}

			receipt, err := application.NewSubmitService(sheets, drafts, hist, cfg, nil).Submit(ctx, sess, sub)
			if err != nil {
				return fmt.Errorf("submitting: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, receipt)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderReceipt(receipt))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the receipt as JSON")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show the local submission history")

	return cmd
}
