package cli

import (
	"fmt"

	"github.com/integradaneuropsicologia/ETDAH-II/internal/adapters/outbound/answerfile"
	"github.com/integradaneuropsicologia/ETDAH-II/internal/application"
	"github.com/integradaneuropsicologia/ETDAH-II/internal/domain"
	"github.com/spf13/cobra"
)

func newDraftCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Inspect or edit autosaved drafts",
		Long:  "Commands for the autosaved, partially answered forms kept per link token.",
	}
	cmd.AddCommand(newDraftShowCmd())
	cmd.AddCommand(newDraftSaveCmd())
	cmd.AddCommand(newDraftClearCmd())
	return cmd
}

// withDraftService loads the config, opens the configured store and hands a
// DraftService to fn.
func withDraftService(cmd *cobra.Command, fn func(*application.DraftService) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	store, closeFn, err := openDraftStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closeFn()
	return fn(application.NewDraftService(store, cfg.Code, nil))
}

func newDraftShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <token>",
		Short: "Print the draft saved for a token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDraftService(cmd, func(svc *application.DraftService) error {
				d, progress, err := svc.Load(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return renderJSON(cmd, struct {
					Draft    domain.Draft    `json:"draft"`
					Progress domain.Progress `json:"progress"`
				}{d, progress})
			})
		},
	}
}

func newDraftSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <token> <answers-file>",
		Short: "Save a (partial) answer file as the draft for a token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sub, err := answerfile.New().Read(args[1])
			if err != nil {
				return fmt.Errorf("reading answers: %w", err)
			}
			return withDraftService(cmd, func(svc *application.DraftService) error {
				progress, err := svc.Save(cmd.Context(), args[0], domain.Draft{
					Observations: sub.Observations,
					Answers:      sub.Answers,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Rascunho salvo: %s\n", progress)
				return nil
			})
		},
	}
}

func newDraftClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear <token>",
		Short: "Remove the draft saved for a token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDraftService(cmd, func(svc *application.DraftService) error {
				if err := svc.Clear(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Rascunho removido.")
				return nil
			})
		},
	}
}
