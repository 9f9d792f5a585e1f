package cli

import (
	"fmt"

	"github.com/integradaneuropsicologia/ETDAH-II/internal/adapters/outbound/answerfile"
	"github.com/integradaneuropsicologia/ETDAH-II/internal/adapters/outbound/tui"
	"github.com/integradaneuropsicologia/ETDAH-II/internal/application"
	"github.com/spf13/cobra"
)

func newScoreCmd() *cobra.Command {
	var (
		jsonOutput bool
		document   bool
		strict     bool
	)

	cmd := &cobra.Command{
		Use:   "score <answers.yaml|answers.json>",
		Short: "Score an answer file",
		Long: "Score an ETDAH-II answer file (YAML or JSON) and print the four area scores, " +
			"their classifications and the total.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := application.NewScoreService(answerfile.New())

			res, err := svc.ScoreFile(args[0], strict)
			if err != nil {
				return fmt.Errorf("scoring failed: %w", err)
			}

			switch {
			case document:
				return renderJSON(cmd, res.Document())
			case jsonOutput:
				return renderJSON(cmd, res)
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderResult(res))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the full result as JSON")
	cmd.Flags().BoolVar(&document, "document", false, "Output the document stored in the categoria column")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when the observation or any item is unanswered")

	return cmd
}
