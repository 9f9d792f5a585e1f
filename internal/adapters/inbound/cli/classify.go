package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/integradaneuropsicologia/ETDAH-II/internal/adapters/outbound/tui"
	"github.com/integradaneuropsicologia/ETDAH-II/internal/domain"
	"github.com/spf13/cobra"
)

func newClassifyCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "classify [area score]",
		Short: "Classify an area score, or show every cutpoint",
		Long: "With no arguments, print the classification bands of the four areas. " +
			"With an area id (" + areaIDList() + ") and a raw score, print its classification.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("expected no arguments or <area> <score>, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderCutpoints())
				return nil
			}

			area, ok := domain.AreaByID(domain.AreaID(args[0]))
			if !ok {
				return fmt.Errorf("unknown area %q (valid: %s)", args[0], areaIDList())
			}
			score, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid score %q: %w", args[1], err)
			}

			class := domain.Classify(area.ID, score)
			if jsonOutput {
				return renderJSON(cmd, domain.AreaResult{
					Area:           area.ID,
					Score:          score,
					Classification: class,
					Description:    domain.DescriptionFor(class),
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d: %s\n%s\n", area.Title, score, class, domain.DescriptionFor(class))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func areaIDList() string {
	ids := make([]string, 0, 4)
	for _, a := range domain.Areas() {
		ids = append(ids, string(a.ID))
	}
	return strings.Join(ids, ", ")
}
