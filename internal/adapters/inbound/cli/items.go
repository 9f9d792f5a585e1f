package cli

import (
	"fmt"

	"github.com/integradaneuropsicologia/ETDAH-II/internal/adapters/outbound/tui"
	"github.com/integradaneuropsicologia/ETDAH-II/internal/domain"
	"github.com/spf13/cobra"
)

type itemView struct {
	ID       int           `json:"id"`
	Text     string        `json:"text"`
	Area     domain.AreaID `json:"area"`
	Inverted bool          `json:"inverted"`
}

func newItemsCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "items",
		Short: "List the 46 questionnaire items",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !jsonOutput {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderItems())
				return nil
			}
			views := make([]itemView, 0, domain.ItemCount)
			for _, it := range domain.Items() {
				area, _ := domain.AreaOf(it.ID)
				views = append(views, itemView{ID: it.ID, Text: it.Text, Area: area.ID, Inverted: it.Inverted()})
			}
			return renderJSON(cmd, views)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output items as JSON")
	return cmd
}
