package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "etdah",
		Short: "ETDAH-II questionnaire scoring",
		Long: "etdah scores the ETDAH-II ADHD rating questionnaire: 46 Likert items, " +
			"reversed items, four areas with normative cutpoints. It also runs the form backend " +
			"that persists submissions to SheetDB.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().String("config-dir", ".", "Directory holding .etdah.yaml")
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newScoreCmd())
	cmd.AddCommand(newItemsCmd())
	cmd.AddCommand(newClassifyCmd())
	cmd.AddCommand(newSubmitCmd())
	cmd.AddCommand(newDraftCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
