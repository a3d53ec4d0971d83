package cli

import (
	"github.com/spf13/cobra"

	"github.com/pfrederiksen/fixture-viewer/internal/render"
)

var flagSummaryFormat string

func newSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Count matches, rounds and teams per competition",
		Args:  cobra.NoArgs,
		RunE:  runSummary,
	}

	cmd.Flags().StringVar(&flagSummaryFormat, "format", "text", "Output format: text or json")

	return cmd
}

func runSummary(cmd *cobra.Command, args []string) error {
	format, err := render.ParseFormat(flagSummaryFormat)
	if err != nil {
		return err
	}

	ds, err := loadDataset(cmd.Context())
	if err != nil {
		return err
	}

	return render.WriteSummary(cmd.OutOrStdout(), render.Summarize(ds), format)
}
