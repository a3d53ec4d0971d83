package cli

import (
	"github.com/spf13/cobra"

	"github.com/pfrederiksen/fixture-viewer/internal/filter"
	"github.com/pfrederiksen/fixture-viewer/internal/render"
)

var flagOptionsFormat string

func newOptionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "options",
		Short: "List the competitions and rounds available as filters",
		Args:  cobra.NoArgs,
		RunE:  runOptions,
	}

	cmd.Flags().StringVar(&flagOptionsFormat, "format", "text", "Output format: text or json")

	return cmd
}

func runOptions(cmd *cobra.Command, args []string) error {
	format, err := render.ParseFormat(flagOptionsFormat)
	if err != nil {
		return err
	}

	ds, err := loadDataset(cmd.Context())
	if err != nil {
		return err
	}

	return render.WriteOptions(cmd.OutOrStdout(), filter.BuildOptions(ds), format)
}
