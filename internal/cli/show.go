package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/fixture-viewer/internal/filter"
	"github.com/pfrederiksen/fixture-viewer/internal/render"
)

var (
	flagCompetition string
	flagRound       string
	flagFormat      string
	flagOutput      string
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render the matches selected by competition and round",
		Long: `Render the matches selected by competition and round.
Without filters every match is shown in fixture order. Exits with status 2
when no match is selected.`,
		Args: cobra.NoArgs,
		RunE: runShow,
	}

	cmd.Flags().StringVarP(&flagCompetition, "competencia", "c", filter.All, "Competition to show (exact name), or ALL")
	cmd.Flags().StringVarP(&flagRound, "fecha", "f", filter.All, "Round to show (exact value), or ALL")
	cmd.Flags().StringVar(&flagFormat, "format", "", "Output format: text, json or html (default from config)")
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write output to a file instead of stdout")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	formatName := cfg.Format
	if cmd.Flags().Changed("format") {
		formatName = flagFormat
	}
	format, err := render.ParseFormat(formatName)
	if err != nil {
		return err
	}

	outputPath := cfg.Output
	if cmd.Flags().Changed("output") {
		outputPath = flagOutput
	}

	st := filter.NewState().
		WithCompetition(flagCompetition).
		WithRound(flagRound)

	ds, loadErr := loadDataset(cmd.Context())

	var page *render.Page
	if loadErr != nil {
		page = render.ErrorPage(cfg.Source, loadErr)
	} else {
		page = render.NewPage(ds, st)
	}

	if err := writeTo(cmd.OutOrStdout(), outputPath, func(w io.Writer) error {
		return render.Write(w, page, format)
	}); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if loadErr != nil {
		return reportedError{err: loadErr}
	}
	if page.List.Empty() {
		return ErrNoMatches
	}
	return nil
}

// writeTo runs write against path, or against stdout when path is empty
func writeTo(stdout io.Writer, path string, write func(w io.Writer) error) error {
	if path == "" || path == "-" {
		return write(stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	if err := write(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
