package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/fixture-viewer/internal/filter"
	"github.com/pfrederiksen/fixture-viewer/internal/logger"
	"github.com/pfrederiksen/fixture-viewer/internal/match"
	"github.com/pfrederiksen/fixture-viewer/internal/render"
)

const (
	browsePrompt    = "> "
	browseSeparator = "────────────────────────────────────────"
)

const browseHelp = `Comandos:
  competencia <nombre|ALL>   filtrar por competencia (alias: c)
  fecha <n|ALL>              filtrar por fecha (alias: f)
  reset                      quitar los filtros
  opciones                   listar competencias y fechas
  ayuda                      mostrar esta ayuda
  salir                      terminar`

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Interactively filter the fixture",
		Long: `Interactively filter the fixture.
Reads one command per line and redraws the full card list after every
filter change. Type 'ayuda' for the list of commands.`,
		Args: cobra.NoArgs,
		RunE: runBrowse,
	}
}

func runBrowse(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	ds, err := loadDataset(cmd.Context())
	if err != nil {
		if werr := render.Write(out, render.ErrorPage(cfg.Source, err), render.FormatText); werr != nil {
			return fmt.Errorf("writing output: %w", werr)
		}
		return reportedError{err: err}
	}

	return browse(ds, cmd.InOrStdin(), out)
}

// browse runs the read, filter, redraw loop until quit or end of input
func browse(ds *match.Dataset, in io.Reader, out io.Writer) error {
	st := filter.NewState()

	redraw := func() error {
		fmt.Fprintln(out, browseSeparator)
		return render.Write(out, &render.Page{List: render.Build(ds, st)}, render.FormatText)
	}

	if err := redraw(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, browsePrompt)
		if !scanner.Scan() {
			break
		}

		c, err := filter.ParseCommand(scanner.Text())
		if err != nil {
			fmt.Fprintf(out, "%v (escriba 'ayuda')\n", err)
			continue
		}

		switch c.Action {
		case filter.ActionQuit:
			fmt.Fprintln(out)
			return nil
		case filter.ActionHelp:
			fmt.Fprintln(out, browseHelp)
		case filter.ActionOptions:
			if err := render.WriteOptions(out, filter.BuildOptions(ds), render.FormatText); err != nil {
				return err
			}
		default:
			if !c.ChangesState() {
				continue
			}
			st = c.Apply(st)
			if c.Action == filter.ActionSetCompetition && st.Competition != filter.All && !ds.HasCompetition(st.Competition) {
				logger.Debug("Unknown competition selected", logger.Fields{"competencia": st.Competition})
			}
			if err := redraw(); err != nil {
				return err
			}
		}
	}

	fmt.Fprintln(out)
	return scanner.Err()
}
