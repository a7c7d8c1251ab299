// Command plot_wave shows the analytical solution of the wave equation
// next to its numerical approximation. Both data files, dataA.dat and
// dataN.dat, are read from the directory above the executable.
package main

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	"berkotech.co/numplot/datafile"
	"berkotech.co/numplot/display"
	"berkotech.co/numplot/wave"
	"github.com/spf13/cobra"
)

// showFunc presents a rendered figure under a window title.
type showFunc func(img image.Image, title string) error

func main() {
	log.SetFlags(0)
	log.SetPrefix("plot_wave: ")

	exe, err := executable()
	if err != nil {
		log.Fatal(err)
	}
	if err := newCommand(exe, display.Show).Execute(); err != nil {
		log.Fatal(err)
	}
}

func executable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return exe, nil
}

func newCommand(exe string, show showFunc) *cobra.Command {
	return &cobra.Command{
		Use:           "plot_wave",
		Short:         "Compara la onda analítica con la numérica",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(exe, show)
		},
	}
}

// run loads the data files next to exe and hands the comparison figure
// to show.
func run(exe string, show showFunc) error {
	analyticPath, numericPath := wave.DataPaths(exe)

	analytic, err := datafile.LoadXY(analyticPath)
	if err != nil {
		return err
	}
	numeric, err := datafile.LoadXY(numericPath)
	if err != nil {
		return err
	}

	cmp, err := wave.NewComparison(analytic, numeric)
	if err != nil {
		return err
	}
	return show(cmp.Image(), cmp.Title.Text)
}
