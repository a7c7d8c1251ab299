// Command plot_laplace renders the solution of the Laplace equation stored
// in a data file as a 3D surface and saves it under graph/.
//
//	plot_laplace <nombre_archivo_datos>
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"berkotech.co/numplot/datafile"
	"berkotech.co/numplot/surface"
	"github.com/spf13/cobra"
)

const (
	graphDir = "graph"
	usage    = "Uso: plot_laplace <nombre_archivo_datos>"
)

var errUsage = errors.New("wrong number of arguments")

// loadError is a failure to read the data file.
type loadError struct {
	path string
	err  error
}

func (e *loadError) Error() string { return e.err.Error() }
func (e *loadError) Unwrap() error { return e.err }

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, graphDir))
}

// run executes the command with args, writing the plot into dir, and
// returns the exit status.
func run(args []string, stdout io.Writer, dir string) int {
	cmd := newCommand(stdout, dir)
	// A nil slice makes cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stdout)

	err := cmd.Execute()
	if err == nil {
		return 0
	}
	var le *loadError
	switch {
	case errors.Is(err, errUsage):
		fmt.Fprintln(stdout, usage)
	case errors.As(err, &le) && errors.Is(le, datafile.ErrNotFound):
		fmt.Fprintf(stdout, "Error: No se pudo encontrar el archivo de datos: %s\n", le.path)
	case errors.As(err, &le):
		fmt.Fprintf(stdout, "Error al leer el archivo de datos: %v\n", le.err)
	default:
		fmt.Fprintf(stdout, "Error: %v\n", err)
	}
	return 1
}

func newCommand(stdout io.Writer, dir string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot_laplace <nombre_archivo_datos>",
		Short: "Grafica la solución de la ecuación de Laplace como superficie 3D",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errUsage
			}
			return nil
		},
		// Every argument is a data path, including ones starting with '-'.
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return plotLaplace(stdout, dir, args[0])
		},
	}
	return cmd
}

func plotLaplace(stdout io.Writer, dir, dataFile string) error {
	g, err := datafile.LoadGrid(dataFile)
	if err != nil {
		return &loadError{path: dataFile, err: err}
	}

	f, err := surface.NewLaplaceFigure(g)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	out := surface.OutputPath(dir, dataFile)
	if err := f.SavePNG(out); err != nil {
		return fmt.Errorf("saving %s: %w", out, err)
	}
	fmt.Fprintf(stdout, "Gráfico guardado en: %s\n", out)
	return nil
}
