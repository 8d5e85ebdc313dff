package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"trisolve/cmd/trisolve/ui"
	"trisolve/internal/logging"
	"trisolve/internal/triangle"
)

var (
	solveSpec      specFlags
	solveFormat    string
	solvePrecision int
	solveAlternate bool
)

// solveCmd solves a single triangle
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve one triangle",
	Long: `Solves the triangle described by --schema and three measurements.

Examples:
  trisolve solve --schema SWS --a 3 --b 4 --gamma 90
  trisolve solve --schema SSW --a 7 --b 10 --alpha 30 --alternate
  trisolve solve -s WSW --alpha 40 --beta 70 --c 4.8 --format json`,
	Args: cobra.NoArgs,
	RunE: runSolve,
}

func init() {
	solveSpec.register(solveCmd)
	solveCmd.Flags().StringVarP(&solveFormat, "format", "f", "", "Output format: text, json, yaml, markdown (default from config)")
	solveCmd.Flags().IntVarP(&solvePrecision, "precision", "p", -1, "Decimals for side lengths (default from config)")
	solveCmd.Flags().BoolVar(&solveAlternate, "alternate", false, "Also print the second SSW solution when there is one")
}

func runSolve(cmd *cobra.Command, args []string) error {
	spec, err := solveSpec.spec()
	if err != nil {
		return err
	}
	renderer, err := newRenderer(solveFormat, solvePrecision)
	if err != nil {
		return err
	}

	log := logging.Get(logging.CategorySolver)
	timer := logging.StartTimer(logging.CategorySolver, "solve")
	res := triangle.Calculate(spec)
	timer.Stop(zap.String("schema", string(spec.Schema)))

	out := cmd.OutOrStdout()
	if err := renderer.Result(out, ui.Item{Title: string(spec.Schema), Result: res}); err != nil {
		return err
	}
	if !res.OK() {
		log.Debug("Solve rejected", zap.Stringer("kind", triangle.KindOf(res.Err)), zap.Error(res.Err))
		return fmt.Errorf("no triangle: %w", res.Err)
	}

	if solveAlternate {
		if alt, ok := triangle.AlternateSSW(spec); ok {
			log.Debug("Second SSW solution found")
			return renderer.Result(out, ui.Item{
				Title:  string(spec.Schema) + " (second solution)",
				Result: triangle.Result{Solution: &alt},
			})
		}
		log.Debug("No second solution", zap.String("schema", string(spec.Schema)))
	}
	return nil
}
