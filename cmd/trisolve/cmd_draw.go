package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"trisolve/internal/layout"
	"trisolve/internal/logging"
	"trisolve/internal/triangle"
)

var (
	drawSpec      specFlags
	drawOutput    string
	drawTitle     string
	drawViewport  layout.Viewport
	drawPrecision int
	drawAlternate bool
)

// drawCmd renders a solved triangle as SVG
var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Solve a triangle and draw it as SVG",
	Long: `Solves the triangle and writes a labelled SVG drawing of it.

Examples:
  trisolve draw --schema SSS --a 3 --b 4 --c 5 -o right.svg
  trisolve draw --schema SSW --a 7 --b 10 --alpha 30 --alternate > flat.svg`,
	Args: cobra.NoArgs,
	RunE: runDraw,
}

func init() {
	drawSpec.register(drawCmd)
	drawCmd.Flags().StringVarP(&drawOutput, "output", "o", "-", "Output file, - for stdout")
	drawCmd.Flags().StringVar(&drawTitle, "title", "", "SVG title (default: the schema)")
	drawCmd.Flags().Float64Var(&drawViewport.Width, "width", 0, "Canvas width (default from config)")
	drawCmd.Flags().Float64Var(&drawViewport.Height, "height", 0, "Canvas height (default from config)")
	drawCmd.Flags().Float64Var(&drawViewport.Padding, "padding", -1, "Canvas padding (default from config)")
	drawCmd.Flags().IntVarP(&drawPrecision, "precision", "p", -1, "Decimals for side labels (default from config)")
	drawCmd.Flags().BoolVar(&drawAlternate, "alternate", false, "Draw the second SSW solution instead")
}

func runDraw(cmd *cobra.Command, args []string) error {
	spec, err := drawSpec.spec()
	if err != nil {
		return err
	}

	sol, err := triangle.Solve(spec)
	if err != nil {
		return fmt.Errorf("no triangle: %w", err)
	}
	if drawAlternate {
		alt, ok := triangle.AlternateSSW(spec)
		if !ok {
			return fmt.Errorf("%s input has no second solution", spec.Schema)
		}
		sol = alt
	}

	c := currentConfig()
	vp := drawViewport
	if vp.Width <= 0 {
		vp.Width = c.Drawing.Width
	}
	if vp.Height <= 0 {
		vp.Height = c.Drawing.Height
	}
	if vp.Padding < 0 {
		vp.Padding = c.Drawing.Padding
	}
	if vp.Width <= 2*vp.Padding || vp.Height <= 2*vp.Padding {
		return fmt.Errorf("canvas %gx%g leaves no room inside padding %g", vp.Width, vp.Height, vp.Padding)
	}

	precision := drawPrecision
	if precision < 0 {
		precision = c.Output.Precision
	}
	title := drawTitle
	if title == "" {
		title = string(spec.Schema) + " triangle"
	}

	var w io.Writer = cmd.OutOrStdout()
	if drawOutput != "-" && drawOutput != "" {
		f, err := os.Create(drawOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := layout.WriteSVG(w, sol, layout.Options{Viewport: vp, Precision: precision, Title: title}); err != nil {
		return fmt.Errorf("failed to write SVG: %w", err)
	}
	logging.Get(logging.CategoryRender).Debug("SVG written",
		zap.String("output", drawOutput),
		zap.Float64("width", vp.Width),
		zap.Float64("height", vp.Height))
	return nil
}
