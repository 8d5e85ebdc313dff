package main

import (
	"github.com/spf13/cobra"

	"trisolve/internal/triangle"
)

// specFlags collects a triangle from command-line flags.
type specFlags struct {
	schema             string
	a, b, c            float64
	alpha, beta, gamma float64
}

func (f *specFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.schema, "schema", "s", "", "Schema: SWS, WSW, SSS or SSW (required)")
	cmd.Flags().Float64Var(&f.a, "a", 0, "Side a")
	cmd.Flags().Float64Var(&f.b, "b", 0, "Side b")
	cmd.Flags().Float64Var(&f.c, "c", 0, "Side c")
	cmd.Flags().Float64Var(&f.alpha, "alpha", 0, "Angle α opposite a, in degrees")
	cmd.Flags().Float64Var(&f.beta, "beta", 0, "Angle β opposite b, in degrees")
	cmd.Flags().Float64Var(&f.gamma, "gamma", 0, "Angle γ opposite c, in degrees")
	_ = cmd.MarkFlagRequired("schema")
}

func (f *specFlags) spec() (triangle.Spec, error) {
	schema, err := triangle.ParseSchema(f.schema)
	if err != nil {
		return triangle.Spec{}, err
	}
	return triangle.Spec{
		Schema: schema,
		A:      f.a,
		B:      f.b,
		C:      f.c,
		Alpha:  f.alpha,
		Beta:   f.beta,
		Gamma:  f.gamma,
	}, nil
}

func (f *specFlags) reset() {
	*f = specFlags{}
}
