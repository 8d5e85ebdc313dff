package triangle

import "encoding/json"

// Result is the boundary record: a Solution or an error message, never both.
// It marshals to {a, b, c, alpha, beta, gamma, sidesType, anglesType} on
// success and {error} on failure.
type Result struct {
	Solution *Solution
	Err      error
}

// Calculate is Solve folded into a Result.
func Calculate(spec Spec) Result {
	sol, err := Solve(spec)
	if err != nil {
		return Result{Err: err}
	}
	return Result{Solution: &sol}
}

// OK reports whether the solve succeeded.
func (r Result) OK() bool { return r.Err == nil && r.Solution != nil }

type failure struct {
	Error string `json:"error" yaml:"error"`
}

func (r Result) record() any {
	if !r.OK() {
		msg := "no result"
		if r.Err != nil {
			msg = r.Err.Error()
		}
		return failure{Error: msg}
	}
	return r.Solution
}

// MarshalJSON implements json.Marshaler.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.record())
}

// MarshalYAML implements yaml.Marshaler.
func (r Result) MarshalYAML() (any, error) {
	return r.record(), nil
}
