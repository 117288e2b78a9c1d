package conformance

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/hsiuhsiu/ffibench-go/internal/bindings"
)

// Compare selects how a result is checked.
type Compare int

const (
	// Exact requires deep equality.
	Exact Compare = iota
	// Tolerance allows an absolute difference of Case.Tol on every float.
	Tolerance
	// Statistical checks a randomised estimate against Want within Case.Tol.
	// Statistical cases are skipped by Equivalent.
	Statistical
)

func (c Compare) String() string {
	switch c {
	case Exact:
		return "exact"
	case Tolerance:
		return "tolerance"
	case Statistical:
		return "statistical"
	}
	return fmt.Sprintf("Compare(%d)", int(c))
}

// Case is one conformance scenario.
type Case struct {
	Name    string
	Call    func(b bindings.Binding) (any, error)
	Want    any
	WantErr error
	Compare Compare
	Tol     float64
}

// Outcome is the result of running one Case against one adapter.
type Outcome struct {
	Case    string
	Adapter string
	Got     any
	Err     error
	Passed  bool
	Detail  string
}

// Check runs c against b.
func Check(b bindings.Binding, c Case) Outcome {
	got, err := c.Call(b)
	o := Outcome{Case: c.Name, Adapter: b.Name(), Got: got, Err: err}

	switch {
	case c.WantErr != nil:
		o.Passed = errors.Is(err, c.WantErr)
		if !o.Passed {
			o.Detail = fmt.Sprintf("want error %v, got %v (result %v)", c.WantErr, err, got)
		}
	case err != nil:
		o.Detail = fmt.Sprintf("unexpected error: %v", err)
	default:
		o.Passed, o.Detail = match(c.Compare, c.Tol, c.Want, got)
	}
	return o
}

// Run checks every case in cases against b.
func Run(b bindings.Binding, cases []Case) []Outcome {
	out := make([]Outcome, 0, len(cases))
	for _, c := range cases {
		out = append(out, Check(b, c))
	}
	return out
}

// Failures returns the outcomes that did not pass.
func Failures(outcomes []Outcome) []Outcome {
	var failed []Outcome
	for _, o := range outcomes {
		if !o.Passed {
			failed = append(failed, o)
		}
	}
	return failed
}

// Mismatch reports a case on which two adapters disagree.
type Mismatch struct {
	Case   string
	First  Outcome
	Second Outcome
	Detail string
}

// Equivalent runs every non-statistical case against both adapters and
// reports the cases whose results or errors differ.
func Equivalent(first, second bindings.Binding, cases []Case) []Mismatch {
	var mismatches []Mismatch
	for _, c := range cases {
		if c.Compare == Statistical {
			continue
		}
		a := Check(first, c)
		b := Check(second, c)

		var detail string
		switch {
		case (a.Err == nil) != (b.Err == nil):
			detail = fmt.Sprintf("errors differ: %v vs %v", a.Err, b.Err)
		case a.Err != nil:
			if c.WantErr != nil && errors.Is(a.Err, c.WantErr) != errors.Is(b.Err, c.WantErr) {
				detail = fmt.Sprintf("errors differ: %v vs %v", a.Err, b.Err)
			}
		default:
			if ok, d := match(c.Compare, c.Tol, a.Got, b.Got); !ok {
				detail = d
			}
		}
		if detail != "" {
			mismatches = append(mismatches, Mismatch{Case: c.Name, First: a, Second: b, Detail: detail})
		}
	}
	return mismatches
}

func match(mode Compare, tol float64, want, got any) (bool, string) {
	if mode == Exact {
		if reflect.DeepEqual(want, got) {
			return true, ""
		}
		return false, fmt.Sprintf("want %v (%T), got %v (%T)", want, want, got, got)
	}

	switch w := want.(type) {
	case float64:
		g, ok := got.(float64)
		if ok && math.Abs(w-g) <= tol {
			return true, ""
		}
		return false, fmt.Sprintf("want %v ± %g, got %v", want, tol, got)
	case []float64:
		g, ok := got.([]float64)
		if !ok || len(g) != len(w) {
			return false, fmt.Sprintf("want %d values, got %v", len(w), got)
		}
		for i := range w {
			if math.Abs(w[i]-g[i]) > tol {
				return false, fmt.Sprintf("index %d: want %v ± %g, got %v", i, w[i], tol, g[i])
			}
		}
		return true, ""
	}
	return match(Exact, 0, want, got)
}
