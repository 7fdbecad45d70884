package matrix

import (
	"math/rand/v2"

	apierr "github.com/polyaxon/plx/pkg/api/types/errors"
	"github.com/polyaxon/plx/pkg/utils/combination"
)

// Suggestion is a set of hyperparameter values for a run.
type Suggestion map[string]any

// MaxGridValues is the largest number of values of a param in grid search.
const MaxGridValues = 1 << 20

// MaxGridSize is the largest number of suggestions of grid search without limit.
const MaxGridSize = 1 << 20

// Grid enumerates all combinations of params.
//
// All params should be Discrete, and have at most MaxGridValues values.
// Suggestions are ordered by param names; the last name changes fastest.
// When limit is positive, first limit suggestions are returned.
// Otherwise, the number of combinations should be at most MaxGridSize.
func Grid(params ParamSet, limit int) ([]Suggestion, error) {
	if len(params) == 0 {
		return nil, apierr.Invalid("no params to search")
	}
	basis := make(map[string][]any, len(params))
	for name, p := range params {
		d, ok := p.(Discrete)
		if !ok {
			return nil, apierr.Invalid("param %q: %s cannot be used in grid search", name, p.ParamKind())
		}
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if n := d.Len(); MaxGridValues < n {
			return nil, apierr.Invalid(
				"param %q: too many values for grid search (%d > %d)", name, n, MaxGridValues,
			)
		}
		basis[name] = d.Values()
	}

	if limit <= 0 {
		if size := combination.Size(basis); MaxGridSize < size {
			return nil, apierr.Invalid(
				"too many combinations (%d > %d), give a limit", size, MaxGridSize,
			)
		}
	}
	product := combination.MapCartesianN(basis, limit)
	suggestions := make([]Suggestion, 0, len(product))
	for _, p := range product {
		suggestions = append(suggestions, Suggestion(p))
	}
	return suggestions, nil
}

// Random draws n suggestions with r.
//
// Params are sampled in order of their names, so the same seed gives the same suggestions.
func Random(params ParamSet, n int, r *rand.Rand) ([]Suggestion, error) {
	if len(params) == 0 {
		return nil, apierr.Invalid("no params to search")
	}
	if n < 1 {
		return nil, apierr.Invalid("number of runs should be positive: %d", n)
	}
	names := params.Names()
	for _, name := range names {
		if err := params[name].Validate(); err != nil {
			return nil, err
		}
	}

	suggestions := make([]Suggestion, 0, n)
	for range n {
		s := make(Suggestion, len(names))
		for _, name := range names {
			s[name] = params[name].Sample(r)
		}
		suggestions = append(suggestions, s)
	}
	return suggestions, nil
}
