package matrix_test

import (
	"encoding/json"
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	apierr "github.com/polyaxon/plx/pkg/api/types/errors"
	"github.com/polyaxon/plx/pkg/api/types/matrix"
	"github.com/polyaxon/plx/pkg/utils/try"
)

func approxEqual(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		fa, aok := a[i].(float64)
		fb, bok := b[i].(float64)
		if aok && bok {
			if 1e-9 < math.Abs(fa-fb) {
				return false
			}
			continue
		}
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestParseParam_Values(t *testing.T) {
	for name, testcase := range map[string]struct {
		when string
		then []any
	}{
		"choice": {
			when: `{"kind": "choice", "value": ["adam", "sgd", 1]}`,
			then: []any{"adam", "sgd", 1.0},
		},
		"pchoice": {
			when: `{"kind": "pchoice", "value": [["a", 0.3], ["b", 0.7]]}`,
			then: []any{"a", "b"},
		},
		"range in string": {
			when: `{"kind": "range", "value": "1:10:3"}`,
			then: []any{1, 4, 7},
		},
		"range in list": {
			when: `{"kind": "range", "value": [10, 0, -4]}`,
			then: []any{10, 6, 2},
		},
		"range in object with float": {
			when: `{"kind": "range", "value": {"start": 0, "stop": 1, "step": 0.25}}`,
			then: []any{0.0, 0.25, 0.5, 0.75},
		},
		"linspace": {
			when: `{"kind": "linspace", "value": "0:1:5"}`,
			then: []any{0.0, 0.25, 0.5, 0.75, 1.0},
		},
		"linspace of one": {
			when: `{"kind": "linspace", "value": {"start": 3, "stop": 7, "num": 1}}`,
			then: []any{3.0},
		},
		"logspace": {
			when: `{"kind": "logspace", "value": "0:3:4"}`,
			then: []any{1.0, 10.0, 100.0, 1000.0},
		},
		"logspace with base": {
			when: `{"kind": "logspace", "value": [0, 3, 4, 2]}`,
			then: []any{1.0, 2.0, 4.0, 8.0},
		},
		"geomspace": {
			when: `{"kind": "geomspace", "value": "1:1000:4"}`,
			then: []any{1.0, 10.0, 100.0, 1000.0},
		},
		"negative geomspace": {
			when: `{"kind": "geomspace", "value": "-1:-16:5"}`,
			then: []any{-1.0, -2.0, -4.0, -8.0, -16.0},
		},
	} {
		t.Run(name, func(t *testing.T) {
			p := try.To(matrix.ParseParam([]byte(testcase.when))).OrFatal(t)
			d, ok := p.(matrix.Discrete)
			if !ok {
				t.Fatalf("%s is not discrete", p.ParamKind())
			}
			if actual := d.Values(); !approxEqual(actual, testcase.then) {
				t.Errorf("unmatch: (actual, expected) = (%v, %v)", actual, testcase.then)
			}
		})
	}
}

func TestParseParam_Continuous(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for name, testcase := range map[string]struct {
		when  string
		check func(float64) bool
	}{
		"uniform":     {`{"kind": "uniform", "value": "0:1"}`, func(v float64) bool { return 0 <= v && v < 1 }},
		"quniform":    {`{"kind": "quniform", "value": [0, 10, 2]}`, func(v float64) bool { return 0 <= v && v <= 10 && math.Mod(v, 2) == 0 }},
		"loguniform":  {`{"kind": "loguniform", "value": {"low": 0, "high": 1}}`, func(v float64) bool { return 1 <= v && v < math.E }},
		"qloguniform": {`{"kind": "qloguniform", "value": "0:3:1"}`, func(v float64) bool { return 1 <= v && v <= 20 && v == math.Trunc(v) }},
		"normal":      {`{"kind": "normal", "value": "0:1"}`, func(v float64) bool { return -10 < v && v < 10 }},
		"qnormal":     {`{"kind": "qnormal", "value": "0:1:0.5"}`, func(v float64) bool { return math.Mod(v*2, 1) == 0 }},
		"lognormal":   {`{"kind": "lognormal", "value": "0:1"}`, func(v float64) bool { return 0 < v }},
		"qlognormal":  {`{"kind": "qlognormal", "value": "0:1:1"}`, func(v float64) bool { return 0 <= v && v == math.Trunc(v) }},
	} {
		t.Run(name, func(t *testing.T) {
			p := try.To(matrix.ParseParam([]byte(testcase.when))).OrFatal(t)
			if _, ok := p.(matrix.Discrete); ok {
				t.Errorf("%s should not be discrete", p.ParamKind())
			}
			for range 100 {
				v, ok := p.Sample(r).(float64)
				if !ok || !testcase.check(v) {
					t.Fatalf("unexpected sample: %v", v)
				}
			}
		})
	}
}

func TestParseParam_Rejects(t *testing.T) {
	for name, when := range map[string]string{
		"unknown kind":             `{"kind": "poisson", "value": [1]}`,
		"empty choice":             `{"kind": "choice", "value": []}`,
		"pchoice not sum up to 1":  `{"kind": "pchoice", "value": [["a", 0.3], ["b", 0.6]]}`,
		"pchoice zero probability": `{"kind": "pchoice", "value": [["a", 0], ["b", 1]]}`,
		"pchoice broken item":      `{"kind": "pchoice", "value": [["a", 0.5, 1], ["b", 0.5]]}`,
		"zero step":                `{"kind": "range", "value": "0:10:0"}`,
		"empty range":              `{"kind": "range", "value": "10:0:1"}`,
		"range too short":          `{"kind": "range", "value": "0:10"}`,
		"range not number":         `{"kind": "range", "value": "0:ten:1"}`,
		"range unknown key":        `{"kind": "range", "value": {"start": 0, "end": 1, "step": 1}}`,
		"fractional num":           `{"kind": "linspace", "value": "0:1:2.5"}`,
		"zero num":                 `{"kind": "linspace", "value": "0:1:0"}`,
		"base for linspace":        `{"kind": "linspace", "value": "0:1:2:3"}`,
		"logspace with base 1":     `{"kind": "logspace", "value": "0:1:2:1"}`,
		"geomspace with zero":      `{"kind": "geomspace", "value": "0:1:2"}`,
		"geomspace across zero":    `{"kind": "geomspace", "value": "-1:1:2"}`,
		"uniform low > high":       `{"kind": "uniform", "value": "1:0"}`,
		"uniform with q":           `{"kind": "uniform", "value": "0:1:0.1"}`,
		"quniform without q":       `{"kind": "quniform", "value": "0:1"}`,
		"normal zero scale":        `{"kind": "normal", "value": "0:0"}`,
		"qlognormal negative q":    `{"kind": "qlognormal", "value": "0:1:-1"}`,
		"value in boolean":         `{"kind": "uniform", "value": true}`,
	} {
		t.Run("it rejects "+name, func(t *testing.T) {
			if _, err := matrix.ParseParam([]byte(when)); !errors.Is(err, apierr.ErrInvalid) {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestHpPChoice_Sample(t *testing.T) {
	p := matrix.HpPChoice{Value: []matrix.PChoiceItem{
		{Value: "rare", Probability: 0.1},
		{Value: "common", Probability: 0.9},
	}}
	r := rand.New(rand.NewPCG(42, 42))
	count := map[any]int{}
	for range 10000 {
		count[p.Sample(r)] += 1
	}
	if !(500 < count["rare"] && count["rare"] < 1500) {
		t.Errorf("unexpected distribution: %v", count)
	}
}

func TestHpParams(t *testing.T) {
	t.Run("it is read from optional field object", func(t *testing.T) {
		var actual matrix.HpParams
		body := `{"linspace": {"kind": "linspace", "value": "0:1:3"}}`
		if err := json.Unmarshal([]byte(body), &actual); err != nil {
			t.Fatal(err)
		}
		expected := matrix.ParamsOf(matrix.HpLinSpace{Kind: "linspace", Value: matrix.Space{Start: 0, Stop: 1, Num: 3}})
		if !actual.Equal(expected) {
			t.Errorf("unmatch: (actual, expected) = (%+v, %+v)", actual, expected)
		}
		if err := actual.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if p := actual.Param(); p == nil || p.ParamKind() != matrix.KindLinSpace {
			t.Errorf("unexpected param: %+v", p)
		}

		again := try.To(json.Marshal(actual)).OrFatal(t)
		var reread matrix.HpParams
		if err := json.Unmarshal(again, &reread); err != nil {
			t.Fatal(err)
		}
		if !reread.Equal(actual) {
			t.Errorf("not stable after marshal: %s", again)
		}
	})

	t.Run("empty is rejected", func(t *testing.T) {
		if err := (matrix.HpParams{}).Validate(); !errors.Is(err, apierr.ErrInvalid) {
			t.Errorf("unexpected error: %v", err)
		}
		if p := (matrix.HpParams{}).Param(); p != nil {
			t.Errorf("unexpected param: %+v", p)
		}
	})

	t.Run("two spaces are rejected", func(t *testing.T) {
		h := matrix.HpParams{
			Choice:  &matrix.HpChoice{Value: []any{1}},
			Uniform: &matrix.HpUniform{Value: matrix.Interval{Low: 0, High: 1}},
		}
		if err := h.Validate(); !errors.Is(err, apierr.ErrInvalid) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("wrong inner kind is rejected", func(t *testing.T) {
		h := matrix.ParamsOf(matrix.HpChoice{Kind: "range", Value: []any{1}})
		if err := h.Validate(); !errors.Is(err, apierr.ErrInvalid) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("every kind can be wrapped", func(t *testing.T) {
		for _, p := range []matrix.Param{
			matrix.HpChoice{}, matrix.HpPChoice{}, matrix.HpRange{}, matrix.HpLinSpace{},
			matrix.HpLogSpace{}, matrix.HpGeomSpace{}, matrix.HpUniform{}, matrix.HpQUniform{},
			matrix.HpLogUniform{}, matrix.HpQLogUniform{}, matrix.HpNormal{}, matrix.HpQNormal{},
			matrix.HpLogNormal{}, matrix.HpQLogNormal{},
		} {
			if w := matrix.ParamsOf(p).Param(); w == nil || w.ParamKind() != p.ParamKind() {
				t.Errorf("%s: unexpected param: %+v", p.ParamKind(), w)
			}
		}
		if n := len(matrix.Kinds()); n != 14 {
			t.Errorf("unexpected number of kinds: %d", n)
		}
	})
}
