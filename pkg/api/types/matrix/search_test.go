package matrix_test

import (
	"encoding/json"
	"errors"
	"maps"
	"math/rand/v2"
	"testing"

	apierr "github.com/polyaxon/plx/pkg/api/types/errors"
	"github.com/polyaxon/plx/pkg/api/types/matrix"
	"github.com/polyaxon/plx/pkg/utils/try"
)

func paramSet(t *testing.T, body string) matrix.ParamSet {
	t.Helper()
	var ps matrix.ParamSet
	if err := json.Unmarshal([]byte(body), &ps); err != nil {
		t.Fatal(err)
	}
	return ps
}

func TestGrid(t *testing.T) {
	ps := paramSet(t, `{
		"optimizer": {"kind": "choice", "value": ["adam", "sgd"]},
		"epochs": {"kind": "range", "value": "1:4:1"}
	}`)

	t.Run("it enumerates all combinations", func(t *testing.T) {
		actual := try.To(matrix.Grid(ps, 0)).OrFatal(t)
		expected := []matrix.Suggestion{
			{"epochs": 1, "optimizer": "adam"},
			{"epochs": 1, "optimizer": "sgd"},
			{"epochs": 2, "optimizer": "adam"},
			{"epochs": 2, "optimizer": "sgd"},
			{"epochs": 3, "optimizer": "adam"},
			{"epochs": 3, "optimizer": "sgd"},
		}
		if len(actual) != len(expected) {
			t.Fatalf("unmatch: (actual, expected) = (%v, %v)", actual, expected)
		}
		for i := range expected {
			if !maps.Equal(actual[i], expected[i]) {
				t.Errorf("unmatch #%d: (actual, expected) = (%v, %v)", i, actual[i], expected[i])
			}
		}
	})

	t.Run("it truncates with limit", func(t *testing.T) {
		actual := try.To(matrix.Grid(ps, 4)).OrFatal(t)
		if len(actual) != 4 {
			t.Errorf("unexpected: %v", actual)
		}
		actual = try.To(matrix.Grid(ps, 100)).OrFatal(t)
		if len(actual) != 6 {
			t.Errorf("unexpected: %v", actual)
		}
	})

	t.Run("it rejects continuous params", func(t *testing.T) {
		ps := paramSet(t, `{"lr": {"kind": "uniform", "value": "0:1"}}`)
		if _, err := matrix.Grid(ps, 0); !errors.Is(err, apierr.ErrInvalid) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("it rejects empty params", func(t *testing.T) {
		if _, err := matrix.Grid(matrix.ParamSet{}, 0); !errors.Is(err, apierr.ErrInvalid) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("it stops at limit without enumerating all", func(t *testing.T) {
		ps := paramSet(t, `{
			"a": {"kind": "range", "value": "0:3000:1"},
			"b": {"kind": "range", "value": "0:3000:1"}
		}`)
		actual := try.To(matrix.Grid(ps, 2)).OrFatal(t)
		expected := []matrix.Suggestion{{"a": 0, "b": 0}, {"a": 0, "b": 1}}
		if len(actual) != len(expected) {
			t.Fatalf("unmatch: (actual, expected) = (%v, %v)", actual, expected)
		}
		for i := range expected {
			if !maps.Equal(actual[i], expected[i]) {
				t.Errorf("unmatch #%d: (actual, expected) = (%v, %v)", i, actual[i], expected[i])
			}
		}
	})

	for name, body := range map[string]string{
		"param with too many values": `{"a": {"kind": "range", "value": "0:1e15:1"}}`,
		"space with too many points": `{"a": {"kind": "linspace", "value": "0:1:2000000"}}`,
	} {
		t.Run("it rejects "+name, func(t *testing.T) {
			if _, err := matrix.Grid(paramSet(t, body), 10); !errors.Is(err, apierr.ErrInvalid) {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}

	t.Run("it rejects too many combinations without limit", func(t *testing.T) {
		ps := paramSet(t, `{
			"a": {"kind": "range", "value": "0:3000:1"},
			"b": {"kind": "range", "value": "0:3000:1"}
		}`)
		if _, err := matrix.Grid(ps, 0); !errors.Is(err, apierr.ErrInvalid) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestSampleOfWideSpaces(t *testing.T) {
	for name, testcase := range map[string]struct {
		body  string
		check func(v any) bool
	}{
		"range": {
			body: `{"kind": "range", "value": "0:1e15:1"}`,
			check: func(v any) bool {
				i, ok := v.(int)
				return ok && 0 <= i && i < 1e15
			},
		},
		"linspace": {
			body: `{"kind": "linspace", "value": "0:1:1e15"}`,
			check: func(v any) bool {
				f, ok := v.(float64)
				return ok && 0 <= f && f <= 1
			},
		},
		"logspace": {
			body: `{"kind": "logspace", "value": "0:3:1e15"}`,
			check: func(v any) bool {
				f, ok := v.(float64)
				return ok && 1 <= f && f <= 1000
			},
		},
		"geomspace": {
			body: `{"kind": "geomspace", "value": "1:1000:1e15"}`,
			check: func(v any) bool {
				f, ok := v.(float64)
				return ok && 1 <= f && f <= 1000
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			p := try.To(matrix.ParseParam([]byte(testcase.body))).OrFatal(t)
			if err := p.Validate(); err != nil {
				t.Fatal(err)
			}
			r := rand.New(rand.NewPCG(1, 2))
			for range 10 {
				if v := p.Sample(r); !testcase.check(v) {
					t.Errorf("unexpected sample: %#v", v)
				}
			}
		})
	}
}

func TestRandom(t *testing.T) {
	ps := paramSet(t, `{
		"lr": {"kind": "loguniform", "value": "-7:0"},
		"batch": {"kind": "choice", "value": [16, 32, 64]}
	}`)

	first := try.To(matrix.Random(ps, 5, rand.New(rand.NewPCG(7, 7)))).OrFatal(t)
	second := try.To(matrix.Random(ps, 5, rand.New(rand.NewPCG(7, 7)))).OrFatal(t)
	if len(first) != 5 {
		t.Fatalf("unexpected: %v", first)
	}
	for i := range first {
		if !maps.Equal(first[i], second[i]) {
			t.Errorf("same seed gives different suggestions: %v, %v", first[i], second[i])
		}
		if _, ok := first[i]["lr"].(float64); !ok {
			t.Errorf("unexpected lr: %v", first[i])
		}
	}

	if _, err := matrix.Random(ps, 0, rand.New(rand.NewPCG(1, 1))); !errors.Is(err, apierr.ErrInvalid) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParamSet(t *testing.T) {
	t.Run("broken param is reported with its name", func(t *testing.T) {
		var ps matrix.ParamSet
		err := json.Unmarshal([]byte(`{"lr": {"kind": "uniform", "value": "1:0"}}`), &ps)
		if !errors.Is(err, apierr.ErrInvalid) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("kind is written on marshal", func(t *testing.T) {
		ps := matrix.ParamSet{
			"lr": matrix.HpUniform{Value: matrix.Interval{Low: 0, High: 1}},
		}
		b := try.To(json.Marshal(ps)).OrFatal(t)
		var reread matrix.ParamSet
		if err := json.Unmarshal(b, &reread); err != nil {
			t.Fatalf("%s: %v", b, err)
		}
		u, ok := reread["lr"].(matrix.HpUniform)
		if !ok || u.Kind != matrix.KindUniform || u.Value.Low != 0 || u.Value.High != 1 {
			t.Errorf("unexpected: %+v", reread)
		}
	})
}
