package matrix_test

import (
	"encoding/json"
	"errors"
	"testing"

	apierr "github.com/polyaxon/plx/pkg/api/types/errors"
	"github.com/polyaxon/plx/pkg/api/types/matrix"
	"github.com/polyaxon/plx/pkg/utils/pointer"
	"github.com/polyaxon/plx/pkg/utils/try"
)

func TestMetricEarlyStopping_Reached(t *testing.T) {
	for name, testcase := range map[string]struct {
		opt      matrix.Optimization
		observed float64
		then     bool
	}{
		"maximize, above": {matrix.Maximize, 0.95, true},
		"maximize, equal": {matrix.Maximize, 0.9, true},
		"maximize, below": {matrix.Maximize, 0.85, false},
		"minimize, below": {matrix.Minimize, 0.85, true},
		"minimize, equal": {matrix.Minimize, 0.9, true},
		"minimize, above": {matrix.Minimize, 0.95, false},
	} {
		t.Run(name, func(t *testing.T) {
			m := matrix.MetricEarlyStopping{Metric: "accuracy", Value: 0.9, Optimization: testcase.opt}
			if actual := m.Reached(testcase.observed); actual != testcase.then {
				t.Errorf("unmatch: (actual, expected) = (%v, %v)", actual, testcase.then)
			}
		})
	}
}

func TestEarlyStopping(t *testing.T) {
	t.Run("metric early stopping with policy", func(t *testing.T) {
		body := `{
			"kind": "metric_early_stopping", "metric": "loss", "value": 0.01, "optimization": "minimize",
			"policy": {"kind": "median", "evaluation_interval": 1, "min_samples": 3}
		}`
		var actual matrix.EarlyStopping
		if err := json.Unmarshal([]byte(body), &actual); err != nil {
			t.Fatal(err)
		}
		expected := matrix.EarlyStopping{Metric: &matrix.MetricEarlyStopping{
			Kind: matrix.KindMetricEarlyStopping, Metric: "loss", Value: 0.01, Optimization: matrix.Minimize,
			Policy: &matrix.StoppingPolicy{Median: &matrix.MedianStoppingPolicy{
				Kind: matrix.KindMedianPolicy, EvaluationInterval: 1, MinSamples: 3,
			}},
		}}
		if !actual.Equal(expected) {
			t.Errorf("unmatch: (actual, expected) = (%+v, %+v)", actual, expected)
		}
		if err := actual.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}

		again := try.To(json.Marshal(actual)).OrFatal(t)
		var reread matrix.EarlyStopping
		if err := json.Unmarshal(again, &reread); err != nil {
			t.Fatal(err)
		}
		if !reread.Equal(actual) {
			t.Errorf("not stable after marshal: %s", again)
		}
	})

	t.Run("failure early stopping", func(t *testing.T) {
		var actual matrix.EarlyStopping
		if err := json.Unmarshal([]byte(`{"kind": "failure_early_stopping", "percent": 50}`), &actual); err != nil {
			t.Fatal(err)
		}
		if actual.Failure == nil || actual.Failure.Percent != 50 {
			t.Fatalf("unexpected: %+v", actual)
		}
		if !actual.Failure.Reached(5, 10) || actual.Failure.Reached(4, 10) || actual.Failure.Reached(0, 0) {
			t.Error("unexpected Reached")
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		var actual matrix.EarlyStopping
		if err := json.Unmarshal([]byte(`{"kind": "patience"}`), &actual); !errors.Is(err, apierr.ErrInvalid) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	for name, when := range map[string]matrix.EarlyStopping{
		"empty":            {},
		"both":             {Metric: &matrix.MetricEarlyStopping{}, Failure: &matrix.FailureEarlyStopping{}},
		"no metric":        {Metric: &matrix.MetricEarlyStopping{Value: 1, Optimization: matrix.Maximize}},
		"bad optimization": {Metric: &matrix.MetricEarlyStopping{Metric: "m", Optimization: "best"}},
		"zero percent":     {Failure: &matrix.FailureEarlyStopping{Percent: 0}},
		"over 100 percent": {Failure: &matrix.FailureEarlyStopping{Percent: 101}},
	} {
		t.Run("it rejects "+name, func(t *testing.T) {
			if err := when.Validate(); !errors.Is(err, apierr.ErrInvalid) {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestShouldStop(t *testing.T) {
	conditions := []matrix.EarlyStopping{
		{Metric: &matrix.MetricEarlyStopping{Metric: "accuracy", Value: 0.99, Optimization: matrix.Maximize}},
		{Failure: &matrix.FailureEarlyStopping{Percent: 50}},
	}

	if matrix.ShouldStop(conditions, []matrix.Observation{
		{Metrics: map[string]float64{"accuracy": 0.9}},
		{Failed: true},
		{Metrics: map[string]float64{"accuracy": 0.95}},
	}) {
		t.Error("nothing reached, but stopped")
	}
	if !matrix.ShouldStop(conditions, []matrix.Observation{
		{Metrics: map[string]float64{"accuracy": 0.995}},
	}) {
		t.Error("metric reached, but not stopped")
	}
	if !matrix.ShouldStop(conditions, []matrix.Observation{
		{Failed: true},
		{Metrics: map[string]float64{"accuracy": 0.5}},
	}) {
		t.Error("failures reached, but not stopped")
	}
}

func TestStoppingPolicies(t *testing.T) {
	peers := []float64{0.5, 0.6, 0.7, 0.8, 0.9}

	t.Run("median", func(t *testing.T) {
		p := matrix.StoppingPolicy{Median: &matrix.MedianStoppingPolicy{EvaluationInterval: 2, MinInterval: 1, MinSamples: 3}}
		if !p.ShouldStop(matrix.Maximize, matrix.Progress{Step: 3, Value: 0.65, Peers: peers}) {
			t.Error("worse than median should stop")
		}
		if p.ShouldStop(matrix.Maximize, matrix.Progress{Step: 3, Value: 0.75, Peers: peers}) {
			t.Error("better than median should not stop")
		}
		if p.ShouldStop(matrix.Maximize, matrix.Progress{Step: 2, Value: 0.1, Peers: peers}) {
			t.Error("off interval should not stop")
		}
		if p.ShouldStop(matrix.Maximize, matrix.Progress{Step: 0, Value: 0.1, Peers: peers}) {
			t.Error("before min interval should not stop")
		}
		if p.ShouldStop(matrix.Maximize, matrix.Progress{Step: 3, Value: 0.1, Peers: peers[:2]}) {
			t.Error("too few samples should not stop")
		}
		if !p.ShouldStop(matrix.Minimize, matrix.Progress{Step: 3, Value: 0.75, Peers: peers}) {
			t.Error("worse than median in minimize should stop")
		}
	})

	t.Run("diff", func(t *testing.T) {
		p := matrix.StoppingPolicy{Diff: &matrix.DiffStoppingPolicy{Percent: 10, EvaluationInterval: 1}}
		if !p.ShouldStop(matrix.Maximize, matrix.Progress{Step: 1, Value: 0.8, Peers: peers}) {
			t.Error("10% worse than best should stop")
		}
		if p.ShouldStop(matrix.Maximize, matrix.Progress{Step: 1, Value: 0.85, Peers: peers}) {
			t.Error("within 10% should not stop")
		}
		if !p.ShouldStop(matrix.Minimize, matrix.Progress{Step: 1, Value: 0.56, Peers: peers}) {
			t.Error("10% worse than best in minimize should stop")
		}
	})

	t.Run("truncation", func(t *testing.T) {
		p := matrix.StoppingPolicy{Truncation: &matrix.TruncationStoppingPolicy{
			Percent: 50, EvaluationInterval: 1, IncludeSucceeded: pointer.Ref(true),
		}}
		if !p.ShouldStop(matrix.Maximize, matrix.Progress{Step: 1, Value: 0.55, Peers: peers}) {
			t.Error("in the worst half should stop")
		}
		if p.ShouldStop(matrix.Maximize, matrix.Progress{Step: 1, Value: 0.75, Peers: peers}) {
			t.Error("in the best half should not stop")
		}
	})

	t.Run("json", func(t *testing.T) {
		var actual matrix.StoppingPolicy
		body := `{"kind": "truncation", "percent": 20, "evaluation_interval": 5, "include_succeeded": true}`
		if err := json.Unmarshal([]byte(body), &actual); err != nil {
			t.Fatal(err)
		}
		if actual.Truncation == nil || actual.Truncation.Percent != 20 || !*actual.Truncation.IncludeSucceeded {
			t.Fatalf("unexpected: %+v", actual)
		}
		if err := json.Unmarshal([]byte(`{"kind": "hyperband"}`), &actual); !errors.Is(err, apierr.ErrInvalid) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	for name, when := range map[string]matrix.StoppingPolicy{
		"empty":             {},
		"two policies":      {Median: &matrix.MedianStoppingPolicy{}, Diff: &matrix.DiffStoppingPolicy{Percent: 1}},
		"negative interval": {Median: &matrix.MedianStoppingPolicy{EvaluationInterval: -1}},
		"negative samples":  {Diff: &matrix.DiffStoppingPolicy{Percent: 10, MinSamples: -1}},
		"zero percent":      {Truncation: &matrix.TruncationStoppingPolicy{}},
		"wrong kind":        {Median: &matrix.MedianStoppingPolicy{Kind: "diff"}},
	} {
		t.Run("it rejects "+name, func(t *testing.T) {
			if err := when.Validate(); !errors.Is(err, apierr.ErrInvalid) {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
