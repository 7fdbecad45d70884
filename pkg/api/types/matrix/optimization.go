package matrix

import (
	"encoding/json"
	"math"
	"slices"

	apierr "github.com/polyaxon/plx/pkg/api/types/errors"
	"github.com/polyaxon/plx/pkg/api/types/internal/utils/cmp"
)

type Optimization string

const (
	Maximize Optimization = "maximize"
	Minimize Optimization = "minimize"
)

func (o Optimization) String() string {
	return string(o)
}

func (o Optimization) Validate() error {
	switch o {
	case Maximize, Minimize:
		return nil
	}
	return apierr.Invalid("optimization should be maximize or minimize: %q", o)
}

// Better reports a is better than b.
func (o Optimization) Better(a, b float64) bool {
	if o == Minimize {
		return a < b
	}
	return a > b
}

const (
	KindMetricEarlyStopping  = "metric_early_stopping"
	KindFailureEarlyStopping = "failure_early_stopping"
)

// MetricEarlyStopping stops searching when a metric reaches the value.
type MetricEarlyStopping struct {
	Kind         string          `json:"kind,omitempty"`
	Metric       string          `json:"metric"`
	Value        float64         `json:"value"`
	Optimization Optimization    `json:"optimization"`
	Policy       *StoppingPolicy `json:"policy,omitempty"`
}

func (m MetricEarlyStopping) Equal(o MetricEarlyStopping) bool {
	return m.Kind == o.Kind &&
		m.Metric == o.Metric &&
		m.Value == o.Value &&
		m.Optimization == o.Optimization &&
		cmp.PtrEqual(m.Policy, o.Policy)
}

func (m MetricEarlyStopping) Validate() error {
	if err := checkKind(KindMetricEarlyStopping, m.Kind); err != nil {
		return err
	}
	if m.Metric == "" {
		return apierr.Invalid("metric is required")
	}
	if math.IsNaN(m.Value) || math.IsInf(m.Value, 0) {
		return apierr.Invalid("value should be finite: %v", m.Value)
	}
	if err := m.Optimization.Validate(); err != nil {
		return err
	}
	if m.Policy != nil {
		return m.Policy.Validate()
	}
	return nil
}

// Reached reports observed value v reaches the target.
//
// For maximize, it is v >= Value. For minimize, v <= Value.
func (m MetricEarlyStopping) Reached(v float64) bool {
	if math.IsNaN(v) {
		return false
	}
	if m.Optimization == Minimize {
		return v <= m.Value
	}
	return v >= m.Value
}

// FailureEarlyStopping stops searching when too many runs failed.
type FailureEarlyStopping struct {
	Kind    string `json:"kind,omitempty"`
	Percent int32  `json:"percent"`
}

func (f FailureEarlyStopping) Equal(o FailureEarlyStopping) bool {
	return f == o
}

func (f FailureEarlyStopping) Validate() error {
	if err := checkKind(KindFailureEarlyStopping, f.Kind); err != nil {
		return err
	}
	return validatePercent(f.Percent)
}

// Reached reports failed runs in total runs are Percent% or more.
func (f FailureEarlyStopping) Reached(failed, total int) bool {
	if total <= 0 {
		return false
	}
	return int64(failed)*100 >= int64(f.Percent)*int64(total)
}

func validatePercent(p int32) error {
	if !(0 < p && p <= 100) {
		return apierr.Invalid("percent should be in (0, 100]: %d", p)
	}
	return nil
}

// EarlyStopping is one of early stopping conditions, discriminated by kind.
type EarlyStopping struct {
	Metric  *MetricEarlyStopping
	Failure *FailureEarlyStopping
}

func (e *EarlyStopping) UnmarshalJSON(b []byte) error {
	head := struct {
		Kind string `json:"kind"`
	}{}
	if err := json.Unmarshal(b, &head); err != nil {
		return err
	}
	*e = EarlyStopping{}
	switch head.Kind {
	case KindMetricEarlyStopping:
		e.Metric = new(MetricEarlyStopping)
		return json.Unmarshal(b, e.Metric)
	case KindFailureEarlyStopping:
		e.Failure = new(FailureEarlyStopping)
		return json.Unmarshal(b, e.Failure)
	}
	return apierr.Invalid("unknown early stopping kind: %q", head.Kind)
}

func (e EarlyStopping) MarshalJSON() ([]byte, error) {
	switch {
	case e.Metric != nil:
		m := *e.Metric
		m.Kind = KindMetricEarlyStopping
		return json.Marshal(m)
	case e.Failure != nil:
		f := *e.Failure
		f.Kind = KindFailureEarlyStopping
		return json.Marshal(f)
	}
	return []byte("null"), nil
}

func (e EarlyStopping) Equal(o EarlyStopping) bool {
	return cmp.PtrEqual(e.Metric, o.Metric) && cmp.PtrEqual(e.Failure, o.Failure)
}

func (e EarlyStopping) Validate() error {
	switch {
	case e.Metric != nil && e.Failure != nil:
		return apierr.Invalid("early stopping should have only one condition")
	case e.Metric != nil:
		return e.Metric.Validate()
	case e.Failure != nil:
		return e.Failure.Validate()
	}
	return apierr.Invalid("early stopping is empty")
}

// Observation is a progress of a run, used to decide early stopping.
type Observation struct {
	Failed bool

	// metric values keyed by metric name
	Metrics map[string]float64
}

// ShouldStop checks whether any of conditions is reached by observations.
func ShouldStop(conditions []EarlyStopping, observations []Observation) bool {
	failed := 0
	for _, o := range observations {
		if o.Failed {
			failed += 1
		}
	}
	return slices.ContainsFunc(conditions, func(c EarlyStopping) bool {
		switch {
		case c.Failure != nil:
			return c.Failure.Reached(failed, len(observations))
		case c.Metric != nil:
			return slices.ContainsFunc(observations, func(o Observation) bool {
				v, ok := o.Metrics[c.Metric.Metric]
				return ok && c.Metric.Reached(v)
			})
		}
		return false
	})
}
