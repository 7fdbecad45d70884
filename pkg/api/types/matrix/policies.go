package matrix

import (
	"encoding/json"
	"slices"
	"sort"

	apierr "github.com/polyaxon/plx/pkg/api/types/errors"
	"github.com/polyaxon/plx/pkg/api/types/internal/utils/cmp"
)

const (
	KindMedianPolicy     = "median"
	KindDiffPolicy       = "diff"
	KindTruncationPolicy = "truncation"
)

// Progress is a metric value of a run at a step, with values of the other runs at the same step.
type Progress struct {
	Step  int
	Value float64
	Peers []float64
}

type interval struct {
	EvaluationInterval int32
	MinInterval        int32
	MinSamples         int32
}

func (i interval) validate() error {
	if i.EvaluationInterval < 0 || i.MinInterval < 0 || i.MinSamples < 0 {
		return apierr.Invalid(
			"evaluation_interval, min_interval and min_samples should not be negative: %d, %d, %d",
			i.EvaluationInterval, i.MinInterval, i.MinSamples,
		)
	}
	return nil
}

// evaluable reports p is at a step to be evaluated with enough peers.
func (i interval) evaluable(p Progress) bool {
	if p.Step < int(i.MinInterval) {
		return false
	}
	if 0 < i.EvaluationInterval && (p.Step-int(i.MinInterval))%int(i.EvaluationInterval) != 0 {
		return false
	}
	return int(i.MinSamples) <= len(p.Peers) && 0 < len(p.Peers)
}

// MedianStoppingPolicy stops a run whose value is worse than median of the others.
type MedianStoppingPolicy struct {
	Kind               string `json:"kind,omitempty"`
	EvaluationInterval int32  `json:"evaluation_interval"`
	MinInterval        int32  `json:"min_interval,omitempty"`
	MinSamples         int32  `json:"min_samples,omitempty"`
}

func (m MedianStoppingPolicy) Equal(o MedianStoppingPolicy) bool { return m == o }

func (m MedianStoppingPolicy) interval() interval {
	return interval{m.EvaluationInterval, m.MinInterval, m.MinSamples}
}

func (m MedianStoppingPolicy) Validate() error {
	if err := checkKind(KindMedianPolicy, m.Kind); err != nil {
		return err
	}
	return m.interval().validate()
}

func (m MedianStoppingPolicy) ShouldStop(opt Optimization, p Progress) bool {
	if !m.interval().evaluable(p) {
		return false
	}
	return opt.Better(median(p.Peers), p.Value)
}

func median(vs []float64) float64 {
	s := slices.Clone(vs)
	sort.Float64s(s)
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}

// DiffStoppingPolicy stops a run whose value is worse than the best of the others by Percent% or more.
type DiffStoppingPolicy struct {
	Kind               string `json:"kind,omitempty"`
	Percent            int32  `json:"percent"`
	EvaluationInterval int32  `json:"evaluation_interval"`
	MinInterval        int32  `json:"min_interval,omitempty"`
	MinSamples         int32  `json:"min_samples,omitempty"`
}

func (d DiffStoppingPolicy) Equal(o DiffStoppingPolicy) bool { return d == o }

func (d DiffStoppingPolicy) interval() interval {
	return interval{d.EvaluationInterval, d.MinInterval, d.MinSamples}
}

func (d DiffStoppingPolicy) Validate() error {
	if err := checkKind(KindDiffPolicy, d.Kind); err != nil {
		return err
	}
	if err := validatePercent(d.Percent); err != nil {
		return err
	}
	return d.interval().validate()
}

func (d DiffStoppingPolicy) ShouldStop(opt Optimization, p Progress) bool {
	if !d.interval().evaluable(p) {
		return false
	}
	best := p.Peers[0]
	for _, v := range p.Peers[1:] {
		if opt.Better(v, best) {
			best = v
		}
	}
	margin := abs(best) * float64(d.Percent) / 100
	if opt == Minimize {
		return best+margin <= p.Value
	}
	return p.Value <= best-margin
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// TruncationStoppingPolicy stops runs in the worst Percent% of all runs.
type TruncationStoppingPolicy struct {
	Kind               string `json:"kind,omitempty"`
	Percent            int32  `json:"percent"`
	EvaluationInterval int32  `json:"evaluation_interval"`
	MinInterval        int32  `json:"min_interval,omitempty"`
	MinSamples         int32  `json:"min_samples,omitempty"`
	IncludeSucceeded   *bool  `json:"include_succeeded,omitempty"`
}

func (t TruncationStoppingPolicy) Equal(o TruncationStoppingPolicy) bool {
	return t.Kind == o.Kind &&
		t.Percent == o.Percent &&
		t.EvaluationInterval == o.EvaluationInterval &&
		t.MinInterval == o.MinInterval &&
		t.MinSamples == o.MinSamples &&
		cmp.PtrEq(t.IncludeSucceeded, o.IncludeSucceeded)
}

func (t TruncationStoppingPolicy) interval() interval {
	return interval{t.EvaluationInterval, t.MinInterval, t.MinSamples}
}

func (t TruncationStoppingPolicy) Validate() error {
	if err := checkKind(KindTruncationPolicy, t.Kind); err != nil {
		return err
	}
	if err := validatePercent(t.Percent); err != nil {
		return err
	}
	return t.interval().validate()
}

func (t TruncationStoppingPolicy) ShouldStop(opt Optimization, p Progress) bool {
	if !t.interval().evaluable(p) {
		return false
	}
	all := append(slices.Clone(p.Peers), p.Value)
	// worst first
	slices.SortFunc(all, func(a, b float64) int {
		switch {
		case opt.Better(b, a):
			return -1
		case opt.Better(a, b):
			return 1
		}
		return 0
	})
	cut := len(all) * int(t.Percent) / 100
	if cut == 0 {
		return false
	}
	return !opt.Better(p.Value, all[cut-1])
}

// StoppingPolicy is one of stopping policies, discriminated by kind.
type StoppingPolicy struct {
	Median     *MedianStoppingPolicy
	Diff       *DiffStoppingPolicy
	Truncation *TruncationStoppingPolicy
}

func (s *StoppingPolicy) UnmarshalJSON(b []byte) error {
	head := struct {
		Kind string `json:"kind"`
	}{}
	if err := json.Unmarshal(b, &head); err != nil {
		return err
	}
	*s = StoppingPolicy{}
	switch head.Kind {
	case KindMedianPolicy:
		s.Median = new(MedianStoppingPolicy)
		return json.Unmarshal(b, s.Median)
	case KindDiffPolicy:
		s.Diff = new(DiffStoppingPolicy)
		return json.Unmarshal(b, s.Diff)
	case KindTruncationPolicy:
		s.Truncation = new(TruncationStoppingPolicy)
		return json.Unmarshal(b, s.Truncation)
	}
	return apierr.Invalid("unknown stopping policy kind: %q", head.Kind)
}

func (s StoppingPolicy) MarshalJSON() ([]byte, error) {
	switch {
	case s.Median != nil:
		m := *s.Median
		m.Kind = KindMedianPolicy
		return json.Marshal(m)
	case s.Diff != nil:
		d := *s.Diff
		d.Kind = KindDiffPolicy
		return json.Marshal(d)
	case s.Truncation != nil:
		t := *s.Truncation
		t.Kind = KindTruncationPolicy
		return json.Marshal(t)
	}
	return []byte("null"), nil
}

func (s StoppingPolicy) Equal(o StoppingPolicy) bool {
	return cmp.PtrEqual(s.Median, o.Median) &&
		cmp.PtrEqual(s.Diff, o.Diff) &&
		cmp.PtrEqual(s.Truncation, o.Truncation)
}

type policy interface {
	Validate() error
	ShouldStop(Optimization, Progress) bool
}

func (s StoppingPolicy) policies() []policy {
	ps := []policy{}
	if s.Median != nil {
		ps = append(ps, *s.Median)
	}
	if s.Diff != nil {
		ps = append(ps, *s.Diff)
	}
	if s.Truncation != nil {
		ps = append(ps, *s.Truncation)
	}
	return ps
}

func (s StoppingPolicy) Validate() error {
	ps := s.policies()
	switch len(ps) {
	case 0:
		return apierr.Invalid("stopping policy is empty")
	case 1:
		return ps[0].Validate()
	}
	return apierr.Invalid("stopping policy should have only one policy")
}

// ShouldStop reports the run making progress p should be stopped.
func (s StoppingPolicy) ShouldStop(opt Optimization, p Progress) bool {
	ps := s.policies()
	if len(ps) != 1 {
		return false
	}
	return ps[0].ShouldStop(opt, p)
}
