package matrix

import (
	"encoding/json"
	"math"
	"math/rand/v2"

	apierr "github.com/polyaxon/plx/pkg/api/types/errors"
	"k8s.io/apimachinery/pkg/api/equality"
)

const (
	KindChoice      = "choice"
	KindPChoice     = "pchoice"
	KindRange       = "range"
	KindLinSpace    = "linspace"
	KindLogSpace    = "logspace"
	KindGeomSpace   = "geomspace"
	KindUniform     = "uniform"
	KindQUniform    = "quniform"
	KindLogUniform  = "loguniform"
	KindQLogUniform = "qloguniform"
	KindNormal      = "normal"
	KindQNormal     = "qnormal"
	KindLogNormal   = "lognormal"
	KindQLogNormal  = "qlognormal"
)

// Param is a search space of a hyperparameter.
type Param interface {
	ParamKind() string
	Validate() error

	// Sample draws a value from the space.
	//
	// The param should be valid.
	Sample(r *rand.Rand) any
}

// Discrete is a param with finite values. Only discrete params can be grid-searched.
type Discrete interface {
	Param

	// Len is the number of values.
	Len() int64

	// Values enumerates the space.
	//
	// The param should be valid, and Len() should be small enough to hold in memory.
	Values() []any
}

func checkKind(expected, actual string) error {
	if actual != "" && actual != expected {
		return apierr.Invalid("kind should be %q or omitted: %q", expected, actual)
	}
	return nil
}

func pick(r *rand.Rand, values []any) any {
	return values[r.IntN(len(values))]
}

type HpChoice struct {
	Kind  string `json:"kind,omitempty"`
	Value []any  `json:"value"`
}

var _ Discrete = HpChoice{}

func (HpChoice) ParamKind() string { return KindChoice }

func (h HpChoice) Validate() error {
	if err := checkKind(KindChoice, h.Kind); err != nil {
		return err
	}
	if len(h.Value) == 0 {
		return apierr.Invalid("choice should have values")
	}
	return nil
}

func (h HpChoice) Len() int64             { return int64(len(h.Value)) }
func (h HpChoice) Values() []any           { return h.Value }
func (h HpChoice) Sample(r *rand.Rand) any { return pick(r, h.Value) }

func (h HpChoice) Equal(o HpChoice) bool {
	return h.Kind == o.Kind && equality.Semantic.DeepEqual(h.Value, o.Value)
}

// PChoiceItem is a value with its probability, [value, probability] in JSON.
type PChoiceItem struct {
	Value       any
	Probability float64
}

func (p PChoiceItem) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{p.Value, p.Probability})
}

func (p *PChoiceItem) UnmarshalJSON(b []byte) error {
	pair := []json.RawMessage{}
	if err := json.Unmarshal(b, &pair); err != nil || len(pair) != 2 {
		return apierr.Invalid("pchoice item should be [value, probability]: %s", b)
	}
	var v any
	if err := json.Unmarshal(pair[0], &v); err != nil {
		return err
	}
	var prob float64
	if err := json.Unmarshal(pair[1], &prob); err != nil {
		return apierr.Invalid("probability should be number: %s", pair[1])
	}
	*p = PChoiceItem{Value: v, Probability: prob}
	return nil
}

type HpPChoice struct {
	Kind  string        `json:"kind,omitempty"`
	Value []PChoiceItem `json:"value"`
}

var _ Discrete = HpPChoice{}

func (HpPChoice) ParamKind() string { return KindPChoice }

// Validate checks probabilities are in (0, 1] and sum up to 1.
func (h HpPChoice) Validate() error {
	if err := checkKind(KindPChoice, h.Kind); err != nil {
		return err
	}
	if len(h.Value) == 0 {
		return apierr.Invalid("pchoice should have values")
	}
	sum := 0.0
	for _, item := range h.Value {
		if !(0 < item.Probability && item.Probability <= 1) {
			return apierr.Invalid("probability of %v should be in (0, 1]: %v", item.Value, item.Probability)
		}
		sum += item.Probability
	}
	if 1e-9 < math.Abs(sum-1) {
		return apierr.Invalid("sum of probabilities should be 1: %v", sum)
	}
	return nil
}

func (h HpPChoice) Len() int64 { return int64(len(h.Value)) }

func (h HpPChoice) Values() []any {
	values := make([]any, len(h.Value))
	for i := range h.Value {
		values[i] = h.Value[i].Value
	}
	return values
}

func (h HpPChoice) Sample(r *rand.Rand) any {
	u := r.Float64()
	acc := 0.0
	for _, item := range h.Value {
		acc += item.Probability
		if u < acc {
			return item.Value
		}
	}
	return h.Value[len(h.Value)-1].Value
}

func (h HpPChoice) Equal(o HpPChoice) bool {
	return h.Kind == o.Kind && equality.Semantic.DeepEqual(h.Value, o.Value)
}

type HpRange struct {
	Kind  string `json:"kind,omitempty"`
	Value Range  `json:"value"`
}

var _ Discrete = HpRange{}

func (HpRange) ParamKind() string { return KindRange }

func (h HpRange) Validate() error {
	if err := checkKind(KindRange, h.Kind); err != nil {
		return err
	}
	return h.Value.Validate()
}

func (h HpRange) Len() int64   { return h.Value.Len() }
func (h HpRange) Values() []any { return h.Value.Values() }

func (h HpRange) Sample(r *rand.Rand) any {
	return h.Value.At(r.Int64N(h.Value.Len()))
}
func (h HpRange) Equal(o HpRange) bool    { return h == o }

type HpLinSpace struct {
	Kind  string `json:"kind,omitempty"`
	Value Space  `json:"value"`
}

var _ Discrete = HpLinSpace{}

func (HpLinSpace) ParamKind() string { return KindLinSpace }

func (h HpLinSpace) Validate() error {
	if err := checkKind(KindLinSpace, h.Kind); err != nil {
		return err
	}
	if h.Value.Base != 0 {
		return apierr.Invalid("base is not allowed for linspace")
	}
	return h.Value.validate()
}

func (h HpLinSpace) Len() int64 { return int64(h.Value.Num) }

func (h HpLinSpace) Values() []any {
	return floats(h.Value.linear(h.Value.Start, h.Value.Stop))
}

func (h HpLinSpace) Sample(r *rand.Rand) any {
	return h.Value.at(r.IntN(h.Value.Num), h.Value.Start, h.Value.Stop)
}
func (h HpLinSpace) Equal(o HpLinSpace) bool { return h == o }

// HpLogSpace is num points from base^start to base^stop. Base is 10 when omitted.
type HpLogSpace struct {
	Kind  string `json:"kind,omitempty"`
	Value Space  `json:"value"`
}

var _ Discrete = HpLogSpace{}

func (HpLogSpace) ParamKind() string { return KindLogSpace }

func (h HpLogSpace) Validate() error {
	if err := checkKind(KindLogSpace, h.Kind); err != nil {
		return err
	}
	if b := h.Value.Base; b < 0 || b == 1 {
		return apierr.Invalid("base should be positive and not 1: %v", b)
	}
	return h.Value.validate()
}

func (h HpLogSpace) Len() int64 { return int64(h.Value.Num) }

func (h HpLogSpace) base() float64 {
	if h.Value.Base == 0 {
		return 10
	}
	return h.Value.Base
}

func (h HpLogSpace) Values() []any {
	exps := h.Value.linear(h.Value.Start, h.Value.Stop)
	for i := range exps {
		exps[i] = math.Pow(h.base(), exps[i])
	}
	return floats(exps)
}

func (h HpLogSpace) Sample(r *rand.Rand) any {
	return math.Pow(h.base(), h.Value.at(r.IntN(h.Value.Num), h.Value.Start, h.Value.Stop))
}
func (h HpLogSpace) Equal(o HpLogSpace) bool { return h == o }

// HpGeomSpace is num points from start to stop, evenly spaced on log scale.
type HpGeomSpace struct {
	Kind  string `json:"kind,omitempty"`
	Value Space  `json:"value"`
}

var _ Discrete = HpGeomSpace{}

func (HpGeomSpace) ParamKind() string { return KindGeomSpace }

func (h HpGeomSpace) Validate() error {
	if err := checkKind(KindGeomSpace, h.Kind); err != nil {
		return err
	}
	if h.Value.Base != 0 {
		return apierr.Invalid("base is not allowed for geomspace")
	}
	if h.Value.Start == 0 || h.Value.Stop == 0 {
		return apierr.Invalid("geomspace cannot include zero")
	}
	if (h.Value.Start < 0) != (h.Value.Stop < 0) {
		return apierr.Invalid("start and stop of geomspace should have same sign")
	}
	return h.Value.validate()
}

func (h HpGeomSpace) Len() int64 { return int64(h.Value.Num) }

// point is the i-th value. Both ends are exact.
func (h HpGeomSpace) point(i int) float64 {
	switch i {
	case 0:
		return h.Value.Start
	case h.Value.Num - 1:
		return h.Value.Stop
	}
	sign := 1.0
	if h.Value.Start < 0 {
		sign = -1
	}
	exp := h.Value.at(i, math.Log(math.Abs(h.Value.Start)), math.Log(math.Abs(h.Value.Stop)))
	return sign * math.Exp(exp)
}

func (h HpGeomSpace) Values() []any {
	values := make([]any, h.Value.Num)
	for i := range values {
		values[i] = h.point(i)
	}
	return values
}

func (h HpGeomSpace) Sample(r *rand.Rand) any { return h.point(r.IntN(h.Value.Num)) }
func (h HpGeomSpace) Equal(o HpGeomSpace) bool { return h == o }

func floats(fs []float64) []any {
	values := make([]any, len(fs))
	for i := range fs {
		values[i] = fs[i]
	}
	return values
}

type HpUniform struct {
	Kind  string   `json:"kind,omitempty"`
	Value Interval `json:"value"`
}

var _ Param = HpUniform{}

func (HpUniform) ParamKind() string { return KindUniform }

func (h HpUniform) Validate() error {
	if err := checkKind(KindUniform, h.Kind); err != nil {
		return err
	}
	return h.Value.validate(false)
}

func (h HpUniform) Sample(r *rand.Rand) any {
	return uniform(r, h.Value.Low, h.Value.High)
}

func (h HpUniform) Equal(o HpUniform) bool { return h == o }

func uniform(r *rand.Rand, low, high float64) float64 {
	return low + r.Float64()*(high-low)
}

type HpQUniform struct {
	Kind  string   `json:"kind,omitempty"`
	Value Interval `json:"value"`
}

var _ Param = HpQUniform{}

func (HpQUniform) ParamKind() string { return KindQUniform }

func (h HpQUniform) Validate() error {
	if err := checkKind(KindQUniform, h.Kind); err != nil {
		return err
	}
	return h.Value.validate(true)
}

func (h HpQUniform) Sample(r *rand.Rand) any {
	return quantize(uniform(r, h.Value.Low, h.Value.High), h.Value.Q)
}

func (h HpQUniform) Equal(o HpQUniform) bool { return h == o }

// HpLogUniform samples exp(uniform(low, high)).
type HpLogUniform struct {
	Kind  string   `json:"kind,omitempty"`
	Value Interval `json:"value"`
}

var _ Param = HpLogUniform{}

func (HpLogUniform) ParamKind() string { return KindLogUniform }

func (h HpLogUniform) Validate() error {
	if err := checkKind(KindLogUniform, h.Kind); err != nil {
		return err
	}
	return h.Value.validate(false)
}

func (h HpLogUniform) Sample(r *rand.Rand) any {
	return math.Exp(uniform(r, h.Value.Low, h.Value.High))
}

func (h HpLogUniform) Equal(o HpLogUniform) bool { return h == o }

type HpQLogUniform struct {
	Kind  string   `json:"kind,omitempty"`
	Value Interval `json:"value"`
}

var _ Param = HpQLogUniform{}

func (HpQLogUniform) ParamKind() string { return KindQLogUniform }

func (h HpQLogUniform) Validate() error {
	if err := checkKind(KindQLogUniform, h.Kind); err != nil {
		return err
	}
	return h.Value.validate(true)
}

func (h HpQLogUniform) Sample(r *rand.Rand) any {
	return quantize(math.Exp(uniform(r, h.Value.Low, h.Value.High)), h.Value.Q)
}

func (h HpQLogUniform) Equal(o HpQLogUniform) bool { return h == o }

type HpNormal struct {
	Kind  string   `json:"kind,omitempty"`
	Value Gaussian `json:"value"`
}

var _ Param = HpNormal{}

func (HpNormal) ParamKind() string { return KindNormal }

func (h HpNormal) Validate() error {
	if err := checkKind(KindNormal, h.Kind); err != nil {
		return err
	}
	return h.Value.validate(false)
}

func (h HpNormal) Sample(r *rand.Rand) any {
	return normal(r, h.Value.Loc, h.Value.Scale)
}

func (h HpNormal) Equal(o HpNormal) bool { return h == o }

func normal(r *rand.Rand, loc, scale float64) float64 {
	return loc + r.NormFloat64()*scale
}

type HpQNormal struct {
	Kind  string   `json:"kind,omitempty"`
	Value Gaussian `json:"value"`
}

var _ Param = HpQNormal{}

func (HpQNormal) ParamKind() string { return KindQNormal }

func (h HpQNormal) Validate() error {
	if err := checkKind(KindQNormal, h.Kind); err != nil {
		return err
	}
	return h.Value.validate(true)
}

func (h HpQNormal) Sample(r *rand.Rand) any {
	return quantize(normal(r, h.Value.Loc, h.Value.Scale), h.Value.Q)
}

func (h HpQNormal) Equal(o HpQNormal) bool { return h == o }

// HpLogNormal samples exp(normal(loc, scale)).
type HpLogNormal struct {
	Kind  string   `json:"kind,omitempty"`
	Value Gaussian `json:"value"`
}

var _ Param = HpLogNormal{}

func (HpLogNormal) ParamKind() string { return KindLogNormal }

func (h HpLogNormal) Validate() error {
	if err := checkKind(KindLogNormal, h.Kind); err != nil {
		return err
	}
	return h.Value.validate(false)
}

func (h HpLogNormal) Sample(r *rand.Rand) any {
	return math.Exp(normal(r, h.Value.Loc, h.Value.Scale))
}

func (h HpLogNormal) Equal(o HpLogNormal) bool { return h == o }

type HpQLogNormal struct {
	Kind  string   `json:"kind,omitempty"`
	Value Gaussian `json:"value"`
}

var _ Param = HpQLogNormal{}

func (HpQLogNormal) ParamKind() string { return KindQLogNormal }

func (h HpQLogNormal) Validate() error {
	if err := checkKind(KindQLogNormal, h.Kind); err != nil {
		return err
	}
	return h.Value.validate(true)
}

func (h HpQLogNormal) Sample(r *rand.Rand) any {
	return quantize(math.Exp(normal(r, h.Value.Loc, h.Value.Scale)), h.Value.Q)
}

func (h HpQLogNormal) Equal(o HpQLogNormal) bool { return h == o }
