package matrix

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	apierr "github.com/polyaxon/plx/pkg/api/types/errors"
)

// decodeNumbers reads numbers in one of forms below:
//
// - "1:10:2" (string separated by colons)
//
// - [1, 10, 2] (list)
//
// - {"start": 1, "stop": 10, "step": 2} (object, keys in names)
//
// First `required` numbers are required, the rest are optional and 0 when omitted.
func decodeNumbers(b []byte, names []string, required int) ([]float64, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil, apierr.Invalid("value is empty")
	}

	values := []float64{}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil, err
		}
		for _, f := range strings.Split(s, ":") {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, apierr.Invalid("%q is not a number in %q", f, s)
			}
			values = append(values, v)
		}
	case '[':
		if err := json.Unmarshal(b, &values); err != nil {
			return nil, apierr.Invalid("value should be list of numbers: %s", b)
		}
	case '{':
		obj := map[string]float64{}
		if err := json.Unmarshal(b, &obj); err != nil {
			return nil, apierr.Invalid("value should be object of numbers: %s", b)
		}
		for k := range obj {
			known := false
			for _, n := range names {
				known = known || n == k
			}
			if !known {
				return nil, apierr.Invalid("unknown key %q, expected %v", k, names)
			}
		}
		for _, n := range names {
			v, ok := obj[n]
			if !ok {
				break
			}
			values = append(values, v)
		}
		if len(values) != len(obj) {
			return nil, apierr.Invalid("%s: keys should be given in order of %v", b, names)
		}
	default:
		return nil, apierr.Invalid("value should be string, list or object: %s", b)
	}

	if len(values) < required || len(names) < len(values) {
		return nil, apierr.Invalid(
			"value should have %d to %d numbers (%v): %s", required, len(names), names, b,
		)
	}
	for len(values) < len(names) {
		values = append(values, 0)
	}
	return values, nil
}

func isIntegral(fs ...float64) bool {
	for _, f := range fs {
		if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
			return false
		}
	}
	return true
}

// Range is a start:stop:step range, stop excluded.
type Range struct {
	Start float64 `json:"start"`
	Stop  float64 `json:"stop"`
	Step  float64 `json:"step"`
}

func (r *Range) UnmarshalJSON(b []byte) error {
	v, err := decodeNumbers(b, []string{"start", "stop", "step"}, 3)
	if err != nil {
		return err
	}
	*r = Range{Start: v[0], Stop: v[1], Step: v[2]}
	return nil
}

func (r Range) Validate() error {
	for _, v := range []float64{r.Start, r.Stop, r.Step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return apierr.Invalid("range %v:%v:%v should be finite", r.Start, r.Stop, r.Step)
		}
	}
	if r.Step == 0 {
		return apierr.Invalid("range step should not be zero")
	}
	if (r.Stop-r.Start)/r.Step <= 0 {
		return apierr.Invalid("range %v:%v:%v is empty", r.Start, r.Stop, r.Step)
	}
	return nil
}

// maxLen caps Range.Len so that every index is exact in float64.
const maxLen = 1 << 53

// Len is the number of values in the range, capped at 2^53.
func (r Range) Len() int64 {
	n := math.Ceil((r.Stop - r.Start) / r.Step)
	switch {
	case math.IsNaN(n) || n <= 0:
		return 0
	case maxLen <= n:
		return maxLen
	}
	return int64(n)
}

// At is the i-th value of the range.
//
// When start and step are integral, it is int.
func (r Range) At(i int64) any {
	v := r.Start + float64(i)*r.Step
	if isIntegral(r.Start, r.Step) {
		return int(v)
	}
	return v
}

// Values expands the range.
//
// It allocates Len() values, so callers should check Len first.
func (r Range) Values() []any {
	n := r.Len()
	values := make([]any, 0, n)
	for i := range n {
		values = append(values, r.At(i))
	}
	return values
}

// Space is num points from start to stop, both included.
//
// Base is used by log space only, and is 0 when omitted.
type Space struct {
	Start float64
	Stop  float64
	Num   int
	Base  float64
}

func (s *Space) UnmarshalJSON(b []byte) error {
	v, err := decodeNumbers(b, []string{"start", "stop", "num", "base"}, 3)
	if err != nil {
		return err
	}
	if !isIntegral(v[2]) {
		return apierr.Invalid("num should be integer: %v", v[2])
	}
	*s = Space{Start: v[0], Stop: v[1], Num: int(v[2]), Base: v[3]}
	return nil
}

func (s Space) MarshalJSON() ([]byte, error) {
	obj := map[string]float64{"start": s.Start, "stop": s.Stop, "num": float64(s.Num)}
	if s.Base != 0 {
		obj["base"] = s.Base
	}
	return json.Marshal(obj)
}

func (s Space) Equal(o Space) bool {
	return s == o
}

func (s Space) validate() error {
	if s.Num < 1 {
		return apierr.Invalid("num should be positive: %d", s.Num)
	}
	return nil
}

// at is the i-th of Num points from start to stop, evenly spaced.
func (s Space) at(i int, start, stop float64) float64 {
	switch {
	case i == 0:
		return start
	case i == s.Num-1:
		return stop
	}
	delta := (stop - start) / float64(s.Num-1)
	return start + float64(i)*delta
}

func (s Space) linear(start, stop float64) []float64 {
	values := make([]float64, s.Num)
	for i := range values {
		values[i] = s.at(i, start, stop)
	}
	return values
}

// Interval is a pair of low and high, with quantization step Q.
//
// Q is 0 when omitted.
type Interval struct {
	Low  float64
	High float64
	Q    float64
}

func (i *Interval) UnmarshalJSON(b []byte) error {
	v, err := decodeNumbers(b, []string{"low", "high", "q"}, 2)
	if err != nil {
		return err
	}
	*i = Interval{Low: v[0], High: v[1], Q: v[2]}
	return nil
}

func (i Interval) MarshalJSON() ([]byte, error) {
	obj := map[string]float64{"low": i.Low, "high": i.High}
	if i.Q != 0 {
		obj["q"] = i.Q
	}
	return json.Marshal(obj)
}

func (i Interval) Equal(o Interval) bool {
	return i == o
}

func (i Interval) validate(quantized bool) error {
	if !(i.Low < i.High) {
		return apierr.Invalid("low should be less than high: %v, %v", i.Low, i.High)
	}
	return validateQ(i.Q, quantized)
}

// Gaussian is a pair of mean (loc) and standard deviation (scale), with quantization step Q.
//
// Q is 0 when omitted.
type Gaussian struct {
	Loc   float64
	Scale float64
	Q     float64
}

func (g *Gaussian) UnmarshalJSON(b []byte) error {
	v, err := decodeNumbers(b, []string{"loc", "scale", "q"}, 2)
	if err != nil {
		return err
	}
	*g = Gaussian{Loc: v[0], Scale: v[1], Q: v[2]}
	return nil
}

func (g Gaussian) MarshalJSON() ([]byte, error) {
	obj := map[string]float64{"loc": g.Loc, "scale": g.Scale}
	if g.Q != 0 {
		obj["q"] = g.Q
	}
	return json.Marshal(obj)
}

func (g Gaussian) Equal(o Gaussian) bool {
	return g == o
}

func (g Gaussian) validate(quantized bool) error {
	if !(0 < g.Scale) {
		return apierr.Invalid("scale should be positive: %v", g.Scale)
	}
	return validateQ(g.Q, quantized)
}

func validateQ(q float64, quantized bool) error {
	switch {
	case quantized && q == 0:
		return apierr.Invalid("q is required")
	case quantized && q < 0:
		return apierr.Invalid("q should be positive: %v", q)
	case !quantized && q != 0:
		return apierr.Invalid("q is not allowed, use quantized kind")
	}
	return nil
}

func quantize(v float64, q float64) float64 {
	return math.Round(v/q) * q
}
