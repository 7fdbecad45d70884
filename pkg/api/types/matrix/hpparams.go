package matrix

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	apierr "github.com/polyaxon/plx/pkg/api/types/errors"
	"github.com/polyaxon/plx/pkg/api/types/internal/utils/cmp"
)

// HpParams holds exactly one of hyperparameter spaces.
type HpParams struct {
	Choice      *HpChoice      `json:"choice,omitempty"`
	PChoice     *HpPChoice     `json:"pchoice,omitempty"`
	Range       *HpRange       `json:"range,omitempty"`
	LinSpace    *HpLinSpace    `json:"linspace,omitempty"`
	LogSpace    *HpLogSpace    `json:"logspace,omitempty"`
	GeomSpace   *HpGeomSpace   `json:"geomspace,omitempty"`
	Uniform     *HpUniform     `json:"uniform,omitempty"`
	QUniform    *HpQUniform    `json:"quniform,omitempty"`
	LogUniform  *HpLogUniform  `json:"loguniform,omitempty"`
	QLogUniform *HpQLogUniform `json:"qloguniform,omitempty"`
	Normal      *HpNormal      `json:"normal,omitempty"`
	QNormal     *HpQNormal     `json:"qnormal,omitempty"`
	LogNormal   *HpLogNormal   `json:"lognormal,omitempty"`
	QLogNormal  *HpQLogNormal  `json:"qlognormal,omitempty"`
}

// ParamsOf wraps p as HpParams.
func ParamsOf(p Param) HpParams {
	h := HpParams{}
	switch v := p.(type) {
	case HpChoice:
		h.Choice = &v
	case HpPChoice:
		h.PChoice = &v
	case HpRange:
		h.Range = &v
	case HpLinSpace:
		h.LinSpace = &v
	case HpLogSpace:
		h.LogSpace = &v
	case HpGeomSpace:
		h.GeomSpace = &v
	case HpUniform:
		h.Uniform = &v
	case HpQUniform:
		h.QUniform = &v
	case HpLogUniform:
		h.LogUniform = &v
	case HpQLogUniform:
		h.QLogUniform = &v
	case HpNormal:
		h.Normal = &v
	case HpQNormal:
		h.QNormal = &v
	case HpLogNormal:
		h.LogNormal = &v
	case HpQLogNormal:
		h.QLogNormal = &v
	}
	return h
}

func (h HpParams) params() []Param {
	ps := []Param{}
	if h.Choice != nil {
		ps = append(ps, *h.Choice)
	}
	if h.PChoice != nil {
		ps = append(ps, *h.PChoice)
	}
	if h.Range != nil {
		ps = append(ps, *h.Range)
	}
	if h.LinSpace != nil {
		ps = append(ps, *h.LinSpace)
	}
	if h.LogSpace != nil {
		ps = append(ps, *h.LogSpace)
	}
	if h.GeomSpace != nil {
		ps = append(ps, *h.GeomSpace)
	}
	if h.Uniform != nil {
		ps = append(ps, *h.Uniform)
	}
	if h.QUniform != nil {
		ps = append(ps, *h.QUniform)
	}
	if h.LogUniform != nil {
		ps = append(ps, *h.LogUniform)
	}
	if h.QLogUniform != nil {
		ps = append(ps, *h.QLogUniform)
	}
	if h.Normal != nil {
		ps = append(ps, *h.Normal)
	}
	if h.QNormal != nil {
		ps = append(ps, *h.QNormal)
	}
	if h.LogNormal != nil {
		ps = append(ps, *h.LogNormal)
	}
	if h.QLogNormal != nil {
		ps = append(ps, *h.QLogNormal)
	}
	return ps
}

// Param returns the populated space, or nil if nothing is populated.
//
// When more than one are populated, the first one in field order is returned.
func (h HpParams) Param() Param {
	ps := h.params()
	if len(ps) == 0 {
		return nil
	}
	return ps[0]
}

// Validate checks exactly one space is populated and it is valid.
func (h HpParams) Validate() error {
	ps := h.params()
	switch len(ps) {
	case 0:
		return apierr.Invalid("hyperparameter is empty")
	case 1:
		return ps[0].Validate()
	default:
		kinds := make([]string, 0, len(ps))
		for _, p := range ps {
			kinds = append(kinds, p.ParamKind())
		}
		return apierr.Invalid("hyperparameter should have only one of them: %s", strings.Join(kinds, ", "))
	}
}

func (h HpParams) Equal(o HpParams) bool {
	return cmp.PtrEqual(h.Choice, o.Choice) &&
		cmp.PtrEqual(h.PChoice, o.PChoice) &&
		cmp.PtrEqual(h.Range, o.Range) &&
		cmp.PtrEqual(h.LinSpace, o.LinSpace) &&
		cmp.PtrEqual(h.LogSpace, o.LogSpace) &&
		cmp.PtrEqual(h.GeomSpace, o.GeomSpace) &&
		cmp.PtrEqual(h.Uniform, o.Uniform) &&
		cmp.PtrEqual(h.QUniform, o.QUniform) &&
		cmp.PtrEqual(h.LogUniform, o.LogUniform) &&
		cmp.PtrEqual(h.QLogUniform, o.QLogUniform) &&
		cmp.PtrEqual(h.Normal, o.Normal) &&
		cmp.PtrEqual(h.QNormal, o.QNormal) &&
		cmp.PtrEqual(h.LogNormal, o.LogNormal) &&
		cmp.PtrEqual(h.QLogNormal, o.QLogNormal)
}

func decodeAs[T Param](b []byte) (Param, error) {
	v := new(T)
	if err := json.Unmarshal(b, v); err != nil {
		return nil, err
	}
	return *v, nil
}

var decoders = map[string]func([]byte) (Param, error){
	KindChoice:      decodeAs[HpChoice],
	KindPChoice:     decodeAs[HpPChoice],
	KindRange:       decodeAs[HpRange],
	KindLinSpace:    decodeAs[HpLinSpace],
	KindLogSpace:    decodeAs[HpLogSpace],
	KindGeomSpace:   decodeAs[HpGeomSpace],
	KindUniform:     decodeAs[HpUniform],
	KindQUniform:    decodeAs[HpQUniform],
	KindLogUniform:  decodeAs[HpLogUniform],
	KindQLogUniform: decodeAs[HpQLogUniform],
	KindNormal:      decodeAs[HpNormal],
	KindQNormal:     decodeAs[HpQNormal],
	KindLogNormal:   decodeAs[HpLogNormal],
	KindQLogNormal:  decodeAs[HpQLogNormal],
}

// Kinds returns known kinds of hyperparameter in ascending order.
func Kinds() []string {
	ks := make([]string, 0, len(decoders))
	for k := range decoders {
		ks = append(ks, k)
	}
	slices.Sort(ks)
	return ks
}

// ParseParam reads a hyperparameter written as {"kind": ..., "value": ...}.
//
// The result is validated.
func ParseParam(b []byte) (Param, error) {
	head := struct {
		Kind string `json:"kind"`
	}{}
	if err := json.Unmarshal(b, &head); err != nil {
		return nil, err
	}
	decode, ok := decoders[head.Kind]
	if !ok {
		return nil, apierr.Invalid("unknown hyperparameter kind %q, expected one of %v", head.Kind, Kinds())
	}
	p, err := decode(b)
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// ParamSet is a set of named hyperparameters, in kind-discriminated form.
type ParamSet map[string]Param

func (ps *ParamSet) UnmarshalJSON(b []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	set := make(ParamSet, len(raw))
	for name, r := range raw {
		p, err := ParseParam(r)
		if err != nil {
			return fmt.Errorf("param %q: %w", name, err)
		}
		set[name] = p
	}
	*ps = set
	return nil
}

func (ps ParamSet) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(ps))
	for name, p := range ps {
		b, err := json.Marshal(p)
		if err != nil {
			return nil, err
		}
		// make kind explicit, since it is the discriminator.
		obj := map[string]json.RawMessage{}
		if err := json.Unmarshal(b, &obj); err != nil {
			return nil, err
		}
		obj["kind"] = json.RawMessage(`"` + p.ParamKind() + `"`)
		if out[name], err = json.Marshal(obj); err != nil {
			return nil, err
		}
	}
	return json.Marshal(out)
}

// Names returns names of params in ascending order.
func (ps ParamSet) Names() []string {
	names := make([]string, 0, len(ps))
	for n := range ps {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
