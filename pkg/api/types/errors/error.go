package errors

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sort"
	"strings"
)

// ErrInvalid is wrapped by validation errors of api types.
var ErrInvalid = errors.New("invalid")

// Invalid builds an error wrapping ErrInvalid.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// ProtobufAny is an opaque payload attached to RuntimeError.
type ProtobufAny struct {
	TypeUrl string `json:"type_url,omitempty"`
	Value   []byte `json:"value,omitempty"`
}

func (p ProtobufAny) Equal(o ProtobufAny) bool {
	return p.TypeUrl == o.TypeUrl && bytes.Equal(p.Value, o.Value)
}

// RuntimeError is an error body of gRPC-gateway style.
type RuntimeError struct {
	Err     string        `json:"error,omitempty"`
	Code    int32         `json:"code,omitempty"`
	Message string        `json:"message,omitempty"`
	Details []ProtobufAny `json:"details,omitempty"`
}

func (r RuntimeError) Equal(o RuntimeError) bool {
	return r.Err == o.Err &&
		r.Code == o.Code &&
		r.Message == o.Message &&
		slices.EqualFunc(r.Details, o.Details, ProtobufAny.Equal)
}

func (r RuntimeError) Error() string {
	msg := r.Message
	if msg == "" {
		msg = r.Err
	}
	return fmt.Sprintf("%s (code = %d)", msg, r.Code)
}

// ErrorMessage is an error body of the api.
//
// It is shaped as {"detail": "..."} for non-field errors,
// and {"<field>": ["...", ...]} for each field errors.
type ErrorMessage struct {
	Detail string
	Fields map[string][]string
	Cause  error
}

func (em ErrorMessage) MarshalJSON() ([]byte, error) {
	m := map[string]any{}
	for k, v := range em.Fields {
		m[k] = v
	}
	if em.Detail != "" {
		m["detail"] = em.Detail
	}
	return json.Marshal(m)
}

func (em *ErrorMessage) UnmarshalJSON(b []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	ret := ErrorMessage{}
	for k, v := range raw {
		if k == "detail" || k == "message" {
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
			ret.Detail = s
			continue
		}

		var list []string
		if err := json.Unmarshal(v, &list); err != nil {
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				return fmt.Errorf("%s: not an error message", k)
			}
			list = []string{s}
		}
		if ret.Fields == nil {
			ret.Fields = map[string][]string{}
		}
		ret.Fields[k] = list
	}

	if ret.Detail == "" && len(ret.Fields) == 0 {
		return errors.New("no error message")
	}

	*em = ret
	return nil
}

func (em ErrorMessage) Equal(o ErrorMessage) bool {
	return em.Detail == o.Detail &&
		maps.EqualFunc(em.Fields, o.Fields, slices.Equal[[]string])
}

func (e ErrorMessage) String() string {
	lines := []string{}
	if e.Detail != "" {
		lines = append(lines, e.Detail)
	}

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], " ")))
	}
	if e.Cause != nil {
		lines = append(lines, fmt.Sprint(" caused by:", e.Cause.Error()))
	}
	return strings.Join(lines, "\n")
}

func (e ErrorMessage) Error() string {
	return e.String()
}

func (e ErrorMessage) Unwrap() error {
	return e.Cause
}

// FieldError builds ErrorMessage for a field.
func FieldError(field string, messages ...string) ErrorMessage {
	return ErrorMessage{Fields: map[string][]string{field: messages}}
}
