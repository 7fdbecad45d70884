// Package yamler reads and writes yaml documents for plx.
//
// Node builders are for commented documents, like templates.
package yamler

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

func Text(value string, options ...Option) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Value: value}
	for _, opt := range options {
		n = opt(n)
	}
	return n
}

func Bool(b bool) *yaml.Node {
	value := "false"
	if b {
		value = "true"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Value: value}
}

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

func Number[N Numeric](n N) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: fmt.Sprint(n)}
}

type Option func(*yaml.Node) *yaml.Node

func WithStyle(s yaml.Style) Option {
	return func(n *yaml.Node) *yaml.Node {
		n.Style = s
		return n
	}
}

func WithHeadComment(comment string) Option {
	return func(n *yaml.Node) *yaml.Node {
		n.HeadComment = comment
		return n
	}
}

func WithLineComment(comment string) Option {
	return func(n *yaml.Node) *yaml.Node {
		n.LineComment = comment
		return n
	}
}

func Seq(s ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Content: s}
}

// FlowSeq is Seq written in one line, like "[1, 2, 3]".
func FlowSeq(s ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle, Content: s}
}

func Null() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: "null"}
}

type MapEntry struct {
	Key   *yaml.Node
	Value *yaml.Node
}

func Entry(k *yaml.Node, v *yaml.Node) MapEntry {
	return MapEntry{Key: k, Value: v}
}

func Map(e ...MapEntry) *yaml.Node {
	content := []*yaml.Node{}

	for _, ee := range e {
		content = append(content, ee.Key)
		content = append(content, ee.Value)
	}

	return &yaml.Node{Kind: yaml.MappingNode, Content: content}
}

// Encode writes node as a yaml document indented with 2 spaces.
func Encode(node *yaml.Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToJSON converts a yaml document into json.
//
// Since json is a subset of yaml, json documents are also accepted.
// Mapping keys should be strings.
func ToJSON(doc []byte) ([]byte, error) {
	var v any
	if err := yaml.Unmarshal(doc, &v); err != nil {
		return nil, err
	}
	v, err := normalize(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

func normalize(v any) (any, error) {
	switch vv := v.(type) {
	case map[string]any:
		for k, c := range vv {
			n, err := normalize(c)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			vv[k] = n
		}
		return vv, nil
	case map[any]any:
		m := make(map[string]any, len(vv))
		for k, c := range vv {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("mapping key should be string: %v", k)
			}
			n, err := normalize(c)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", ks, err)
			}
			m[ks] = n
		}
		return m, nil
	case []any:
		for i, c := range vv {
			n, err := normalize(c)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			vv[i] = n
		}
		return vv, nil
	default:
		return v, nil
	}
}

// Unmarshal reads a yaml (or json) document into v along with json tags of v.
func Unmarshal(doc []byte, v any) error {
	b, err := ToJSON(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}
