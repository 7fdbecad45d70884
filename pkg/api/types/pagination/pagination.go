// Package pagination defines list envelopes and list query options of the api.
package pagination

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

var ErrInvalidOptions = errors.New("invalid list options")

// List is a page of a list endpoint.
type List[T any] struct {
	Count    int    `json:"count"`
	Results  []T    `json:"results"`
	Previous string `json:"previous,omitempty"`
	Next     string `json:"next,omitempty"`
}

// HasNext reports whether the server advertises a next page.
func (l List[T]) HasNext() bool {
	return l.Next != ""
}

// EqualFunc compares pages with eq for each result.
func (l List[T]) EqualFunc(o List[T], eq func(T, T) bool) bool {
	if l.Count != o.Count || l.Previous != o.Previous || l.Next != o.Next {
		return false
	}
	if len(l.Results) != len(o.Results) {
		return false
	}
	for i := range l.Results {
		if !eq(l.Results[i], o.Results[i]) {
			return false
		}
	}
	return true
}

// Options are query parameters of list endpoints.
type Options struct {
	Offset int
	Limit  int

	// field name to sort with. Prefixed by "-" for descending.
	Sort string

	// search query, such as "name:foo".
	Query string
}

// Values encodes Options as query parameters. Zero-valued fields are omitted.
func (o Options) Values() url.Values {
	v := url.Values{}
	if o.Offset > 0 {
		v.Set("offset", strconv.Itoa(o.Offset))
	}
	if o.Limit > 0 {
		v.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Sort != "" {
		v.Set("sort", o.Sort)
	}
	if o.Query != "" {
		v.Set("query", o.Query)
	}
	return v
}

// Next returns Options for the page after a page with n items.
func (o Options) Next(n int) Options {
	o.Offset += n
	return o
}

// ParseOptions reads Options from query parameters.
func ParseOptions(v url.Values) (Options, error) {
	ret := Options{}
	if s := v.Get("offset"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return Options{}, fmt.Errorf("%w: offset should be non-negative integer: %s", ErrInvalidOptions, s)
		}
		ret.Offset = n
	}
	if s := v.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return Options{}, fmt.Errorf("%w: limit should be non-negative integer: %s", ErrInvalidOptions, s)
		}
		ret.Limit = n
	}
	ret.Sort = v.Get("sort")
	ret.Query = v.Get("query")
	return ret, nil
}

// SortKey splits Sort into field name and direction.
func (o Options) SortKey() (field string, descending bool) {
	if strings.HasPrefix(o.Sort, "-") {
		return o.Sort[1:], true
	}
	return o.Sort, false
}

// Conditions parses Query as comma separated "key:value" pairs.
func (o Options) Conditions() (map[string]string, error) {
	ret := map[string]string{}
	if strings.TrimSpace(o.Query) == "" {
		return ret, nil
	}
	for _, term := range strings.Split(o.Query, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(term), ":")
		if !ok || k == "" {
			return nil, fmt.Errorf("%w: query term should be key:value: %s", ErrInvalidOptions, term)
		}
		ret[k] = v
	}
	return ret, nil
}
