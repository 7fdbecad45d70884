package rfctime

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Format string used to render timestamps.
//
// The server stores microseconds, so the fraction is kept up to 6 digits.
// The offset is always numeric, never "Z".
const RFC3339DateTimeFormat string = "2006-01-02T15:04:05.999999-07:00"

// Format string for parsing. It accepts both "Z" and numeric offsets.
const RFC3339DateTimeFormatZ string = time.RFC3339Nano

// abbreviated forms accepted by ParseLooseRFC3339.
const (
	RFC3339DateSecZ      = "2006-01-02T15:04:05Z07:00"
	RFC3339DateSecZSpace = "2006-01-02 15:04:05.999999999Z07:00"
	RFC3339DateSec       = "2006-01-02T15:04:05.999999999"
	RFC3339DateSecSpace  = "2006-01-02 15:04:05.999999999"
	RFC3339DateMin       = "2006-01-02T15:04"
	RFC3339DateOnly      = "2006-01-02"
)

// date-time in https://www.ietf.org/rfc/rfc3339.txt .
//
// The API carries timestamps as strings in this format.
type RFC3339 time.Time

func (rfctime RFC3339) Time() time.Time {
	return time.Time(rfctime)
}

func (rfctime RFC3339) Equal(other RFC3339) bool {
	return rfctime.Time().Equal(other.Time())
}

func (t RFC3339) String() string {
	return time.Time(t).Format(RFC3339DateTimeFormat)
}

// Now returns the current time truncated to microseconds.
func Now() RFC3339 {
	return RFC3339(time.Now().Truncate(time.Microsecond))
}

// Ref returns pointer to a copy of t.
func Ref(t RFC3339) *RFC3339 {
	return &t
}

// Parse string as RFC3339 date-time.
func ParseRFC3339DateTime(s string) (RFC3339, error) {
	t, err := time.Parse(RFC3339DateTimeFormatZ, s)
	if err != nil {
		return *new(RFC3339), err
	}
	return RFC3339(t), nil
}

// ParseLooseRFC3339 parses s allowing abbreviated forms.
//
// Expressions without offsets are interpreted in local time.
func ParseLooseRFC3339(s string) (RFC3339, error) {
	for _, format := range []string{
		RFC3339DateTimeFormatZ, RFC3339DateSecZ, RFC3339DateSecZSpace,
	} {
		if t, err := time.Parse(format, s); err == nil {
			return RFC3339(t), nil
		}
	}

	for _, format := range []string{
		RFC3339DateSec, RFC3339DateSecSpace, RFC3339DateMin, RFC3339DateOnly,
	} {
		if t, err := time.ParseInLocation(format, s, time.Local); err == nil {
			return RFC3339(t), nil
		}
	}

	return RFC3339{}, fmt.Errorf("failed to parse %s", s)
}

// implement encoding/json.Marshaller
func (t RFC3339) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`"%s"`, t)), nil
}

// implement encoding/json.Unmarshaller
func (t *RFC3339) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	ret, err := ParseRFC3339DateTime(s)
	if err != nil {
		return err
	}

	*t = ret
	return nil
}

func (t RFC3339) MarshalYAML() (any, error) {
	return t.String(), nil
}

func (t *RFC3339) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	ret, err := ParseLooseRFC3339(s)
	if err != nil {
		return err
	}
	*t = ret
	return nil
}
