package pagination_test

import (
	"encoding/json"
	"errors"
	"net/url"
	"testing"

	"github.com/polyaxon/plx/pkg/api/types/pagination"
)

func TestOptions(t *testing.T) {
	t.Run("Values omits zero fields", func(t *testing.T) {
		v := pagination.Options{Limit: 20, Sort: "-created_at"}.Values()
		if v.Encode() != "limit=20&sort=-created_at" {
			t.Errorf("unexpected query: %s", v.Encode())
		}
	})

	t.Run("ParseOptions reads what Values writes", func(t *testing.T) {
		expected := pagination.Options{Offset: 10, Limit: 5, Sort: "name", Query: "name:foo"}
		actual, err := pagination.ParseOptions(expected.Values())
		if err != nil {
			t.Fatal(err)
		}
		if actual != expected {
			t.Errorf("unmatch: (actual, expected) = (%+v, %+v)", actual, expected)
		}
	})

	for name, q := range map[string]url.Values{
		"negative offset": {"offset": {"-1"}},
		"non-number limit": {"limit": {"ten"}},
	} {
		t.Run("ParseOptions rejects "+name, func(t *testing.T) {
			_, err := pagination.ParseOptions(q)
			if !errors.Is(err, pagination.ErrInvalidOptions) {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}

	t.Run("SortKey splits direction", func(t *testing.T) {
		field, desc := pagination.Options{Sort: "-updated_at"}.SortKey()
		if field != "updated_at" || !desc {
			t.Errorf("unexpected: %s, %v", field, desc)
		}
	})

	t.Run("Conditions parses key:value terms", func(t *testing.T) {
		c, err := pagination.Options{Query: "name:foo, kind:s3"}.Conditions()
		if err != nil {
			t.Fatal(err)
		}
		if c["name"] != "foo" || c["kind"] != "s3" || len(c) != 2 {
			t.Errorf("unexpected: %v", c)
		}
		if _, err := (pagination.Options{Query: "name"}).Conditions(); !errors.Is(err, pagination.ErrInvalidOptions) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestList(t *testing.T) {
	body := `{"count": 3, "results": ["a", "b"], "next": "http://example.invalid/?offset=2", "previous": null}`
	var actual pagination.List[string]
	if err := json.Unmarshal([]byte(body), &actual); err != nil {
		t.Fatal(err)
	}
	expected := pagination.List[string]{
		Count: 3, Results: []string{"a", "b"}, Next: "http://example.invalid/?offset=2",
	}
	if !actual.EqualFunc(expected, func(a, b string) bool { return a == b }) {
		t.Errorf("unmatch: (actual, expected) = (%+v, %+v)", actual, expected)
	}
	if !actual.HasNext() {
		t.Error("next page is not detected")
	}
}
