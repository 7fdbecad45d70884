package common_test

import (
	"context"
	"errors"
	"testing"

	"github.com/polyaxon/plx/cmd/plx/subcommands/common"
	"github.com/polyaxon/plx/pkg/api/types/pagination"
	"github.com/youta-t/flarc"
)

func TestListFlags_Options(t *testing.T) {
	t.Run("it converts flags", func(t *testing.T) {
		actual, err := common.ListFlags{
			Offset: "20", Limit: "10", Sort: "-created_at", Query: "status:running",
		}.Options()
		if err != nil {
			t.Fatal(err)
		}
		expected := pagination.Options{Offset: 20, Limit: 10, Sort: "-created_at", Query: "status:running"}
		if actual != expected {
			t.Errorf("unmatch: (actual, expected) = (%+v, %+v)", actual, expected)
		}
	})

	for name, when := range map[string]common.ListFlags{
		"negative offset":  {Offset: "-1"},
		"non-number limit": {Limit: "ten"},
		"malformed query":  {Query: "running"},
	} {
		t.Run("it rejects "+name, func(t *testing.T) {
			if _, err := when.Options(); !errors.Is(err, flarc.ErrUsage) {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestList(t *testing.T) {
	pager := func(calls *[]pagination.Options) func(context.Context, pagination.Options) (pagination.List[int], error) {
		return func(ctx context.Context, opts pagination.Options) (pagination.List[int], error) {
			*calls = append(*calls, opts)
			if opts.Offset == 0 {
				return pagination.List[int]{Count: 3, Results: []int{1, 2}, Next: "next"}, nil
			}
			return pagination.List[int]{Count: 3, Results: []int{3}}, nil
		}
	}

	t.Run("it reads only a page without --all", func(t *testing.T) {
		calls := []pagination.Options{}
		actual, err := common.List(context.Background(), common.ListFlags{Limit: "2"}, pager(&calls))
		if err != nil {
			t.Fatal(err)
		}
		if len(actual) != 2 || len(calls) != 1 {
			t.Errorf("unexpected: %v (%d calls)", actual, len(calls))
		}
	})

	t.Run("it walks all pages with --all", func(t *testing.T) {
		calls := []pagination.Options{}
		actual, err := common.List(context.Background(), common.ListFlags{Limit: "2", All: true}, pager(&calls))
		if err != nil {
			t.Fatal(err)
		}
		if len(actual) != 3 || len(calls) != 2 || calls[1].Offset != 2 {
			t.Errorf("unexpected: %v (calls: %+v)", actual, calls)
		}
	})
}
