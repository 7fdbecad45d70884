package rest

import (
	"context"

	"github.com/polyaxon/plx/pkg/api/types/pagination"
)

// Pager fetches a page of a list endpoint.
type Pager[T any] func(ctx context.Context, opts pagination.Options) (pagination.List[T], error)

// All walks pages from opts.Offset and collects all results.
//
// It stops when the server tells no next page, when the count is reached,
// or when a page is empty.
func All[T any](ctx context.Context, opts pagination.Options, pager Pager[T]) ([]T, error) {
	ret := []T{}
	for {
		page, err := pager(ctx, opts)
		if err != nil {
			return nil, err
		}
		ret = append(ret, page.Results...)

		if !page.HasNext() || len(page.Results) == 0 || page.Count <= opts.Offset+len(page.Results) {
			return ret, nil
		}
		opts = opts.Next(len(page.Results))
	}
}
