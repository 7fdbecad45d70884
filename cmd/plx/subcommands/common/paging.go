package common

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/polyaxon/plx/cmd/plx/rest"
	"github.com/polyaxon/plx/pkg/api/types/pagination"
	"github.com/youta-t/flarc"
)

// ListFlags are flags of "ls" subcommands.
type ListFlags struct {
	Offset string `flag:"offset" metavar:"N" help:"skip first N items"`
	Limit  string `flag:"limit" metavar:"N" help:"list up to N items in a page"`
	Sort   string `flag:"sort" metavar:"[-]FIELD" help:"field to sort with. Prefix '-' for descending order"`
	Query  string `flag:"query" alias:"q" metavar:"FIELD:VALUE,..." help:"search query"`
	All    bool   `flag:"all" alias:"a" help:"walk through all pages"`
}

func parseCount(name string, s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, errors.Join(
			flarc.ErrUsage, fmt.Errorf("--%s should be non-negative integer: %q", name, s),
		)
	}
	return n, nil
}

// Options converts ListFlags into list options.
//
// Malformed flags cause an error wrapping flarc.ErrUsage.
func (lf ListFlags) Options() (pagination.Options, error) {
	offset, err := parseCount("offset", lf.Offset)
	if err != nil {
		return pagination.Options{}, err
	}
	limit, err := parseCount("limit", lf.Limit)
	if err != nil {
		return pagination.Options{}, err
	}
	opts := pagination.Options{Offset: offset, Limit: limit, Sort: lf.Sort, Query: lf.Query}
	if _, err := opts.Conditions(); err != nil {
		return pagination.Options{}, errors.Join(flarc.ErrUsage, err)
	}
	return opts, nil
}

// List fetches a page, or all pages when --all is passed.
func List[T any](ctx context.Context, lf ListFlags, pager rest.Pager[T]) ([]T, error) {
	opts, err := lf.Options()
	if err != nil {
		return nil, err
	}
	if lf.All {
		return rest.All(ctx, opts, pager)
	}
	page, err := pager(ctx, opts)
	if err != nil {
		return nil, err
	}
	if page.Results == nil {
		return []T{}, nil
	}
	return page.Results, nil
}
