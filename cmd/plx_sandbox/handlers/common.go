package handlers

import (
	"encoding/json"
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	binderr "github.com/polyaxon/plx/pkg/api-types-binding/errors"
	apierr "github.com/polyaxon/plx/pkg/api/types/errors"
	"github.com/polyaxon/plx/pkg/api/types/pagination"
	kdb "github.com/polyaxon/plx/pkg/db"
)

// bindJSON decodes the request body into v.
func bindJSON(c echo.Context, v any) error {
	req := c.Request()
	ctyp, _, _ := strings.Cut(req.Header.Get("content-type"), ";")
	if strings.ToLower(strings.TrimSpace(ctyp)) != "application/json" {
		return binderr.BadRequest(
			"unexpected content type. it should be application/json", nil,
		)
	}
	if err := json.NewDecoder(req.Body).Decode(v); err != nil {
		return binderr.BadRequest("can not understand the requested json", err)
	}
	return nil
}

// invalid converts validation errors into 400.
func invalid(what string, err error) error {
	if err == nil {
		return nil
	}
	return binderr.BadRequest(what+" is invalid: "+err.Error(), err)
}

// storeError maps errors from the document store into http errors.
func storeError(err error) error {
	if err == nil {
		return nil
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he
	}
	switch {
	case errors.Is(err, kdb.ErrMissing):
		return binderr.NotFound()
	case errors.Is(err, kdb.ErrConflict):
		return binderr.Conflict("already exists", binderr.WithError(err))
	case errors.Is(err, kdb.ErrInvalidQuery), errors.Is(err, pagination.ErrInvalidOptions):
		return binderr.BadRequest(err.Error(), err)
	case errors.Is(err, apierr.ErrInvalid):
		return binderr.BadRequest(err.Error(), err)
	}
	return binderr.InternalServerError(err)
}

// listQuery reads pagination parameters of the request.
//
// "name:x" in the query selects documents whose name contains x.
// When the kind is nameless, it is matched with the "name" field of the body instead.
// Other conditions are exact matches with fields of the body.
func listQuery(c echo.Context, nameless bool) (kdb.Query, pagination.Options, error) {
	opts, err := pagination.ParseOptions(c.QueryParams())
	if err != nil {
		return kdb.Query{}, opts, err
	}
	conds, err := opts.Conditions()
	if err != nil {
		return kdb.Query{}, opts, err
	}

	q := kdb.Query{
		Sort:   opts.Sort,
		Offset: opts.Offset,
		Limit:  opts.Limit,
	}
	if name, ok := conds["name"]; ok && !nameless {
		q.NameContains = name
		delete(conds, "name")
	}
	if len(conds) != 0 {
		q.Fields = conds
	}
	if _, _, err := q.SortKey(); err != nil {
		return kdb.Query{}, opts, err
	}
	return q, opts, nil
}

// page builds a page of list response.
//
// Next and Previous are urls of the same endpoint with shifted offset.
func page[T any](c echo.Context, opts pagination.Options, results []T, total int) pagination.List[T] {
	ret := pagination.List[T]{Count: total, Results: results}
	if ret.Results == nil {
		ret.Results = []T{}
	}

	if 0 < opts.Limit && opts.Offset+len(results) < total {
		ret.Next = pageURL(c, opts.Offset+len(results))
	}
	if 0 < opts.Offset {
		prev := 0
		if 0 < opts.Limit && opts.Limit < opts.Offset {
			prev = opts.Offset - opts.Limit
		}
		ret.Previous = pageURL(c, prev)
	}
	return ret
}

func pageURL(c echo.Context, offset int) string {
	req := c.Request()
	q := url.Values{}
	for k, v := range req.URL.Query() {
		q[k] = v
	}
	if offset == 0 {
		q.Del("offset")
	} else {
		q.Set("offset", strconv.Itoa(offset))
	}
	u := url.URL{
		Scheme:   c.Scheme(),
		Host:     req.Host,
		Path:     req.URL.Path,
		RawQuery: q.Encode(),
	}
	return u.String()
}

var errRename = apierr.Invalid("name cannot be changed")
