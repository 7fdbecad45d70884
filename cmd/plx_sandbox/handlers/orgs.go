package handlers

import (
	"net/http"
	"slices"
	"strings"

	"github.com/labstack/echo/v4"
	binderr "github.com/polyaxon/plx/pkg/api-types-binding/errors"
	"github.com/polyaxon/plx/pkg/api/types/orgs"
	"github.com/polyaxon/plx/pkg/api/types/pagination"
	"github.com/polyaxon/plx/pkg/configs/sandbox"
)

// GetOrganizationHandler responds an organization in the config, with the role of the requester.
func GetOrganizationHandler(conf *sandbox.SandboxConfig, ownerParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		oc, ok := conf.Org(c.Param(ownerParam))
		if !ok {
			return binderr.NotFound()
		}
		org := oc.Organization()
		if m, ok := oc.Member(CurrentUser(c)); ok {
			org.Role = m.Role
		}
		return c.JSON(http.StatusOK, org)
	}
}

// ListOrganizationMembersHandler lists members of an organization in the config.
//
// "name:x" in the query selects members whose user name contains x.
// Sort is "user" or "role", optionally with "-".
func ListOrganizationMembersHandler(conf *sandbox.SandboxConfig, ownerParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		oc, ok := conf.Org(c.Param(ownerParam))
		if !ok {
			return binderr.NotFound()
		}
		opts, err := pagination.ParseOptions(c.QueryParams())
		if err != nil {
			return storeError(err)
		}
		conds, err := opts.Conditions()
		if err != nil {
			return storeError(err)
		}

		members := oc.Members()
		if name, ok := conds["name"]; ok {
			members = slices.DeleteFunc(members, func(m orgs.Member) bool {
				return !strings.Contains(m.User, name)
			})
		}

		field, desc := opts.SortKey()
		var key func(orgs.Member) string
		switch field {
		case "", "user":
			key = func(m orgs.Member) string { return m.User }
		case "role":
			key = func(m orgs.Member) string { return string(m.Role) }
		default:
			return binderr.BadRequest("cannot sort by "+field, nil)
		}
		slices.SortStableFunc(members, func(a, b orgs.Member) int {
			r := strings.Compare(key(a), key(b))
			if desc {
				return -r
			}
			return r
		})

		total := len(members)
		return c.JSON(http.StatusOK, page(c, opts, window(members, opts.Offset, opts.Limit), total))
	}
}

// window cuts a page out of items. limit 0 means unlimited.
func window[T any](items []T, offset int, limit int) []T {
	if len(items) <= offset {
		return []T{}
	}
	items = items[offset:]
	if 0 < limit && limit < len(items) {
		items = items[:limit]
	}
	return items
}
