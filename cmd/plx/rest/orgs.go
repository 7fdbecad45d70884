package rest

import (
	"context"

	"github.com/polyaxon/plx/pkg/api/types/orgs"
	"github.com/polyaxon/plx/pkg/api/types/pagination"
)

func (c *client) GetOrganization(ctx context.Context, owner string) (orgs.Organization, error) {
	return getJson[orgs.Organization](
		ctx, c, nil,
		MessageFor{
			Status4xx: "organization " + owner + " is not found",
			Status5xx: "server error",
		},
		"orgs", owner,
	)
}

func (c *client) ListOrganizationMembers(ctx context.Context, owner string, opts pagination.Options) (pagination.List[orgs.Member], error) {
	return getJson[pagination.List[orgs.Member]](
		ctx, c, opts.Values(),
		MessageFor{
			Status4xx: "cannot list members of " + owner,
			Status5xx: "server error",
		},
		"orgs", owner, "members",
	)
}
