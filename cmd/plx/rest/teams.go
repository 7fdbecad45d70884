package rest

import (
	"context"
	"net/http"

	cerr "github.com/polyaxon/plx/cmd/plx/errors"
	"github.com/polyaxon/plx/pkg/api/types/pagination"
	"github.com/polyaxon/plx/pkg/api/types/teams"
)

func (c *client) ListTeams(ctx context.Context, owner string, opts pagination.Options) (pagination.List[teams.Team], error) {
	return getJson[pagination.List[teams.Team]](
		ctx, c, opts.Values(),
		MessageFor{
			Status4xx: "cannot list teams of " + owner,
			Status5xx: "server error",
		},
		"orgs", owner, "teams",
	)
}

func (c *client) GetTeam(ctx context.Context, owner string, name string) (teams.Team, error) {
	return getJson[teams.Team](
		ctx, c, nil,
		MessageFor{
			Status4xx: "team " + owner + "/" + name + " is not found",
			Status5xx: "server error",
		},
		"orgs", owner, "teams", name,
	)
}

func (c *client) CreateTeam(ctx context.Context, owner string, team teams.Team) (teams.Team, error) {
	if err := team.Validate(); err != nil {
		return teams.Team{}, cerr.Wrap("team is invalid", err)
	}
	return sendJson[teams.Team](
		ctx, c, http.MethodPost, nil, team,
		MessageFor{
			Status4xx: "cannot create team " + team.Name,
			Status5xx: "server error",
		},
		"orgs", owner, "teams",
	)
}

func (c *client) DeleteTeam(ctx context.Context, owner string, name string) error {
	return sendDiscarding(
		ctx, c, http.MethodDelete, nil,
		MessageFor{
			Status4xx: "cannot delete team " + owner + "/" + name,
			Status5xx: "server error",
		},
		"orgs", owner, "teams", name,
	)
}
