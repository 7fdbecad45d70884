package rest

import (
	"context"
	"net/http"

	cerr "github.com/polyaxon/plx/cmd/plx/errors"
	"github.com/polyaxon/plx/pkg/api/types/pagination"
	"github.com/polyaxon/plx/pkg/api/types/projects"
)

// Projects are addressed as /orgs/{owner}/{project}, not under /projects.

func (c *client) ListProjects(ctx context.Context, owner string, opts pagination.Options) (projects.ListProjectsResponse, error) {
	return getJson[projects.ListProjectsResponse](
		ctx, c, opts.Values(),
		MessageFor{
			Status4xx: "cannot list projects of " + owner,
			Status5xx: "server error",
		},
		"orgs", owner, "projects", "list",
	)
}

func (c *client) GetProject(ctx context.Context, owner string, name string) (projects.Project, error) {
	return getJson[projects.Project](
		ctx, c, nil,
		MessageFor{
			Status4xx: "project " + owner + "/" + name + " is not found",
			Status5xx: "server error",
		},
		"orgs", owner, name,
	)
}

func (c *client) CreateProject(ctx context.Context, owner string, project projects.Project) (projects.Project, error) {
	if err := project.Validate(); err != nil {
		return projects.Project{}, cerr.Wrap("project is invalid", err)
	}
	return sendJson[projects.Project](
		ctx, c, http.MethodPost, nil, project,
		MessageFor{
			Status4xx: "cannot create project " + project.Name,
			Status5xx: "server error",
		},
		"orgs", owner, "projects", "create",
	)
}

func (c *client) PatchProject(ctx context.Context, owner string, name string, project projects.Project) (projects.Project, error) {
	return sendJson[projects.Project](
		ctx, c, http.MethodPatch, nil, project,
		MessageFor{
			Status4xx: "cannot update project " + owner + "/" + name,
			Status5xx: "server error",
		},
		"orgs", owner, name,
	)
}

func (c *client) DeleteProject(ctx context.Context, owner string, name string) error {
	return sendDiscarding(
		ctx, c, http.MethodDelete, nil,
		MessageFor{
			Status4xx: "cannot delete project " + owner + "/" + name,
			Status5xx: "server error",
		},
		"orgs", owner, name,
	)
}
