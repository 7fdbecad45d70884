package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/polyaxon/plx/pkg/api/types/misc/rfctime"
	"github.com/polyaxon/plx/pkg/api/types/pagination"
	"github.com/polyaxon/plx/pkg/api/types/runs"
	"github.com/polyaxon/plx/pkg/api/types/statuses"
)

func runpath(owner, project, uuid string, sub ...string) []string {
	p := []string{"orgs", owner, project, "runs"}
	if uuid != "" {
		p = append(p, uuid)
	}
	return append(p, sub...)
}

func (c *client) ListRuns(ctx context.Context, owner string, project string, opts pagination.Options) (runs.ListRunsResponse, error) {
	return getJson[runs.ListRunsResponse](
		ctx, c, opts.Values(),
		MessageFor{
			Status4xx: fmt.Sprintf("cannot list runs of %s/%s", owner, project),
			Status5xx: "server error",
		},
		runpath(owner, project, "")...,
	)
}

func (c *client) GetRun(ctx context.Context, owner string, project string, uuid string) (runs.Run, error) {
	return getJson[runs.Run](
		ctx, c, nil,
		MessageFor{
			Status4xx: fmt.Sprintf("run %s is not found", uuid),
			Status5xx: "server error",
		},
		runpath(owner, project, uuid)...,
	)
}

func (c *client) StopRun(ctx context.Context, owner string, project string, uuid string) error {
	return sendDiscarding(
		ctx, c, http.MethodPost, nil,
		MessageFor{
			Status4xx: fmt.Sprintf("cannot stop run %s", uuid),
			Status5xx: "server error",
		},
		runpath(owner, project, uuid, "stop")...,
	)
}

func (c *client) ApproveRun(ctx context.Context, owner string, project string, uuid string) error {
	return sendDiscarding(
		ctx, c, http.MethodPost, nil,
		MessageFor{
			Status4xx: fmt.Sprintf("cannot approve run %s", uuid),
			Status5xx: "server error",
		},
		runpath(owner, project, uuid, "approve")...,
	)
}

func (c *client) RestartRun(ctx context.Context, owner string, project string, uuid string) (runs.Run, error) {
	return sendJson[runs.Run](
		ctx, c, http.MethodPost, nil, nil,
		MessageFor{
			Status4xx: fmt.Sprintf("cannot restart run %s", uuid),
			Status5xx: "server error",
		},
		runpath(owner, project, uuid, "restart")...,
	)
}

func (c *client) DeleteRun(ctx context.Context, owner string, project string, uuid string) error {
	return sendDiscarding(
		ctx, c, http.MethodDelete, nil,
		MessageFor{
			Status4xx: fmt.Sprintf("cannot delete run %s", uuid),
			Status5xx: "server error",
		},
		runpath(owner, project, uuid)...,
	)
}

func (c *client) GetRunStatuses(ctx context.Context, owner string, project string, uuid string) (statuses.Status, error) {
	return getJson[statuses.Status](
		ctx, c, nil,
		MessageFor{
			Status4xx: fmt.Sprintf("cannot get statuses of run %s", uuid),
			Status5xx: "server error",
		},
		runpath(owner, project, uuid, "statuses")...,
	)
}

func (c *client) CreateRunStatus(ctx context.Context, owner string, project string, uuid string, body statuses.EntityStatusBodyRequest) (statuses.Status, error) {
	body.Owner = owner
	body.Project = project
	body.UUID = uuid
	return sendJson[statuses.Status](
		ctx, c, http.MethodPost, nil, body,
		MessageFor{
			Status4xx: fmt.Sprintf("cannot change status of run %s", uuid),
			Status5xx: "server error",
		},
		runpath(owner, project, uuid, "statuses")...,
	)
}

func (c *client) GetRunLogs(ctx context.Context, owner string, project string, uuid string, lastTime *rfctime.RFC3339, lastFile string) (runs.Logs, error) {
	q := url.Values{}
	if lastTime != nil {
		q.Set("last_time", lastTime.String())
	}
	if lastFile != "" {
		q.Set("last_file", lastFile)
	}
	return getJson[runs.Logs](
		ctx, c, q,
		MessageFor{
			Status4xx: fmt.Sprintf("cannot get logs of run %s", uuid),
			Status5xx: "server error",
		},
		runpath(owner, project, uuid, "logs")...,
	)
}
