package rest

import (
	"context"
	"net/http"

	cerr "github.com/polyaxon/plx/cmd/plx/errors"
	"github.com/polyaxon/plx/pkg/api/types/pagination"
	"github.com/polyaxon/plx/pkg/api/types/queues"
)

func (c *client) ListQueues(ctx context.Context, owner string, agent string, opts pagination.Options) (queues.ListQueuesResponse, error) {
	path := []string{"orgs", owner, "queues"}
	if agent != "" {
		path = []string{"orgs", owner, "agents", agent, "queues"}
	}
	return getJson[queues.ListQueuesResponse](
		ctx, c, opts.Values(),
		MessageFor{
			Status4xx: "cannot list queues",
			Status5xx: "server error",
		},
		path...,
	)
}

func (c *client) GetQueue(ctx context.Context, owner string, agent string, uuid string) (queues.Queue, error) {
	return getJson[queues.Queue](
		ctx, c, nil,
		MessageFor{
			Status4xx: "queue " + uuid + " is not found",
			Status5xx: "server error",
		},
		"orgs", owner, "agents", agent, "queues", uuid,
	)
}

func (c *client) CreateQueue(ctx context.Context, owner string, agent string, queue queues.Queue) (queues.Queue, error) {
	if err := queue.Validate(); err != nil {
		return queues.Queue{}, cerr.Wrap("queue is invalid", err)
	}
	return sendJson[queues.Queue](
		ctx, c, http.MethodPost, nil, queue,
		MessageFor{
			Status4xx: "cannot create queue " + queue.Name,
			Status5xx: "server error",
		},
		"orgs", owner, "agents", agent, "queues",
	)
}

func (c *client) UpdateQueue(ctx context.Context, owner string, agent string, uuid string, queue queues.Queue) (queues.Queue, error) {
	if err := queue.Validate(); err != nil {
		return queues.Queue{}, cerr.Wrap("queue is invalid", err)
	}
	return sendJson[queues.Queue](
		ctx, c, http.MethodPut, nil, queue,
		MessageFor{
			Status4xx: "cannot update queue " + uuid,
			Status5xx: "server error",
		},
		"orgs", owner, "agents", agent, "queues", uuid,
	)
}

func (c *client) DeleteQueue(ctx context.Context, owner string, agent string, uuid string) error {
	return sendDiscarding(
		ctx, c, http.MethodDelete, nil,
		MessageFor{
			Status4xx: "cannot delete queue " + uuid,
			Status5xx: "server error",
		},
		"orgs", owner, "agents", agent, "queues", uuid,
	)
}
