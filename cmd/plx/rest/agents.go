package rest

import (
	"context"
	"net/http"

	cerr "github.com/polyaxon/plx/cmd/plx/errors"
	"github.com/polyaxon/plx/pkg/api/types/agents"
	"github.com/polyaxon/plx/pkg/api/types/pagination"
	"github.com/polyaxon/plx/pkg/api/types/statuses"
)

func (c *client) ListAgents(ctx context.Context, owner string, opts pagination.Options) (agents.ListAgentsResponse, error) {
	return getJson[agents.ListAgentsResponse](
		ctx, c, opts.Values(),
		MessageFor{
			Status4xx: "cannot list agents of " + owner,
			Status5xx: "server error",
		},
		"orgs", owner, "agents",
	)
}

func (c *client) ListAgentNames(ctx context.Context, owner string, opts pagination.Options) (agents.ListAgentsResponse, error) {
	return getJson[agents.ListAgentsResponse](
		ctx, c, opts.Values(),
		MessageFor{
			Status4xx: "cannot list agents of " + owner,
			Status5xx: "server error",
		},
		"orgs", owner, "agents", "names",
	)
}

func (c *client) GetAgent(ctx context.Context, owner string, uuid string) (agents.Agent, error) {
	return getJson[agents.Agent](
		ctx, c, nil,
		MessageFor{
			Status4xx: "agent " + uuid + " is not found",
			Status5xx: "server error",
		},
		"orgs", owner, "agents", uuid,
	)
}

func (c *client) CreateAgent(ctx context.Context, owner string, agent agents.Agent) (agents.Agent, error) {
	if err := agent.Validate(); err != nil {
		return agents.Agent{}, cerr.Wrap("agent is invalid", err)
	}
	return sendJson[agents.Agent](
		ctx, c, http.MethodPost, nil, agent,
		MessageFor{
			Status4xx: "cannot create agent " + agent.Name,
			Status5xx: "server error",
		},
		"orgs", owner, "agents",
	)
}

func (c *client) UpdateAgent(ctx context.Context, owner string, uuid string, agent agents.Agent) (agents.Agent, error) {
	if err := agent.Validate(); err != nil {
		return agents.Agent{}, cerr.Wrap("agent is invalid", err)
	}
	return sendJson[agents.Agent](
		ctx, c, http.MethodPut, nil, agent,
		MessageFor{
			Status4xx: "cannot update agent " + uuid,
			Status5xx: "server error",
		},
		"orgs", owner, "agents", uuid,
	)
}

func (c *client) PatchAgent(ctx context.Context, owner string, uuid string, agent agents.Agent) (agents.Agent, error) {
	return sendJson[agents.Agent](
		ctx, c, http.MethodPatch, nil, agent,
		MessageFor{
			Status4xx: "cannot update agent " + uuid,
			Status5xx: "server error",
		},
		"orgs", owner, "agents", uuid,
	)
}

func (c *client) DeleteAgent(ctx context.Context, owner string, uuid string) error {
	return sendDiscarding(
		ctx, c, http.MethodDelete, nil,
		MessageFor{
			Status4xx: "cannot delete agent " + uuid,
			Status5xx: "server error",
		},
		"orgs", owner, "agents", uuid,
	)
}

func (c *client) SyncAgent(ctx context.Context, owner string, uuid string, agent agents.Agent) error {
	return sendDiscarding(
		ctx, c, http.MethodPatch, agent,
		MessageFor{
			Status4xx: "cannot sync agent " + uuid,
			Status5xx: "server error",
		},
		"orgs", owner, "agents", uuid, "sync",
	)
}

func (c *client) GetAgentState(ctx context.Context, owner string, uuid string) (agents.StateResponse, error) {
	return getJson[agents.StateResponse](
		ctx, c, nil,
		MessageFor{
			Status4xx: "cannot get state of agent " + uuid,
			Status5xx: "server error",
		},
		"orgs", owner, "agents", uuid, "state",
	)
}

func (c *client) GetAgentStatuses(ctx context.Context, owner string, uuid string) (statuses.Status, error) {
	return getJson[statuses.Status](
		ctx, c, nil,
		MessageFor{
			Status4xx: "cannot get statuses of agent " + uuid,
			Status5xx: "server error",
		},
		"orgs", owner, "agents", uuid, "statuses",
	)
}

func (c *client) CreateAgentStatus(ctx context.Context, owner string, uuid string, body agents.StatusBodyRequest) (statuses.Status, error) {
	if body.Condition == nil || body.Condition.Type == "" {
		return statuses.Status{}, cerr.NewCuiError("status condition is required")
	}
	return sendJson[statuses.Status](
		ctx, c, http.MethodPost, nil, body,
		MessageFor{
			Status4xx: "cannot change status of agent " + uuid,
			Status5xx: "server error",
		},
		"orgs", owner, "agents", uuid, "statuses",
	)
}
