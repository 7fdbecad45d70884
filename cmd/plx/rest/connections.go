package rest

import (
	"context"
	"net/http"

	cerr "github.com/polyaxon/plx/cmd/plx/errors"
	"github.com/polyaxon/plx/pkg/api/types/connections"
	"github.com/polyaxon/plx/pkg/api/types/pagination"
)

func (c *client) ListConnections(ctx context.Context, owner string, opts pagination.Options) (connections.ListConnectionsResponse, error) {
	return getJson[connections.ListConnectionsResponse](
		ctx, c, opts.Values(),
		MessageFor{
			Status4xx: "cannot list connections of " + owner,
			Status5xx: "server error",
		},
		"orgs", owner, "connections",
	)
}

func (c *client) ListConnectionNames(ctx context.Context, owner string, opts pagination.Options) (connections.ListConnectionsResponse, error) {
	return getJson[connections.ListConnectionsResponse](
		ctx, c, opts.Values(),
		MessageFor{
			Status4xx: "cannot list connections of " + owner,
			Status5xx: "server error",
		},
		"orgs", owner, "connections", "names",
	)
}

func (c *client) GetConnection(ctx context.Context, owner string, uuid string) (connections.ConnectionResponse, error) {
	return getJson[connections.ConnectionResponse](
		ctx, c, nil,
		MessageFor{
			Status4xx: "connection " + uuid + " is not found",
			Status5xx: "server error",
		},
		"orgs", owner, "connections", uuid,
	)
}

func (c *client) CreateConnection(ctx context.Context, owner string, conn connections.ConnectionResponse) (connections.ConnectionResponse, error) {
	if err := conn.Validate(); err != nil {
		return connections.ConnectionResponse{}, cerr.Wrap("connection is invalid", err)
	}
	return sendJson[connections.ConnectionResponse](
		ctx, c, http.MethodPost, nil, conn,
		MessageFor{
			Status4xx: "cannot create connection " + conn.Name,
			Status5xx: "server error",
		},
		"orgs", owner, "connections",
	)
}

func (c *client) UpdateConnection(ctx context.Context, owner string, uuid string, conn connections.ConnectionResponse) (connections.ConnectionResponse, error) {
	if err := conn.Validate(); err != nil {
		return connections.ConnectionResponse{}, cerr.Wrap("connection is invalid", err)
	}
	return sendJson[connections.ConnectionResponse](
		ctx, c, http.MethodPut, nil, conn,
		MessageFor{
			Status4xx: "cannot update connection " + uuid,
			Status5xx: "server error",
		},
		"orgs", owner, "connections", uuid,
	)
}

// PatchConnection sends only non-empty fields of conn.
//
// The schema, when given, is checked by itself since kind may be omitted.
func (c *client) PatchConnection(ctx context.Context, owner string, uuid string, conn connections.ConnectionResponse) (connections.ConnectionResponse, error) {
	if conn.Schema != nil {
		var err error
		if conn.Kind != "" {
			err = conn.Schema.CompatibleWith(conn.Kind)
		} else {
			err = conn.Schema.Validate()
		}
		if err != nil {
			return connections.ConnectionResponse{}, cerr.Wrap("connection is invalid", err)
		}
	}
	return sendJson[connections.ConnectionResponse](
		ctx, c, http.MethodPatch, nil, conn,
		MessageFor{
			Status4xx: "cannot update connection " + uuid,
			Status5xx: "server error",
		},
		"orgs", owner, "connections", uuid,
	)
}

func (c *client) DeleteConnection(ctx context.Context, owner string, uuid string) error {
	return sendDiscarding(
		ctx, c, http.MethodDelete, nil,
		MessageFor{
			Status4xx: "cannot delete connection " + uuid,
			Status5xx: "server error",
		},
		"orgs", owner, "connections", uuid,
	)
}
