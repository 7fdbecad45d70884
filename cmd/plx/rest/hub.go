package rest

import (
	"context"
	"net/http"

	cerr "github.com/polyaxon/plx/cmd/plx/errors"
	"github.com/polyaxon/plx/pkg/api/types/hub"
	"github.com/polyaxon/plx/pkg/api/types/pagination"
)

func (c *client) ListHubModels(ctx context.Context, owner string, opts pagination.Options) (hub.ListModelsResponse, error) {
	return getJson[hub.ListModelsResponse](
		ctx, c, opts.Values(),
		MessageFor{
			Status4xx: "cannot list models of " + owner,
			Status5xx: "server error",
		},
		"orgs", owner, "models",
	)
}

func (c *client) GetHubModel(ctx context.Context, owner string, name string) (hub.Model, error) {
	return getJson[hub.Model](
		ctx, c, nil,
		MessageFor{
			Status4xx: "model " + owner + "/" + name + " is not found",
			Status5xx: "server error",
		},
		"orgs", owner, "models", name,
	)
}

func (c *client) CreateHubModel(ctx context.Context, owner string, model hub.Model) (hub.Model, error) {
	model = model.Normalize()
	if err := model.Validate(); err != nil {
		return hub.Model{}, cerr.Wrap("model is invalid", err)
	}
	return sendJson[hub.Model](
		ctx, c, http.MethodPost, nil, model,
		MessageFor{
			Status4xx: "cannot create model " + model.Name,
			Status5xx: "server error",
		},
		"orgs", owner, "models",
	)
}

func (c *client) PatchHubModel(ctx context.Context, owner string, name string, model hub.Model) (hub.Model, error) {
	return sendJson[hub.Model](
		ctx, c, http.MethodPatch, nil, model,
		MessageFor{
			Status4xx: "cannot update model " + owner + "/" + name,
			Status5xx: "server error",
		},
		"orgs", owner, "models", name,
	)
}

func (c *client) DeleteHubModel(ctx context.Context, owner string, name string) error {
	return sendDiscarding(
		ctx, c, http.MethodDelete, nil,
		MessageFor{
			Status4xx: "cannot delete model " + owner + "/" + name,
			Status5xx: "server error",
		},
		"orgs", owner, "models", name,
	)
}

func (c *client) ListComponentHubs(ctx context.Context, owner string, opts pagination.Options) (hub.ListComponentsResponse, error) {
	return getJson[hub.ListComponentsResponse](
		ctx, c, opts.Values(),
		MessageFor{
			Status4xx: "cannot list components of " + owner,
			Status5xx: "server error",
		},
		"orgs", owner, "components",
	)
}

func (c *client) GetComponentHub(ctx context.Context, owner string, name string) (hub.Component, error) {
	return getJson[hub.Component](
		ctx, c, nil,
		MessageFor{
			Status4xx: "component " + owner + "/" + name + " is not found",
			Status5xx: "server error",
		},
		"orgs", owner, "components", name,
	)
}

func (c *client) CreateComponentHub(ctx context.Context, owner string, component hub.Component) (hub.Component, error) {
	if err := component.Validate(); err != nil {
		return hub.Component{}, cerr.Wrap("component is invalid", err)
	}
	return sendJson[hub.Component](
		ctx, c, http.MethodPost, nil, component,
		MessageFor{
			Status4xx: "cannot create component " + component.Name,
			Status5xx: "server error",
		},
		"orgs", owner, "components",
	)
}

func (c *client) DeleteComponentHub(ctx context.Context, owner string, name string) error {
	return sendDiscarding(
		ctx, c, http.MethodDelete, nil,
		MessageFor{
			Status4xx: "cannot delete component " + owner + "/" + name,
			Status5xx: "server error",
		},
		"orgs", owner, "components", name,
	)
}
