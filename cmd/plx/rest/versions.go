package rest

import (
	"context"

	"github.com/polyaxon/plx/pkg/api/types/versions"
)

func (c *client) GetInstallation(ctx context.Context) (versions.Installation, error) {
	return getJson[versions.Installation](
		ctx, c, nil,
		MessageFor{
			Status4xx: "cannot get installation info",
			Status5xx: "server error",
		},
		"installation",
	)
}

func (c *client) GetCompatibility(ctx context.Context, uuid string, version string, service string) (versions.Compatibility, error) {
	return getJson[versions.Compatibility](
		ctx, c, nil,
		MessageFor{
			Status4xx: "cannot get compatibility of " + service + " " + version,
			Status5xx: "server error",
		},
		"compatibility", uuid, version, service,
	)
}

func (c *client) GetLogHandler(ctx context.Context) (versions.LogHandler, error) {
	return getJson[versions.LogHandler](
		ctx, c, nil,
		MessageFor{Status5xx: "server error"},
		"log_handler",
	)
}
