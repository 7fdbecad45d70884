package rest

import (
	"context"
	"net/http"

	cerr "github.com/polyaxon/plx/cmd/plx/errors"
	"github.com/polyaxon/plx/pkg/api/types/users"
)

func (c *client) GetUser(ctx context.Context) (users.User, error) {
	return getJson[users.User](
		ctx, c, nil,
		MessageFor{
			Status4xx: "cannot get user. Token in your profile may be invalid",
			Status5xx: "server error",
		},
		"users",
	)
}

func (c *client) ChangePassword(ctx context.Context, change users.PasswordChange) error {
	if err := change.Validate(); err != nil {
		return cerr.Wrap("password is not changed", err)
	}
	return sendDiscarding(
		ctx, c, http.MethodPost, change,
		MessageFor{
			Status4xx: "password is not changed",
			Status5xx: "server error",
		},
		"auth", "change-password",
	)
}
