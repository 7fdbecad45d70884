package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	binderr "github.com/polyaxon/plx/pkg/api-types-binding/errors"
	"github.com/polyaxon/plx/pkg/auth"
	"github.com/polyaxon/plx/pkg/configs/sandbox"
)

const userKey = "plx/user"

// AnonymousUser is the requester when tokens are not required and no user is configured.
const AnonymousUser = "sandbox"

// CurrentUser is the name of the user making the request.
func CurrentUser(c echo.Context) string {
	if u, ok := c.Get(userKey).(string); ok && u != "" {
		return u
	}
	return AnonymousUser
}

// DefaultUser is the requester when tokens are not required.
func DefaultUser(conf *sandbox.SandboxConfig) string {
	if us := conf.Users(); len(us) != 0 {
		return us[0].User().Username
	}
	return AnonymousUser
}

// Authenticate identifies the requester by "Authorization: token <jwt>".
//
// When the secret is empty, tokens are not required and requests without a token act as defaultUser.
func Authenticate(secret []byte, defaultUser string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if len(secret) == 0 {
				c.Set(userKey, defaultUser)
				return next(c)
			}

			scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
			if !ok || !(strings.EqualFold(scheme, "token") || strings.EqualFold(scheme, "bearer")) {
				return binderr.Unauthorized("authentication credentials were not provided", nil)
			}
			claims, err := auth.Verify(secret, strings.TrimSpace(token))
			if err != nil {
				return binderr.Unauthorized("invalid token", err)
			}
			c.Set(userKey, claims.User())
			return next(c)
		}
	}
}

// Authorize checks the requester is a member of the organization named by the path parameter.
//
// Organizations not in conf are open for everyone.
// Requests other than GET need a role which can write.
func Authorize(conf *sandbox.SandboxConfig, enabled bool, ownerParam string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !enabled {
				return next(c)
			}
			org, ok := conf.Org(c.Param(ownerParam))
			if !ok {
				return next(c)
			}
			member, ok := org.Member(CurrentUser(c))
			if !ok {
				return binderr.Forbidden("you are not a member of " + org.Organization().Name)
			}
			if c.Request().Method != http.MethodGet && !member.Role.CanWrite() {
				return binderr.Forbidden("role " + member.Role.String() + " cannot change resources")
			}
			return next(c)
		}
	}
}
