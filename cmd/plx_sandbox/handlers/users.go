package handlers

import (
	"crypto/subtle"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	binderr "github.com/polyaxon/plx/pkg/api-types-binding/errors"
	"github.com/polyaxon/plx/pkg/api/types/users"
	"github.com/polyaxon/plx/pkg/configs/sandbox"
)

// Passwords holds passwords of users in memory.
//
// It starts with the passwords in the config. Changes are lost on restart.
type Passwords struct {
	m        sync.Mutex
	password map[string]string
}

func NewPasswords(conf *sandbox.SandboxConfig) *Passwords {
	p := &Passwords{password: map[string]string{}}
	for _, u := range conf.Users() {
		if u.Password() != "" {
			p.password[u.User().Username] = u.Password()
		}
	}
	return p
}

// Change replaces the password of user when old is the current one.
//
// It returns false when old does not match or user has no password.
func (p *Passwords) Change(user string, old string, newPassword string) bool {
	p.m.Lock()
	defer p.m.Unlock()
	cur, ok := p.password[user]
	if !ok || subtle.ConstantTimeCompare([]byte(cur), []byte(old)) != 1 {
		return false
	}
	p.password[user] = newPassword
	return true
}

// GetUserHandler responds the requester.
//
// Users not in the config are responded only by their names.
func GetUserHandler(conf *sandbox.SandboxConfig) echo.HandlerFunc {
	return func(c echo.Context) error {
		name := CurrentUser(c)
		if u, ok := conf.User(name); ok {
			return c.JSON(http.StatusOK, u.User())
		}
		return c.JSON(http.StatusOK, users.User{Username: name, Kind: "user"})
	}
}

func ChangePasswordHandler(passwords *Passwords) echo.HandlerFunc {
	return func(c echo.Context) error {
		change := new(users.PasswordChange)
		if err := bindJSON(c, change); err != nil {
			return err
		}
		if err := change.Validate(); err != nil {
			return invalid("password change", err)
		}
		if !passwords.Change(CurrentUser(c), change.OldPassword, change.NewPassword1) {
			return binderr.NewErrorMessage(
				http.StatusBadRequest, "password is not changed",
				binderr.WithField("old_password", "does not match"),
			)
		}
		return c.JSON(http.StatusOK, struct{}{})
	}
}
