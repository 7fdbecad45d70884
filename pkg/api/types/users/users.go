package users

import (
	"slices"

	apierr "github.com/polyaxon/plx/pkg/api/types/errors"
	"github.com/polyaxon/plx/pkg/api/types/internal/utils/cmp"
	"github.com/polyaxon/plx/pkg/api/types/misc/rfctime"
)

type User struct {
	Username     string `json:"username,omitempty"`
	Email        string `json:"email,omitempty"`
	Name         string `json:"name,omitempty"`
	Kind         string `json:"kind,omitempty"`
	Theme        *int32 `json:"theme,omitempty"`
	Organization string `json:"organization,omitempty"`
}

func (u User) Equal(o User) bool {
	return u.Username == o.Username &&
		u.Email == o.Email &&
		u.Name == o.Name &&
		u.Kind == o.Kind &&
		cmp.PtrEq(u.Theme, o.Theme) &&
		u.Organization == o.Organization
}

type PasswordChange struct {
	OldPassword  string `json:"old_password,omitempty"`
	NewPassword1 string `json:"new_password1,omitempty"`
	NewPassword2 string `json:"new_password2,omitempty"`
}

func (p PasswordChange) Equal(o PasswordChange) bool {
	return p == o
}

// Validate checks all passwords are given, new passwords are same,
// and the new password differs from the old one.
func (p PasswordChange) Validate() error {
	if p.OldPassword == "" || p.NewPassword1 == "" || p.NewPassword2 == "" {
		return apierr.Invalid("old and new passwords are required")
	}
	if p.NewPassword1 != p.NewPassword2 {
		return apierr.Invalid("new passwords do not match")
	}
	if p.OldPassword == p.NewPassword1 {
		return apierr.Invalid("new password should differ from old one")
	}
	return nil
}

// String masks passwords.
func (p PasswordChange) String() string {
	return "PasswordChange{***}"
}

type Token struct {
	UUID      string           `json:"uuid,omitempty"`
	Key       string           `json:"key,omitempty"`
	Name      string           `json:"name,omitempty"`
	Scopes    []string         `json:"scopes,omitempty"`
	Services  []string         `json:"services,omitempty"`
	StartedAt *rfctime.RFC3339 `json:"started_at,omitempty"`
	ExpiresAt *rfctime.RFC3339 `json:"expires_at,omitempty"`
	CreatedAt *rfctime.RFC3339 `json:"created_at,omitempty"`
	UpdatedAt *rfctime.RFC3339 `json:"updated_at,omitempty"`
}

func (t Token) Equal(o Token) bool {
	return t.UUID == o.UUID &&
		t.Key == o.Key &&
		t.Name == o.Name &&
		slices.Equal(t.Scopes, o.Scopes) &&
		slices.Equal(t.Services, o.Services) &&
		cmp.PtrEqual(t.StartedAt, o.StartedAt) &&
		cmp.PtrEqual(t.ExpiresAt, o.ExpiresAt) &&
		cmp.PtrEqual(t.CreatedAt, o.CreatedAt) &&
		cmp.PtrEqual(t.UpdatedAt, o.UpdatedAt)
}
