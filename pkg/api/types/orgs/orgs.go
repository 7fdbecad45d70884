package orgs

import (
	"github.com/polyaxon/plx/pkg/api/types/internal/utils/cmp"
	"github.com/polyaxon/plx/pkg/api/types/misc/rfctime"
)

type Role string

const (
	Owner       Role = "owner"
	Admin       Role = "admin"
	Manager     Role = "manager"
	Contributor Role = "contributor"
	Viewer      Role = "viewer"
	Billing     Role = "billing"
)

func (r Role) String() string {
	return string(r)
}

// CanWrite reports the role can modify entities in the organization.
func (r Role) CanWrite() bool {
	switch r {
	case Owner, Admin, Manager, Contributor:
		return true
	}
	return false
}

type Organization struct {
	User      string           `json:"user,omitempty"`
	UserEmail string           `json:"user_email,omitempty"`
	Name      string           `json:"name,omitempty"`
	IsPublic  *bool            `json:"is_public,omitempty"`
	Role      Role             `json:"role,omitempty"`
	CreatedAt *rfctime.RFC3339 `json:"created_at,omitempty"`
	UpdatedAt *rfctime.RFC3339 `json:"updated_at,omitempty"`
}

func (o Organization) Equal(other Organization) bool {
	return o.User == other.User &&
		o.UserEmail == other.UserEmail &&
		o.Name == other.Name &&
		cmp.PtrEq(o.IsPublic, other.IsPublic) &&
		o.Role == other.Role &&
		cmp.PtrEqual(o.CreatedAt, other.CreatedAt) &&
		cmp.PtrEqual(o.UpdatedAt, other.UpdatedAt)
}

type Member struct {
	User      string           `json:"user,omitempty"`
	UserEmail string           `json:"user_email,omitempty"`
	Role      Role             `json:"role,omitempty"`
	Kind      string           `json:"kind,omitempty"`
	CreatedAt *rfctime.RFC3339 `json:"created_at,omitempty"`
	UpdatedAt *rfctime.RFC3339 `json:"updated_at,omitempty"`
}

func (m Member) Equal(other Member) bool {
	return m.User == other.User &&
		m.UserEmail == other.UserEmail &&
		m.Role == other.Role &&
		m.Kind == other.Kind &&
		cmp.PtrEqual(m.CreatedAt, other.CreatedAt) &&
		cmp.PtrEqual(m.UpdatedAt, other.UpdatedAt)
}
