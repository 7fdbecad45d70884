package teams

import (
	"github.com/polyaxon/plx/pkg/api/types/internal/utils/cmp"
	"github.com/polyaxon/plx/pkg/api/types/misc/rfctime"
	"github.com/polyaxon/plx/pkg/api/types/names"
	"github.com/polyaxon/plx/pkg/api/types/orgs"
)

type Team struct {
	UUID      string           `json:"uuid,omitempty"`
	Name      string           `json:"name,omitempty"`
	Projects  []string         `json:"projects,omitempty"`
	CreatedAt *rfctime.RFC3339 `json:"created_at,omitempty"`
	UpdatedAt *rfctime.RFC3339 `json:"updated_at,omitempty"`
}

func (t Team) Equal(o Team) bool {
	return t.UUID == o.UUID &&
		t.Name == o.Name &&
		cmp.StringsEqualUnordered(t.Projects, o.Projects) &&
		cmp.PtrEqual(t.CreatedAt, o.CreatedAt) &&
		cmp.PtrEqual(t.UpdatedAt, o.UpdatedAt)
}

func (t Team) Validate() error {
	if err := names.Validate(t.Name); err != nil {
		return err
	}
	for _, p := range t.Projects {
		if err := names.Validate(p); err != nil {
			return err
		}
	}
	return nil
}

type Member struct {
	User      string           `json:"user,omitempty"`
	UserEmail string           `json:"user_email,omitempty"`
	Role      orgs.Role        `json:"role,omitempty"`
	CreatedAt *rfctime.RFC3339 `json:"created_at,omitempty"`
	UpdatedAt *rfctime.RFC3339 `json:"updated_at,omitempty"`
}

func (m Member) Equal(o Member) bool {
	return m.User == o.User &&
		m.UserEmail == o.UserEmail &&
		m.Role == o.Role &&
		cmp.PtrEqual(m.CreatedAt, o.CreatedAt) &&
		cmp.PtrEqual(m.UpdatedAt, o.UpdatedAt)
}
