package hub

import (
	"slices"

	apierr "github.com/polyaxon/plx/pkg/api/types/errors"
	"github.com/polyaxon/plx/pkg/api/types/internal/utils/cmp"
	"github.com/polyaxon/plx/pkg/api/types/misc/rfctime"
	"github.com/polyaxon/plx/pkg/api/types/names"
	"github.com/polyaxon/plx/pkg/api/types/pagination"
)

// Model is a model registered in the hub of an organization.
type Model struct {
	UUID        string           `json:"uuid,omitempty"`
	Name        string           `json:"name,omitempty"`
	Tag         string           `json:"tag,omitempty"`
	Framework   string           `json:"framework,omitempty"`
	Description string           `json:"description,omitempty"`
	Tags        []string         `json:"tags,omitempty"`
	Disabled    *bool            `json:"disabled,omitempty"`
	Deleted     *bool            `json:"deleted,omitempty"`
	CreatedAt   *rfctime.RFC3339 `json:"created_at,omitempty"`
	UpdatedAt   *rfctime.RFC3339 `json:"updated_at,omitempty"`
}

func (m Model) Equal(o Model) bool {
	return m.UUID == o.UUID &&
		m.Name == o.Name &&
		m.Tag == o.Tag &&
		m.Framework == o.Framework &&
		m.Description == o.Description &&
		cmp.StringsEqualUnordered(m.Tags, o.Tags) &&
		cmp.PtrEq(m.Disabled, o.Disabled) &&
		cmp.PtrEq(m.Deleted, o.Deleted) &&
		cmp.PtrEqual(m.CreatedAt, o.CreatedAt) &&
		cmp.PtrEqual(m.UpdatedAt, o.UpdatedAt)
}

// Validate checks the model to be created.
//
// Name can be "name:tag" form when Tag is empty.
func (m Model) Validate() error {
	name, tag := names.SplitVersioned(m.Name)
	if tag != "" && m.Tag != "" && tag != m.Tag {
		return apierr.Invalid("tag conflicts: %q vs %q", tag, m.Tag)
	}
	return names.Validate(name)
}

// Normalize moves the tag in "name:tag" into Tag.
func (m Model) Normalize() Model {
	name, tag := names.SplitVersioned(m.Name)
	m.Name = name
	if m.Tag == "" {
		m.Tag = tag
	}
	m.Tags = slices.Clone(m.Tags)
	return m
}

// Component is a reusable component registered in the hub of an organization.
type Component struct {
	UUID        string           `json:"uuid,omitempty"`
	Name        string           `json:"name,omitempty"`
	Description string           `json:"description,omitempty"`
	Tags        []string         `json:"tags,omitempty"`
	Live        *bool            `json:"live,omitempty"`
	Disabled    *bool            `json:"disabled,omitempty"`
	Deleted     *bool            `json:"deleted,omitempty"`
	CreatedAt   *rfctime.RFC3339 `json:"created_at,omitempty"`
	UpdatedAt   *rfctime.RFC3339 `json:"updated_at,omitempty"`
}

func (c Component) Equal(o Component) bool {
	return c.UUID == o.UUID &&
		c.Name == o.Name &&
		c.Description == o.Description &&
		cmp.StringsEqualUnordered(c.Tags, o.Tags) &&
		cmp.PtrEq(c.Live, o.Live) &&
		cmp.PtrEq(c.Disabled, o.Disabled) &&
		cmp.PtrEq(c.Deleted, o.Deleted) &&
		cmp.PtrEqual(c.CreatedAt, o.CreatedAt) &&
		cmp.PtrEqual(c.UpdatedAt, o.UpdatedAt)
}

func (c Component) Validate() error {
	return names.Validate(c.Name)
}

type ListModelsResponse = pagination.List[Model]
type ListComponentsResponse = pagination.List[Component]
