package connections

import (
	"maps"
	"slices"

	apierr "github.com/polyaxon/plx/pkg/api/types/errors"
	"github.com/polyaxon/plx/pkg/api/types/internal/utils/cmp"
	"github.com/polyaxon/plx/pkg/api/types/misc/rfctime"
	"github.com/polyaxon/plx/pkg/api/types/names"
	"github.com/polyaxon/plx/pkg/api/types/pagination"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/equality"
)

// ConnectionResource is a secret or a config map exposed with a connection.
type ConnectionResource struct {
	Name        string   `json:"name"`
	MountPath   string   `json:"mount_path,omitempty"`
	Items       []string `json:"items,omitempty"`
	IsRequested bool     `json:"is_requested,omitempty"`
}

func (c ConnectionResource) Equal(o ConnectionResource) bool {
	return c.Name == o.Name &&
		c.MountPath == o.MountPath &&
		slices.Equal(c.Items, o.Items) &&
		c.IsRequested == o.IsRequested
}

func (c ConnectionResource) Validate() error {
	if c.Name == "" {
		return apierr.Invalid("resource name is required")
	}
	if c.MountPath != "" {
		return validateMountPath(c.MountPath)
	}
	return nil
}

// ConnectionType is a definition of a connection as agents read it.
type ConnectionType struct {
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	Tags        []string            `json:"tags,omitempty"`
	Kind        Kind                `json:"kind"`
	Schema      *ConnectionSchema   `json:"schema_,omitempty"`
	Secret      *ConnectionResource `json:"secret,omitempty"`
	ConfigMap   *ConnectionResource `json:"config_map,omitempty"`
	Env         []corev1.EnvVar     `json:"env,omitempty"`
	Annotations map[string]string   `json:"annotations,omitempty"`
}

func (c ConnectionType) Equal(o ConnectionType) bool {
	return c.Name == o.Name &&
		c.Description == o.Description &&
		slices.Equal(c.Tags, o.Tags) &&
		c.Kind == o.Kind &&
		cmp.PtrEqual(c.Schema, o.Schema) &&
		cmp.PtrEqual(c.Secret, o.Secret) &&
		cmp.PtrEqual(c.ConfigMap, o.ConfigMap) &&
		equality.Semantic.DeepEqual(c.Env, o.Env) &&
		maps.Equal(c.Annotations, o.Annotations)
}

// Validate checks name and kind, and that the schema fits the kind.
func (c ConnectionType) Validate() error {
	if err := names.Validate(c.Name); err != nil {
		return err
	}
	if _, err := ParseKind(string(c.Kind)); err != nil {
		return err
	}
	if c.Schema == nil {
		if c.Kind.IsArtifactStore() || c.Kind == Git {
			return apierr.Invalid("%s connection requires schema_", c.Kind)
		}
	} else if err := c.Schema.CompatibleWith(c.Kind); err != nil {
		return err
	}
	for _, r := range []*ConnectionResource{c.Secret, c.ConfigMap} {
		if r == nil {
			continue
		}
		if err := r.Validate(); err != nil {
			return err
		}
	}
	for _, e := range c.Env {
		if e.Name == "" {
			return apierr.Invalid("env name is required")
		}
	}
	return nil
}

// Response returns the metadata part of c as ConnectionResponse.
func (c ConnectionType) Response() ConnectionResponse {
	return ConnectionResponse{
		Name:        c.Name,
		Description: c.Description,
		Tags:        slices.Clone(c.Tags),
		Kind:        c.Kind,
		Schema:      c.Schema,
	}
}

// ConnectionResponse is a connection registered in an organization.
type ConnectionResponse struct {
	UUID        string           `json:"uuid,omitempty"`
	Name        string           `json:"name,omitempty"`
	Agent       string           `json:"agent,omitempty"`
	Description string           `json:"description,omitempty"`
	Tags        []string         `json:"tags,omitempty"`
	CreatedAt   *rfctime.RFC3339 `json:"created_at,omitempty"`
	UpdatedAt   *rfctime.RFC3339 `json:"updated_at,omitempty"`
	Frozen      *bool            `json:"frozen,omitempty"`
	Disabled    *bool            `json:"disabled,omitempty"`
	Deleted     *bool            `json:"deleted,omitempty"`
	Kind        Kind             `json:"kind,omitempty"`

	Schema *ConnectionSchema `json:"schema_,omitempty"`
}

func (c ConnectionResponse) Equal(o ConnectionResponse) bool {
	return c.UUID == o.UUID &&
		c.Name == o.Name &&
		c.Agent == o.Agent &&
		c.Description == o.Description &&
		slices.Equal(c.Tags, o.Tags) &&
		cmp.PtrEqual(c.CreatedAt, o.CreatedAt) &&
		cmp.PtrEqual(c.UpdatedAt, o.UpdatedAt) &&
		cmp.PtrEq(c.Frozen, o.Frozen) &&
		cmp.PtrEq(c.Disabled, o.Disabled) &&
		cmp.PtrEq(c.Deleted, o.Deleted) &&
		c.Kind == o.Kind &&
		cmp.PtrEqual(c.Schema, o.Schema)
}

// Validate checks a connection to be created.
func (c ConnectionResponse) Validate() error {
	if err := names.Validate(c.Name); err != nil {
		return err
	}
	if _, err := ParseKind(string(c.Kind)); err != nil {
		return err
	}
	if c.Schema != nil {
		return c.Schema.CompatibleWith(c.Kind)
	}
	return nil
}

type ListConnectionsResponse = pagination.List[ConnectionResponse]
