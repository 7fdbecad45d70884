package connections

import (
	"fmt"
	"net/url"
	"path"
	"slices"
	"strings"

	apierr "github.com/polyaxon/plx/pkg/api/types/errors"
	"github.com/polyaxon/plx/pkg/api/types/internal/utils/cmp"
)

// Variant is one of connection schemas held by ConnectionSchema.
type Variant interface {
	// name of the variant, such as "bucket" or "git"
	SchemaKind() string

	// CompatibleWith reports the variant can describe a connection of k.
	CompatibleWith(k Kind) bool

	Validate() error
}

func checkSchemaKind(v Variant, actual string) error {
	if actual != "" && actual != v.SchemaKind() {
		return apierr.Invalid("kind should be %q or omitted: %q", v.SchemaKind(), actual)
	}
	return nil
}

type BucketConnection struct {
	Kind   string `json:"kind,omitempty"`
	Bucket string `json:"bucket"`
}

var _ Variant = BucketConnection{}

func (BucketConnection) SchemaKind() string { return "bucket" }

func (b BucketConnection) CompatibleWith(k Kind) bool {
	if k == Custom {
		return true
	}
	if !k.IsBucket() {
		return false
	}
	// bucket without scheme is accepted for any object storage.
	scheme, _, ok := strings.Cut(b.Bucket, "://")
	if !ok {
		return true
	}
	switch k {
	case S3:
		return scheme == "s3"
	case GCS:
		return scheme == "gs" || scheme == "gcs"
	case WASB:
		return scheme == "wasb" || scheme == "wasbs" || scheme == "az" || scheme == "abfs"
	}
	return false
}

func (b BucketConnection) Validate() error {
	if err := checkSchemaKind(b, b.Kind); err != nil {
		return err
	}
	if strings.TrimSpace(b.Bucket) == "" {
		return apierr.Invalid("bucket is required")
	}
	return nil
}

func (b BucketConnection) Equal(o BucketConnection) bool {
	return b == o
}

func validateMountPath(p string) error {
	if p == "" {
		return apierr.Invalid("mount_path is required")
	}
	if !path.IsAbs(p) {
		return apierr.Invalid("mount_path should be absolute: %s", p)
	}
	return nil
}

type ClaimConnection struct {
	Kind        string `json:"kind,omitempty"`
	VolumeClaim string `json:"volume_claim"`
	MountPath   string `json:"mount_path"`
	ReadOnly    *bool  `json:"read_only,omitempty"`
}

var _ Variant = ClaimConnection{}

func (ClaimConnection) SchemaKind() string { return "volume_claim" }

func (ClaimConnection) CompatibleWith(k Kind) bool {
	return k == VolumeClaim || k == Custom
}

func (c ClaimConnection) Validate() error {
	if err := checkSchemaKind(c, c.Kind); err != nil {
		return err
	}
	if c.VolumeClaim == "" {
		return apierr.Invalid("volume_claim is required")
	}
	return validateMountPath(c.MountPath)
}

func (c ClaimConnection) Equal(o ClaimConnection) bool {
	return c.Kind == o.Kind &&
		c.VolumeClaim == o.VolumeClaim &&
		c.MountPath == o.MountPath &&
		cmp.PtrEq(c.ReadOnly, o.ReadOnly)
}

type HostPathConnection struct {
	Kind      string `json:"kind,omitempty"`
	HostPath  string `json:"host_path"`
	MountPath string `json:"mount_path"`
	ReadOnly  *bool  `json:"read_only,omitempty"`
}

var _ Variant = HostPathConnection{}

func (HostPathConnection) SchemaKind() string { return "host_path" }

func (HostPathConnection) CompatibleWith(k Kind) bool {
	return k == HostPath || k == Custom
}

func (h HostPathConnection) Validate() error {
	if err := checkSchemaKind(h, h.Kind); err != nil {
		return err
	}
	if !path.IsAbs(h.HostPath) {
		return apierr.Invalid("host_path should be absolute: %q", h.HostPath)
	}
	return validateMountPath(h.MountPath)
}

func (h HostPathConnection) Equal(o HostPathConnection) bool {
	return h.Kind == o.Kind &&
		h.HostPath == o.HostPath &&
		h.MountPath == o.MountPath &&
		cmp.PtrEq(h.ReadOnly, o.ReadOnly)
}

type HostConnection struct {
	Kind     string `json:"kind,omitempty"`
	URL      string `json:"url"`
	Insecure *bool  `json:"insecure,omitempty"`
}

var _ Variant = HostConnection{}

func (HostConnection) SchemaKind() string { return "host" }

func (HostConnection) CompatibleWith(k Kind) bool {
	return k.IsHost() || k == Custom
}

func (h HostConnection) Validate() error {
	if err := checkSchemaKind(h, h.Kind); err != nil {
		return err
	}
	if h.URL == "" {
		return apierr.Invalid("url is required")
	}
	// registries are often written without scheme, like "registry.invalid:5000".
	target := h.URL
	if !strings.Contains(target, "://") {
		target = "//" + target
	}
	u, err := url.Parse(target)
	if err != nil || u.Host == "" {
		return apierr.Invalid("url should have host: %q", h.URL)
	}
	return nil
}

func (h HostConnection) Equal(o HostConnection) bool {
	return h.Kind == o.Kind &&
		h.URL == o.URL &&
		cmp.PtrEq(h.Insecure, o.Insecure)
}

type GitConnection struct {
	Kind     string   `json:"kind,omitempty"`
	URL      string   `json:"url,omitempty"`
	Revision string   `json:"revision,omitempty"`
	Flags    []string `json:"flags,omitempty"`
}

var _ Variant = GitConnection{}

func (GitConnection) SchemaKind() string { return "git" }

func (GitConnection) CompatibleWith(k Kind) bool {
	return k == Git || k == Custom
}

func (g GitConnection) Validate() error {
	if err := checkSchemaKind(g, g.Kind); err != nil {
		return err
	}
	if g.URL == "" {
		return apierr.Invalid("url is required")
	}
	for _, f := range g.Flags {
		if !strings.HasPrefix(f, "-") {
			return apierr.Invalid("git flag should start with '-': %q", f)
		}
	}
	return nil
}

func (g GitConnection) Equal(o GitConnection) bool {
	return g.Kind == o.Kind &&
		g.URL == o.URL &&
		g.Revision == o.Revision &&
		slices.Equal(g.Flags, o.Flags)
}

// ConnectionSchema holds exactly one of connection schemas.
type ConnectionSchema struct {
	BucketConnection   *BucketConnection   `json:"bucket_connection,omitempty"`
	HostPathConnection *HostPathConnection `json:"host_path_connection,omitempty"`
	ClaimConnection    *ClaimConnection    `json:"claim_connection,omitempty"`
	HostConnection     *HostConnection     `json:"host_connection,omitempty"`
	GitConnection      *GitConnection      `json:"git_connection,omitempty"`
}

// SchemaOf wraps v as ConnectionSchema.
func SchemaOf(v Variant) ConnectionSchema {
	s := ConnectionSchema{}
	switch vv := v.(type) {
	case BucketConnection:
		s.BucketConnection = &vv
	case *BucketConnection:
		s.BucketConnection = vv
	case HostPathConnection:
		s.HostPathConnection = &vv
	case *HostPathConnection:
		s.HostPathConnection = vv
	case ClaimConnection:
		s.ClaimConnection = &vv
	case *ClaimConnection:
		s.ClaimConnection = vv
	case HostConnection:
		s.HostConnection = &vv
	case *HostConnection:
		s.HostConnection = vv
	case GitConnection:
		s.GitConnection = &vv
	case *GitConnection:
		s.GitConnection = vv
	}
	return s
}

func (s ConnectionSchema) variants() []Variant {
	vs := []Variant{}
	if s.BucketConnection != nil {
		vs = append(vs, *s.BucketConnection)
	}
	if s.HostPathConnection != nil {
		vs = append(vs, *s.HostPathConnection)
	}
	if s.ClaimConnection != nil {
		vs = append(vs, *s.ClaimConnection)
	}
	if s.HostConnection != nil {
		vs = append(vs, *s.HostConnection)
	}
	if s.GitConnection != nil {
		vs = append(vs, *s.GitConnection)
	}
	return vs
}

// Variant returns the populated schema, or nil if nothing is populated.
//
// When more than one are populated, the first one in field order is returned.
// Use Validate to reject such schema.
func (s ConnectionSchema) Variant() Variant {
	vs := s.variants()
	if len(vs) == 0 {
		return nil
	}
	return vs[0]
}

// Validate checks exactly one schema is populated and it is valid.
func (s ConnectionSchema) Validate() error {
	vs := s.variants()
	switch len(vs) {
	case 0:
		return apierr.Invalid("connection schema is empty")
	case 1:
		return vs[0].Validate()
	default:
		kinds := make([]string, 0, len(vs))
		for _, v := range vs {
			kinds = append(kinds, v.SchemaKind())
		}
		return apierr.Invalid(
			"connection schema should have only one of them: %s", strings.Join(kinds, ", "),
		)
	}
}

// CompatibleWith validates s and checks it can describe a connection of k.
func (s ConnectionSchema) CompatibleWith(k Kind) error {
	if err := s.Validate(); err != nil {
		return err
	}
	v := s.Variant()
	if !v.CompatibleWith(k) {
		return apierr.Invalid("%s schema cannot be used for %s connection", v.SchemaKind(), k)
	}
	return nil
}

func (s ConnectionSchema) Equal(o ConnectionSchema) bool {
	return cmp.PtrEqual(s.BucketConnection, o.BucketConnection) &&
		cmp.PtrEqual(s.HostPathConnection, o.HostPathConnection) &&
		cmp.PtrEqual(s.ClaimConnection, o.ClaimConnection) &&
		cmp.PtrEqual(s.HostConnection, o.HostConnection) &&
		cmp.PtrEqual(s.GitConnection, o.GitConnection)
}

func (s ConnectionSchema) String() string {
	switch v := s.Variant().(type) {
	case nil:
		return "ConnectionSchema{}"
	case BucketConnection:
		return fmt.Sprintf("bucket(%s)", v.Bucket)
	case HostPathConnection:
		return fmt.Sprintf("host_path(%s -> %s)", v.HostPath, v.MountPath)
	case ClaimConnection:
		return fmt.Sprintf("volume_claim(%s -> %s)", v.VolumeClaim, v.MountPath)
	case HostConnection:
		return fmt.Sprintf("host(%s)", v.URL)
	case GitConnection:
		return fmt.Sprintf("git(%s@%s)", v.URL, v.Revision)
	default:
		return fmt.Sprintf("%+v", v)
	}
}
