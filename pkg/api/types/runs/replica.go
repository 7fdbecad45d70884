package runs

import (
	"slices"

	"github.com/google/go-containerregistry/pkg/name"
	apierr "github.com/polyaxon/plx/pkg/api/types/errors"
	"github.com/polyaxon/plx/pkg/api/types/internal/utils/cmp"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/equality"
)

// ValidateContainer checks the image reference and that requests do not exceed limits.
func ValidateContainer(c corev1.Container) error {
	if c.Image == "" {
		return apierr.Invalid("container %q: image is required", c.Name)
	}
	if _, err := name.ParseReference(c.Image); err != nil {
		return apierr.Invalid("container %q: bad image %q: %v", c.Name, c.Image, err)
	}
	for res, req := range c.Resources.Requests {
		lim, ok := c.Resources.Limits[res]
		if !ok {
			continue
		}
		if req.Cmp(lim) > 0 {
			return apierr.Invalid(
				"container %q: %s request (%s) exceeds limit (%s)",
				c.Name, res, req.String(), lim.String(),
			)
		}
	}
	return nil
}

// KFReplica is a replica of kubeflow style distributed jobs.
type KFReplica struct {
	Replicas    *int32             `json:"replicas,omitempty"`
	Environment *Environment       `json:"environment,omitempty"`
	Connections []string           `json:"connections,omitempty"`
	Volumes     []corev1.Volume    `json:"volumes,omitempty"`
	Init        []Init             `json:"init,omitempty"`
	Sidecars    []corev1.Container `json:"sidecars,omitempty"`
	Container   *corev1.Container  `json:"container,omitempty"`
}

func (r KFReplica) Equal(o KFReplica) bool {
	return cmp.PtrEq(r.Replicas, o.Replicas) &&
		cmp.PtrEqual(r.Environment, o.Environment) &&
		slices.Equal(r.Connections, o.Connections) &&
		equality.Semantic.DeepEqual(r.Volumes, o.Volumes) &&
		cmp.SliceEqual(r.Init, o.Init) &&
		equality.Semantic.DeepEqual(r.Sidecars, o.Sidecars) &&
		equality.Semantic.DeepEqual(r.Container, o.Container)
}

func (r KFReplica) Validate() error {
	return validateReplica(r.Replicas, r.Environment, r.Init, r.Sidecars, r.Container)
}

func validateReplica(
	replicas *int32, env *Environment, init []Init, sidecars []corev1.Container, main *corev1.Container,
) error {
	if replicas != nil && *replicas < 0 {
		return apierr.Invalid("replicas should not be negative: %d", *replicas)
	}
	if env != nil {
		if err := env.Validate(); err != nil {
			return err
		}
	}
	for _, i := range init {
		if err := i.Validate(); err != nil {
			return err
		}
	}
	for _, s := range sidecars {
		if err := ValidateContainer(s); err != nil {
			return err
		}
	}
	if main == nil {
		return apierr.Invalid("container is required")
	}
	return ValidateContainer(*main)
}

// SparkReplica is a driver or executors of spark application.
type SparkReplica struct {
	Replicas    *int32             `json:"replicas,omitempty"`
	Environment *Environment       `json:"environment,omitempty"`
	Init        []Init             `json:"init,omitempty"`
	Sidecars    []corev1.Container `json:"sidecars,omitempty"`
	Container   *corev1.Container  `json:"container,omitempty"`
}

func (r SparkReplica) Equal(o SparkReplica) bool {
	return cmp.PtrEq(r.Replicas, o.Replicas) &&
		cmp.PtrEqual(r.Environment, o.Environment) &&
		cmp.SliceEqual(r.Init, o.Init) &&
		equality.Semantic.DeepEqual(r.Sidecars, o.Sidecars) &&
		equality.Semantic.DeepEqual(r.Container, o.Container)
}

func (r SparkReplica) Validate() error {
	return validateReplica(r.Replicas, r.Environment, r.Init, r.Sidecars, r.Container)
}
