package runs

import (
	"maps"
	"slices"

	"github.com/polyaxon/plx/pkg/api/types/connections"
	apierr "github.com/polyaxon/plx/pkg/api/types/errors"
	"github.com/polyaxon/plx/pkg/api/types/internal/utils/cmp"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/equality"
)

// Environment is a set of pod level settings of a replica.
type Environment struct {
	Labels             map[string]string          `json:"labels,omitempty"`
	Annotations        map[string]string          `json:"annotations,omitempty"`
	NodeSelector       map[string]string          `json:"node_selector,omitempty"`
	Affinity           *corev1.Affinity           `json:"affinity,omitempty"`
	Tolerations        []corev1.Toleration        `json:"tolerations,omitempty"`
	NodeName           string                     `json:"node_name,omitempty"`
	ServiceAccountName string                     `json:"service_account_name,omitempty"`
	HostAliases        []corev1.HostAlias         `json:"host_aliases,omitempty"`
	SecurityContext    *corev1.PodSecurityContext `json:"security_context,omitempty"`
	ImagePullSecrets   []string                   `json:"image_pull_secrets,omitempty"`
	HostNetwork        *bool                      `json:"host_network,omitempty"`
	HostPID            *bool                      `json:"host_pid,omitempty"`
	DNSPolicy          corev1.DNSPolicy           `json:"dns_policy,omitempty"`
	DNSConfig          *corev1.PodDNSConfig       `json:"dns_config,omitempty"`
	SchedulerName      string                     `json:"scheduler_name,omitempty"`
	PriorityClassName  string                     `json:"priority_class_name,omitempty"`
	Priority           *int32                     `json:"priority,omitempty"`
	RestartPolicy      corev1.RestartPolicy       `json:"restart_policy,omitempty"`
}

func (e Environment) Equal(o Environment) bool {
	return maps.Equal(e.Labels, o.Labels) &&
		maps.Equal(e.Annotations, o.Annotations) &&
		maps.Equal(e.NodeSelector, o.NodeSelector) &&
		equality.Semantic.DeepEqual(e.Affinity, o.Affinity) &&
		equality.Semantic.DeepEqual(e.Tolerations, o.Tolerations) &&
		e.NodeName == o.NodeName &&
		e.ServiceAccountName == o.ServiceAccountName &&
		equality.Semantic.DeepEqual(e.HostAliases, o.HostAliases) &&
		equality.Semantic.DeepEqual(e.SecurityContext, o.SecurityContext) &&
		slices.Equal(e.ImagePullSecrets, o.ImagePullSecrets) &&
		cmp.PtrEq(e.HostNetwork, o.HostNetwork) &&
		cmp.PtrEq(e.HostPID, o.HostPID) &&
		e.DNSPolicy == o.DNSPolicy &&
		equality.Semantic.DeepEqual(e.DNSConfig, o.DNSConfig) &&
		e.SchedulerName == o.SchedulerName &&
		e.PriorityClassName == o.PriorityClassName &&
		cmp.PtrEq(e.Priority, o.Priority) &&
		e.RestartPolicy == o.RestartPolicy
}

func (e Environment) Validate() error {
	switch e.RestartPolicy {
	case "", corev1.RestartPolicyAlways, corev1.RestartPolicyOnFailure, corev1.RestartPolicyNever:
	default:
		return apierr.Invalid("unknown restart_policy: %s", e.RestartPolicy)
	}
	for _, t := range e.Tolerations {
		switch t.Operator {
		case "", corev1.TolerationOpEqual:
		case corev1.TolerationOpExists:
			if t.Value != "" {
				return apierr.Invalid("toleration %q: value should be empty with Exists", t.Key)
			}
		default:
			return apierr.Invalid("toleration %q: unknown operator %s", t.Key, t.Operator)
		}
	}
	return nil
}

// ArtifactsType selects run artifacts to be initialized.
type ArtifactsType struct {
	Files   []string `json:"files,omitempty"`
	Dirs    []string `json:"dirs,omitempty"`
	Workers *int32   `json:"workers,omitempty"`
}

func (a ArtifactsType) Equal(o ArtifactsType) bool {
	return slices.Equal(a.Files, o.Files) &&
		slices.Equal(a.Dirs, o.Dirs) &&
		cmp.PtrEq(a.Workers, o.Workers)
}

// Init is an init step of a replica.
//
// One of Artifacts, Paths, Git, Dockerfile, File, Tensorboard or one of refs should be set.
// Connection and Container customize how the step runs.
type Init struct {
	Artifacts   *ArtifactsType             `json:"artifacts,omitempty"`
	Paths       [][]string                 `json:"paths,omitempty"`
	Git         *connections.GitConnection `json:"git,omitempty"`
	Dockerfile  map[string]any             `json:"dockerfile,omitempty"`
	File        map[string]any             `json:"file,omitempty"`
	Tensorboard map[string]any             `json:"tensorboard,omitempty"`
	LineageRef  string                     `json:"lineage_ref,omitempty"`
	ArtifactRef string                     `json:"artifact_ref,omitempty"`
	ModelRef    string                     `json:"model_ref,omitempty"`
	Connection  string                     `json:"connection,omitempty"`
	Path        string                     `json:"path,omitempty"`
	Container   *corev1.Container          `json:"container,omitempty"`
}

func (i Init) Equal(o Init) bool {
	return cmp.PtrEqual(i.Artifacts, o.Artifacts) &&
		slices.EqualFunc(i.Paths, o.Paths, slices.Equal[[]string]) &&
		cmp.PtrEqual(i.Git, o.Git) &&
		equality.Semantic.DeepEqual(i.Dockerfile, o.Dockerfile) &&
		equality.Semantic.DeepEqual(i.File, o.File) &&
		equality.Semantic.DeepEqual(i.Tensorboard, o.Tensorboard) &&
		i.LineageRef == o.LineageRef &&
		i.ArtifactRef == o.ArtifactRef &&
		i.ModelRef == o.ModelRef &&
		i.Connection == o.Connection &&
		i.Path == o.Path &&
		equality.Semantic.DeepEqual(i.Container, o.Container)
}

func (i Init) sources() []string {
	s := []string{}
	if i.Artifacts != nil {
		s = append(s, "artifacts")
	}
	if len(i.Paths) != 0 {
		s = append(s, "paths")
	}
	if i.Git != nil {
		s = append(s, "git")
	}
	if i.Dockerfile != nil {
		s = append(s, "dockerfile")
	}
	if i.File != nil {
		s = append(s, "file")
	}
	if i.Tensorboard != nil {
		s = append(s, "tensorboard")
	}
	if i.LineageRef != "" {
		s = append(s, "lineage_ref")
	}
	if i.ArtifactRef != "" {
		s = append(s, "artifact_ref")
	}
	if i.ModelRef != "" {
		s = append(s, "model_ref")
	}
	return s
}

// Validate checks at most one source is given.
//
// An init with only a connection initializes whole the connection.
func (i Init) Validate() error {
	src := i.sources()
	if len(src) > 1 {
		return apierr.Invalid("init should have one of sources: %v", src)
	}
	if len(src) == 0 && i.Connection == "" && i.Container == nil {
		return apierr.Invalid("init is empty")
	}
	if i.Git != nil && i.Connection == "" {
		if err := i.Git.Validate(); err != nil {
			return err
		}
	}
	return nil
}
