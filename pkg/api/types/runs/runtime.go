package runs

import (
	"bytes"
	"encoding/json"
	"maps"
	"slices"

	apierr "github.com/polyaxon/plx/pkg/api/types/errors"
	"github.com/polyaxon/plx/pkg/api/types/internal/utils/cmp"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/equality"
)

// CleanPodPolicy tells which pods are deleted after an MPI job finishes.
type CleanPodPolicy string

const (
	CleanPodAll     CleanPodPolicy = "All"
	CleanPodRunning CleanPodPolicy = "Running"
	CleanPodNone    CleanPodPolicy = "None"
)

func (c CleanPodPolicy) String() string {
	return string(c)
}

func (c CleanPodPolicy) Validate() error {
	switch c {
	case "", CleanPodAll, CleanPodRunning, CleanPodNone:
		return nil
	}
	return apierr.Invalid("unknown cleanPodPolicy: %s", c)
}

const (
	MpiJobKind = "mpi_job"
	SparkKind  = "spark"
)

type MpiJob struct {
	Kind           string         `json:"kind,omitempty"`
	CleanPodPolicy CleanPodPolicy `json:"cleanPodPolicy,omitempty"`
	SlotsPerWorker *int32         `json:"slots_per_worker,omitempty"`
	Launcher       *KFReplica     `json:"launcher,omitempty"`
	Worker         *KFReplica     `json:"worker,omitempty"`
}

func (m MpiJob) Equal(o MpiJob) bool {
	return m.Kind == o.Kind &&
		m.CleanPodPolicy == o.CleanPodPolicy &&
		cmp.PtrEq(m.SlotsPerWorker, o.SlotsPerWorker) &&
		cmp.PtrEqual(m.Launcher, o.Launcher) &&
		cmp.PtrEqual(m.Worker, o.Worker)
}

func (m MpiJob) Validate() error {
	if m.Kind != "" && m.Kind != MpiJobKind {
		return apierr.Invalid("kind should be %q: %q", MpiJobKind, m.Kind)
	}
	if err := m.CleanPodPolicy.Validate(); err != nil {
		return err
	}
	if m.SlotsPerWorker != nil && *m.SlotsPerWorker < 1 {
		return apierr.Invalid("slots_per_worker should be positive: %d", *m.SlotsPerWorker)
	}
	if m.Launcher == nil {
		return apierr.Invalid("mpi job requires launcher")
	}
	if m.Launcher.Replicas != nil && *m.Launcher.Replicas > 1 {
		return apierr.Invalid("mpi job can have only one launcher: %d", *m.Launcher.Replicas)
	}
	if err := m.Launcher.Validate(); err != nil {
		return err
	}
	if m.Worker != nil {
		return m.Worker.Validate()
	}
	return nil
}

// SparkType is a language of the spark application.
type SparkType string

const (
	SparkJava   SparkType = "java"
	SparkScala  SparkType = "scala"
	SparkPython SparkType = "python"
	SparkR      SparkType = "r"
)

func (s SparkType) String() string {
	return string(s)
}

// SparkDeploy is a deploy mode of the spark application.
type SparkDeploy string

const (
	SparkDeployCluster         SparkDeploy = "cluster"
	SparkDeployClient          SparkDeploy = "client"
	SparkDeployInClusterClient SparkDeploy = "in_cluster_client"
)

func (s SparkDeploy) String() string {
	return string(s)
}

type Spark struct {
	Kind                string            `json:"kind,omitempty"`
	Connections         []string          `json:"connections,omitempty"`
	Volumes             []corev1.Volume   `json:"volumes,omitempty"`
	Type                SparkType         `json:"type,omitempty"`
	SparkVersion        string            `json:"spark_version,omitempty"`
	PythonVersion       string            `json:"python_version,omitempty"`
	DeployMode          SparkDeploy       `json:"deploy_mode,omitempty"`
	MainClass           string            `json:"main_class,omitempty"`
	MainApplicationFile string            `json:"main_application_file,omitempty"`
	Arguments           []string          `json:"arguments,omitempty"`
	HadoopConf          map[string]string `json:"hadoop_conf,omitempty"`
	SparkConf           map[string]string `json:"spark_conf,omitempty"`
	SparkConfigMap      string            `json:"spark_config_map,omitempty"`
	HadoopConfigMap     string            `json:"hadoop_config_map,omitempty"`
	Executor            *SparkReplica     `json:"executor,omitempty"`
	Driver              *SparkReplica     `json:"driver,omitempty"`
}

func (s Spark) Equal(o Spark) bool {
	return s.Kind == o.Kind &&
		slices.Equal(s.Connections, o.Connections) &&
		equality.Semantic.DeepEqual(s.Volumes, o.Volumes) &&
		s.Type == o.Type &&
		s.SparkVersion == o.SparkVersion &&
		s.PythonVersion == o.PythonVersion &&
		s.DeployMode == o.DeployMode &&
		s.MainClass == o.MainClass &&
		s.MainApplicationFile == o.MainApplicationFile &&
		slices.Equal(s.Arguments, o.Arguments) &&
		maps.Equal(s.HadoopConf, o.HadoopConf) &&
		maps.Equal(s.SparkConf, o.SparkConf) &&
		s.SparkConfigMap == o.SparkConfigMap &&
		s.HadoopConfigMap == o.HadoopConfigMap &&
		cmp.PtrEqual(s.Executor, o.Executor) &&
		cmp.PtrEqual(s.Driver, o.Driver)
}

func (s Spark) Validate() error {
	if s.Kind != "" && s.Kind != SparkKind {
		return apierr.Invalid("kind should be %q: %q", SparkKind, s.Kind)
	}
	switch s.Type {
	case "", SparkJava, SparkScala, SparkPython, SparkR:
	default:
		return apierr.Invalid("unknown spark type: %s", s.Type)
	}
	switch s.DeployMode {
	case "", SparkDeployCluster, SparkDeployClient, SparkDeployInClusterClient:
	default:
		return apierr.Invalid("unknown deploy_mode: %s", s.DeployMode)
	}
	if s.MainApplicationFile == "" {
		return apierr.Invalid("main_application_file is required")
	}
	if (s.Type == SparkJava || s.Type == SparkScala) && s.MainClass == "" {
		return apierr.Invalid("main_class is required for %s application", s.Type)
	}
	if s.Driver != nil {
		if s.Driver.Replicas != nil && *s.Driver.Replicas > 1 {
			return apierr.Invalid("spark can have only one driver: %d", *s.Driver.Replicas)
		}
		if err := s.Driver.Validate(); err != nil {
			return err
		}
	}
	if s.Executor != nil {
		return s.Executor.Validate()
	}
	return nil
}

// Runtime is a run section of an operation, discriminated by its kind.
//
// Kinds not known by this package are kept in Raw as is.
type Runtime struct {
	Kind   string
	MpiJob *MpiJob
	Spark  *Spark
	Raw    json.RawMessage
}

func (r *Runtime) UnmarshalJSON(b []byte) error {
	head := struct {
		Kind string `json:"kind"`
	}{}
	if err := json.Unmarshal(b, &head); err != nil {
		return err
	}
	*r = Runtime{Kind: head.Kind}

	switch head.Kind {
	case MpiJobKind:
		m := new(MpiJob)
		if err := json.Unmarshal(b, m); err != nil {
			return err
		}
		r.MpiJob = m
	case SparkKind:
		s := new(Spark)
		if err := json.Unmarshal(b, s); err != nil {
			return err
		}
		r.Spark = s
	case "":
		return apierr.Invalid("runtime kind is missing")
	default:
		r.Raw = bytes.Clone(b)
	}
	return nil
}

func (r Runtime) MarshalJSON() ([]byte, error) {
	switch {
	case r.MpiJob != nil:
		m := *r.MpiJob
		m.Kind = MpiJobKind
		return json.Marshal(m)
	case r.Spark != nil:
		s := *r.Spark
		s.Kind = SparkKind
		return json.Marshal(s)
	case r.Raw != nil:
		return r.Raw, nil
	}
	return []byte("null"), nil
}

func (r Runtime) Equal(o Runtime) bool {
	return r.Kind == o.Kind &&
		cmp.PtrEqual(r.MpiJob, o.MpiJob) &&
		cmp.PtrEqual(r.Spark, o.Spark) &&
		bytes.Equal(r.Raw, o.Raw)
}

// Known reports the runtime is decoded into a concrete type.
func (r Runtime) Known() bool {
	return r.MpiJob != nil || r.Spark != nil
}

func (r Runtime) Validate() error {
	switch {
	case r.MpiJob != nil:
		return r.MpiJob.Validate()
	case r.Spark != nil:
		return r.Spark.Validate()
	case r.Raw != nil:
		return nil
	}
	return apierr.Invalid("runtime is empty")
}
