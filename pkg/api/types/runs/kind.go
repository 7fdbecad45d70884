package runs

import (
	"encoding/json"

	apierr "github.com/polyaxon/plx/pkg/api/types/errors"
)

// RunKind is a kind of run, as the platform reports it.
type RunKind string

const (
	Job        RunKind = "job"
	Service    RunKind = "service"
	DAG        RunKind = "dag"
	DaskJob    RunKind = "daskjob"
	RayJob     RunKind = "rayjob"
	MPIJob     RunKind = "mpijob"
	TFJob      RunKind = "tfjob"
	PyTorchJob RunKind = "pytorchjob"
	PaddleJob  RunKind = "paddlejob"
	MXJob      RunKind = "mxjob"
	XGBJob     RunKind = "xgbjob"
	SparkJob   RunKind = "spark"
	Matrix     RunKind = "matrix"
	Schedule   RunKind = "schedule"
	Tuner      RunKind = "tuner"
	Watchdog   RunKind = "watchdog"
	Notifier   RunKind = "notifier"
	Cleaner    RunKind = "cleaner"
	Builder    RunKind = "builder"
)

var knownKinds = []RunKind{
	Job, Service, DAG, DaskJob, RayJob, MPIJob, TFJob, PyTorchJob, PaddleJob, MXJob, XGBJob, SparkJob,
	Matrix, Schedule, Tuner, Watchdog, Notifier, Cleaner, Builder,
}

func (k RunKind) String() string {
	return string(k)
}

func ParseRunKind(s string) (RunKind, error) {
	for _, k := range knownKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", apierr.Invalid("unknown run kind: %s", s)
}

func (k *RunKind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*k = ""
		return nil
	}
	kind, err := ParseRunKind(s)
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// IsDistributed reports the kind runs on more than one pod by design.
func (k RunKind) IsDistributed() bool {
	switch k {
	case DaskJob, RayJob, MPIJob, TFJob, PyTorchJob, PaddleJob, MXJob, XGBJob, SparkJob:
		return true
	}
	return false
}

// IsPipeline reports the kind spawns other runs.
func (k RunKind) IsPipeline() bool {
	switch k {
	case DAG, Matrix, Schedule:
		return true
	}
	return false
}
