package runs_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	apierr "github.com/polyaxon/plx/pkg/api/types/errors"
	"github.com/polyaxon/plx/pkg/api/types/misc/rfctime"
	"github.com/polyaxon/plx/pkg/api/types/runs"
	"github.com/polyaxon/plx/pkg/api/types/statuses"
	"github.com/polyaxon/plx/pkg/utils/try"
)

func TestRun_JSON(t *testing.T) {
	body := `{
		"uuid": "8aac02e3a62a4f0aaa257c59da5eab80",
		"name": "train",
		"owner": "acme",
		"project": "mnist",
		"kind": "job",
		"status": "running",
		"status_conditions": [
			{"type": "created", "status": "True", "last_transition_time": "2023-05-01T00:00:00Z"},
			{"type": "running", "status": "True", "last_transition_time": "2023-05-01T00:01:00Z"}
		],
		"inputs": {"lr": 0.1},
		"notifications": [{"connections": ["slack"], "trigger": "failed"}],
		"created_at": "2023-05-01T00:00:00Z"
	}`
	var actual runs.Run
	if err := json.Unmarshal([]byte(body), &actual); err != nil {
		t.Fatal(err)
	}
	if actual.Kind != runs.Job || actual.Status != statuses.Running ||
		len(actual.StatusConditions) != 2 || actual.Inputs["lr"] != 0.1 ||
		len(actual.Notifications) != 1 {
		t.Errorf("unexpected: %+v", actual)
	}

	again := try.To(json.Marshal(actual)).OrFatal(t)
	var reread runs.Run
	if err := json.Unmarshal(again, &reread); err != nil {
		t.Fatal(err)
	}
	if !reread.Equal(actual) {
		t.Errorf("not stable after marshal: %s", again)
	}

	t.Run("unknown kind is rejected", func(t *testing.T) {
		var r runs.Run
		if err := json.Unmarshal([]byte(`{"kind": "cronjob"}`), &r); !errors.Is(err, apierr.ErrInvalid) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestRun_WithStatus(t *testing.T) {
	t0 := try.To(rfctime.ParseRFC3339DateTime("2023-05-01T00:00:00Z")).OrFatal(t)
	t1 := rfctime.RFC3339(t0.Time().Add(time.Minute))
	t2 := rfctime.RFC3339(t0.Time().Add(2 * time.Minute))

	run := runs.Run{UUID: "r1", Status: statuses.Queued}
	st := run.CurrentStatus()
	if err := st.Apply(statuses.StatusCondition{Type: statuses.Running, LastTransitionTime: &t1}, false); err != nil {
		t.Fatal(err)
	}
	run = run.WithStatus(st)
	if run.StartedAt == nil || !run.StartedAt.Equal(t1) || run.FinishedAt != nil {
		t.Errorf("unexpected: %+v", run)
	}

	if err := st.Apply(statuses.StatusCondition{Type: statuses.Succeeded, LastTransitionTime: &t2}, false); err != nil {
		t.Fatal(err)
	}
	run = run.WithStatus(st)
	if !run.StartedAt.Equal(t1) || run.FinishedAt == nil || !run.FinishedAt.Equal(t2) {
		t.Errorf("unexpected: %+v", run)
	}
	if run.Status != statuses.Succeeded || len(run.StatusConditions) != 2 {
		t.Errorf("unexpected: %+v", run)
	}
}

func TestRun_RunSpec(t *testing.T) {
	run := runs.Run{
		UUID:    "r1",
		Content: `{"version": 1.1, "kind": "compiled_operation", "run": {"kind": "mpi_job", "launcher": {"container": {"name": "m", "image": "horovod/horovod"}}}}`,
	}
	spec, err := run.RunSpec()
	if err != nil {
		t.Fatal(err)
	}
	if spec.MpiJob == nil || spec.MpiJob.Launcher == nil {
		t.Errorf("unexpected: %+v", spec)
	}

	for name, content := range map[string]string{
		"empty":    "",
		"broken":   "{",
		"no run":   `{"kind": "compiled_operation"}`,
		"kindless": `{"run": {}}`,
	} {
		t.Run("it rejects "+name, func(t *testing.T) {
			_, err := runs.Run{UUID: "r1", Content: content}.RunSpec()
			if !errors.Is(err, apierr.ErrInvalid) {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestNotification(t *testing.T) {
	t.Run("Validate", func(t *testing.T) {
		for trigger, ok := range map[statuses.Statuses]bool{
			statuses.Succeeded: true,
			statuses.Failed:    true,
			statuses.Stopped:   true,
			statuses.Done:      true,
			statuses.Running:   false,
			statuses.Created:   false,
		} {
			err := runs.Notification{Connections: []string{"slack"}, Trigger: trigger}.Validate()
			if ok != (err == nil) {
				t.Errorf("%s: unexpected error: %v", trigger, err)
			}
		}
		if err := (runs.Notification{Trigger: statuses.Failed}).Validate(); !errors.Is(err, apierr.ErrInvalid) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("Fires", func(t *testing.T) {
		done := runs.Notification{Connections: []string{"x"}, Trigger: statuses.Done}
		if !done.Fires(statuses.Failed) || !done.Fires(statuses.Succeeded) || done.Fires(statuses.Running) {
			t.Error("done trigger should fire on final statuses only")
		}
		failed := runs.Notification{Connections: []string{"x"}, Trigger: statuses.Failed}
		if !failed.Fires(statuses.Failed) || failed.Fires(statuses.Stopped) {
			t.Error("failed trigger should fire on failed only")
		}
	})
}

func TestLogs(t *testing.T) {
	body := `{
		"logs": [
			{"timestamp": "2023-05-01T00:00:00Z", "pod": "train-0", "value": "epoch 1"},
			{"timestamp": "2023-05-01T00:00:01Z", "value": "epoch 2"}
		],
		"last_time": "2023-05-01T00:00:01Z",
		"last_file": "1682899201"
	}`
	var actual runs.Logs
	if err := json.Unmarshal([]byte(body), &actual); err != nil {
		t.Fatal(err)
	}
	if len(actual.Logs) != 2 || actual.LastFile != "1682899201" || actual.LastTime == nil {
		t.Fatalf("unexpected: %+v", actual)
	}
	if s := actual.Logs[0].String(); s != "2023-05-01T00:00:00+00:00 | train-0 | epoch 1" {
		t.Errorf("unexpected line: %s", s)
	}
	if s := actual.Logs[1].String(); s != "2023-05-01T00:00:01+00:00 | epoch 2" {
		t.Errorf("unexpected line: %s", s)
	}
}

func TestEventChart(t *testing.T) {
	var actual runs.EventChart
	if err := json.Unmarshal([]byte(`{"kind": "plotly", "figure": {"data": []}}`), &actual); err != nil {
		t.Fatal(err)
	}
	if actual.Kind != runs.ChartPlotly || string(actual.Figure) != `{"data": []}` {
		t.Errorf("unexpected: %+v", actual)
	}
	if err := json.Unmarshal([]byte(`{"kind": "excel"}`), &actual); !errors.Is(err, apierr.ErrInvalid) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRunKind(t *testing.T) {
	if !runs.MPIJob.IsDistributed() || runs.Job.IsDistributed() {
		t.Error("IsDistributed")
	}
	if !runs.Matrix.IsPipeline() || runs.Service.IsPipeline() {
		t.Error("IsPipeline")
	}
}
