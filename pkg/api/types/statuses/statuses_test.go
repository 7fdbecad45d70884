package statuses_test

import (
	"encoding/json"
	"errors"
	"testing"

	apierr "github.com/polyaxon/plx/pkg/api/types/errors"
	"github.com/polyaxon/plx/pkg/api/types/statuses"
)

func TestLifecyclePredicates(t *testing.T) {
	for _, s := range statuses.All() {
		n := 0
		for _, p := range []bool{s.IsDone(), s.IsRunning(), s.IsPending()} {
			if p {
				n += 1
			}
		}
		if 1 < n {
			t.Errorf("%s is in more than one lifecycle phase", s)
		}
	}

	for _, s := range []statuses.Statuses{
		statuses.Succeeded, statuses.Failed, statuses.UpstreamFailed,
		statuses.Stopped, statuses.Skipped, statuses.Done,
	} {
		if !s.IsDone() {
			t.Errorf("%s should be done", s)
		}
	}
	if statuses.Stopping.IsDone() {
		t.Error("stopping should not be done")
	}
}

func TestCanTransition(t *testing.T) {
	for name, testcase := range map[string]struct {
		from, to statuses.Statuses
		want     bool
	}{
		"running to succeeded":   {statuses.Running, statuses.Succeeded, true},
		"queued to running":      {statuses.Queued, statuses.Running, true},
		"anything to created":    {statuses.Running, statuses.Created, false},
		"stopping to running":    {statuses.Stopping, statuses.Running, false},
		"stopping to stopped":    {statuses.Stopping, statuses.Stopped, true},
		"succeeded to running":   {statuses.Succeeded, statuses.Running, false},
		"stopped to resuming":    {statuses.Stopped, statuses.Resuming, true},
		"failed to retrying":     {statuses.Failed, statuses.Retrying, true},
		"done to failed":         {statuses.Done, statuses.Failed, false},
		"resuming to scheduled":  {statuses.Resuming, statuses.Scheduled, true},
	} {
		t.Run(name, func(t *testing.T) {
			if got := testcase.from.CanTransition(testcase.to); got != testcase.want {
				t.Errorf("%s -> %s: got %v, want %v", testcase.from, testcase.to, got, testcase.want)
			}
		})
	}
}

func TestStatusApply(t *testing.T) {
	t.Run("it appends conditions and moves status", func(t *testing.T) {
		s := statuses.Status{UUID: "x"}
		for _, typ := range []statuses.Statuses{statuses.Created, statuses.Queued, statuses.Running} {
			if err := s.Apply(statuses.NewCondition(typ, "Test", ""), false); err != nil {
				t.Fatal(err)
			}
		}
		if s.Status != statuses.Running {
			t.Errorf("unexpected status: %s", s.Status)
		}
		if len(s.StatusConditions) != 3 {
			t.Errorf("unexpected history: %+v", s.StatusConditions)
		}
	})

	t.Run("it replaces the same condition", func(t *testing.T) {
		s := statuses.Status{}
		s.Apply(statuses.NewCondition(statuses.Running, "Agent", "up"), false)
		s.Apply(statuses.NewCondition(statuses.Running, "Agent", "up"), false)
		if len(s.StatusConditions) != 1 {
			t.Errorf("unexpected history: %+v", s.StatusConditions)
		}
	})

	t.Run("it rejects prohibited transition unless forced", func(t *testing.T) {
		s := statuses.Status{}
		s.Apply(statuses.NewCondition(statuses.Succeeded, "Agent", ""), false)

		err := s.Apply(statuses.NewCondition(statuses.Running, "Agent", ""), false)
		if !errors.Is(err, apierr.ErrInvalid) {
			t.Errorf("unexpected error: %v", err)
		}
		if s.Status != statuses.Succeeded {
			t.Errorf("status is changed: %s", s.Status)
		}

		if err := s.Apply(statuses.NewCondition(statuses.Running, "Admin", ""), true); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if s.Status != statuses.Running {
			t.Errorf("status is not changed: %s", s.Status)
		}
	})
}

func TestStatusesJSON(t *testing.T) {
	var s statuses.Status
	body := `{"uuid": "x", "status": "running", "status_conditions": [{"type": "running", "status": "True", "reason": "Agent", "last_update_time": "2023-01-01T00:00:00Z"}]}`
	if err := json.Unmarshal([]byte(body), &s); err != nil {
		t.Fatal(err)
	}
	if s.Status != statuses.Running || len(s.StatusConditions) != 1 || s.StatusConditions[0].Reason != "Agent" {
		t.Errorf("unexpected: %+v", s)
	}

	var bad statuses.Statuses
	if err := json.Unmarshal([]byte(`"exploded"`), &bad); !errors.Is(err, apierr.ErrInvalid) {
		t.Errorf("unexpected error: %v", err)
	}
}
