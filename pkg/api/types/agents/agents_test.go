package agents_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/polyaxon/plx/pkg/api/types/agents"
	apierr "github.com/polyaxon/plx/pkg/api/types/errors"
	"github.com/polyaxon/plx/pkg/api/types/statuses"
	"github.com/polyaxon/plx/pkg/utils/pointer"
)

func TestListAgentsResponse(t *testing.T) {
	body := `{
		"count": 2,
		"results": [
			{"uuid": "a1", "name": "agent-1", "live": true, "namespace": "polyaxon", "status": "running"},
			{"uuid": "a2", "name": "agent-2", "version_api": {"major": "1", "minor": "28"}}
		],
		"next": null,
		"previous": null
	}`

	var actual agents.ListAgentsResponse
	if err := json.Unmarshal([]byte(body), &actual); err != nil {
		t.Fatal(err)
	}

	expected := agents.ListAgentsResponse{
		Count: 2,
		Results: []agents.Agent{
			{UUID: "a1", Name: "agent-1", Live: pointer.Ref(true), Namespace: "polyaxon", Status: statuses.Running},
			{UUID: "a2", Name: "agent-2", VersionApi: map[string]string{"major": "1", "minor": "28"}},
		},
	}
	if !actual.EqualFunc(expected, agents.Agent.Equal) {
		t.Errorf("unmatch: (actual, expected) = (%+v, %+v)", actual, expected)
	}
}

func TestAgentValidate(t *testing.T) {
	if err := (agents.Agent{Name: "agent", Namespace: "polyaxon"}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (agents.Agent{Name: "agent", Namespace: "Bad_NS"}).Validate(); !errors.Is(err, apierr.ErrInvalid) {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (agents.Agent{}).Validate(); !errors.Is(err, apierr.ErrInvalid) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestStateResponse(t *testing.T) {
	body := `{"status": "running", "state": {"queued": ["r1", "r2"], "stopping": ["r3"], "full": true}, "live_state": 1}`
	var actual agents.StateResponse
	if err := json.Unmarshal([]byte(body), &actual); err != nil {
		t.Fatal(err)
	}
	expected := agents.StateResponse{
		Status:    statuses.Running,
		State:     &agents.State{Queued: []string{"r2", "r1"}, Stopping: []string{"r3"}, Full: true},
		LiveState: 1,
	}
	if !actual.Equal(expected) {
		t.Errorf("unmatch: (actual, expected) = (%+v, %+v)", actual, expected)
	}
	if n := actual.State.Pending(); n != 3 {
		t.Errorf("unexpected pending: %d", n)
	}
}
