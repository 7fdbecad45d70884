package state_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"strings"
	"testing"

	"github.com/polyaxon/plx/cmd/plx/env"
	"github.com/polyaxon/plx/cmd/plx/rest/mock"
	agent_state "github.com/polyaxon/plx/cmd/plx/subcommands/agent/state"
	"github.com/polyaxon/plx/cmd/plx/subcommands/internal/commandline"
	"github.com/polyaxon/plx/pkg/api/types/agents"
	"github.com/polyaxon/plx/pkg/api/types/statuses"
)

func TestState(t *testing.T) {
	theory := func(when agents.StateResponse, thenLog string) func(*testing.T) {
		return func(t *testing.T) {
			client := mock.New(t)
			client.Impl.GetAgentState = func(ctx context.Context, owner string, uuid string) (agents.StateResponse, error) {
				if owner != "acme" || uuid != "a1" {
					t.Errorf("unexpected args: (%s, %s)", owner, uuid)
				}
				return when, nil
			}

			logs := new(bytes.Buffer)
			stdout := new(strings.Builder)
			err := agent_state.Task()(
				context.Background(),
				log.New(logs, "", 0),
				env.PlxEnv{Owner: "acme"},
				client,
				commandline.MockCommandline[struct{}]{
					Fullname_: "plx agent state",
					Stdout_:   stdout,
					Args_:     map[string][]string{agent_state.ARG_UUID: {"a1"}},
				},
				[]any{},
			)
			if err != nil {
				t.Fatal(err)
			}

			actual := agents.StateResponse{}
			if err := json.Unmarshal([]byte(stdout.String()), &actual); err != nil {
				t.Fatal(err)
			}
			if !actual.Equal(when) {
				t.Errorf("unmatch: (actual, expected) = (%+v, %+v)", actual, when)
			}
			if !strings.Contains(logs.String(), thenLog) {
				t.Errorf("log should contain %q: %s", thenLog, logs.String())
			}
		}
	}

	t.Run("it reports full agent", theory(
		agents.StateResponse{
			Status: statuses.Running,
			State: &agents.State{
				Queued:    []string{"r1", "r2"},
				Schedules: []string{"r3"},
				Full:      true,
			},
		},
		"3 runs are pending",
	))

	t.Run("it shows idle agent", theory(
		agents.StateResponse{Status: statuses.Running, State: &agents.State{}},
		"",
	))
}
