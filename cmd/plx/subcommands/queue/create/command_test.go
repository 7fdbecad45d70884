package create_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/polyaxon/plx/cmd/plx/env"
	"github.com/polyaxon/plx/cmd/plx/rest/mock"
	"github.com/polyaxon/plx/cmd/plx/subcommands/internal/commandline"
	"github.com/polyaxon/plx/cmd/plx/subcommands/logger"
	queue_create "github.com/polyaxon/plx/cmd/plx/subcommands/queue/create"
	"github.com/polyaxon/plx/pkg/api/types/queues"
	"github.com/polyaxon/plx/pkg/utils/pointer"
	"github.com/youta-t/flarc"
)

func TestCreate(t *testing.T) {
	type When struct {
		name  string
		flags queue_create.Flags
	}
	type Then struct {
		request *queues.Queue
		err     error
	}

	theory := func(when When, then Then) func(*testing.T) {
		return func(t *testing.T) {
			client := mock.New(t)
			client.Impl.CreateQueue = func(ctx context.Context, owner string, agent string, q queues.Queue) (queues.Queue, error) {
				q.UUID = "q1"
				q.Agent = agent
				return q, nil
			}

			err := queue_create.Task()(
				context.Background(),
				logger.Null(),
				env.PlxEnv{Owner: "acme"},
				client,
				commandline.MockCommandline[queue_create.Flags]{
					Fullname_: "plx queue create",
					Stdout_:   new(strings.Builder),
					Flags_:    when.flags,
					Args_: map[string][]string{
						queue_create.ARG_AGENT: {"a1"},
						queue_create.ARG_NAME:  {when.name},
					},
				},
				[]any{},
			)
			if !errors.Is(err, then.err) {
				t.Fatalf("unexpected error: %v", err)
			}

			calls := client.Calls.CreateQueue
			if then.request == nil {
				if len(calls) != 0 {
					t.Errorf("CreateQueue should not be called: %+v", calls)
				}
				return
			}
			if len(calls) != 1 {
				t.Fatalf("CreateQueue should be called once: %+v", calls)
			}
			if calls[0].Agent != "a1" {
				t.Errorf("unexpected agent: %s", calls[0].Agent)
			}
			if !calls[0].Queue.Equal(*then.request) {
				t.Errorf("unmatch: (actual, expected) = (%+v, %+v)", calls[0].Queue, *then.request)
			}
		}
	}

	t.Run("it creates a queue with quota", theory(
		When{
			name: "gpu",
			flags: queue_create.Flags{
				Tag: []string{"fast"}, Priority: "10", Concurrency: "4",
				Resource: "nvidia.com/gpu", Quota: "8",
			},
		},
		Then{
			request: &queues.Queue{
				Name: "gpu", Tags: []string{"fast"},
				Priority: pointer.Ref[int32](10), Concurrency: pointer.Ref[int32](4),
				Resource: "nvidia.com/gpu", Quota: pointer.Ref[int32](8),
			},
		},
	))

	t.Run("it creates a queue with name only", theory(
		When{name: "default"},
		Then{request: &queues.Queue{Name: "default"}},
	))

	t.Run("it rejects non-numeric priority", theory(
		When{name: "gpu", flags: queue_create.Flags{Priority: "high"}},
		Then{err: flarc.ErrUsage},
	))

	t.Run("it rejects quota without resource", theory(
		When{name: "gpu", flags: queue_create.Flags{Quota: "2"}},
		Then{err: flarc.ErrUsage},
	))

	t.Run("it rejects zero concurrency", theory(
		When{name: "gpu", flags: queue_create.Flags{Concurrency: "0"}},
		Then{err: flarc.ErrUsage},
	))
}
