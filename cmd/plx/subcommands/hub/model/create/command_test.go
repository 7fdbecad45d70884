package create_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/polyaxon/plx/cmd/plx/env"
	"github.com/polyaxon/plx/cmd/plx/rest/mock"
	model_create "github.com/polyaxon/plx/cmd/plx/subcommands/hub/model/create"
	"github.com/polyaxon/plx/cmd/plx/subcommands/internal/commandline"
	"github.com/polyaxon/plx/cmd/plx/subcommands/logger"
	"github.com/polyaxon/plx/pkg/api/types/hub"
	"github.com/youta-t/flarc"
)

func TestCreate(t *testing.T) {
	type When struct {
		name  string
		flags model_create.Flags
	}
	type Then struct {
		request *hub.Model
		err     error
	}

	theory := func(when When, then Then) func(*testing.T) {
		return func(t *testing.T) {
			client := mock.New(t)
			client.Impl.CreateHubModel = func(ctx context.Context, owner string, m hub.Model) (hub.Model, error) {
				m.UUID = "m1"
				return m, nil
			}

			err := model_create.Task()(
				context.Background(),
				logger.Null(),
				env.PlxEnv{Owner: "acme"},
				client,
				commandline.MockCommandline[model_create.Flags]{
					Fullname_: "plx hub model create",
					Stdout_:   new(strings.Builder),
					Flags_:    when.flags,
					Args_:     map[string][]string{model_create.ARG_NAME: {when.name}},
				},
				[]any{},
			)
			if !errors.Is(err, then.err) {
				t.Fatalf("unexpected error: %v", err)
			}

			calls := client.Calls.CreateHubModel
			if then.request == nil {
				if len(calls) != 0 {
					t.Errorf("CreateHubModel should not be called: %+v", calls)
				}
				return
			}
			if len(calls) != 1 {
				t.Fatalf("CreateHubModel should be called once: %+v", calls)
			}
			if calls[0].Owner != "acme" {
				t.Errorf("unexpected owner: %s", calls[0].Owner)
			}
			if !calls[0].Model.Equal(*then.request) {
				t.Errorf("unmatch: (actual, expected) = (%+v, %+v)", calls[0].Model, *then.request)
			}
		}
	}

	t.Run("it splits version from name", theory(
		When{name: "resnet:v2", flags: model_create.Flags{Framework: "pytorch", Tag: []string{"vision"}}},
		Then{request: &hub.Model{Name: "resnet", Tag: "v2", Framework: "pytorch", Tags: []string{"vision"}}},
	))

	t.Run("it registers a model without version", theory(
		When{name: "resnet"},
		Then{request: &hub.Model{Name: "resnet"}},
	))

	t.Run("it rejects invalid name", theory(
		When{name: "Res Net"},
		Then{err: flarc.ErrUsage},
	))
}
