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
	project_create "github.com/polyaxon/plx/cmd/plx/subcommands/project/create"
	"github.com/polyaxon/plx/pkg/api/types/projects"
	"github.com/polyaxon/plx/pkg/utils/pointer"
	"github.com/youta-t/flarc"
)

func TestCreate(t *testing.T) {
	type When struct {
		name  string
		flags project_create.Flags
	}
	type Then struct {
		request *projects.Project
		err     error
	}

	theory := func(when When, then Then) func(*testing.T) {
		return func(t *testing.T) {
			client := mock.New(t)
			client.Impl.CreateProject = func(ctx context.Context, owner string, p projects.Project) (projects.Project, error) {
				p.UUID = "p1"
				p.Owner = owner
				return p, nil
			}

			err := project_create.Task()(
				context.Background(),
				logger.Null(),
				env.PlxEnv{Owner: "acme"},
				client,
				commandline.MockCommandline[project_create.Flags]{
					Fullname_: "plx project create",
					Stdout_:   new(strings.Builder),
					Flags_:    when.flags,
					Args_:     map[string][]string{project_create.ARG_NAME: {when.name}},
				},
				[]any{},
			)
			if !errors.Is(err, then.err) {
				t.Errorf("unexpected error: %v", err)
			}

			if then.request == nil {
				if len(client.Calls.CreateProject) != 0 {
					t.Errorf("client should not be called")
				}
				return
			}
			if len(client.Calls.CreateProject) != 1 {
				t.Fatalf("unexpected calls: %+v", client.Calls.CreateProject)
			}
			if actual := client.Calls.CreateProject[0].Project; !actual.Equal(*then.request) {
				t.Errorf("unmatch: (actual, expected) = (%+v, %+v)", actual, *then.request)
			}
		}
	}

	t.Run("it creates a public project", theory(
		When{
			name: "mnist",
			flags: project_create.Flags{
				Description: "digits", Tag: []string{"vision"}, Public: true,
			},
		},
		Then{request: &projects.Project{
			Name: "mnist", Description: "digits", Tags: []string{"vision"}, IsPublic: pointer.Ref(true),
		}},
	))

	t.Run("it leaves is_public unset without --public", theory(
		When{name: "mnist"},
		Then{request: &projects.Project{Name: "mnist"}},
	))

	t.Run("it rejects malformed name", theory(
		When{name: "mn/ist"},
		Then{err: flarc.ErrUsage},
	))
}
