package ls_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/polyaxon/plx/cmd/plx/env"
	"github.com/polyaxon/plx/cmd/plx/rest/mock"
	"github.com/polyaxon/plx/cmd/plx/subcommands/internal/commandline"
	"github.com/polyaxon/plx/cmd/plx/subcommands/logger"
	run_ls "github.com/polyaxon/plx/cmd/plx/subcommands/run/ls"
	"github.com/polyaxon/plx/pkg/api/types/pagination"
	"github.com/polyaxon/plx/pkg/api/types/runs"
	"github.com/youta-t/flarc"
)

func TestLs(t *testing.T) {
	type Then struct {
		query string
		err   error
	}

	theory := func(when run_ls.Flags, then Then) func(*testing.T) {
		return func(t *testing.T) {
			client := mock.New(t)
			client.Impl.ListRuns = func(ctx context.Context, owner, project string, opts pagination.Options) (runs.ListRunsResponse, error) {
				return runs.ListRunsResponse{Count: 1, Results: []runs.Run{{UUID: "r1"}}}, nil
			}

			err := run_ls.Task()(
				context.Background(),
				logger.Null(),
				env.PlxEnv{Owner: "acme", Project: "mnist"},
				client,
				commandline.MockCommandline[run_ls.Flags]{
					Fullname_: "plx run ls",
					Stdout_:   new(strings.Builder),
					Flags_:    when,
				},
				[]any{},
			)
			if !errors.Is(err, then.err) {
				t.Fatalf("unexpected error: %v", err)
			}
			if then.err != nil {
				return
			}

			calls := client.Calls.ListRuns
			if len(calls) != 1 {
				t.Fatalf("ListRuns should be called once: %+v", calls)
			}
			if calls[0].Opts.Query != then.query {
				t.Errorf("unmatch: (actual, expected) = (%q, %q)", calls[0].Opts.Query, then.query)
			}
		}
	}

	t.Run("it lists without filter", theory(run_ls.Flags{}, Then{query: ""}))
	t.Run("it filters by status", theory(run_ls.Flags{Status: "running"}, Then{query: "status:running"}))
	t.Run("it joins status to query", theory(
		run_ls.Flags{Status: "failed", Query: "kind:job"},
		Then{query: "kind:job,status:failed"},
	))
	t.Run("it rejects unknown status", theory(run_ls.Flags{Status: "sleeping"}, Then{err: flarc.ErrUsage}))
}
