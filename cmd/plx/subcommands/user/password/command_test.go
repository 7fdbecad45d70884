package password_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/polyaxon/plx/cmd/plx/env"
	"github.com/polyaxon/plx/cmd/plx/rest/mock"
	"github.com/polyaxon/plx/cmd/plx/subcommands/internal/commandline"
	"github.com/polyaxon/plx/cmd/plx/subcommands/logger"
	user_password "github.com/polyaxon/plx/cmd/plx/subcommands/user/password"
	"github.com/polyaxon/plx/pkg/api/types/users"
	"github.com/youta-t/flarc"
)

func TestPassword(t *testing.T) {
	type Then struct {
		request *users.PasswordChange
		err     error
	}

	theory := func(stdin string, then Then) func(*testing.T) {
		return func(t *testing.T) {
			client := mock.New(t)
			client.Impl.ChangePassword = func(ctx context.Context, change users.PasswordChange) error {
				return nil
			}

			err := user_password.Task()(
				context.Background(),
				logger.Null(),
				env.PlxEnv{},
				client,
				commandline.MockCommandline[struct{}]{
					Fullname_: "plx user password",
					Stdin_:    strings.NewReader(stdin),
					Stderr_:   new(strings.Builder),
				},
				[]any{},
			)
			if !errors.Is(err, then.err) {
				t.Fatalf("unexpected error: %v", err)
			}

			calls := client.Calls.ChangePassword
			if then.request == nil {
				if len(calls) != 0 {
					t.Errorf("ChangePassword should not be called")
				}
				return
			}
			if len(calls) != 1 || !calls[0].Change.Equal(*then.request) {
				t.Errorf("unexpected calls: %d", len(calls))
			}
		}
	}

	t.Run("it changes password read from stdin", theory(
		"old\nnew-pass\nnew-pass\n",
		Then{request: &users.PasswordChange{OldPassword: "old", NewPassword1: "new-pass", NewPassword2: "new-pass"}},
	))

	t.Run("it rejects mismatched new passwords", theory(
		"old\nnew-pass\nnew-typo\n",
		Then{err: flarc.ErrUsage},
	))

	t.Run("it rejects missing lines", theory(
		"old\n",
		Then{err: flarc.ErrUsage},
	))
}
