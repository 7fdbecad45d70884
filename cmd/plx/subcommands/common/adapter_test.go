package common_test

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/polyaxon/plx/cmd/plx/config/profiles"
	"github.com/polyaxon/plx/cmd/plx/config/profiles/testutils"
	"github.com/polyaxon/plx/cmd/plx/env"
	"github.com/polyaxon/plx/cmd/plx/rest"
	"github.com/polyaxon/plx/cmd/plx/subcommands/common"
	"github.com/polyaxon/plx/cmd/plx/subcommands/internal/commandline"
	"github.com/polyaxon/plx/pkg/utils/try"
	"github.com/youta-t/flarc"
)

func TestNewTaskWithCommonFlag(t *testing.T) {
	t.Run("it passes common flags and other params", func(t *testing.T) {
		cf := common.CommonFlags{Profile: "test"}
		called := false
		testee := common.NewTaskWithCommonFlag(func(
			ctx context.Context,
			logger *log.Logger,
			commonFlag common.CommonFlags,
			cl flarc.Commandline[struct{}],
			params []any,
		) error {
			called = true
			if commonFlag != cf {
				t.Errorf("unmatch: (actual, expected) = (%+v, %+v)", commonFlag, cf)
			}
			if len(params) != 1 || params[0] != "other" {
				t.Errorf("unexpected params: %+v", params)
			}
			if !strings.HasPrefix(logger.Prefix(), "[plx test] ") {
				t.Errorf("unexpected prefix: %s", logger.Prefix())
			}
			return nil
		})

		err := testee(
			context.Background(),
			commandline.MockCommandline[struct{}]{Fullname_: "plx test"},
			[]any{"other", cf},
		)
		if err != nil {
			t.Fatal(err)
		}
		if !called {
			t.Error("task is not called")
		}
	})

	t.Run("it fails without common flags", func(t *testing.T) {
		testee := common.NewTaskWithCommonFlag(func(
			context.Context, *log.Logger, common.CommonFlags, flarc.Commandline[struct{}], []any,
		) error {
			t.Error("task should not be called")
			return nil
		})
		if err := testee(context.Background(), commandline.MockCommandline[struct{}]{}, []any{}); err == nil {
			t.Error("no error")
		}
	})

	t.Run("errors keep their causes", func(t *testing.T) {
		expectedErr := errors.New("fake error")
		testee := common.NewTaskWithCommonFlag(func(
			context.Context, *log.Logger, common.CommonFlags, flarc.Commandline[struct{}], []any,
		) error {
			return errors.Join(flarc.ErrUsage, expectedErr)
		})
		err := testee(
			context.Background(),
			commandline.MockCommandline[struct{}]{},
			[]any{common.CommonFlags{Verbose: true}},
		)
		if !errors.Is(err, expectedErr) || !errors.Is(err, flarc.ErrUsage) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestNewTask(t *testing.T) {
	t.Run("it resolves scope and builds client from profile", func(t *testing.T) {
		store := try.To(testutils.TempProfile(t, "test", &profiles.PlxProfile{
			ApiRoot: "http://plx.invalid",
			Token:   "token",
			Owner:   "default-org",
		})).OrFatal(t)

		envpath := filepath.Join(t.TempDir(), "plxenv")
		if err := os.WriteFile(envpath, []byte("project: mnist\n"), 0600); err != nil {
			t.Fatal(err)
		}

		called := false
		testee := common.NewTask(func(
			ctx context.Context,
			logger *log.Logger,
			plxEnv env.PlxEnv,
			client rest.PlxClient,
			cl flarc.Commandline[struct{}],
			params []any,
		) error {
			called = true
			if plxEnv.Owner != "default-org" || plxEnv.Project != "mnist" {
				t.Errorf("unexpected env: %+v", plxEnv)
			}
			if client == nil {
				t.Error("client is nil")
			}
			return nil
		})

		err := testee(
			context.Background(),
			commandline.MockCommandline[struct{}]{Fullname_: "plx test"},
			[]any{common.CommonFlags{Profile: "test", ProfileStore: store, Env: envpath}},
		)
		if err != nil {
			t.Fatal(err)
		}
		if !called {
			t.Error("task is not called")
		}
	})

	t.Run("it fails when the profile store is missing", func(t *testing.T) {
		testee := common.NewTask(func(
			context.Context, *log.Logger, env.PlxEnv, rest.PlxClient, flarc.Commandline[struct{}], []any,
		) error {
			t.Error("task should not be called")
			return nil
		})

		err := testee(
			context.Background(),
			commandline.MockCommandline[struct{}]{},
			[]any{common.CommonFlags{
				Profile:      "test",
				ProfileStore: filepath.Join(t.TempDir(), "no-such-store"),
			}},
		)
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("unexpected error: %v", err)
		}
		if !strings.Contains(err.Error(), "plx init") {
			t.Errorf("message should suggest plx init: %s", err)
		}
	})

	t.Run("it fails when the profile is not in the store", func(t *testing.T) {
		store := try.To(testutils.TempProfile(t, "test", &profiles.PlxProfile{
			ApiRoot: "http://plx.invalid",
		})).OrFatal(t)
		testee := common.NewTask(func(
			context.Context, *log.Logger, env.PlxEnv, rest.PlxClient, flarc.Commandline[struct{}], []any,
		) error {
			t.Error("task should not be called")
			return nil
		})

		err := testee(
			context.Background(),
			commandline.MockCommandline[struct{}]{},
			[]any{common.CommonFlags{Profile: "other", ProfileStore: store}},
		)
		if err == nil {
			t.Error("no error")
		}
	})
}
