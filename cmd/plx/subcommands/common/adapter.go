package common

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/polyaxon/plx/cmd/plx/config/profiles"
	"github.com/polyaxon/plx/cmd/plx/env"
	plxerr "github.com/polyaxon/plx/cmd/plx/errors"
	"github.com/polyaxon/plx/cmd/plx/rest"
	"github.com/youta-t/flarc"
)

type PlxTaskWithCommonFlag[T any] func(
	ctx context.Context,
	logger *log.Logger,
	commonFlag CommonFlags,
	cl flarc.Commandline[T],
	params []any,
) error

// described shows its cause in the manner requested by --verbose.
type described struct {
	err     error
	verbose bool
}

func (d described) Error() string {
	return plxerr.Describe(d.err, d.verbose)
}

func (d described) Unwrap() error {
	return d.err
}

func NewTaskWithCommonFlag[T any](task PlxTaskWithCommonFlag[T]) flarc.Task[T] {
	return func(ctx context.Context, cl flarc.Commandline[T], pos []any) error {
		var commonFlag CommonFlags
		found := false
		newpos := make([]any, 0, len(pos))
		for _, p := range pos {
			switch v := p.(type) {
			case CommonFlags:
				found = true
				commonFlag = v
			default:
				newpos = append(newpos, p)
			}
		}
		if !found {
			return errors.New("programming error: common flags not found")
		}

		logger := log.New(cl.Stderr(), "", log.LstdFlags)
		logger.SetPrefix(fmt.Sprintf("[%s] ", cl.Fullname()))

		if err := task(ctx, logger, commonFlag, cl, newpos); err != nil {
			return described{err: err, verbose: commonFlag.Verbose}
		}
		return nil
	}
}

type Task[T any] func(
	ctx context.Context,
	logger *log.Logger,
	plxEnv env.PlxEnv,
	client rest.PlxClient,
	cl flarc.Commandline[T],
	params []any,
) error

// NewTask builds a task which works with the api server of the profile.
//
// The plxEnv passed to task tells the owner and the project to work in.
// See Connect for how they are resolved.
func NewTask[T any](task Task[T]) flarc.Task[T] {

	return NewTaskWithCommonFlag(func(
		ctx context.Context,
		logger *log.Logger,
		commonFlag CommonFlags,
		cl flarc.Commandline[T],
		params []any,
	) error {
		scoped, client, err := Connect(commonFlag)
		if err != nil {
			return err
		}
		return task(ctx, logger, scoped, client, cl, params)
	})
}

// Connect loads the profile, plxenv and the client along with commonFlag.
//
// --owner and --project override plxenv. When the owner is still unknown,
// the owner in the plxprofile is used.
func Connect(commonFlag CommonFlags) (env.PlxEnv, rest.PlxClient, error) {
	store, err := profiles.LoadProfileStore(commonFlag.ProfileStore)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return env.PlxEnv{}, nil, plxerr.Wrap(
				fmt.Sprintf("plxprofile store (%s) is not found", commonFlag.ProfileStore),
				err,
				plxerr.WithDetailText("Please try `plx init` first. Ask your admin to get plxprofile"),
			)
		}
		return env.PlxEnv{}, nil, plxerr.Wrap(
			fmt.Sprintf("failed to load plxprofile store (%s)", commonFlag.ProfileStore), err,
		)
	}
	prof, ok := store[commonFlag.Profile]
	if !ok {
		return env.PlxEnv{}, nil, plxerr.NewCuiError(
			fmt.Sprintf(
				"profile '%s' not found in the profile store (%s)",
				commonFlag.Profile, commonFlag.ProfileStore,
			),
			plxerr.WithDetailText("Please try `plx init` in this directory, or pass --profile"),
		)
	}

	e, err := env.LoadPlxEnv(commonFlag.Env)
	if err != nil {
		return env.PlxEnv{}, nil, plxerr.Wrap("failed to load plxenv", err)
	}

	client, err := rest.NewClient(prof)
	if err != nil {
		return env.PlxEnv{}, nil, plxerr.Wrap(
			"failed to create plx client",
			err,
			plxerr.WithDetailText(fmt.Sprintf(
				"Your plxprofile (%s in %s) can be broken.\n\nRemove it and try `plx init` again. Ask your admin to get plxprofile",
				commonFlag.Profile, commonFlag.ProfileStore,
			)),
		)
	}
	return Scope(*e, commonFlag, prof), client, nil
}
