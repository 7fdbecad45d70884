package logs

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/polyaxon/plx/cmd/plx/env"
	"github.com/polyaxon/plx/cmd/plx/rest"
	"github.com/polyaxon/plx/cmd/plx/subcommands/common"
	"github.com/polyaxon/plx/pkg/api/types/runs"
	"github.com/youta-t/flarc"
)

const ARG_UUID = "RUN_UUID"

const DefaultInterval = 3 * time.Second

type Flags struct {
	Follow   bool   `flag:"follow" alias:"f" help:"keep reading logs until the Run is done"`
	Interval string `flag:"interval" metavar:"DURATION" help:"polling interval while following, like \"3s\""`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Print logs of a Run.",
		Flags{},
		flarc.Args{
			{
				Name: ARG_UUID, Required: true,
				Help: "uuid of the Run",
			},
		},
		common.NewTask(Task()),
		flarc.WithDescription(`
Print logs of a Run, one line per log entry as "TIMESTAMP | POD | MESSAGE".

Without --follow, logs written so far are printed.
With --follow, logs are printed as they are written, until the Run is done.
`),
	)
}

func (f Flags) interval() (time.Duration, error) {
	if f.Interval == "" {
		return DefaultInterval, nil
	}
	d, err := time.ParseDuration(f.Interval)
	if err != nil {
		return 0, errors.Join(flarc.ErrUsage, fmt.Errorf("--interval: %w", err))
	}
	if d <= 0 {
		return 0, errors.Join(flarc.ErrUsage, fmt.Errorf("--interval should be positive: %s", f.Interval))
	}
	return d, nil
}

func Task() common.Task[Flags] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		plxEnv env.PlxEnv,
		client rest.PlxClient,
		cl flarc.Commandline[Flags],
		params []any,
	) error {
		owner, project, err := common.Project(plxEnv)
		if err != nil {
			return err
		}
		flags := cl.Flags()
		interval, err := flags.interval()
		if err != nil {
			return err
		}
		uuid := cl.Args()[ARG_UUID][0]
		stdout := cl.Stdout()
		write := func(l runs.LogLine) error {
			_, err := fmt.Fprintln(stdout, l.String())
			return err
		}

		if flags.Follow {
			if err := rest.FollowRunLogs(ctx, client, owner, project, uuid, interval, write); err != nil {
				return fmt.Errorf("%w: Run: %s", err, uuid)
			}
			return nil
		}

		chunk, err := client.GetRunLogs(ctx, owner, project, uuid, nil, "")
		if err != nil {
			return fmt.Errorf("%w: Run: %s", err, uuid)
		}
		for _, l := range chunk.Logs {
			if err := write(l); err != nil {
				return err
			}
		}
		return nil
	}
}
