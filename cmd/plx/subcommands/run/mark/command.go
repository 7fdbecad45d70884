package mark

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/polyaxon/plx/cmd/plx/env"
	"github.com/polyaxon/plx/cmd/plx/rest"
	"github.com/polyaxon/plx/cmd/plx/subcommands/common"
	"github.com/polyaxon/plx/pkg/api/types/statuses"
	"github.com/youta-t/flarc"
)

const (
	ARG_UUID   = "RUN_UUID"
	ARG_STATUS = "STATUS"
)

type Flags struct {
	Reason  string `flag:"reason" help:"reason of the status change"`
	Message string `flag:"message" alias:"m" help:"message of the status change"`
	Force   bool   `flag:"force" help:"change status even if the transition is not allowed"`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Set status of a Run.",
		Flags{},
		flarc.Args{
			{
				Name: ARG_UUID, Required: true,
				Help: "uuid of the Run",
			},
			{
				Name: ARG_STATUS, Required: true,
				Help: "new status, like \"succeeded\" or \"failed\"",
			},
		},
		common.NewTask(Task()),
		flarc.WithDescription(`
Set status of a Run.

Transitions not allowed (for example, from "succeeded" to "running")
are checked before sending, and rejected unless --force is passed.

Example
-------

	{{ .Command }} --reason ManualCheck --message "verified by hand" RUN_UUID succeeded
`),
	)
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
		uuid := cl.Args()[ARG_UUID][0]
		next, err := statuses.Parse(cl.Args()[ARG_STATUS][0])
		if err != nil {
			return errors.Join(flarc.ErrUsage, err)
		}

		current, err := client.GetRunStatuses(ctx, owner, project, uuid)
		if err != nil {
			return fmt.Errorf("%w: Run: %s", err, uuid)
		}
		cond := statuses.NewCondition(next, flags.Reason, flags.Message)
		if err := current.Apply(cond, flags.Force); err != nil {
			return common.AsUsage(fmt.Errorf("Run %s: %w", uuid, err))
		}

		updated, err := client.CreateRunStatus(ctx, owner, project, uuid, statuses.EntityStatusBodyRequest{
			Owner:     owner,
			Project:   project,
			UUID:      uuid,
			Condition: &cond,
			Force:     flags.Force,
		})
		if err != nil {
			return fmt.Errorf("%w: Run: %s", err, uuid)
		}
		logger.Printf("Run %s is %s.", uuid, updated.Status)
		return common.WriteJSON(cl.Stdout(), updated)
	}
}
