package show

import (
	"context"
	"fmt"
	"log"

	"github.com/polyaxon/plx/cmd/plx/env"
	"github.com/polyaxon/plx/cmd/plx/rest"
	"github.com/polyaxon/plx/cmd/plx/subcommands/common"
	"github.com/youta-t/flarc"
)

const ARG_UUID = "RUN_UUID"

type Flags struct {
	Runtime bool `flag:"runtime" help:"show only runtime section of the compiled Run"`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Show a Run.",
		Flags{},
		flarc.Args{
			{
				Name: ARG_UUID, Required: true,
				Help: "uuid of the Run to be shown",
			},
		},
		common.NewTask(Task()),
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
		uuid := cl.Args()[ARG_UUID][0]
		r, err := client.GetRun(ctx, owner, project, uuid)
		if err != nil {
			return fmt.Errorf("%w: Run: %s", err, uuid)
		}
		if !cl.Flags().Runtime {
			return common.WriteJSON(cl.Stdout(), r)
		}
		rt, err := r.RunSpec()
		if err != nil {
			return err
		}
		return common.WriteJSON(cl.Stdout(), rt)
	}
}
