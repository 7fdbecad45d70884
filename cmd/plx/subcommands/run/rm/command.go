package rm

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

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Delete Runs.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_UUID, Required: true, Repeatable: true,
				Help: "uuids of Runs",
			},
		},
		common.NewTask(Task()),
	)
}

func Task() common.Task[struct{}] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		plxEnv env.PlxEnv,
		client rest.PlxClient,
		cl flarc.Commandline[struct{}],
		params []any,
	) error {
		owner, project, err := common.Project(plxEnv)
		if err != nil {
			return err
		}
		for _, uuid := range cl.Args()[ARG_UUID] {
			if err := client.DeleteRun(ctx, owner, project, uuid); err != nil {
				return fmt.Errorf("%w: Run: %s", err, uuid)
			}
			logger.Printf("Run %s is deleted.", uuid)
		}
		return nil
	}
}
