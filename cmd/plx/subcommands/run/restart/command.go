package restart

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
		"Restart a Run as a new Run.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_UUID, Required: true,
				Help: "uuid of the Run to be restarted",
			},
		},
		common.NewTask(Task()),
		flarc.WithDescription(`
Restart a Run as a new Run.

The original Run is kept as is. The new Run is written to stdout.
`),
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
		uuid := cl.Args()[ARG_UUID][0]
		restarted, err := client.RestartRun(ctx, owner, project, uuid)
		if err != nil {
			return fmt.Errorf("%w: Run: %s", err, uuid)
		}
		logger.Printf("Run %s is restarted as %s.", uuid, restarted.UUID)
		return common.WriteJSON(cl.Stdout(), restarted)
	}
}
