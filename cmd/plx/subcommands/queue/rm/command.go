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

const (
	ARG_AGENT = "AGENT_UUID"
	ARG_UUID  = "QUEUE_UUID"
)

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Delete a Queue.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_AGENT, Required: true,
				Help: "uuid of the Agent owning the Queue",
			},
			{
				Name: ARG_UUID, Required: true,
				Help: "uuid of the Queue to be deleted",
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
		owner, err := common.Owner(plxEnv)
		if err != nil {
			return err
		}
		agent := cl.Args()[ARG_AGENT][0]
		uuid := cl.Args()[ARG_UUID][0]
		if err := client.DeleteQueue(ctx, owner, agent, uuid); err != nil {
			return fmt.Errorf("%w: Queue: %s/%s", err, agent, uuid)
		}
		logger.Printf("Queue %s is deleted.", uuid)
		return nil
	}
}
