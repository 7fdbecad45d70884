package statuses

import (
	"context"
	"fmt"
	"log"

	"github.com/polyaxon/plx/cmd/plx/env"
	"github.com/polyaxon/plx/cmd/plx/rest"
	"github.com/polyaxon/plx/cmd/plx/subcommands/common"
	"github.com/youta-t/flarc"
)

const ARG_UUID = "AGENT_UUID"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Show the status history of an Agent.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_UUID, Required: true,
				Help: "uuid of the Agent",
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
		uuid := cl.Args()[ARG_UUID][0]
		st, err := client.GetAgentStatuses(ctx, owner, uuid)
		if err != nil {
			return fmt.Errorf("%w: Agent: %s", err, uuid)
		}
		return common.WriteJSON(cl.Stdout(), st)
	}
}
