package state

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
		"Show runs an Agent is handling.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_UUID, Required: true,
				Help: "uuid of the Agent",
			},
		},
		common.NewTask(Task()),
		flarc.WithDescription(`
Show runs an Agent is handling, grouped by phase (queued, schedules, stopping, ...).

When the Agent is full, it is reported to stderr.
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
		owner, err := common.Owner(plxEnv)
		if err != nil {
			return err
		}
		uuid := cl.Args()[ARG_UUID][0]
		state, err := client.GetAgentState(ctx, owner, uuid)
		if err != nil {
			return fmt.Errorf("%w: Agent: %s", err, uuid)
		}
		if s := state.State; s != nil {
			if s.Full {
				logger.Printf("Agent %s is full. %d runs are pending.", uuid, s.Pending())
			}
			for k, v := range state.CompatibleUpdates {
				logger.Printf("update is available: %s -> %s", k, v)
			}
		}
		return common.WriteJSON(cl.Stdout(), state)
	}
}
