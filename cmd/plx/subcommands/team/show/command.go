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

const ARG_NAME = "TEAM_NAME"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Show a Team.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_NAME, Required: true,
				Help: "name of the Team to be shown",
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
		name := cl.Args()[ARG_NAME][0]
		team, err := client.GetTeam(ctx, owner, name)
		if err != nil {
			return fmt.Errorf("%w: Team: %s", err, name)
		}
		return common.WriteJSON(cl.Stdout(), team)
	}
}
