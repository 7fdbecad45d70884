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

const ARG_NAME = "MODEL_NAME"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Delete Models from the hub.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_NAME, Required: true, Repeatable: true,
				Help: "names of Models to be deleted",
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
		for _, name := range cl.Args()[ARG_NAME] {
			if err := client.DeleteHubModel(ctx, owner, name); err != nil {
				return fmt.Errorf("%w: Model: %s", err, name)
			}
			logger.Printf("Model %s is deleted.", name)
		}
		return nil
	}
}
