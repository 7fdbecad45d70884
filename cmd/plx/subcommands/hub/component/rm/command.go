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

const ARG_NAME = "COMPONENT_NAME"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Delete Components from the hub.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_NAME, Required: true, Repeatable: true,
				Help: "names of Components to be deleted",
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
			if err := client.DeleteComponentHub(ctx, owner, name); err != nil {
				return fmt.Errorf("%w: Component: %s", err, name)
			}
			logger.Printf("Component %s is deleted.", name)
		}
		return nil
	}
}
