package ls

import (
	"context"
	"log"

	"github.com/polyaxon/plx/cmd/plx/env"
	"github.com/polyaxon/plx/cmd/plx/rest"
	"github.com/polyaxon/plx/cmd/plx/subcommands/common"
	"github.com/polyaxon/plx/pkg/api/types/hub"
	"github.com/polyaxon/plx/pkg/api/types/pagination"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"List Components in the hub.",
		common.ListFlags{},
		flarc.Args{},
		common.NewTask(Task()),
	)
}

func Task() common.Task[common.ListFlags] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		plxEnv env.PlxEnv,
		client rest.PlxClient,
		cl flarc.Commandline[common.ListFlags],
		params []any,
	) error {
		owner, err := common.Owner(plxEnv)
		if err != nil {
			return err
		}
		found, err := common.List(
			ctx, cl.Flags(),
			func(ctx context.Context, opts pagination.Options) (pagination.List[hub.Component], error) {
				return client.ListComponentHubs(ctx, owner, opts)
			},
		)
		if err != nil {
			return err
		}
		return common.WriteJSON(cl.Stdout(), found)
	}
}
