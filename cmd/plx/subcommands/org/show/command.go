package show

import (
	"context"
	"log"

	"github.com/polyaxon/plx/cmd/plx/env"
	"github.com/polyaxon/plx/cmd/plx/rest"
	"github.com/polyaxon/plx/cmd/plx/subcommands/common"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Show the Organization.",
		struct{}{},
		flarc.Args{},
		common.NewTask(Task()),
		flarc.WithDescription(`
Show the Organization you are working in, with your role in it.

The Organization is given by --owner, plxenv or plxprofile, in this order.
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
		org, err := client.GetOrganization(ctx, owner)
		if err != nil {
			return err
		}
		return common.WriteJSON(cl.Stdout(), org)
	}
}
