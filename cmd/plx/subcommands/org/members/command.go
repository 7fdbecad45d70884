package members

import (
	"context"
	"log"

	"github.com/polyaxon/plx/cmd/plx/env"
	"github.com/polyaxon/plx/cmd/plx/rest"
	"github.com/polyaxon/plx/cmd/plx/subcommands/common"
	"github.com/polyaxon/plx/pkg/api/types/orgs"
	"github.com/polyaxon/plx/pkg/api/types/pagination"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"List members of the Organization.",
		common.ListFlags{},
		flarc.Args{},
		common.NewTask(Task()),
		flarc.WithDescription(`
List members of the Organization with their roles.

Use --all to walk through all pages.

Example
-------

Listing first 20 members:

	{{ .Command }} --limit 20

Listing all admins:

	{{ .Command }} --all --query role:admin
`),
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
		members, err := common.List(
			ctx, cl.Flags(),
			func(ctx context.Context, opts pagination.Options) (pagination.List[orgs.Member], error) {
				return client.ListOrganizationMembers(ctx, owner, opts)
			},
		)
		if err != nil {
			return err
		}
		return common.WriteJSON(cl.Stdout(), members)
	}
}
