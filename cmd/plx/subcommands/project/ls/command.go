package ls

import (
	"context"
	"log"

	"github.com/polyaxon/plx/cmd/plx/env"
	"github.com/polyaxon/plx/cmd/plx/rest"
	"github.com/polyaxon/plx/cmd/plx/subcommands/common"
	"github.com/polyaxon/plx/pkg/api/types/pagination"
	"github.com/polyaxon/plx/pkg/api/types/projects"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"List Projects in the Organization.",
		common.ListFlags{},
		flarc.Args{},
		common.NewTask(Task()),
		flarc.WithDescription(`
List Projects in the Organization.

Example
-------

Listing Projects recently created first:

	{{ .Command }} --sort -created_at
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
		found, err := common.List(
			ctx, cl.Flags(),
			func(ctx context.Context, opts pagination.Options) (pagination.List[projects.Project], error) {
				return client.ListProjects(ctx, owner, opts)
			},
		)
		if err != nil {
			return err
		}
		return common.WriteJSON(cl.Stdout(), found)
	}
}
