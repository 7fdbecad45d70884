package ls

import (
	"context"
	"log"

	"github.com/polyaxon/plx/cmd/plx/env"
	"github.com/polyaxon/plx/cmd/plx/rest"
	"github.com/polyaxon/plx/cmd/plx/subcommands/common"
	"github.com/polyaxon/plx/pkg/api/types/connections"
	"github.com/polyaxon/plx/pkg/api/types/pagination"
	"github.com/youta-t/flarc"
)

type Flags struct {
	Names  bool   `flag:"names" help:"list only names and uuids"`
	Offset string `flag:"offset" metavar:"N" help:"skip first N items"`
	Limit  string `flag:"limit" metavar:"N" help:"list up to N items in a page"`
	Sort   string `flag:"sort" metavar:"[-]FIELD" help:"field to sort with. Prefix '-' for descending order"`
	Query  string `flag:"query" alias:"q" metavar:"FIELD:VALUE,..." help:"search query"`
	All    bool   `flag:"all" alias:"a" help:"walk through all pages"`
}

func (f Flags) list() common.ListFlags {
	return common.ListFlags{Offset: f.Offset, Limit: f.Limit, Sort: f.Sort, Query: f.Query, All: f.All}
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"List Connections in the Organization.",
		Flags{},
		flarc.Args{},
		common.NewTask(Task()),
		flarc.WithDescription(`
List Connections in the Organization.

Example
-------

Listing s3 connections:

	{{ .Command }} --query kind:s3
`),
	)
}

func Task() common.Task[Flags] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		plxEnv env.PlxEnv,
		client rest.PlxClient,
		cl flarc.Commandline[Flags],
		params []any,
	) error {
		owner, err := common.Owner(plxEnv)
		if err != nil {
			return err
		}
		flags := cl.Flags()
		pager := client.ListConnections
		if flags.Names {
			pager = client.ListConnectionNames
		}

		found, err := common.List(
			ctx, flags.list(),
			func(ctx context.Context, opts pagination.Options) (pagination.List[connections.ConnectionResponse], error) {
				return pager(ctx, owner, opts)
			},
		)
		if err != nil {
			return err
		}
		return common.WriteJSON(cl.Stdout(), found)
	}
}
