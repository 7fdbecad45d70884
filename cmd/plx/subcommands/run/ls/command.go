package ls

import (
	"context"
	"errors"
	"log"

	"github.com/polyaxon/plx/cmd/plx/env"
	"github.com/polyaxon/plx/cmd/plx/rest"
	"github.com/polyaxon/plx/cmd/plx/subcommands/common"
	"github.com/polyaxon/plx/pkg/api/types/pagination"
	"github.com/polyaxon/plx/pkg/api/types/runs"
	"github.com/polyaxon/plx/pkg/api/types/statuses"
	"github.com/youta-t/flarc"
)

type Flags struct {
	Status string `flag:"status" alias:"s" metavar:"STATUS" help:"list only Runs in the status, like \"running\""`
	Offset string `flag:"offset" metavar:"N" help:"skip first N items"`
	Limit  string `flag:"limit" metavar:"N" help:"list up to N items in a page"`
	Sort   string `flag:"sort" metavar:"[-]FIELD" help:"field to sort with. Prefix '-' for descending order"`
	Query  string `flag:"query" alias:"q" metavar:"FIELD:VALUE,..." help:"search query"`
	All    bool   `flag:"all" alias:"a" help:"walk through all pages"`
}

// list converts flags into ListFlags. --status is added to the query as a condition.
func (f Flags) list() (common.ListFlags, error) {
	lf := common.ListFlags{Offset: f.Offset, Limit: f.Limit, Sort: f.Sort, Query: f.Query, All: f.All}
	if f.Status == "" {
		return lf, nil
	}
	st, err := statuses.Parse(f.Status)
	if err != nil {
		return common.ListFlags{}, errors.Join(flarc.ErrUsage, err)
	}
	cond := "status:" + st.String()
	if lf.Query == "" {
		lf.Query = cond
	} else {
		lf.Query += "," + cond
	}
	return lf, nil
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"List Runs in the Project.",
		Flags{},
		flarc.Args{},
		common.NewTask(Task()),
		flarc.WithDescription(`
List Runs in the Project.

Example
-------

List running Runs, newest first:

	{{ .Command }} --status running --sort -created_at
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
		owner, project, err := common.Project(plxEnv)
		if err != nil {
			return err
		}
		lf, err := cl.Flags().list()
		if err != nil {
			return err
		}
		found, err := common.List(
			ctx, lf,
			func(ctx context.Context, opts pagination.Options) (pagination.List[runs.Run], error) {
				return client.ListRuns(ctx, owner, project, opts)
			},
		)
		if err != nil {
			return err
		}
		return common.WriteJSON(cl.Stdout(), found)
	}
}
