package grid

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/polyaxon/plx/cmd/plx/subcommands/common"
	"github.com/polyaxon/plx/pkg/api/types/matrix"
	"github.com/youta-t/flarc"
)

const ARG_FILE = "PARAMS_FILE"

type Flags struct {
	Limit string `flag:"limit" metavar:"N" help:"print only first N suggestions"`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Enumerate suggestions of grid search.",
		Flags{},
		flarc.Args{
			{
				Name: ARG_FILE, Required: true,
				Help: `path to yaml (or json) file of hyperparameters. "-" for stdin.`,
			},
		},
		common.NewTaskWithCommonFlag(Task()),
		flarc.WithDescription(`
Enumerate suggestions of grid search, as a JSON list.

All hyperparameters should be discrete: choice, pchoice, range, linspace, logspace or geomspace.
Suggestions are ordered by hyperparameter names, and the last name changes fastest.

Example
-------

	lr:
	  kind: logspace
	  value: {start: -3, stop: -1, num: 3}
	batch:
	  kind: choice
	  value: [32, 64]

Then,

	{{ .Command }} ./params.yaml
`),
	)
}

func Task() common.PlxTaskWithCommonFlag[Flags] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		cf common.CommonFlags,
		cl flarc.Commandline[Flags],
		params []any,
	) error {
		limit := 0
		if l := cl.Flags().Limit; l != "" {
			n, err := strconv.Atoi(l)
			if err != nil || n < 0 {
				return errors.Join(flarc.ErrUsage, fmt.Errorf("--limit should be non-negative integer: %s", l))
			}
			limit = n
		}

		ps := matrix.ParamSet{}
		path := cl.Args()[ARG_FILE][0]
		if err := common.ReadDefinition(cl.Stdin(), path, &ps); err != nil {
			return common.AsUsage(err)
		}
		suggestions, err := matrix.Grid(ps, limit)
		if err != nil {
			return common.AsUsage(fmt.Errorf("%s: %w", path, err))
		}
		logger.Printf("%d suggestions.", len(suggestions))
		return common.WriteJSON(cl.Stdout(), suggestions)
	}
}
