package random

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/polyaxon/plx/cmd/plx/subcommands/common"
	"github.com/polyaxon/plx/pkg/api/types/matrix"
	"github.com/youta-t/flarc"
)

const ARG_FILE = "PARAMS_FILE"

type Flags struct {
	Runs string `flag:"runs" alias:"n" metavar:"N" help:"number of suggestions (default: 10)"`
	Seed string `flag:"seed" metavar:"SEED" help:"seed of random numbers. If not set, it is made from the current time and logged."`
}

const DefaultRuns = 10

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Draw suggestions of random search.",
		Flags{},
		flarc.Args{
			{
				Name: ARG_FILE, Required: true,
				Help: `path to yaml (or json) file of hyperparameters. "-" for stdin.`,
			},
		},
		common.NewTaskWithCommonFlag(Task(func() uint64 { return uint64(time.Now().UnixNano()) })),
		flarc.WithDescription(`
Draw suggestions of random search, as a JSON list.

Any kind of hyperparameter can be used.
The same seed gives the same suggestions.

Example
-------

	{{ .Command }} --runs 5 --seed 42 ./params.yaml
`),
	)
}

// Task returns a task drawing suggestions. When --seed is not passed, the seed is made by newSeed.
func Task(newSeed func() uint64) common.PlxTaskWithCommonFlag[Flags] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		cf common.CommonFlags,
		cl flarc.Commandline[Flags],
		params []any,
	) error {
		flags := cl.Flags()
		n := DefaultRuns
		if flags.Runs != "" {
			v, err := strconv.Atoi(flags.Runs)
			if err != nil || v < 1 {
				return errors.Join(flarc.ErrUsage, fmt.Errorf("--runs should be positive integer: %s", flags.Runs))
			}
			n = v
		}

		var seed uint64
		if flags.Seed != "" {
			v, err := strconv.ParseUint(flags.Seed, 10, 64)
			if err != nil {
				return errors.Join(flarc.ErrUsage, fmt.Errorf("--seed: %w", err))
			}
			seed = v
		} else {
			seed = newSeed()
			logger.Printf("seed: %d", seed)
		}

		ps := matrix.ParamSet{}
		path := cl.Args()[ARG_FILE][0]
		if err := common.ReadDefinition(cl.Stdin(), path, &ps); err != nil {
			return common.AsUsage(err)
		}
		suggestions, err := matrix.Random(ps, n, rand.New(rand.NewPCG(seed, seed)))
		if err != nil {
			return common.AsUsage(fmt.Errorf("%s: %w", path, err))
		}
		return common.WriteJSON(cl.Stdout(), suggestions)
	}
}
