package matrix

import (
	matrix_grid "github.com/polyaxon/plx/cmd/plx/subcommands/matrix/grid"
	matrix_random "github.com/polyaxon/plx/cmd/plx/subcommands/matrix/random"
	matrix_template "github.com/polyaxon/plx/cmd/plx/subcommands/matrix/template"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	grid, err := matrix_grid.New()
	if err != nil {
		return nil, err
	}
	random, err := matrix_random.New()
	if err != nil {
		return nil, err
	}
	template, err := matrix_template.New()
	if err != nil {
		return nil, err
	}
	return flarc.NewCommandGroup(
		"Try hyperparameter search spaces locally.",
		struct{}{},
		flarc.WithSubcommand("grid", grid),
		flarc.WithSubcommand("random", random),
		flarc.WithSubcommand("template", template),
	)
}
