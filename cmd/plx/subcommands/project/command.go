package project

import (
	project_create "github.com/polyaxon/plx/cmd/plx/subcommands/project/create"
	project_ls "github.com/polyaxon/plx/cmd/plx/subcommands/project/ls"
	project_rm "github.com/polyaxon/plx/cmd/plx/subcommands/project/rm"
	project_show "github.com/polyaxon/plx/cmd/plx/subcommands/project/show"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	ls, err := project_ls.New()
	if err != nil {
		return nil, err
	}
	show, err := project_show.New()
	if err != nil {
		return nil, err
	}
	create, err := project_create.New()
	if err != nil {
		return nil, err
	}
	rm, err := project_rm.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Manipulate Projects in the Organization.",
		struct{}{},
		flarc.WithSubcommand("ls", ls),
		flarc.WithSubcommand("show", show),
		flarc.WithSubcommand("create", create),
		flarc.WithSubcommand("rm", rm),
	)
}
