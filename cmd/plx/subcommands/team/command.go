package team

import (
	team_create "github.com/polyaxon/plx/cmd/plx/subcommands/team/create"
	team_ls "github.com/polyaxon/plx/cmd/plx/subcommands/team/ls"
	team_rm "github.com/polyaxon/plx/cmd/plx/subcommands/team/rm"
	team_show "github.com/polyaxon/plx/cmd/plx/subcommands/team/show"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	ls, err := team_ls.New()
	if err != nil {
		return nil, err
	}
	show, err := team_show.New()
	if err != nil {
		return nil, err
	}
	create, err := team_create.New()
	if err != nil {
		return nil, err
	}
	rm, err := team_rm.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Manipulate Teams in the Organization.",
		struct{}{},
		flarc.WithSubcommand("ls", ls),
		flarc.WithSubcommand("show", show),
		flarc.WithSubcommand("create", create),
		flarc.WithSubcommand("rm", rm),
	)
}
