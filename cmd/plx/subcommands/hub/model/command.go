package model

import (
	model_create "github.com/polyaxon/plx/cmd/plx/subcommands/hub/model/create"
	model_ls "github.com/polyaxon/plx/cmd/plx/subcommands/hub/model/ls"
	model_rm "github.com/polyaxon/plx/cmd/plx/subcommands/hub/model/rm"
	model_show "github.com/polyaxon/plx/cmd/plx/subcommands/hub/model/show"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	ls, err := model_ls.New()
	if err != nil {
		return nil, err
	}
	show, err := model_show.New()
	if err != nil {
		return nil, err
	}
	create, err := model_create.New()
	if err != nil {
		return nil, err
	}
	rm, err := model_rm.New()
	if err != nil {
		return nil, err
	}
	return flarc.NewCommandGroup(
		"Manage Models in the hub.",
		struct{}{},
		flarc.WithSubcommand("ls", ls),
		flarc.WithSubcommand("show", show),
		flarc.WithSubcommand("create", create),
		flarc.WithSubcommand("rm", rm),
	)
}
