package component

import (
	component_ls "github.com/polyaxon/plx/cmd/plx/subcommands/hub/component/ls"
	component_rm "github.com/polyaxon/plx/cmd/plx/subcommands/hub/component/rm"
	component_show "github.com/polyaxon/plx/cmd/plx/subcommands/hub/component/show"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	ls, err := component_ls.New()
	if err != nil {
		return nil, err
	}
	show, err := component_show.New()
	if err != nil {
		return nil, err
	}
	rm, err := component_rm.New()
	if err != nil {
		return nil, err
	}
	return flarc.NewCommandGroup(
		"Manage Components in the hub.",
		struct{}{},
		flarc.WithSubcommand("ls", ls),
		flarc.WithSubcommand("show", show),
		flarc.WithSubcommand("rm", rm),
	)
}
