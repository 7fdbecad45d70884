package connection

import (
	connection_create "github.com/polyaxon/plx/cmd/plx/subcommands/connection/create"
	connection_ls "github.com/polyaxon/plx/cmd/plx/subcommands/connection/ls"
	connection_rm "github.com/polyaxon/plx/cmd/plx/subcommands/connection/rm"
	connection_show "github.com/polyaxon/plx/cmd/plx/subcommands/connection/show"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	ls, err := connection_ls.New()
	if err != nil {
		return nil, err
	}
	show, err := connection_show.New()
	if err != nil {
		return nil, err
	}
	create, err := connection_create.New()
	if err != nil {
		return nil, err
	}
	rm, err := connection_rm.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Manipulate Connections, which tell where artifacts, volumes, registries and repositories are.",
		struct{}{},
		flarc.WithSubcommand("ls", ls),
		flarc.WithSubcommand("show", show),
		flarc.WithSubcommand("create", create),
		flarc.WithSubcommand("rm", rm),
	)
}
