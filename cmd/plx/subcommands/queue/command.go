package queue

import (
	queue_create "github.com/polyaxon/plx/cmd/plx/subcommands/queue/create"
	queue_ls "github.com/polyaxon/plx/cmd/plx/subcommands/queue/ls"
	queue_rm "github.com/polyaxon/plx/cmd/plx/subcommands/queue/rm"
	queue_show "github.com/polyaxon/plx/cmd/plx/subcommands/queue/show"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	ls, err := queue_ls.New()
	if err != nil {
		return nil, err
	}
	show, err := queue_show.New()
	if err != nil {
		return nil, err
	}
	create, err := queue_create.New()
	if err != nil {
		return nil, err
	}
	rm, err := queue_rm.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Manage Queues of Agents.",
		struct{}{},
		flarc.WithSubcommand("ls", ls),
		flarc.WithSubcommand("show", show),
		flarc.WithSubcommand("create", create),
		flarc.WithSubcommand("rm", rm),
	)
}
