package agent

import (
	agent_ls "github.com/polyaxon/plx/cmd/plx/subcommands/agent/ls"
	agent_rm "github.com/polyaxon/plx/cmd/plx/subcommands/agent/rm"
	agent_show "github.com/polyaxon/plx/cmd/plx/subcommands/agent/show"
	agent_state "github.com/polyaxon/plx/cmd/plx/subcommands/agent/state"
	agent_statuses "github.com/polyaxon/plx/cmd/plx/subcommands/agent/statuses"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	ls, err := agent_ls.New()
	if err != nil {
		return nil, err
	}
	show, err := agent_show.New()
	if err != nil {
		return nil, err
	}
	state, err := agent_state.New()
	if err != nil {
		return nil, err
	}
	statuses, err := agent_statuses.New()
	if err != nil {
		return nil, err
	}
	rm, err := agent_rm.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Inspect Agents, which run workloads of the Organization on clusters.",
		struct{}{},
		flarc.WithSubcommand("ls", ls),
		flarc.WithSubcommand("show", show),
		flarc.WithSubcommand("state", state),
		flarc.WithSubcommand("statuses", statuses),
		flarc.WithSubcommand("rm", rm),
	)
}
