package run

import (
	run_approve "github.com/polyaxon/plx/cmd/plx/subcommands/run/approve"
	run_logs "github.com/polyaxon/plx/cmd/plx/subcommands/run/logs"
	run_ls "github.com/polyaxon/plx/cmd/plx/subcommands/run/ls"
	run_mark "github.com/polyaxon/plx/cmd/plx/subcommands/run/mark"
	run_restart "github.com/polyaxon/plx/cmd/plx/subcommands/run/restart"
	run_rm "github.com/polyaxon/plx/cmd/plx/subcommands/run/rm"
	run_show "github.com/polyaxon/plx/cmd/plx/subcommands/run/show"
	run_statuses "github.com/polyaxon/plx/cmd/plx/subcommands/run/statuses"
	run_stop "github.com/polyaxon/plx/cmd/plx/subcommands/run/stop"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	ls, err := run_ls.New()
	if err != nil {
		return nil, err
	}
	show, err := run_show.New()
	if err != nil {
		return nil, err
	}
	logs, err := run_logs.New()
	if err != nil {
		return nil, err
	}
	statuses, err := run_statuses.New()
	if err != nil {
		return nil, err
	}
	mark, err := run_mark.New()
	if err != nil {
		return nil, err
	}
	stop, err := run_stop.New()
	if err != nil {
		return nil, err
	}
	approve, err := run_approve.New()
	if err != nil {
		return nil, err
	}
	restart, err := run_restart.New()
	if err != nil {
		return nil, err
	}
	rm, err := run_rm.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Inspect and control Runs in a Project.",
		struct{}{},
		flarc.WithSubcommand("ls", ls),
		flarc.WithSubcommand("show", show),
		flarc.WithSubcommand("logs", logs),
		flarc.WithSubcommand("statuses", statuses),
		flarc.WithSubcommand("mark", mark),
		flarc.WithSubcommand("stop", stop),
		flarc.WithSubcommand("approve", approve),
		flarc.WithSubcommand("restart", restart),
		flarc.WithSubcommand("rm", rm),
	)
}
