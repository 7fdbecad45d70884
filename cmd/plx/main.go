package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path"

	subagent "github.com/polyaxon/plx/cmd/plx/subcommands/agent"
	"github.com/polyaxon/plx/cmd/plx/subcommands/common"
	subconn "github.com/polyaxon/plx/cmd/plx/subcommands/connection"
	subhub "github.com/polyaxon/plx/cmd/plx/subcommands/hub"
	subinit "github.com/polyaxon/plx/cmd/plx/subcommands/init"
	"github.com/polyaxon/plx/cmd/plx/subcommands/logger"
	submatrix "github.com/polyaxon/plx/cmd/plx/subcommands/matrix"
	suborg "github.com/polyaxon/plx/cmd/plx/subcommands/org"
	subproject "github.com/polyaxon/plx/cmd/plx/subcommands/project"
	subqueue "github.com/polyaxon/plx/cmd/plx/subcommands/queue"
	subrun "github.com/polyaxon/plx/cmd/plx/subcommands/run"
	subteam "github.com/polyaxon/plx/cmd/plx/subcommands/team"
	subuser "github.com/polyaxon/plx/cmd/plx/subcommands/user"
	subver "github.com/polyaxon/plx/cmd/plx/subcommands/version"
	"github.com/polyaxon/plx/pkg/utils/try"
	"github.com/youta-t/flarc"
)

func main() {
	name := path.Base(os.Args[0])
	logger := logger.Default()
	logger.SetPrefix(fmt.Sprintf("[%s] ", name))

	ctx, cancel := signal.NotifyContext(
		context.Background(), os.Interrupt, os.Kill,
	)
	defer cancel()

	cf := try.To(common.Flags(".")).OrFatal(logger)
	init := try.To(subinit.New()).OrFatal(logger)
	version := try.To(subver.New()).OrFatal(logger)
	user := try.To(subuser.New()).OrFatal(logger)
	org := try.To(suborg.New()).OrFatal(logger)
	team := try.To(subteam.New()).OrFatal(logger)
	project := try.To(subproject.New()).OrFatal(logger)
	connection := try.To(subconn.New()).OrFatal(logger)
	agent := try.To(subagent.New()).OrFatal(logger)
	queue := try.To(subqueue.New()).OrFatal(logger)
	hub := try.To(subhub.New()).OrFatal(logger)
	run := try.To(subrun.New()).OrFatal(logger)
	matrix := try.To(submatrix.New()).OrFatal(logger)

	plx := try.To(
		flarc.NewCommandGroup(
			"Polyaxon Commandline interface",
			cf,
			flarc.WithSubcommand("init", init),
			flarc.WithSubcommand("version", version),
			flarc.WithSubcommand("user", user),
			flarc.WithSubcommand("org", org),
			flarc.WithSubcommand("team", team),
			flarc.WithSubcommand("project", project),
			flarc.WithSubcommand("connection", connection),
			flarc.WithSubcommand("agent", agent),
			flarc.WithSubcommand("queue", queue),
			flarc.WithSubcommand("hub", hub),
			flarc.WithSubcommand("run", run),
			flarc.WithSubcommand("matrix", matrix),
		),
	).OrFatal(logger)

	os.Exit(flarc.Run(ctx, plx, flarc.WithHelp(true)))
}
