package create

import (
	"context"
	"log"

	"github.com/polyaxon/plx/cmd/plx/env"
	"github.com/polyaxon/plx/cmd/plx/rest"
	"github.com/polyaxon/plx/cmd/plx/subcommands/common"
	"github.com/polyaxon/plx/pkg/api/types/teams"
	"github.com/youta-t/flarc"
)

const ARG_NAME = "TEAM_NAME"

type Flags struct {
	Assign []string `flag:"assign" metavar:"PROJECT" help:"Project the Team works on. Repeatable."`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Create a Team.",
		Flags{},
		flarc.Args{
			{
				Name: ARG_NAME, Required: true,
				Help: "name of the new Team",
			},
		},
		common.NewTask(Task()),
		flarc.WithDescription(`
Create a Team in the Organization.

Example
-------

	{{ .Command }} --assign mnist --assign cifar vision
`),
	)
}

func Task() common.Task[Flags] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		plxEnv env.PlxEnv,
		client rest.PlxClient,
		cl flarc.Commandline[Flags],
		params []any,
	) error {
		owner, err := common.Owner(plxEnv)
		if err != nil {
			return err
		}

		team := teams.Team{
			Name:     cl.Args()[ARG_NAME][0],
			Projects: cl.Flags().Assign,
		}
		if err := team.Validate(); err != nil {
			return common.AsUsage(err)
		}

		created, err := client.CreateTeam(ctx, owner, team)
		if err != nil {
			return err
		}
		logger.Printf("Team %s is created.", created.Name)
		return common.WriteJSON(cl.Stdout(), created)
	}
}
