package create

import (
	"context"
	"log"

	"github.com/polyaxon/plx/cmd/plx/env"
	"github.com/polyaxon/plx/cmd/plx/rest"
	"github.com/polyaxon/plx/cmd/plx/subcommands/common"
	"github.com/polyaxon/plx/pkg/api/types/projects"
	"github.com/polyaxon/plx/pkg/utils/pointer"
	"github.com/youta-t/flarc"
)

const ARG_NAME = "PROJECT_NAME"

type Flags struct {
	Description string   `flag:"description" alias:"d" help:"description of the Project"`
	Tag         []string `flag:"tag" alias:"t" help:"tag of the Project. Repeatable."`
	Public      bool     `flag:"public" help:"make the Project public"`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Create a Project.",
		Flags{},
		flarc.Args{
			{
				Name: ARG_NAME, Required: true,
				Help: "name of the new Project",
			},
		},
		common.NewTask(Task()),
		flarc.WithDescription(`
Create a Project in the Organization.

Example
-------

	{{ .Command }} --description "hand written digits" --tag vision mnist
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
		flags := cl.Flags()
		project := projects.Project{
			Name:        cl.Args()[ARG_NAME][0],
			Description: flags.Description,
			Tags:        flags.Tag,
		}
		if flags.Public {
			project.IsPublic = pointer.Ref(true)
		}
		if err := project.Validate(); err != nil {
			return common.AsUsage(err)
		}

		created, err := client.CreateProject(ctx, owner, project)
		if err != nil {
			return err
		}
		logger.Printf("Project %s is created.", created.FullName())
		return common.WriteJSON(cl.Stdout(), created)
	}
}
