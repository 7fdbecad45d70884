package rm

import (
	"context"
	"fmt"
	"log"

	"github.com/polyaxon/plx/cmd/plx/env"
	"github.com/polyaxon/plx/cmd/plx/rest"
	"github.com/polyaxon/plx/cmd/plx/subcommands/common"
	"github.com/youta-t/flarc"
)

const ARG_NAME = "PROJECT_NAME"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Delete a Project.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_NAME, Required: true,
				Help: "name of the Project to be deleted",
			},
		},
		common.NewTask(Task()),
		flarc.WithDescription(`
Delete a Project.

Runs in the Project are deleted together.
`),
	)
}

func Task() common.Task[struct{}] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		plxEnv env.PlxEnv,
		client rest.PlxClient,
		cl flarc.Commandline[struct{}],
		params []any,
	) error {
		plxEnv.Project = cl.Args()[ARG_NAME][0]
		owner, name, err := common.Project(plxEnv)
		if err != nil {
			return err
		}
		if err := client.DeleteProject(ctx, owner, name); err != nil {
			return fmt.Errorf("%w: Project: %s/%s", err, owner, name)
		}
		logger.Printf("Project %s/%s is deleted.", owner, name)
		return nil
	}
}
