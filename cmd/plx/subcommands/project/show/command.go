package show

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
		"Show a Project.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_NAME, Required: false,
				Help: "name of the Project to be shown. Default: --project or the project in plxenv",
			},
		},
		common.NewTask(Task()),
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
		if names := cl.Args()[ARG_NAME]; 0 < len(names) {
			plxEnv.Project = names[0]
		}
		owner, name, err := common.Project(plxEnv)
		if err != nil {
			return err
		}
		project, err := client.GetProject(ctx, owner, name)
		if err != nil {
			return fmt.Errorf("%w: Project: %s/%s", err, owner, name)
		}
		if project.IsArchived() {
			logger.Printf("Project %s/%s is archived.", owner, name)
		}
		return common.WriteJSON(cl.Stdout(), project)
	}
}
