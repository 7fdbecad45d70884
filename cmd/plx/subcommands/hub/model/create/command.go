package create

import (
	"context"
	"log"

	"github.com/polyaxon/plx/cmd/plx/env"
	"github.com/polyaxon/plx/cmd/plx/rest"
	"github.com/polyaxon/plx/cmd/plx/subcommands/common"
	"github.com/polyaxon/plx/pkg/api/types/hub"
	"github.com/youta-t/flarc"
)

const ARG_NAME = "MODEL_NAME[:VERSION]"

type Flags struct {
	Framework   string   `flag:"framework" help:"framework of the Model, like \"pytorch\""`
	Description string   `flag:"description" alias:"d" help:"description of the Model"`
	Tag         []string `flag:"tag" alias:"t" help:"tag the Model. Repeatable."`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Register a Model in the hub.",
		Flags{},
		flarc.Args{
			{
				Name: ARG_NAME, Required: true,
				Help: "name of the Model. It can have a version after ':'.",
			},
		},
		common.NewTask(Task()),
		flarc.WithDescription(`
Register a Model in the hub.

Example
-------

	{{ .Command }} --framework pytorch --tag vision resnet:v2
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
		m := hub.Model{
			Name:        cl.Args()[ARG_NAME][0],
			Framework:   flags.Framework,
			Description: flags.Description,
			Tags:        flags.Tag,
		}
		if err := m.Validate(); err != nil {
			return common.AsUsage(err)
		}

		created, err := client.CreateHubModel(ctx, owner, m.Normalize())
		if err != nil {
			return err
		}
		logger.Printf("Model %s:%s is registered.", created.Name, created.Tag)
		return common.WriteJSON(cl.Stdout(), created)
	}
}
