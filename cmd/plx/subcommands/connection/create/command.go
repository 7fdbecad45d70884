package create

import (
	"context"
	"fmt"
	"log"

	"github.com/polyaxon/plx/cmd/plx/env"
	"github.com/polyaxon/plx/cmd/plx/rest"
	"github.com/polyaxon/plx/cmd/plx/subcommands/common"
	"github.com/polyaxon/plx/pkg/api/types/connections"
	"github.com/youta-t/flarc"
)

const ARG_FILE = "CONNECTION_FILE"

type Flags struct {
	Update string `flag:"update" metavar:"UUID" help:"replace the Connection with this uuid, instead of creating new one"`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Register a Connection from a yaml file.",
		Flags{},
		flarc.Args{
			{
				Name: ARG_FILE, Required: true,
				Help: `path to yaml (or json) file of the Connection. "-" for stdin.`,
			},
		},
		common.NewTask(Task()),
		flarc.WithDescription(`
Register a Connection from a yaml file.

The file is checked before being sent: the connection schema in "schema_"
should have exactly one of bucket_connection, claim_connection,
host_path_connection, host_connection and git_connection,
and it should fit the kind of the Connection.

Example
-------

	name: artifacts
	kind: s3
	description: artifacts store
	tags: [ml]
	schema_:
	  bucket_connection:
	    bucket: s3://artifacts

Then,

	{{ .Command }} ./artifacts.yaml
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

		path := cl.Args()[ARG_FILE][0]
		conn := connections.ConnectionResponse{}
		if err := common.ReadDefinition(cl.Stdin(), path, &conn); err != nil {
			return common.AsUsage(err)
		}
		if err := conn.Validate(); err != nil {
			return common.AsUsage(fmt.Errorf("%s: %w", path, err))
		}

		var registered connections.ConnectionResponse
		if uuid := cl.Flags().Update; uuid != "" {
			registered, err = client.UpdateConnection(ctx, owner, uuid, conn)
		} else {
			registered, err = client.CreateConnection(ctx, owner, conn)
		}
		if err != nil {
			return err
		}
		logger.Printf("Connection %s (%s) is registered.", registered.Name, registered.UUID)
		return common.WriteJSON(cl.Stdout(), registered)
	}
}
