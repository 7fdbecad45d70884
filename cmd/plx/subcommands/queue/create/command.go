package create

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/polyaxon/plx/cmd/plx/env"
	"github.com/polyaxon/plx/cmd/plx/rest"
	"github.com/polyaxon/plx/cmd/plx/subcommands/common"
	"github.com/polyaxon/plx/pkg/api/types/queues"
	"github.com/polyaxon/plx/pkg/utils/pointer"
	"github.com/youta-t/flarc"
)

const (
	ARG_AGENT = "AGENT_UUID"
	ARG_NAME  = "QUEUE_NAME"
)

type Flags struct {
	Description string   `flag:"description" alias:"d" help:"description of the Queue"`
	Tag         []string `flag:"tag" alias:"t" help:"tag the Queue. Repeatable."`
	Priority    string   `flag:"priority" metavar:"N" help:"priority of the Queue. Larger is prior."`
	Concurrency string   `flag:"concurrency" metavar:"N" help:"how many runs of the Queue can be running at once"`
	Resource    string   `flag:"resource" metavar:"NAME" help:"resource name quota is counted in, like \"cpu\" or \"nvidia.com/gpu\""`
	Quota       string   `flag:"quota" metavar:"N" help:"amount of the resource the Queue can use. Requires --resource."`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Create a Queue on an Agent.",
		Flags{},
		flarc.Args{
			{
				Name: ARG_AGENT, Required: true,
				Help: "uuid of the Agent which the Queue is created on",
			},
			{
				Name: ARG_NAME, Required: true,
				Help: "name of the new Queue",
			},
		},
		common.NewTask(Task()),
		flarc.WithDescription(`
Create a Queue on an Agent.

Example
-------

	{{ .Command }} --priority 10 --concurrency 4 --resource nvidia.com/gpu --quota 8 AGENT_UUID gpu
`),
	)
}

func int32Flag(name string, value string) (*int32, error) {
	if value == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return nil, errors.Join(flarc.ErrUsage, fmt.Errorf("--%s: %w", name, err))
	}
	return pointer.Ref(int32(n)), nil
}

// Build makes a Queue from flags.
func (f Flags) Build(name string) (queues.Queue, error) {
	q := queues.Queue{
		Name:        name,
		Description: f.Description,
		Tags:        f.Tag,
		Resource:    f.Resource,
	}
	var err error
	if q.Priority, err = int32Flag("priority", f.Priority); err != nil {
		return queues.Queue{}, err
	}
	if q.Concurrency, err = int32Flag("concurrency", f.Concurrency); err != nil {
		return queues.Queue{}, err
	}
	if q.Quota, err = int32Flag("quota", f.Quota); err != nil {
		return queues.Queue{}, err
	}
	if err := q.Validate(); err != nil {
		return queues.Queue{}, common.AsUsage(err)
	}
	return q, nil
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
		agent := cl.Args()[ARG_AGENT][0]
		q, err := cl.Flags().Build(cl.Args()[ARG_NAME][0])
		if err != nil {
			return err
		}

		created, err := client.CreateQueue(ctx, owner, agent, q)
		if err != nil {
			return fmt.Errorf("%w: Agent: %s", err, agent)
		}
		logger.Printf("Queue %s (%s) is created.", created.Name, created.UUID)
		return common.WriteJSON(cl.Stdout(), created)
	}
}
