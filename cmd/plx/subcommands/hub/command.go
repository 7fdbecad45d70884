package hub

import (
	hub_component "github.com/polyaxon/plx/cmd/plx/subcommands/hub/component"
	hub_model "github.com/polyaxon/plx/cmd/plx/subcommands/hub/model"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	model, err := hub_model.New()
	if err != nil {
		return nil, err
	}
	component, err := hub_component.New()
	if err != nil {
		return nil, err
	}
	return flarc.NewCommandGroup(
		"Manage Models and Components registered in the hub of the Organization.",
		struct{}{},
		flarc.WithSubcommand("model", model),
		flarc.WithSubcommand("component", component),
	)
}
