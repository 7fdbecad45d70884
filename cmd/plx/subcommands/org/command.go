package org

import (
	org_members "github.com/polyaxon/plx/cmd/plx/subcommands/org/members"
	org_show "github.com/polyaxon/plx/cmd/plx/subcommands/org/show"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	show, err := org_show.New()
	if err != nil {
		return nil, err
	}
	members, err := org_members.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Show polyaxon Organization.",
		struct{}{},
		flarc.WithSubcommand("show", show),
		flarc.WithSubcommand("members", members),
	)
}
