package user

import (
	user_password "github.com/polyaxon/plx/cmd/plx/subcommands/user/password"
	user_show "github.com/polyaxon/plx/cmd/plx/subcommands/user/show"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	show, err := user_show.New()
	if err != nil {
		return nil, err
	}
	password, err := user_password.New()
	if err != nil {
		return nil, err
	}
	return flarc.NewCommandGroup(
		"Manage the User of the current token.",
		struct{}{},
		flarc.WithSubcommand("show", show),
		flarc.WithSubcommand("password", password),
	)
}
