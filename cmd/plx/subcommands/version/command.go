package version

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/polyaxon/plx/cmd/plx/rest"
	"github.com/polyaxon/plx/cmd/plx/subcommands/common"
	"github.com/polyaxon/plx/pkg/api/types/versions"
	"github.com/polyaxon/plx/pkg/buildtime"
	"github.com/youta-t/flarc"
)

type Flags struct {
	Server bool `flag:"server" help:"also ask the api server its version, and check compatibility"`
}

// Connector makes a client for --server.
type Connector func(common.CommonFlags) (rest.PlxClient, error)

func connect(cf common.CommonFlags) (rest.PlxClient, error) {
	_, client, err := common.Connect(cf)
	return client, err
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Show version of this command.",
		Flags{},
		flarc.Args{},
		common.NewTaskWithCommonFlag(Task(buildtime.Version(), buildtime.String(), connect)),
		flarc.WithDescription(`
Show version of this command.

With --server, it also shows the version of the api server,
and whether this command is supported by the server.
`),
	)
}

type Report struct {
	Client        string `json:"client"`
	Server        string `json:"server,omitempty"`
	Compatibility string `json:"compatibility,omitempty"`
	MinVersion    string `json:"min_version,omitempty"`
	LatestVersion string `json:"latest_version,omitempty"`
}

// Task shows version.
//
// current is a semver of this command, and description is its human readable form.
func Task(current string, description string, connector Connector) common.PlxTaskWithCommonFlag[Flags] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		cf common.CommonFlags,
		cl flarc.Commandline[Flags],
		params []any,
	) error {
		if !cl.Flags().Server {
			_, err := fmt.Fprintln(cl.Stdout(), description)
			return err
		}

		client, err := connector(cf)
		if err != nil {
			return err
		}

		report := Report{Client: description}
		inst, err := client.GetInstallation(ctx)
		if err != nil {
			return err
		}
		report.Server = inst.Version

		compat, err := client.GetCompatibility(ctx, inst.Key, current, "cli")
		if err != nil {
			return err
		}

		var checkErr error
		if compat.CLI != nil {
			report.MinVersion = compat.CLI.MinVersion
			report.LatestVersion = compat.CLI.LatestVersion
			status, err := compat.CLI.Check(current)
			report.Compatibility = status.String()
			switch {
			case errors.Is(err, versions.ErrIncompatible):
				checkErr = err
			case err != nil:
				logger.Printf("cannot check compatibility: %s", err)
				report.Compatibility = ""
			case status == versions.Outdated:
				logger.Printf("newer version %s is available", compat.CLI.LatestVersion)
			}
		}

		if err := common.WriteJSON(cl.Stdout(), report); err != nil {
			return err
		}
		return checkErr
	}
}
