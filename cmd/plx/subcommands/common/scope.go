package common

import (
	"errors"
	"fmt"

	"github.com/polyaxon/plx/cmd/plx/config/profiles"
	"github.com/polyaxon/plx/cmd/plx/env"
	"github.com/polyaxon/plx/pkg/api/types/names"
	"github.com/youta-t/flarc"
)

// Scope resolves the owner and the project to work in.
//
// Flags are preferred to plxenv, and plxenv is preferred to the profile.
// prof can be nil.
func Scope(e env.PlxEnv, flags CommonFlags, prof *profiles.PlxProfile) env.PlxEnv {
	if flags.Owner != "" {
		e.Owner = flags.Owner
	}
	if e.Owner == "" && prof != nil {
		e.Owner = prof.Owner
	}
	if flags.Project != "" {
		e.Project = flags.Project
	}
	return e
}

// Owner returns the organization of e.
//
// When it is unknown or malformed, it returns an error wrapping flarc.ErrUsage.
func Owner(e env.PlxEnv) (string, error) {
	if e.Owner == "" {
		return "", errors.Join(
			flarc.ErrUsage,
			errors.New("organization is unknown. Pass --owner, or set owner in plxenv or plxprofile"),
		)
	}
	if err := names.Validate(e.Owner); err != nil {
		return "", errors.Join(flarc.ErrUsage, fmt.Errorf("owner: %w", err))
	}
	return e.Owner, nil
}

// Project returns the organization and the project of e.
//
// When either is unknown or malformed, it returns an error wrapping flarc.ErrUsage.
func Project(e env.PlxEnv) (owner string, project string, err error) {
	owner, err = Owner(e)
	if err != nil {
		return "", "", err
	}
	if e.Project == "" {
		return "", "", errors.Join(
			flarc.ErrUsage,
			errors.New("project is unknown. Pass --project, or set project in plxenv"),
		)
	}
	if err := names.Validate(e.Project); err != nil {
		return "", "", errors.Join(flarc.ErrUsage, fmt.Errorf("project: %w", err))
	}
	return owner, e.Project, nil
}
