// Package names validates entity names (slugs) used in the api paths.
package names

import (
	"strings"

	apierr "github.com/polyaxon/plx/pkg/api/types/errors"
	"k8s.io/apimachinery/pkg/util/validation"
)

// Validate checks name is a slug:
// lowercase alphanumerics, '-' or '_', starting and ending with an alphanumeric,
// at most 63 characters.
func Validate(name string) error {
	if name == "" {
		return apierr.Invalid("name is empty")
	}
	errs := validation.IsDNS1123Label(strings.ReplaceAll(name, "_", "-"))
	if len(errs) != 0 {
		return apierr.Invalid("name %q: %s", name, strings.Join(errs, "; "))
	}
	return nil
}

// reserved are names which collide with resource paths under an organization.
var reserved = map[string]struct{}{
	"agents": {}, "components": {}, "connections": {}, "members": {},
	"models": {}, "projects": {}, "queues": {}, "teams": {},
}

// ValidateUnreserved is Validate which also rejects names reserved for resource paths,
// like "teams" in /orgs/{owner}/teams.
func ValidateUnreserved(name string) error {
	if err := Validate(name); err != nil {
		return err
	}
	if _, ok := reserved[name]; ok {
		return apierr.Invalid("name %q is reserved", name)
	}
	return nil
}

// SplitVersioned splits "name:tag" into name and tag.
func SplitVersioned(s string) (name string, tag string) {
	name, tag, _ = strings.Cut(s, ":")
	return name, tag
}
