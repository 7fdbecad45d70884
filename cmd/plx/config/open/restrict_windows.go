//go:build windows

package open

import winacl "github.com/hectane/go-acl"

// WINDOWS: permission cannot be applied at creation, so it is applied after.
func restrict(filepath string) error {
	return winacl.Chmod(filepath, 0600)
}
