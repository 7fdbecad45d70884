//go:build !windows

package open

import "github.com/hectane/go-acl"

func restrict(filepath string) error {
	// on posix, acl.Chmod is os.Chmod.
	return acl.Chmod(filepath, 0600)
}
