// Package open creates files only the current user can access.
package open

import "os"

// NewSafeFile creates a new empty file with mode 0600.
//
// If the file already exists, it is truncated.
func NewSafeFile(filepath string) (*os.File, error) {
	f, err := os.OpenFile(filepath, os.O_TRUNC|os.O_CREATE|os.O_RDWR, os.FileMode(0600))
	if err != nil {
		return nil, err
	}
	if err := restrict(filepath); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.Truncate(0); err != nil {
		f.Close()
		return nil, err
	}
	if _, err := f.Seek(0, 0); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// Restrict enforces mode 0600 to an existing file.
func Restrict(filepath string) error {
	return restrict(filepath)
}
