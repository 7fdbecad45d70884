package common

import (
	"fmt"
	"io"
	"os"

	"github.com/polyaxon/plx/pkg/utils/yamler"
)

// ReadDefinition reads a yaml (or json) file into v, along with json tags of v.
//
// When path is "-", it reads stdin.
func ReadDefinition(stdin io.Reader, path string, v any) error {
	var content []byte
	var err error
	if path == "-" {
		content, err = io.ReadAll(stdin)
	} else {
		content, err = os.ReadFile(path)
	}
	if err != nil {
		return err
	}
	if err := yamler.Unmarshal(content, v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
