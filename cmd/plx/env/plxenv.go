// Package env reads plxenv, per-directory defaults of plx commands.
package env

import (
	"errors"
	"fmt"
	"os"

	"github.com/polyaxon/plx/pkg/api/types/names"
	"gopkg.in/yaml.v3"
)

// PlxEnv is a content of plxenv file.
//
//	owner: acme
//	project: mnist
//	tags: [experiment, cnn]
type PlxEnv struct {
	Owner   string   `yaml:"owner,omitempty"`
	Project string   `yaml:"project,omitempty"`
	Tags    []string `yaml:"tags,omitempty"`
}

func New() *PlxEnv {
	return new(PlxEnv)
}

// LoadPlxEnv reads plxenv at filepath.
//
// When the file does not exist, it returns an empty PlxEnv.
func LoadPlxEnv(filepath string) (*PlxEnv, error) {
	env := PlxEnv{}

	content, err := os.ReadFile(filepath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &env, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(content, &env); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath, err)
	}
	if env.Owner != "" {
		if err := names.Validate(env.Owner); err != nil {
			return nil, fmt.Errorf("%s: owner: %w", filepath, err)
		}
	}
	if env.Project != "" {
		if err := names.Validate(env.Project); err != nil {
			return nil, fmt.Errorf("%s: project: %w", filepath, err)
		}
	}
	return &env, nil
}
