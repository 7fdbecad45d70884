package common_test

import (
	"path/filepath"
	"testing"

	common "github.com/polyaxon/plx/cmd/plx/subcommands/common"
	"github.com/polyaxon/plx/pkg/utils/try"
)

func TestDefaultCommonFlags(t *testing.T) {
	t.Run("it returns default value from given directory", func(t *testing.T) {
		cf := try.To(common.Flags(
			"./testdata/current",
			common.WithHome("./testdata/home"),
		)).OrFatal(t)

		if try.To(filepath.Abs(cf.ProfileStore)).OrFatal(t) != try.To(filepath.Abs("./testdata/home/.plx/profile")).OrFatal(t) {
			t.Errorf("wrong profile store: %s", cf.ProfileStore)
		}

		if cf.Profile != "test" {
			t.Errorf("wrong profile: %s", cf.Profile)
		}

		if cf.Env != try.To(filepath.Abs("./testdata/current/plxenv")).OrFatal(t) {
			t.Errorf("wrong env: %s", cf.Env)
		}
	})

	t.Run("it returns default value from ancestors of given directory", func(t *testing.T) {
		cf := try.To(common.Flags(
			"./testdata/current/children/folder",
			common.WithHome("./testdata/home"),
		)).OrFatal(t)

		if try.To(filepath.Abs(cf.ProfileStore)).OrFatal(t) != try.To(filepath.Abs("./testdata/home/.plx/profile")).OrFatal(t) {
			t.Errorf("wrong profile store: %s", cf.ProfileStore)
		}

		if cf.Profile != "test" {
			t.Errorf("wrong profile: %s", cf.Profile)
		}

		if cf.Env != try.To(filepath.Abs("./testdata/current/plxenv")).OrFatal(t) {
			t.Errorf("wrong env: %s", cf.Env)
		}
	})

	t.Run("it uses the directory as profile name when no .plxprofile is found", func(t *testing.T) {
		dir := t.TempDir()
		cf := try.To(common.Flags(dir, common.WithHome("./testdata/home"))).OrFatal(t)

		if cf.Profile != try.To(filepath.Abs(dir)).OrFatal(t) {
			t.Errorf("wrong profile: %s", cf.Profile)
		}
		if cf.Env != filepath.Join(try.To(filepath.Abs(dir)).OrFatal(t), "plxenv") {
			t.Errorf("wrong env: %s", cf.Env)
		}
	})
}
