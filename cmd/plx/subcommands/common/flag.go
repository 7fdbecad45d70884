package common

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

type CommonFlags struct {
	Profile      string `flag:"profile" help:"plxprofile name to use"`
	ProfileStore string `flag:"profile-store" help:"path to plxprofile store file"`
	Env          string `flag:"env" help:"path to plxenv file"`
	Owner        string `flag:"owner" metavar:"ORGANIZATION" help:"organization to work in. It overrides plxenv and plxprofile"`
	Project      string `flag:"project" metavar:"PROJECT" help:"project to work in. It overrides plxenv"`
	Verbose      bool   `flag:"verbose" help:"show causes of errors"`
}

type commonFlagDetection struct {
	home string
}

type CommonFlagDetectionOption func(*commonFlagDetection) *commonFlagDetection

func WithHome(home string) CommonFlagDetectionOption {
	return func(opt *commonFlagDetection) *commonFlagDetection {
		opt.home = home
		return opt
	}
}

// Flags detects default values of CommonFlags.
//
// ".plxprofile" (holding a profile name) and "plxenv" are searched from the
// directory from and its ancestors. The nearest one wins.
//
// When no .plxprofile is found, the profile name is the absolute path of from.
func Flags(from string, opt ...CommonFlagDetectionOption) (CommonFlags, error) {
	detparam := commonFlagDetection{
		home: "",
	}
	for _, o := range opt {
		detparam = *o(&detparam)
	}

	home := detparam.home
	if home == "" {
		_home, err := os.UserHomeDir()
		if err != nil {
			_home = ""
		}
		home = _home
	}

	if _from, err := filepath.Abs(from); err == nil {
		from = _from
	}

	profile := from

	profileFound := false
	envFound := false
	env := path.Join(from, "plxenv")
	for searchpath := from; ; {
		if !profileFound {
			candidate := path.Join(searchpath, ".plxprofile")
			if s, err := os.Stat(candidate); err == nil && s.Mode().IsRegular() {
				_profile, err := os.ReadFile(candidate)
				if err != nil {
					return CommonFlags{}, err
				}
				profileFound = true
				if p := strings.Split(string(_profile), "\n"); 0 < len(p) {
					profile = strings.TrimSpace(p[0])
				}
			}
		}
		if !envFound {
			candidate := path.Join(searchpath, "plxenv")
			if s, err := os.Stat(candidate); err == nil && s.Mode().IsRegular() {
				envFound = true
				env = candidate
			}
		}

		if profileFound && envFound {
			break
		}

		next := path.Dir(searchpath)
		if next == searchpath {
			break
		}
		searchpath = next
	}

	return CommonFlags{
		Profile:      profile,
		ProfileStore: path.Join(home, ".plx", "profile"),
		Env:          env,
	}, nil
}
