package init

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"github.com/polyaxon/plx/cmd/plx/config/open"
	prof "github.com/polyaxon/plx/cmd/plx/config/profiles"
	plxerr "github.com/polyaxon/plx/cmd/plx/errors"
	"github.com/polyaxon/plx/cmd/plx/subcommands/common"
	"github.com/youta-t/flarc"
)

const ARG_PLX_PROFILE_FILE = "PLX_PROFILE_FILE"

type Option struct {
	// directory to put .plxprofile
	dir string
}

func WithDir(dir string) func(*Option) *Option {
	return func(o *Option) *Option {
		o.dir = dir
		return o
	}
}

func New(options ...func(*Option) *Option) (flarc.Command, error) {
	option := &Option{dir: "."}
	for _, opt := range options {
		option = opt(option)
	}

	return flarc.NewCommand(
		"Initialize this directory as a polyaxon project directory.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_PLX_PROFILE_FILE, Required: true,
				Help: "filepath to plxprofile file, which you received from your admin.",
			},
		},
		common.NewTaskWithCommonFlag(Task(option.dir)),
		flarc.WithDescription(`
Register a new plxprofile into your profile store.

"plxprofile" is a file which tells the api server of polyaxon and your token.
"{{ .Command }}" registers the given plxprofile into your profile store,
and writes the profile name into ".plxprofile" of the current directory.

The name of the profile is given by "--profile" ( default: current filepath ).
`),
	)
}

func Task(dir string) common.PlxTaskWithCommonFlag[struct{}] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		cf common.CommonFlags,
		cl flarc.Commandline[struct{}],
		params []any,
	) error {
		profFile := cl.Args()[ARG_PLX_PROFILE_FILE][0]

		profStore, err := prof.LoadProfileStore(cf.ProfileStore)
		if errors.Is(err, prof.ErrProfileStoreNotFound) {
			// ok.
			profStore = prof.ProfileStore{}
		} else if err != nil {
			return plxerr.Wrap(fmt.Sprintf("failed to load profile store (%s)", cf.ProfileStore), err)
		}

		newProf, err := prof.LoadProfile(profFile)
		if err != nil {
			return plxerr.Wrap(fmt.Sprintf("failed to read plxprofile (%s)", profFile), err)
		}

		profStore[cf.Profile] = newProf
		if err := profStore.Save(cf.ProfileStore); err != nil {
			return plxerr.Wrap(fmt.Sprintf("failed to save profile store (%s)", cf.ProfileStore), err)
		}
		logger.Printf("profile %s is saved to %s", cf.Profile, cf.ProfileStore)

		f, err := open.NewSafeFile(filepath.Join(dir, ".plxprofile"))
		if err != nil {
			return plxerr.Wrap("failed to open .plxprofile", err)
		}
		defer f.Close()
		if _, err := f.WriteString(cf.Profile + "\n"); err != nil {
			return plxerr.Wrap("failed to write .plxprofile", err)
		}
		return nil
	}
}
