// Package profiles reads and writes plx profiles.
//
// A profile store is a YAML file (~/.plx/profile by default) mapping profile names to PlxProfile.
package profiles

import (
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/polyaxon/plx/cmd/plx/config/open"
	yaml "gopkg.in/yaml.v3"
)

var ErrProfileStoreNotFound = errors.New("profile store is not found")
var ErrCannotCreateConfig = errors.New("cannot create profile store")
var ErrCannotUpdateConfig = errors.New("cannot update profile store")
var ErrProfileInvalid = errors.New("plx profile is invalid")

const DefaultMaxRetry = 3

// ProfileStore is a map from profile name to PlxProfile.
type ProfileStore map[string]*PlxProfile

type PlxCert struct {
	// base64 encoded CA certificate
	CA string `yaml:"ca,omitempty"`
}

// PlxProfile is a profile to connect a polyaxon api server.
type PlxProfile struct {
	// root url of the api server, without "/api/v1".
	ApiRoot string `yaml:"apiRoot"`

	// api token. Sent as "Authorization: token <Token>".
	Token string `yaml:"token,omitempty"`

	Cert PlxCert `yaml:"cert,omitempty"`

	// default owner (organization) of entities.
	Owner string `yaml:"owner,omitempty"`

	// client side rate limit. 0 means unlimited.
	QPS   float32 `yaml:"qps,omitempty"`
	Burst int     `yaml:"burst,omitempty"`

	// how many times GET requests are retried. nil means DefaultMaxRetry.
	MaxRetry *int `yaml:"maxRetry,omitempty"`
}

// Retries returns MaxRetry, or DefaultMaxRetry when it is not set.
func (p *PlxProfile) Retries() int {
	if p.MaxRetry == nil {
		return DefaultMaxRetry
	}
	return *p.MaxRetry
}

func verifyUrl(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.IsAbs() && (u.Scheme == "http" || u.Scheme == "https")
}

func verifyPEM(b64cert string) bool {
	bin, err := base64.StdEncoding.DecodeString(b64cert)
	if err != nil {
		return false
	}
	blk, _ := pem.Decode(bin)
	return blk != nil
}

// Verify PlxProfile
//
// # Return
//
// nil if it is valid. Otherwise, ErrProfileInvalid error.
func (p *PlxProfile) Verify() error {
	if !verifyUrl(p.ApiRoot) {
		return fmt.Errorf("%w: apiRoot is not http(s) URL: %s", ErrProfileInvalid, p.ApiRoot)
	}
	if p.Cert.CA != "" && !verifyPEM(p.Cert.CA) {
		return fmt.Errorf("%w: cert.ca is not PEM", ErrProfileInvalid)
	}
	if p.QPS < 0 {
		return fmt.Errorf("%w: qps should not be negative: %v", ErrProfileInvalid, p.QPS)
	}
	if p.QPS > 0 && p.Burst < 1 {
		return fmt.Errorf("%w: burst should be positive when qps is set: %d", ErrProfileInvalid, p.Burst)
	}
	if p.MaxRetry != nil && *p.MaxRetry < 0 {
		return fmt.Errorf("%w: maxRetry should not be negative: %d", ErrProfileInvalid, *p.MaxRetry)
	}
	return nil
}

// LoadProfileStore loads profile store from file.
func LoadProfileStore(filepath string) (ProfileStore, error) {
	buf, err := os.ReadFile(filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w at %s: %w", ErrProfileStoreNotFound, filepath, err)
		}
		return nil, err
	}
	return Unmarshall(buf)
}

// Unmarshall profile store from yaml in byte array.
func Unmarshall(buf []byte) (ProfileStore, error) {
	ret := ProfileStore{}
	if err := yaml.Unmarshal(buf, &ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// LoadProfile reads a single profile from yaml file, like one admins hand out.
func LoadProfile(filepath string) (*PlxProfile, error) {
	buf, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	prof := new(PlxProfile)
	if err := yaml.Unmarshal(buf, prof); err != nil {
		return nil, err
	}
	if err := prof.Verify(); err != nil {
		return nil, err
	}
	return prof, nil
}

// Save profile store to file.
//
// The previous content is kept in "<path>.backup" until writing finishes.
func (ps *ProfileStore) Save(path string) error {
	saving := false

	if err := os.MkdirAll(filepath.Dir(path), os.FileMode(0700)); err != nil {
		return err
	}

	bkpath := path + ".backup"
	bk, err := open.NewSafeFile(bkpath)
	if err != nil {
		return err
	}
	defer func() {
		if !saving {
			os.Remove(bkpath)
		}
	}()
	defer bk.Close()

	f, err := os.OpenFile(path, os.O_RDWR, os.FileMode(0600))
	switch {
	case err == nil:
		// a store with loose permissions is fixed here.
		if err := open.Restrict(path); err != nil {
			f.Close()
			return err
		}
	case os.IsPermission(err):
		return fmt.Errorf("%w, because no permission to write file at %s", ErrCannotUpdateConfig, path)
	case os.IsNotExist(err):
		created, cerr := open.NewSafeFile(path)
		if cerr != nil {
			return fmt.Errorf("%w: cannot create a file at %s", ErrCannotCreateConfig, path)
		}
		f = created
	default:
		return err
	}
	defer f.Close()

	if _, err := io.Copy(bk, f); err != nil {
		return err
	}

	saving = true
	if _, err := f.Seek(0, 0); err != nil {
		return err
	}
	if err := f.Truncate(0); err != nil {
		return err
	}
	buf, err := yaml.Marshal(ps)
	if err != nil {
		return err
	}
	if _, err := f.Write(buf); err != nil {
		return err
	}
	saving = false
	return nil
}
