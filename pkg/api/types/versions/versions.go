package versions

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Masterminds/semver/v3"
	"github.com/polyaxon/plx/pkg/api/types/internal/utils/cmp"
)

type Installation struct {
	Key     string   `json:"key,omitempty"`
	Version string   `json:"version,omitempty"`
	Dist    string   `json:"dist,omitempty"`
	Host    string   `json:"host,omitempty"`
	Hmac    string   `json:"hmac,omitempty"`
	Auth    []string `json:"auth,omitempty"`
}

func (i Installation) Equal(o Installation) bool {
	return i.Key == o.Key &&
		i.Version == o.Version &&
		i.Dist == o.Dist &&
		i.Host == o.Host &&
		i.Hmac == o.Hmac &&
		slices.Equal(i.Auth, o.Auth)
}

// Version tells the supported range of a component.
type Version struct {
	MinVersion    string `json:"min_version,omitempty"`
	LatestVersion string `json:"latest_version,omitempty"`
}

func (v Version) Equal(o Version) bool {
	return v == o
}

type Compatibility struct {
	CLI      *Version `json:"cli,omitempty"`
	Platform *Version `json:"platform,omitempty"`
	Agent    *Version `json:"agent,omitempty"`
	UI       *Version `json:"ui,omitempty"`
}

func (c Compatibility) Equal(o Compatibility) bool {
	return cmp.PtrEqual(c.CLI, o.CLI) &&
		cmp.PtrEqual(c.Platform, o.Platform) &&
		cmp.PtrEqual(c.Agent, o.Agent) &&
		cmp.PtrEqual(c.UI, o.UI)
}

type LogHandler struct {
	DSN         string `json:"dsn,omitempty"`
	Environment string `json:"environment,omitempty"`
}

func (l LogHandler) Equal(o LogHandler) bool {
	return l == o
}

var ErrIncompatible = errors.New("incompatible version")

// Status is result of version check.
type Status int

const (
	// current is at the latest, or no range is known.
	UpToDate Status = iota
	// current is supported, but not the latest.
	Outdated
	// current is older than the minimum.
	Unsupported
)

func (s Status) String() string {
	switch s {
	case UpToDate:
		return "up-to-date"
	case Outdated:
		return "outdated"
	case Unsupported:
		return "unsupported"
	default:
		return fmt.Sprintf("unknown (%d)", int(s))
	}
}

// Check compares current with the supported range.
//
// # Returns
//
// - Status: UpToDate, Outdated or Unsupported.
//
// - error: wraps ErrIncompatible when Unsupported.
// Parse errors are returned as is.
func (v Version) Check(current string) (Status, error) {
	cur, err := semver.NewVersion(current)
	if err != nil {
		return UpToDate, fmt.Errorf("version %q: %w", current, err)
	}

	if v.MinVersion != "" {
		min, err := semver.NewVersion(v.MinVersion)
		if err != nil {
			return UpToDate, fmt.Errorf("min_version %q: %w", v.MinVersion, err)
		}
		if cur.LessThan(min) {
			return Unsupported, fmt.Errorf(
				"%w: %s is older than the minimum supported version %s",
				ErrIncompatible, cur, min,
			)
		}
	}

	if v.LatestVersion != "" {
		latest, err := semver.NewVersion(v.LatestVersion)
		if err != nil {
			return UpToDate, fmt.Errorf("latest_version %q: %w", v.LatestVersion, err)
		}
		if cur.LessThan(latest) {
			return Outdated, nil
		}
	}

	return UpToDate, nil
}
