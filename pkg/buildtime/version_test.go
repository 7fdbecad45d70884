package buildtime_test

import (
	"strings"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/polyaxon/plx/pkg/buildtime"
)

func TestVersion(t *testing.T) {
	if _, err := semver.StrictNewVersion(buildtime.Version()); err != nil {
		t.Errorf("version is not a semver: %q: %v", buildtime.Version(), err)
	}
	if !strings.HasPrefix(buildtime.String(), buildtime.Version()+" (commit: ") {
		t.Errorf("unexpected version string: %q", buildtime.String())
	}
	if ua := buildtime.UserAgent(); ua != "plx/"+buildtime.Version() {
		t.Errorf("unexpected user agent: %q", ua)
	}
}
