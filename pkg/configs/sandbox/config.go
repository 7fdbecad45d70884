// Package sandbox is configuration of the plx sandbox server.
//
// Read it with LoadSandboxConfig. Values are sealed (immutable) after loading.
package sandbox

import (
	"slices"
	"time"

	"github.com/polyaxon/plx/pkg/api/types/orgs"
	"github.com/polyaxon/plx/pkg/api/types/users"
	"github.com/polyaxon/plx/pkg/api/types/versions"
)

type StoreKind string

const (
	MemoryStore   StoreKind = "memory"
	PostgresStore StoreKind = "postgres"
)

type SandboxConfig struct {
	port          int32
	loglevel      string
	store         StoreKind
	dbURI         string
	jwtSecret     string
	tokenTTL      time.Duration
	installation  versions.Installation
	compatibility versions.Compatibility
	logHandler    versions.LogHandler
	users         []*UserConfig
	orgs          []*OrgConfig
}

func (c *SandboxConfig) Port() int32 {
	return c.port
}

// debug, info, warn, error or off.
func (c *SandboxConfig) LogLevel() string {
	return c.loglevel
}

func (c *SandboxConfig) Store() StoreKind {
	return c.store
}

// Connection string for database. Empty unless Store is postgres.
func (c *SandboxConfig) DBURI() string {
	return c.dbURI
}

// secret to sign api tokens. Empty means the server does not require tokens.
func (c *SandboxConfig) JWTSecret() []byte {
	return []byte(c.jwtSecret)
}

// lifetime of tokens issued. 0 means tokens never expire.
func (c *SandboxConfig) TokenTTL() time.Duration {
	return c.tokenTTL
}

func (c *SandboxConfig) Installation() versions.Installation {
	ret := c.installation
	ret.Auth = slices.Clone(ret.Auth)
	return ret
}

func (c *SandboxConfig) Compatibility() versions.Compatibility {
	return c.compatibility
}

func (c *SandboxConfig) LogHandler() versions.LogHandler {
	return c.logHandler
}

func (c *SandboxConfig) Users() []*UserConfig {
	return slices.Clone(c.users)
}

// User finds a user by name.
func (c *SandboxConfig) User(name string) (*UserConfig, bool) {
	for _, u := range c.users {
		if u.user.Username == name {
			return u, true
		}
	}
	return nil, false
}

func (c *SandboxConfig) Orgs() []*OrgConfig {
	return slices.Clone(c.orgs)
}

// Org finds an organization by name.
func (c *SandboxConfig) Org(name string) (*OrgConfig, bool) {
	for _, o := range c.orgs {
		if o.org.Name == name {
			return o, true
		}
	}
	return nil, false
}

type UserConfig struct {
	user     users.User
	password string
}

func (u *UserConfig) User() users.User {
	return u.user
}

// initial password of the user.
func (u *UserConfig) Password() string {
	return u.password
}

type OrgConfig struct {
	org     orgs.Organization
	members []orgs.Member
}

func (o *OrgConfig) Organization() orgs.Organization {
	return o.org
}

func (o *OrgConfig) Members() []orgs.Member {
	return slices.Clone(o.members)
}

// Member finds a member by user name.
func (o *OrgConfig) Member(user string) (orgs.Member, bool) {
	for _, m := range o.members {
		if m.User == user {
			return m, true
		}
	}
	return orgs.Member{}, false
}
