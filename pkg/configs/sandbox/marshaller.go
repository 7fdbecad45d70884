package sandbox

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/polyaxon/plx/pkg/api/types/names"
	"github.com/polyaxon/plx/pkg/api/types/orgs"
	"github.com/polyaxon/plx/pkg/api/types/users"
	"github.com/polyaxon/plx/pkg/api/types/versions"
	"gopkg.in/yaml.v3"
)

var ErrMisconfigured = errors.New("misconfigured")

// EnvConfig names an environment variable holding the path to the config file.
const EnvConfig = "PLX_SANDBOX_CONFIG"

const DefaultPort = 8000

// load sandbox config from a file.
//
// args:
//   - filepath: filepath refers a config file.
//
// returns *SandboxConfig, error:
//
//	When loading success, returns `(*SandboxConfig, nil)`.
//	Otherwise, returns `(nil, error)`. Misconfiguration is reported as ErrMisconfigured.
func LoadSandboxConfig(filepath string) (*SandboxConfig, error) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	return Unmarshal(content)
}

func Unmarshal(conf []byte) (*SandboxConfig, error) {
	var m *SandboxConfigMarshall
	if err := yaml.Unmarshal(conf, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = &SandboxConfigMarshall{}
	}
	return m.trySeal("(root)")
}

func misconfigured(path string, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrMisconfigured, path, fmt.Sprintf(format, args...))
}

type SandboxConfigMarshall struct {
	Port          int32                       `yaml:"port,omitempty"`
	LogLevel      string                      `yaml:"loglevel,omitempty"`
	Store         StoreKind                   `yaml:"store,omitempty"`
	DBURI         string                      `yaml:"dbUri,omitempty"`
	JWTSecret     string                      `yaml:"jwtSecret,omitempty"`
	TokenTTL      string                      `yaml:"tokenTTL,omitempty"`
	Installation  *InstallationMarshall       `yaml:"installation,omitempty"`
	Compatibility map[string]*VersionMarshall `yaml:"compatibility,omitempty"`
	LogHandler    *LogHandlerMarshall         `yaml:"logHandler,omitempty"`
	Users         []*UserConfigMarshall       `yaml:"users,omitempty"`
	Orgs          []*OrgConfigMarshall        `yaml:"orgs,omitempty"`
}

func (m *SandboxConfigMarshall) trySeal(path string) (*SandboxConfig, error) {
	c := &SandboxConfig{
		port:      m.Port,
		loglevel:  m.LogLevel,
		store:     m.Store,
		dbURI:     m.DBURI,
		jwtSecret: m.JWTSecret,
	}
	if c.port == 0 {
		c.port = DefaultPort
	}
	if c.port < 0 || 65535 < c.port {
		return nil, misconfigured(path+".port", "out of range: %d", c.port)
	}

	switch c.store {
	case "":
		c.store = MemoryStore
	case MemoryStore:
	case PostgresStore:
		if c.dbURI == "" {
			return nil, misconfigured(path+".dbUri", "required for postgres store")
		}
	default:
		return nil, misconfigured(path+".store", "unknown store: %s", c.store)
	}

	if m.TokenTTL != "" {
		ttl, err := time.ParseDuration(m.TokenTTL)
		if err != nil || ttl < 0 {
			return nil, misconfigured(path+".tokenTTL", "not a duration: %s", m.TokenTTL)
		}
		c.tokenTTL = ttl
	}

	if m.Installation != nil {
		c.installation = m.Installation.seal()
	}
	if c.installation.Version == "" {
		c.installation.Version = "sandbox"
	}
	if c.installation.Dist == "" {
		c.installation.Dist = "sandbox"
	}

	for service, v := range m.Compatibility {
		sealed, err := v.trySeal(path + ".compatibility." + service)
		if err != nil {
			return nil, err
		}
		switch service {
		case "cli":
			c.compatibility.CLI = &sealed
		case "platform":
			c.compatibility.Platform = &sealed
		case "agent":
			c.compatibility.Agent = &sealed
		case "ui":
			c.compatibility.UI = &sealed
		default:
			return nil, misconfigured(path+".compatibility", "unknown service: %s", service)
		}
	}

	if m.LogHandler != nil {
		c.logHandler = versions.LogHandler{DSN: m.LogHandler.DSN, Environment: m.LogHandler.Environment}
	}

	for i, u := range m.Users {
		uc, err := u.trySeal(fmt.Sprintf("%s.users[%d]", path, i))
		if err != nil {
			return nil, err
		}
		if _, ok := c.User(uc.user.Username); ok {
			return nil, misconfigured(fmt.Sprintf("%s.users[%d]", path, i), "duplicated: %s", uc.user.Username)
		}
		c.users = append(c.users, uc)
	}

	for i, o := range m.Orgs {
		p := fmt.Sprintf("%s.orgs[%d]", path, i)
		oc, err := o.trySeal(p, c)
		if err != nil {
			return nil, err
		}
		if _, ok := c.Org(oc.org.Name); ok {
			return nil, misconfigured(p, "duplicated: %s", oc.org.Name)
		}
		c.orgs = append(c.orgs, oc)
	}

	return c, nil
}

type InstallationMarshall struct {
	Key     string   `yaml:"key,omitempty"`
	Version string   `yaml:"version,omitempty"`
	Dist    string   `yaml:"dist,omitempty"`
	Host    string   `yaml:"host,omitempty"`
	Auth    []string `yaml:"auth,omitempty"`
}

func (m *InstallationMarshall) seal() versions.Installation {
	return versions.Installation{
		Key:     m.Key,
		Version: m.Version,
		Dist:    m.Dist,
		Host:    m.Host,
		Auth:    m.Auth,
	}
}

type VersionMarshall struct {
	MinVersion    string `yaml:"minVersion,omitempty"`
	LatestVersion string `yaml:"latestVersion,omitempty"`
}

func (m *VersionMarshall) trySeal(path string) (versions.Version, error) {
	if m == nil {
		return versions.Version{}, nil
	}
	if m.MinVersion != "" {
		if _, err := semver.NewVersion(m.MinVersion); err != nil {
			return versions.Version{}, misconfigured(path+".minVersion", "not a semver: %s", m.MinVersion)
		}
	}
	if m.LatestVersion != "" {
		if _, err := semver.NewVersion(m.LatestVersion); err != nil {
			return versions.Version{}, misconfigured(path+".latestVersion", "not a semver: %s", m.LatestVersion)
		}
	}
	return versions.Version{MinVersion: m.MinVersion, LatestVersion: m.LatestVersion}, nil
}

type LogHandlerMarshall struct {
	DSN         string `yaml:"dsn,omitempty"`
	Environment string `yaml:"environment,omitempty"`
}

type UserConfigMarshall struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email,omitempty"`
	Name     string `yaml:"name,omitempty"`
	Password string `yaml:"password,omitempty"`

	// default organization of the user.
	Organization string `yaml:"organization,omitempty"`
}

func (m *UserConfigMarshall) trySeal(path string) (*UserConfig, error) {
	if m == nil || m.Username == "" {
		return nil, misconfigured(path+".username", "required")
	}
	return &UserConfig{
		user: users.User{
			Username:     m.Username,
			Email:        m.Email,
			Name:         m.Name,
			Kind:         "user",
			Organization: m.Organization,
		},
		password: m.Password,
	}, nil
}

type OrgConfigMarshall struct {
	Name     string                 `yaml:"name"`
	IsPublic bool                   `yaml:"isPublic,omitempty"`
	Members  []*MemberConfigMarshall `yaml:"members,omitempty"`
}

type MemberConfigMarshall struct {
	User string    `yaml:"user"`
	Role orgs.Role `yaml:"role,omitempty"`
}

var roles = map[orgs.Role]struct{}{
	orgs.Owner: {}, orgs.Admin: {}, orgs.Manager: {},
	orgs.Contributor: {}, orgs.Viewer: {}, orgs.Billing: {},
}

func (m *OrgConfigMarshall) trySeal(path string, root *SandboxConfig) (*OrgConfig, error) {
	if m == nil {
		return nil, misconfigured(path, "empty")
	}
	if err := names.Validate(m.Name); err != nil {
		return nil, misconfigured(path+".name", "%s", err)
	}
	isPublic := m.IsPublic
	oc := &OrgConfig{
		org: orgs.Organization{Name: m.Name, IsPublic: &isPublic},
	}

	for i, mm := range m.Members {
		p := fmt.Sprintf("%s.members[%d]", path, i)
		if mm == nil || mm.User == "" {
			return nil, misconfigured(p+".user", "required")
		}
		u, ok := root.User(mm.User)
		if !ok {
			return nil, misconfigured(p+".user", "unknown user: %s", mm.User)
		}
		role := mm.Role
		if role == "" {
			role = orgs.Viewer
		}
		if _, ok := roles[role]; !ok {
			return nil, misconfigured(p+".role", "unknown role: %s", role)
		}
		if _, dup := oc.Member(mm.User); dup {
			return nil, misconfigured(p+".user", "duplicated: %s", mm.User)
		}
		oc.members = append(oc.members, orgs.Member{
			User:      mm.User,
			UserEmail: u.user.Email,
			Role:      role,
			Kind:      "user",
		})
	}

	if owner, ok := oc.firstOwner(); ok {
		oc.org.User = owner.User
		oc.org.UserEmail = owner.UserEmail
	}
	return oc, nil
}

func (o *OrgConfig) firstOwner() (orgs.Member, bool) {
	for _, m := range o.members {
		if m.Role == orgs.Owner {
			return m, true
		}
	}
	return orgs.Member{}, false
}
