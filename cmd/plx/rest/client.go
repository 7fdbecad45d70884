package rest

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	prof "github.com/polyaxon/plx/cmd/plx/config/profiles"
	"github.com/polyaxon/plx/pkg/api/types/agents"
	"github.com/polyaxon/plx/pkg/api/types/connections"
	"github.com/polyaxon/plx/pkg/api/types/hub"
	"github.com/polyaxon/plx/pkg/api/types/misc/rfctime"
	"github.com/polyaxon/plx/pkg/api/types/orgs"
	"github.com/polyaxon/plx/pkg/api/types/pagination"
	"github.com/polyaxon/plx/pkg/api/types/projects"
	"github.com/polyaxon/plx/pkg/api/types/queues"
	"github.com/polyaxon/plx/pkg/api/types/runs"
	"github.com/polyaxon/plx/pkg/api/types/statuses"
	"github.com/polyaxon/plx/pkg/api/types/teams"
	"github.com/polyaxon/plx/pkg/api/types/users"
	"github.com/polyaxon/plx/pkg/api/types/versions"
	"github.com/polyaxon/plx/pkg/utils/retry"
	"k8s.io/client-go/util/flowcontrol"
)

// PlxClient is a client of the polyaxon v1 api.
//
// Methods return errors wrapping *APIError when the server responds 4xx or 5xx.
type PlxClient interface {
	GetInstallation(ctx context.Context) (versions.Installation, error)

	// GetCompatibility asks which versions of service are supported.
	//
	// # Args
	//
	// - uuid: installation key
	//
	// - version: version of the caller
	//
	// - service: "cli", "platform", "agent" or "ui"
	GetCompatibility(ctx context.Context, uuid string, version string, service string) (versions.Compatibility, error)

	GetLogHandler(ctx context.Context) (versions.LogHandler, error)

	// GetUser returns the user authenticated with the token.
	GetUser(ctx context.Context) (users.User, error)
	ChangePassword(ctx context.Context, change users.PasswordChange) error

	GetOrganization(ctx context.Context, owner string) (orgs.Organization, error)
	ListOrganizationMembers(ctx context.Context, owner string, opts pagination.Options) (pagination.List[orgs.Member], error)

	ListTeams(ctx context.Context, owner string, opts pagination.Options) (pagination.List[teams.Team], error)
	GetTeam(ctx context.Context, owner string, name string) (teams.Team, error)
	CreateTeam(ctx context.Context, owner string, team teams.Team) (teams.Team, error)
	DeleteTeam(ctx context.Context, owner string, name string) error

	ListConnections(ctx context.Context, owner string, opts pagination.Options) (connections.ListConnectionsResponse, error)

	// ListConnectionNames lists connections with their names only.
	ListConnectionNames(ctx context.Context, owner string, opts pagination.Options) (connections.ListConnectionsResponse, error)
	GetConnection(ctx context.Context, owner string, uuid string) (connections.ConnectionResponse, error)

	// CreateConnection validates conn locally, then registers it.
	CreateConnection(ctx context.Context, owner string, conn connections.ConnectionResponse) (connections.ConnectionResponse, error)
	UpdateConnection(ctx context.Context, owner string, uuid string, conn connections.ConnectionResponse) (connections.ConnectionResponse, error)
	PatchConnection(ctx context.Context, owner string, uuid string, conn connections.ConnectionResponse) (connections.ConnectionResponse, error)
	DeleteConnection(ctx context.Context, owner string, uuid string) error

	ListAgents(ctx context.Context, owner string, opts pagination.Options) (agents.ListAgentsResponse, error)
	ListAgentNames(ctx context.Context, owner string, opts pagination.Options) (agents.ListAgentsResponse, error)
	GetAgent(ctx context.Context, owner string, uuid string) (agents.Agent, error)
	CreateAgent(ctx context.Context, owner string, agent agents.Agent) (agents.Agent, error)
	UpdateAgent(ctx context.Context, owner string, uuid string, agent agents.Agent) (agents.Agent, error)
	PatchAgent(ctx context.Context, owner string, uuid string, agent agents.Agent) (agents.Agent, error)
	DeleteAgent(ctx context.Context, owner string, uuid string) error
	SyncAgent(ctx context.Context, owner string, uuid string, agent agents.Agent) error
	GetAgentState(ctx context.Context, owner string, uuid string) (agents.StateResponse, error)
	GetAgentStatuses(ctx context.Context, owner string, uuid string) (statuses.Status, error)
	CreateAgentStatus(ctx context.Context, owner string, uuid string, body agents.StatusBodyRequest) (statuses.Status, error)

	// ListQueues lists queues of agent. When agent is empty, queues of all agents are listed.
	ListQueues(ctx context.Context, owner string, agent string, opts pagination.Options) (queues.ListQueuesResponse, error)
	GetQueue(ctx context.Context, owner string, agent string, uuid string) (queues.Queue, error)
	CreateQueue(ctx context.Context, owner string, agent string, queue queues.Queue) (queues.Queue, error)
	UpdateQueue(ctx context.Context, owner string, agent string, uuid string, queue queues.Queue) (queues.Queue, error)
	DeleteQueue(ctx context.Context, owner string, agent string, uuid string) error

	ListHubModels(ctx context.Context, owner string, opts pagination.Options) (hub.ListModelsResponse, error)
	GetHubModel(ctx context.Context, owner string, name string) (hub.Model, error)
	CreateHubModel(ctx context.Context, owner string, model hub.Model) (hub.Model, error)
	PatchHubModel(ctx context.Context, owner string, name string, model hub.Model) (hub.Model, error)
	DeleteHubModel(ctx context.Context, owner string, name string) error

	ListComponentHubs(ctx context.Context, owner string, opts pagination.Options) (hub.ListComponentsResponse, error)
	GetComponentHub(ctx context.Context, owner string, name string) (hub.Component, error)
	CreateComponentHub(ctx context.Context, owner string, component hub.Component) (hub.Component, error)
	DeleteComponentHub(ctx context.Context, owner string, name string) error

	ListProjects(ctx context.Context, owner string, opts pagination.Options) (projects.ListProjectsResponse, error)
	GetProject(ctx context.Context, owner string, name string) (projects.Project, error)
	CreateProject(ctx context.Context, owner string, project projects.Project) (projects.Project, error)
	PatchProject(ctx context.Context, owner string, name string, project projects.Project) (projects.Project, error)
	DeleteProject(ctx context.Context, owner string, name string) error

	ListRuns(ctx context.Context, owner string, project string, opts pagination.Options) (runs.ListRunsResponse, error)
	GetRun(ctx context.Context, owner string, project string, uuid string) (runs.Run, error)
	StopRun(ctx context.Context, owner string, project string, uuid string) error
	ApproveRun(ctx context.Context, owner string, project string, uuid string) error

	// RestartRun creates a new run copying the run, and returns the new one.
	RestartRun(ctx context.Context, owner string, project string, uuid string) (runs.Run, error)
	DeleteRun(ctx context.Context, owner string, project string, uuid string) error
	GetRunStatuses(ctx context.Context, owner string, project string, uuid string) (statuses.Status, error)
	CreateRunStatus(ctx context.Context, owner string, project string, uuid string, body statuses.EntityStatusBodyRequest) (statuses.Status, error)

	// GetRunLogs reads a chunk of logs after lastTime in lastFile.
	//
	// Pass nil and "" to read from the beginning.
	GetRunLogs(ctx context.Context, owner string, project string, uuid string, lastTime *rfctime.RFC3339, lastFile string) (runs.Logs, error)
}

type client struct {
	httpclient *http.Client
	api        string
	token      string

	limiter  flowcontrol.RateLimiter
	maxRetry int
	backoff  func() retry.Backoff
}

type Option func(*client) *client

// WithBackoff replaces backoff between retries of GET requests.
func WithBackoff(b func() retry.Backoff) Option {
	return func(c *client) *client {
		c.backoff = b
		return c
	}
}

// WithHTTPClient replaces underlying http client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) *client {
		c.httpclient = hc
		return c
	}
}

// NewClient creates a client for the server in profile.
//
// # Args
//
// - *prof.PlxProfile
//
// - ...Option
//
// # Return
//
// - PlxClient: created client
//
// - error: If given profile is invalid, ErrProfileInvalid is returned.
func NewClient(profile *prof.PlxProfile, options ...Option) (PlxClient, error) {
	if err := profile.Verify(); err != nil {
		return nil, err
	}

	c := &client{
		httpclient: new(http.Client),
		api:        strings.TrimSuffix(profile.ApiRoot, "/"),
		token:      profile.Token,
		maxRetry:   profile.Retries(),
		backoff: func() retry.Backoff {
			return retry.Exponential(200*time.Millisecond, 2, 5*time.Second)
		},
	}
	for _, o := range options {
		c = o(c)
	}

	if profile.Cert.CA != "" {
		hc, err := trustCa(c.httpclient, []string{profile.Cert.CA})
		if err != nil {
			return nil, err
		}
		c.httpclient = hc
	}

	if 0 < profile.QPS {
		c.limiter = flowcontrol.NewTokenBucketRateLimiter(profile.QPS, profile.Burst)
	}

	return c, nil
}

// build URL of api with path
func (c *client) apipath(path ...string) string {
	segments := []string{c.api, "api", "v1"}
	for _, p := range path {
		segments = append(segments, url.PathEscape(strings.Trim(p, "/")))
	}
	return strings.Join(segments, "/")
}

func trustCa(hc *http.Client, cacerts []string) (*http.Client, error) {
	if len(cacerts) <= 0 {
		return hc, nil
	}

	if hc.Transport == nil {
		hc.Transport = http.DefaultTransport
	}

	tran, ok := hc.Transport.(*http.Transport)
	if !ok {
		return nil, fmt.Errorf("failed to add ca cert")
	}
	tran = tran.Clone()

	tcc := tran.TLSClientConfig.Clone()
	if tcc == nil {
		tcc = &tls.Config{}
	}

	rootcas := tcc.RootCAs
	if rootcas == nil {
		rootcas = x509.NewCertPool()
		tcc.RootCAs = rootcas
	}
	for _, ca := range cacerts {
		bin, err := base64.StdEncoding.DecodeString(ca)
		if err != nil {
			return nil, err
		}

		if !rootcas.AppendCertsFromPEM(bin) {
			return nil, fmt.Errorf("failed to add cert")
		}
	}

	tran.TLSClientConfig = tcc
	return &http.Client{
		Transport:     tran,
		CheckRedirect: hc.CheckRedirect,
		Jar:           hc.Jar,
		Timeout:       hc.Timeout,
	}, nil
}
