package mock

import (
	"context"
	"testing"

	"github.com/polyaxon/plx/cmd/plx/rest"
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
)

type GetCompatibilityArgs struct {
	UUID    string
	Version string
	Service string
}

type ChangePasswordArgs struct {
	Change users.PasswordChange
}

type GetOrganizationArgs struct {
	Owner string
}

type ListOrganizationMembersArgs struct {
	Owner string
	Opts  pagination.Options
}

type ListTeamsArgs struct {
	Owner string
	Opts  pagination.Options
}

type GetTeamArgs struct {
	Owner string
	Name  string
}

type CreateTeamArgs struct {
	Owner string
	Team  teams.Team
}

type DeleteTeamArgs struct {
	Owner string
	Name  string
}

type ListConnectionsArgs struct {
	Owner string
	Opts  pagination.Options
}

type ListConnectionNamesArgs struct {
	Owner string
	Opts  pagination.Options
}

type GetConnectionArgs struct {
	Owner string
	UUID  string
}

type CreateConnectionArgs struct {
	Owner string
	Conn  connections.ConnectionResponse
}

type UpdateConnectionArgs struct {
	Owner string
	UUID  string
	Conn  connections.ConnectionResponse
}

type PatchConnectionArgs struct {
	Owner string
	UUID  string
	Conn  connections.ConnectionResponse
}

type DeleteConnectionArgs struct {
	Owner string
	UUID  string
}

type ListAgentsArgs struct {
	Owner string
	Opts  pagination.Options
}

type ListAgentNamesArgs struct {
	Owner string
	Opts  pagination.Options
}

type GetAgentArgs struct {
	Owner string
	UUID  string
}

type CreateAgentArgs struct {
	Owner string
	Agent agents.Agent
}

type UpdateAgentArgs struct {
	Owner string
	UUID  string
	Agent agents.Agent
}

type PatchAgentArgs struct {
	Owner string
	UUID  string
	Agent agents.Agent
}

type DeleteAgentArgs struct {
	Owner string
	UUID  string
}

type SyncAgentArgs struct {
	Owner string
	UUID  string
	Agent agents.Agent
}

type GetAgentStateArgs struct {
	Owner string
	UUID  string
}

type GetAgentStatusesArgs struct {
	Owner string
	UUID  string
}

type CreateAgentStatusArgs struct {
	Owner string
	UUID  string
	Body  agents.StatusBodyRequest
}

type ListQueuesArgs struct {
	Owner string
	Agent string
	Opts  pagination.Options
}

type GetQueueArgs struct {
	Owner string
	Agent string
	UUID  string
}

type CreateQueueArgs struct {
	Owner string
	Agent string
	Queue queues.Queue
}

type UpdateQueueArgs struct {
	Owner string
	Agent string
	UUID  string
	Queue queues.Queue
}

type DeleteQueueArgs struct {
	Owner string
	Agent string
	UUID  string
}

type ListHubModelsArgs struct {
	Owner string
	Opts  pagination.Options
}

type GetHubModelArgs struct {
	Owner string
	Name  string
}

type CreateHubModelArgs struct {
	Owner string
	Model hub.Model
}

type PatchHubModelArgs struct {
	Owner string
	Name  string
	Model hub.Model
}

type DeleteHubModelArgs struct {
	Owner string
	Name  string
}

type ListComponentHubsArgs struct {
	Owner string
	Opts  pagination.Options
}

type GetComponentHubArgs struct {
	Owner string
	Name  string
}

type CreateComponentHubArgs struct {
	Owner     string
	Component hub.Component
}

type DeleteComponentHubArgs struct {
	Owner string
	Name  string
}

type ListProjectsArgs struct {
	Owner string
	Opts  pagination.Options
}

type GetProjectArgs struct {
	Owner string
	Name  string
}

type CreateProjectArgs struct {
	Owner   string
	Project projects.Project
}

type PatchProjectArgs struct {
	Owner   string
	Name    string
	Project projects.Project
}

type DeleteProjectArgs struct {
	Owner string
	Name  string
}

type ListRunsArgs struct {
	Owner   string
	Project string
	Opts    pagination.Options
}

type GetRunArgs struct {
	Owner   string
	Project string
	UUID    string
}

type StopRunArgs struct {
	Owner   string
	Project string
	UUID    string
}

type ApproveRunArgs struct {
	Owner   string
	Project string
	UUID    string
}

type RestartRunArgs struct {
	Owner   string
	Project string
	UUID    string
}

type DeleteRunArgs struct {
	Owner   string
	Project string
	UUID    string
}

type GetRunStatusesArgs struct {
	Owner   string
	Project string
	UUID    string
}

type CreateRunStatusArgs struct {
	Owner   string
	Project string
	UUID    string
	Body    statuses.EntityStatusBodyRequest
}

type GetRunLogsArgs struct {
	Owner    string
	Project  string
	UUID     string
	LastTime *rfctime.RFC3339
	LastFile string
}

// New returns a PlxClient whose methods are given with Impl.
//
// Calling a method without Impl fails the test.
func New(t *testing.T) *MockClient {
	return &MockClient{t: t}
}

type MockClient struct {
	t    *testing.T
	Impl struct {
		GetInstallation         func(ctx context.Context) (versions.Installation, error)
		GetCompatibility        func(ctx context.Context, uuid string, version string, service string) (versions.Compatibility, error)
		GetLogHandler           func(ctx context.Context) (versions.LogHandler, error)
		GetUser                 func(ctx context.Context) (users.User, error)
		ChangePassword          func(ctx context.Context, change users.PasswordChange) error
		GetOrganization         func(ctx context.Context, owner string) (orgs.Organization, error)
		ListOrganizationMembers func(ctx context.Context, owner string, opts pagination.Options) (pagination.List[orgs.Member], error)
		ListTeams               func(ctx context.Context, owner string, opts pagination.Options) (pagination.List[teams.Team], error)
		GetTeam                 func(ctx context.Context, owner string, name string) (teams.Team, error)
		CreateTeam              func(ctx context.Context, owner string, team teams.Team) (teams.Team, error)
		DeleteTeam              func(ctx context.Context, owner string, name string) error
		ListConnections         func(ctx context.Context, owner string, opts pagination.Options) (connections.ListConnectionsResponse, error)
		ListConnectionNames     func(ctx context.Context, owner string, opts pagination.Options) (connections.ListConnectionsResponse, error)
		GetConnection           func(ctx context.Context, owner string, uuid string) (connections.ConnectionResponse, error)
		CreateConnection        func(ctx context.Context, owner string, conn connections.ConnectionResponse) (connections.ConnectionResponse, error)
		UpdateConnection        func(ctx context.Context, owner string, uuid string, conn connections.ConnectionResponse) (connections.ConnectionResponse, error)
		PatchConnection         func(ctx context.Context, owner string, uuid string, conn connections.ConnectionResponse) (connections.ConnectionResponse, error)
		DeleteConnection        func(ctx context.Context, owner string, uuid string) error
		ListAgents              func(ctx context.Context, owner string, opts pagination.Options) (agents.ListAgentsResponse, error)
		ListAgentNames          func(ctx context.Context, owner string, opts pagination.Options) (agents.ListAgentsResponse, error)
		GetAgent                func(ctx context.Context, owner string, uuid string) (agents.Agent, error)
		CreateAgent             func(ctx context.Context, owner string, agent agents.Agent) (agents.Agent, error)
		UpdateAgent             func(ctx context.Context, owner string, uuid string, agent agents.Agent) (agents.Agent, error)
		PatchAgent              func(ctx context.Context, owner string, uuid string, agent agents.Agent) (agents.Agent, error)
		DeleteAgent             func(ctx context.Context, owner string, uuid string) error
		SyncAgent               func(ctx context.Context, owner string, uuid string, agent agents.Agent) error
		GetAgentState           func(ctx context.Context, owner string, uuid string) (agents.StateResponse, error)
		GetAgentStatuses        func(ctx context.Context, owner string, uuid string) (statuses.Status, error)
		CreateAgentStatus       func(ctx context.Context, owner string, uuid string, body agents.StatusBodyRequest) (statuses.Status, error)
		ListQueues              func(ctx context.Context, owner string, agent string, opts pagination.Options) (queues.ListQueuesResponse, error)
		GetQueue                func(ctx context.Context, owner string, agent string, uuid string) (queues.Queue, error)
		CreateQueue             func(ctx context.Context, owner string, agent string, queue queues.Queue) (queues.Queue, error)
		UpdateQueue             func(ctx context.Context, owner string, agent string, uuid string, queue queues.Queue) (queues.Queue, error)
		DeleteQueue             func(ctx context.Context, owner string, agent string, uuid string) error
		ListHubModels           func(ctx context.Context, owner string, opts pagination.Options) (hub.ListModelsResponse, error)
		GetHubModel             func(ctx context.Context, owner string, name string) (hub.Model, error)
		CreateHubModel          func(ctx context.Context, owner string, model hub.Model) (hub.Model, error)
		PatchHubModel           func(ctx context.Context, owner string, name string, model hub.Model) (hub.Model, error)
		DeleteHubModel          func(ctx context.Context, owner string, name string) error
		ListComponentHubs       func(ctx context.Context, owner string, opts pagination.Options) (hub.ListComponentsResponse, error)
		GetComponentHub         func(ctx context.Context, owner string, name string) (hub.Component, error)
		CreateComponentHub      func(ctx context.Context, owner string, component hub.Component) (hub.Component, error)
		DeleteComponentHub      func(ctx context.Context, owner string, name string) error
		ListProjects            func(ctx context.Context, owner string, opts pagination.Options) (projects.ListProjectsResponse, error)
		GetProject              func(ctx context.Context, owner string, name string) (projects.Project, error)
		CreateProject           func(ctx context.Context, owner string, project projects.Project) (projects.Project, error)
		PatchProject            func(ctx context.Context, owner string, name string, project projects.Project) (projects.Project, error)
		DeleteProject           func(ctx context.Context, owner string, name string) error
		ListRuns                func(ctx context.Context, owner string, project string, opts pagination.Options) (runs.ListRunsResponse, error)
		GetRun                  func(ctx context.Context, owner string, project string, uuid string) (runs.Run, error)
		StopRun                 func(ctx context.Context, owner string, project string, uuid string) error
		ApproveRun              func(ctx context.Context, owner string, project string, uuid string) error
		RestartRun              func(ctx context.Context, owner string, project string, uuid string) (runs.Run, error)
		DeleteRun               func(ctx context.Context, owner string, project string, uuid string) error
		GetRunStatuses          func(ctx context.Context, owner string, project string, uuid string) (statuses.Status, error)
		CreateRunStatus         func(ctx context.Context, owner string, project string, uuid string, body statuses.EntityStatusBodyRequest) (statuses.Status, error)
		GetRunLogs              func(ctx context.Context, owner string, project string, uuid string, lastTime *rfctime.RFC3339, lastFile string) (runs.Logs, error)
	}
	Calls struct {
		GetInstallation         []struct{}
		GetCompatibility        []GetCompatibilityArgs
		GetLogHandler           []struct{}
		GetUser                 []struct{}
		ChangePassword          []ChangePasswordArgs
		GetOrganization         []GetOrganizationArgs
		ListOrganizationMembers []ListOrganizationMembersArgs
		ListTeams               []ListTeamsArgs
		GetTeam                 []GetTeamArgs
		CreateTeam              []CreateTeamArgs
		DeleteTeam              []DeleteTeamArgs
		ListConnections         []ListConnectionsArgs
		ListConnectionNames     []ListConnectionNamesArgs
		GetConnection           []GetConnectionArgs
		CreateConnection        []CreateConnectionArgs
		UpdateConnection        []UpdateConnectionArgs
		PatchConnection         []PatchConnectionArgs
		DeleteConnection        []DeleteConnectionArgs
		ListAgents              []ListAgentsArgs
		ListAgentNames          []ListAgentNamesArgs
		GetAgent                []GetAgentArgs
		CreateAgent             []CreateAgentArgs
		UpdateAgent             []UpdateAgentArgs
		PatchAgent              []PatchAgentArgs
		DeleteAgent             []DeleteAgentArgs
		SyncAgent               []SyncAgentArgs
		GetAgentState           []GetAgentStateArgs
		GetAgentStatuses        []GetAgentStatusesArgs
		CreateAgentStatus       []CreateAgentStatusArgs
		ListQueues              []ListQueuesArgs
		GetQueue                []GetQueueArgs
		CreateQueue             []CreateQueueArgs
		UpdateQueue             []UpdateQueueArgs
		DeleteQueue             []DeleteQueueArgs
		ListHubModels           []ListHubModelsArgs
		GetHubModel             []GetHubModelArgs
		CreateHubModel          []CreateHubModelArgs
		PatchHubModel           []PatchHubModelArgs
		DeleteHubModel          []DeleteHubModelArgs
		ListComponentHubs       []ListComponentHubsArgs
		GetComponentHub         []GetComponentHubArgs
		CreateComponentHub      []CreateComponentHubArgs
		DeleteComponentHub      []DeleteComponentHubArgs
		ListProjects            []ListProjectsArgs
		GetProject              []GetProjectArgs
		CreateProject           []CreateProjectArgs
		PatchProject            []PatchProjectArgs
		DeleteProject           []DeleteProjectArgs
		ListRuns                []ListRunsArgs
		GetRun                  []GetRunArgs
		StopRun                 []StopRunArgs
		ApproveRun              []ApproveRunArgs
		RestartRun              []RestartRunArgs
		DeleteRun               []DeleteRunArgs
		GetRunStatuses          []GetRunStatusesArgs
		CreateRunStatus         []CreateRunStatusArgs
		GetRunLogs              []GetRunLogsArgs
	}
}

var _ rest.PlxClient = &MockClient{}

func (m *MockClient) GetInstallation(ctx context.Context) (versions.Installation, error) {
	m.t.Helper()

	m.Calls.GetInstallation = append(m.Calls.GetInstallation, struct{}{})
	if m.Impl.GetInstallation == nil {
		m.t.Fatal("GetInstallation is not ready to be called")
	}
	return m.Impl.GetInstallation(ctx)
}

func (m *MockClient) GetCompatibility(ctx context.Context, uuid string, version string, service string) (versions.Compatibility, error) {
	m.t.Helper()

	m.Calls.GetCompatibility = append(m.Calls.GetCompatibility, GetCompatibilityArgs{UUID: uuid, Version: version, Service: service})
	if m.Impl.GetCompatibility == nil {
		m.t.Fatal("GetCompatibility is not ready to be called")
	}
	return m.Impl.GetCompatibility(ctx, uuid, version, service)
}

func (m *MockClient) GetLogHandler(ctx context.Context) (versions.LogHandler, error) {
	m.t.Helper()

	m.Calls.GetLogHandler = append(m.Calls.GetLogHandler, struct{}{})
	if m.Impl.GetLogHandler == nil {
		m.t.Fatal("GetLogHandler is not ready to be called")
	}
	return m.Impl.GetLogHandler(ctx)
}

func (m *MockClient) GetUser(ctx context.Context) (users.User, error) {
	m.t.Helper()

	m.Calls.GetUser = append(m.Calls.GetUser, struct{}{})
	if m.Impl.GetUser == nil {
		m.t.Fatal("GetUser is not ready to be called")
	}
	return m.Impl.GetUser(ctx)
}

func (m *MockClient) ChangePassword(ctx context.Context, change users.PasswordChange) error {
	m.t.Helper()

	m.Calls.ChangePassword = append(m.Calls.ChangePassword, ChangePasswordArgs{Change: change})
	if m.Impl.ChangePassword == nil {
		m.t.Fatal("ChangePassword is not ready to be called")
	}
	return m.Impl.ChangePassword(ctx, change)
}

func (m *MockClient) GetOrganization(ctx context.Context, owner string) (orgs.Organization, error) {
	m.t.Helper()

	m.Calls.GetOrganization = append(m.Calls.GetOrganization, GetOrganizationArgs{Owner: owner})
	if m.Impl.GetOrganization == nil {
		m.t.Fatal("GetOrganization is not ready to be called")
	}
	return m.Impl.GetOrganization(ctx, owner)
}

func (m *MockClient) ListOrganizationMembers(ctx context.Context, owner string, opts pagination.Options) (pagination.List[orgs.Member], error) {
	m.t.Helper()

	m.Calls.ListOrganizationMembers = append(m.Calls.ListOrganizationMembers, ListOrganizationMembersArgs{Owner: owner, Opts: opts})
	if m.Impl.ListOrganizationMembers == nil {
		m.t.Fatal("ListOrganizationMembers is not ready to be called")
	}
	return m.Impl.ListOrganizationMembers(ctx, owner, opts)
}

func (m *MockClient) ListTeams(ctx context.Context, owner string, opts pagination.Options) (pagination.List[teams.Team], error) {
	m.t.Helper()

	m.Calls.ListTeams = append(m.Calls.ListTeams, ListTeamsArgs{Owner: owner, Opts: opts})
	if m.Impl.ListTeams == nil {
		m.t.Fatal("ListTeams is not ready to be called")
	}
	return m.Impl.ListTeams(ctx, owner, opts)
}

func (m *MockClient) GetTeam(ctx context.Context, owner string, name string) (teams.Team, error) {
	m.t.Helper()

	m.Calls.GetTeam = append(m.Calls.GetTeam, GetTeamArgs{Owner: owner, Name: name})
	if m.Impl.GetTeam == nil {
		m.t.Fatal("GetTeam is not ready to be called")
	}
	return m.Impl.GetTeam(ctx, owner, name)
}

func (m *MockClient) CreateTeam(ctx context.Context, owner string, team teams.Team) (teams.Team, error) {
	m.t.Helper()

	m.Calls.CreateTeam = append(m.Calls.CreateTeam, CreateTeamArgs{Owner: owner, Team: team})
	if m.Impl.CreateTeam == nil {
		m.t.Fatal("CreateTeam is not ready to be called")
	}
	return m.Impl.CreateTeam(ctx, owner, team)
}

func (m *MockClient) DeleteTeam(ctx context.Context, owner string, name string) error {
	m.t.Helper()

	m.Calls.DeleteTeam = append(m.Calls.DeleteTeam, DeleteTeamArgs{Owner: owner, Name: name})
	if m.Impl.DeleteTeam == nil {
		m.t.Fatal("DeleteTeam is not ready to be called")
	}
	return m.Impl.DeleteTeam(ctx, owner, name)
}

func (m *MockClient) ListConnections(ctx context.Context, owner string, opts pagination.Options) (connections.ListConnectionsResponse, error) {
	m.t.Helper()

	m.Calls.ListConnections = append(m.Calls.ListConnections, ListConnectionsArgs{Owner: owner, Opts: opts})
	if m.Impl.ListConnections == nil {
		m.t.Fatal("ListConnections is not ready to be called")
	}
	return m.Impl.ListConnections(ctx, owner, opts)
}

func (m *MockClient) ListConnectionNames(ctx context.Context, owner string, opts pagination.Options) (connections.ListConnectionsResponse, error) {
	m.t.Helper()

	m.Calls.ListConnectionNames = append(m.Calls.ListConnectionNames, ListConnectionNamesArgs{Owner: owner, Opts: opts})
	if m.Impl.ListConnectionNames == nil {
		m.t.Fatal("ListConnectionNames is not ready to be called")
	}
	return m.Impl.ListConnectionNames(ctx, owner, opts)
}

func (m *MockClient) GetConnection(ctx context.Context, owner string, uuid string) (connections.ConnectionResponse, error) {
	m.t.Helper()

	m.Calls.GetConnection = append(m.Calls.GetConnection, GetConnectionArgs{Owner: owner, UUID: uuid})
	if m.Impl.GetConnection == nil {
		m.t.Fatal("GetConnection is not ready to be called")
	}
	return m.Impl.GetConnection(ctx, owner, uuid)
}

func (m *MockClient) CreateConnection(ctx context.Context, owner string, conn connections.ConnectionResponse) (connections.ConnectionResponse, error) {
	m.t.Helper()

	m.Calls.CreateConnection = append(m.Calls.CreateConnection, CreateConnectionArgs{Owner: owner, Conn: conn})
	if m.Impl.CreateConnection == nil {
		m.t.Fatal("CreateConnection is not ready to be called")
	}
	return m.Impl.CreateConnection(ctx, owner, conn)
}

func (m *MockClient) UpdateConnection(ctx context.Context, owner string, uuid string, conn connections.ConnectionResponse) (connections.ConnectionResponse, error) {
	m.t.Helper()

	m.Calls.UpdateConnection = append(m.Calls.UpdateConnection, UpdateConnectionArgs{Owner: owner, UUID: uuid, Conn: conn})
	if m.Impl.UpdateConnection == nil {
		m.t.Fatal("UpdateConnection is not ready to be called")
	}
	return m.Impl.UpdateConnection(ctx, owner, uuid, conn)
}

func (m *MockClient) PatchConnection(ctx context.Context, owner string, uuid string, conn connections.ConnectionResponse) (connections.ConnectionResponse, error) {
	m.t.Helper()

	m.Calls.PatchConnection = append(m.Calls.PatchConnection, PatchConnectionArgs{Owner: owner, UUID: uuid, Conn: conn})
	if m.Impl.PatchConnection == nil {
		m.t.Fatal("PatchConnection is not ready to be called")
	}
	return m.Impl.PatchConnection(ctx, owner, uuid, conn)
}

func (m *MockClient) DeleteConnection(ctx context.Context, owner string, uuid string) error {
	m.t.Helper()

	m.Calls.DeleteConnection = append(m.Calls.DeleteConnection, DeleteConnectionArgs{Owner: owner, UUID: uuid})
	if m.Impl.DeleteConnection == nil {
		m.t.Fatal("DeleteConnection is not ready to be called")
	}
	return m.Impl.DeleteConnection(ctx, owner, uuid)
}

func (m *MockClient) ListAgents(ctx context.Context, owner string, opts pagination.Options) (agents.ListAgentsResponse, error) {
	m.t.Helper()

	m.Calls.ListAgents = append(m.Calls.ListAgents, ListAgentsArgs{Owner: owner, Opts: opts})
	if m.Impl.ListAgents == nil {
		m.t.Fatal("ListAgents is not ready to be called")
	}
	return m.Impl.ListAgents(ctx, owner, opts)
}

func (m *MockClient) ListAgentNames(ctx context.Context, owner string, opts pagination.Options) (agents.ListAgentsResponse, error) {
	m.t.Helper()

	m.Calls.ListAgentNames = append(m.Calls.ListAgentNames, ListAgentNamesArgs{Owner: owner, Opts: opts})
	if m.Impl.ListAgentNames == nil {
		m.t.Fatal("ListAgentNames is not ready to be called")
	}
	return m.Impl.ListAgentNames(ctx, owner, opts)
}

func (m *MockClient) GetAgent(ctx context.Context, owner string, uuid string) (agents.Agent, error) {
	m.t.Helper()

	m.Calls.GetAgent = append(m.Calls.GetAgent, GetAgentArgs{Owner: owner, UUID: uuid})
	if m.Impl.GetAgent == nil {
		m.t.Fatal("GetAgent is not ready to be called")
	}
	return m.Impl.GetAgent(ctx, owner, uuid)
}

func (m *MockClient) CreateAgent(ctx context.Context, owner string, agent agents.Agent) (agents.Agent, error) {
	m.t.Helper()

	m.Calls.CreateAgent = append(m.Calls.CreateAgent, CreateAgentArgs{Owner: owner, Agent: agent})
	if m.Impl.CreateAgent == nil {
		m.t.Fatal("CreateAgent is not ready to be called")
	}
	return m.Impl.CreateAgent(ctx, owner, agent)
}

func (m *MockClient) UpdateAgent(ctx context.Context, owner string, uuid string, agent agents.Agent) (agents.Agent, error) {
	m.t.Helper()

	m.Calls.UpdateAgent = append(m.Calls.UpdateAgent, UpdateAgentArgs{Owner: owner, UUID: uuid, Agent: agent})
	if m.Impl.UpdateAgent == nil {
		m.t.Fatal("UpdateAgent is not ready to be called")
	}
	return m.Impl.UpdateAgent(ctx, owner, uuid, agent)
}

func (m *MockClient) PatchAgent(ctx context.Context, owner string, uuid string, agent agents.Agent) (agents.Agent, error) {
	m.t.Helper()

	m.Calls.PatchAgent = append(m.Calls.PatchAgent, PatchAgentArgs{Owner: owner, UUID: uuid, Agent: agent})
	if m.Impl.PatchAgent == nil {
		m.t.Fatal("PatchAgent is not ready to be called")
	}
	return m.Impl.PatchAgent(ctx, owner, uuid, agent)
}

func (m *MockClient) DeleteAgent(ctx context.Context, owner string, uuid string) error {
	m.t.Helper()

	m.Calls.DeleteAgent = append(m.Calls.DeleteAgent, DeleteAgentArgs{Owner: owner, UUID: uuid})
	if m.Impl.DeleteAgent == nil {
		m.t.Fatal("DeleteAgent is not ready to be called")
	}
	return m.Impl.DeleteAgent(ctx, owner, uuid)
}

func (m *MockClient) SyncAgent(ctx context.Context, owner string, uuid string, agent agents.Agent) error {
	m.t.Helper()

	m.Calls.SyncAgent = append(m.Calls.SyncAgent, SyncAgentArgs{Owner: owner, UUID: uuid, Agent: agent})
	if m.Impl.SyncAgent == nil {
		m.t.Fatal("SyncAgent is not ready to be called")
	}
	return m.Impl.SyncAgent(ctx, owner, uuid, agent)
}

func (m *MockClient) GetAgentState(ctx context.Context, owner string, uuid string) (agents.StateResponse, error) {
	m.t.Helper()

	m.Calls.GetAgentState = append(m.Calls.GetAgentState, GetAgentStateArgs{Owner: owner, UUID: uuid})
	if m.Impl.GetAgentState == nil {
		m.t.Fatal("GetAgentState is not ready to be called")
	}
	return m.Impl.GetAgentState(ctx, owner, uuid)
}

func (m *MockClient) GetAgentStatuses(ctx context.Context, owner string, uuid string) (statuses.Status, error) {
	m.t.Helper()

	m.Calls.GetAgentStatuses = append(m.Calls.GetAgentStatuses, GetAgentStatusesArgs{Owner: owner, UUID: uuid})
	if m.Impl.GetAgentStatuses == nil {
		m.t.Fatal("GetAgentStatuses is not ready to be called")
	}
	return m.Impl.GetAgentStatuses(ctx, owner, uuid)
}

func (m *MockClient) CreateAgentStatus(ctx context.Context, owner string, uuid string, body agents.StatusBodyRequest) (statuses.Status, error) {
	m.t.Helper()

	m.Calls.CreateAgentStatus = append(m.Calls.CreateAgentStatus, CreateAgentStatusArgs{Owner: owner, UUID: uuid, Body: body})
	if m.Impl.CreateAgentStatus == nil {
		m.t.Fatal("CreateAgentStatus is not ready to be called")
	}
	return m.Impl.CreateAgentStatus(ctx, owner, uuid, body)
}

func (m *MockClient) ListQueues(ctx context.Context, owner string, agent string, opts pagination.Options) (queues.ListQueuesResponse, error) {
	m.t.Helper()

	m.Calls.ListQueues = append(m.Calls.ListQueues, ListQueuesArgs{Owner: owner, Agent: agent, Opts: opts})
	if m.Impl.ListQueues == nil {
		m.t.Fatal("ListQueues is not ready to be called")
	}
	return m.Impl.ListQueues(ctx, owner, agent, opts)
}

func (m *MockClient) GetQueue(ctx context.Context, owner string, agent string, uuid string) (queues.Queue, error) {
	m.t.Helper()

	m.Calls.GetQueue = append(m.Calls.GetQueue, GetQueueArgs{Owner: owner, Agent: agent, UUID: uuid})
	if m.Impl.GetQueue == nil {
		m.t.Fatal("GetQueue is not ready to be called")
	}
	return m.Impl.GetQueue(ctx, owner, agent, uuid)
}

func (m *MockClient) CreateQueue(ctx context.Context, owner string, agent string, queue queues.Queue) (queues.Queue, error) {
	m.t.Helper()

	m.Calls.CreateQueue = append(m.Calls.CreateQueue, CreateQueueArgs{Owner: owner, Agent: agent, Queue: queue})
	if m.Impl.CreateQueue == nil {
		m.t.Fatal("CreateQueue is not ready to be called")
	}
	return m.Impl.CreateQueue(ctx, owner, agent, queue)
}

func (m *MockClient) UpdateQueue(ctx context.Context, owner string, agent string, uuid string, queue queues.Queue) (queues.Queue, error) {
	m.t.Helper()

	m.Calls.UpdateQueue = append(m.Calls.UpdateQueue, UpdateQueueArgs{Owner: owner, Agent: agent, UUID: uuid, Queue: queue})
	if m.Impl.UpdateQueue == nil {
		m.t.Fatal("UpdateQueue is not ready to be called")
	}
	return m.Impl.UpdateQueue(ctx, owner, agent, uuid, queue)
}

func (m *MockClient) DeleteQueue(ctx context.Context, owner string, agent string, uuid string) error {
	m.t.Helper()

	m.Calls.DeleteQueue = append(m.Calls.DeleteQueue, DeleteQueueArgs{Owner: owner, Agent: agent, UUID: uuid})
	if m.Impl.DeleteQueue == nil {
		m.t.Fatal("DeleteQueue is not ready to be called")
	}
	return m.Impl.DeleteQueue(ctx, owner, agent, uuid)
}

func (m *MockClient) ListHubModels(ctx context.Context, owner string, opts pagination.Options) (hub.ListModelsResponse, error) {
	m.t.Helper()

	m.Calls.ListHubModels = append(m.Calls.ListHubModels, ListHubModelsArgs{Owner: owner, Opts: opts})
	if m.Impl.ListHubModels == nil {
		m.t.Fatal("ListHubModels is not ready to be called")
	}
	return m.Impl.ListHubModels(ctx, owner, opts)
}

func (m *MockClient) GetHubModel(ctx context.Context, owner string, name string) (hub.Model, error) {
	m.t.Helper()

	m.Calls.GetHubModel = append(m.Calls.GetHubModel, GetHubModelArgs{Owner: owner, Name: name})
	if m.Impl.GetHubModel == nil {
		m.t.Fatal("GetHubModel is not ready to be called")
	}
	return m.Impl.GetHubModel(ctx, owner, name)
}

func (m *MockClient) CreateHubModel(ctx context.Context, owner string, model hub.Model) (hub.Model, error) {
	m.t.Helper()

	m.Calls.CreateHubModel = append(m.Calls.CreateHubModel, CreateHubModelArgs{Owner: owner, Model: model})
	if m.Impl.CreateHubModel == nil {
		m.t.Fatal("CreateHubModel is not ready to be called")
	}
	return m.Impl.CreateHubModel(ctx, owner, model)
}

func (m *MockClient) PatchHubModel(ctx context.Context, owner string, name string, model hub.Model) (hub.Model, error) {
	m.t.Helper()

	m.Calls.PatchHubModel = append(m.Calls.PatchHubModel, PatchHubModelArgs{Owner: owner, Name: name, Model: model})
	if m.Impl.PatchHubModel == nil {
		m.t.Fatal("PatchHubModel is not ready to be called")
	}
	return m.Impl.PatchHubModel(ctx, owner, name, model)
}

func (m *MockClient) DeleteHubModel(ctx context.Context, owner string, name string) error {
	m.t.Helper()

	m.Calls.DeleteHubModel = append(m.Calls.DeleteHubModel, DeleteHubModelArgs{Owner: owner, Name: name})
	if m.Impl.DeleteHubModel == nil {
		m.t.Fatal("DeleteHubModel is not ready to be called")
	}
	return m.Impl.DeleteHubModel(ctx, owner, name)
}

func (m *MockClient) ListComponentHubs(ctx context.Context, owner string, opts pagination.Options) (hub.ListComponentsResponse, error) {
	m.t.Helper()

	m.Calls.ListComponentHubs = append(m.Calls.ListComponentHubs, ListComponentHubsArgs{Owner: owner, Opts: opts})
	if m.Impl.ListComponentHubs == nil {
		m.t.Fatal("ListComponentHubs is not ready to be called")
	}
	return m.Impl.ListComponentHubs(ctx, owner, opts)
}

func (m *MockClient) GetComponentHub(ctx context.Context, owner string, name string) (hub.Component, error) {
	m.t.Helper()

	m.Calls.GetComponentHub = append(m.Calls.GetComponentHub, GetComponentHubArgs{Owner: owner, Name: name})
	if m.Impl.GetComponentHub == nil {
		m.t.Fatal("GetComponentHub is not ready to be called")
	}
	return m.Impl.GetComponentHub(ctx, owner, name)
}

func (m *MockClient) CreateComponentHub(ctx context.Context, owner string, component hub.Component) (hub.Component, error) {
	m.t.Helper()

	m.Calls.CreateComponentHub = append(m.Calls.CreateComponentHub, CreateComponentHubArgs{Owner: owner, Component: component})
	if m.Impl.CreateComponentHub == nil {
		m.t.Fatal("CreateComponentHub is not ready to be called")
	}
	return m.Impl.CreateComponentHub(ctx, owner, component)
}

func (m *MockClient) DeleteComponentHub(ctx context.Context, owner string, name string) error {
	m.t.Helper()

	m.Calls.DeleteComponentHub = append(m.Calls.DeleteComponentHub, DeleteComponentHubArgs{Owner: owner, Name: name})
	if m.Impl.DeleteComponentHub == nil {
		m.t.Fatal("DeleteComponentHub is not ready to be called")
	}
	return m.Impl.DeleteComponentHub(ctx, owner, name)
}

func (m *MockClient) ListProjects(ctx context.Context, owner string, opts pagination.Options) (projects.ListProjectsResponse, error) {
	m.t.Helper()

	m.Calls.ListProjects = append(m.Calls.ListProjects, ListProjectsArgs{Owner: owner, Opts: opts})
	if m.Impl.ListProjects == nil {
		m.t.Fatal("ListProjects is not ready to be called")
	}
	return m.Impl.ListProjects(ctx, owner, opts)
}

func (m *MockClient) GetProject(ctx context.Context, owner string, name string) (projects.Project, error) {
	m.t.Helper()

	m.Calls.GetProject = append(m.Calls.GetProject, GetProjectArgs{Owner: owner, Name: name})
	if m.Impl.GetProject == nil {
		m.t.Fatal("GetProject is not ready to be called")
	}
	return m.Impl.GetProject(ctx, owner, name)
}

func (m *MockClient) CreateProject(ctx context.Context, owner string, project projects.Project) (projects.Project, error) {
	m.t.Helper()

	m.Calls.CreateProject = append(m.Calls.CreateProject, CreateProjectArgs{Owner: owner, Project: project})
	if m.Impl.CreateProject == nil {
		m.t.Fatal("CreateProject is not ready to be called")
	}
	return m.Impl.CreateProject(ctx, owner, project)
}

func (m *MockClient) PatchProject(ctx context.Context, owner string, name string, project projects.Project) (projects.Project, error) {
	m.t.Helper()

	m.Calls.PatchProject = append(m.Calls.PatchProject, PatchProjectArgs{Owner: owner, Name: name, Project: project})
	if m.Impl.PatchProject == nil {
		m.t.Fatal("PatchProject is not ready to be called")
	}
	return m.Impl.PatchProject(ctx, owner, name, project)
}

func (m *MockClient) DeleteProject(ctx context.Context, owner string, name string) error {
	m.t.Helper()

	m.Calls.DeleteProject = append(m.Calls.DeleteProject, DeleteProjectArgs{Owner: owner, Name: name})
	if m.Impl.DeleteProject == nil {
		m.t.Fatal("DeleteProject is not ready to be called")
	}
	return m.Impl.DeleteProject(ctx, owner, name)
}

func (m *MockClient) ListRuns(ctx context.Context, owner string, project string, opts pagination.Options) (runs.ListRunsResponse, error) {
	m.t.Helper()

	m.Calls.ListRuns = append(m.Calls.ListRuns, ListRunsArgs{Owner: owner, Project: project, Opts: opts})
	if m.Impl.ListRuns == nil {
		m.t.Fatal("ListRuns is not ready to be called")
	}
	return m.Impl.ListRuns(ctx, owner, project, opts)
}

func (m *MockClient) GetRun(ctx context.Context, owner string, project string, uuid string) (runs.Run, error) {
	m.t.Helper()

	m.Calls.GetRun = append(m.Calls.GetRun, GetRunArgs{Owner: owner, Project: project, UUID: uuid})
	if m.Impl.GetRun == nil {
		m.t.Fatal("GetRun is not ready to be called")
	}
	return m.Impl.GetRun(ctx, owner, project, uuid)
}

func (m *MockClient) StopRun(ctx context.Context, owner string, project string, uuid string) error {
	m.t.Helper()

	m.Calls.StopRun = append(m.Calls.StopRun, StopRunArgs{Owner: owner, Project: project, UUID: uuid})
	if m.Impl.StopRun == nil {
		m.t.Fatal("StopRun is not ready to be called")
	}
	return m.Impl.StopRun(ctx, owner, project, uuid)
}

func (m *MockClient) ApproveRun(ctx context.Context, owner string, project string, uuid string) error {
	m.t.Helper()

	m.Calls.ApproveRun = append(m.Calls.ApproveRun, ApproveRunArgs{Owner: owner, Project: project, UUID: uuid})
	if m.Impl.ApproveRun == nil {
		m.t.Fatal("ApproveRun is not ready to be called")
	}
	return m.Impl.ApproveRun(ctx, owner, project, uuid)
}

func (m *MockClient) RestartRun(ctx context.Context, owner string, project string, uuid string) (runs.Run, error) {
	m.t.Helper()

	m.Calls.RestartRun = append(m.Calls.RestartRun, RestartRunArgs{Owner: owner, Project: project, UUID: uuid})
	if m.Impl.RestartRun == nil {
		m.t.Fatal("RestartRun is not ready to be called")
	}
	return m.Impl.RestartRun(ctx, owner, project, uuid)
}

func (m *MockClient) DeleteRun(ctx context.Context, owner string, project string, uuid string) error {
	m.t.Helper()

	m.Calls.DeleteRun = append(m.Calls.DeleteRun, DeleteRunArgs{Owner: owner, Project: project, UUID: uuid})
	if m.Impl.DeleteRun == nil {
		m.t.Fatal("DeleteRun is not ready to be called")
	}
	return m.Impl.DeleteRun(ctx, owner, project, uuid)
}

func (m *MockClient) GetRunStatuses(ctx context.Context, owner string, project string, uuid string) (statuses.Status, error) {
	m.t.Helper()

	m.Calls.GetRunStatuses = append(m.Calls.GetRunStatuses, GetRunStatusesArgs{Owner: owner, Project: project, UUID: uuid})
	if m.Impl.GetRunStatuses == nil {
		m.t.Fatal("GetRunStatuses is not ready to be called")
	}
	return m.Impl.GetRunStatuses(ctx, owner, project, uuid)
}

func (m *MockClient) CreateRunStatus(ctx context.Context, owner string, project string, uuid string, body statuses.EntityStatusBodyRequest) (statuses.Status, error) {
	m.t.Helper()

	m.Calls.CreateRunStatus = append(m.Calls.CreateRunStatus, CreateRunStatusArgs{Owner: owner, Project: project, UUID: uuid, Body: body})
	if m.Impl.CreateRunStatus == nil {
		m.t.Fatal("CreateRunStatus is not ready to be called")
	}
	return m.Impl.CreateRunStatus(ctx, owner, project, uuid, body)
}

func (m *MockClient) GetRunLogs(ctx context.Context, owner string, project string, uuid string, lastTime *rfctime.RFC3339, lastFile string) (runs.Logs, error) {
	m.t.Helper()

	m.Calls.GetRunLogs = append(m.Calls.GetRunLogs, GetRunLogsArgs{Owner: owner, Project: project, UUID: uuid, LastTime: lastTime, LastFile: lastFile})
	if m.Impl.GetRunLogs == nil {
		m.t.Fatal("GetRunLogs is not ready to be called")
	}
	return m.Impl.GetRunLogs(ctx, owner, project, uuid, lastTime, lastFile)
}
