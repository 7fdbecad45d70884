package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/polyaxon/plx/pkg/configs/sandbox"
	kdb "github.com/polyaxon/plx/pkg/db"
)

// Mount registers handlers of the sandbox api onto api.
//
// Paths are relative to the api root (/api/v1).
// Installation and compatibility are open. Others need authentication when conf has a jwt secret.
func Mount(api *echo.Group, conf *sandbox.SandboxConfig, docs kdb.DocumentInterface) {
	// public
	api.GET("/installation", GetInstallationHandler(conf))
	api.GET("/compatibility/:uuid/:version/:service", GetCompatibilityHandler(conf, "version", "service"))

	secret := conf.JWTSecret()
	authed := api.Group("", Authenticate(secret, DefaultUser(conf)))
	authed.GET("/log_handler", GetLogHandlerHandler(conf))
	authed.GET("/users", GetUserHandler(conf))
	authed.POST("/auth/change-password", ChangePasswordHandler(NewPasswords(conf)))

	org := authed.Group("/orgs/:owner", Authorize(conf, len(secret) != 0, "owner"))
	org.GET("", GetOrganizationHandler(conf, "owner"))
	org.GET("/members", ListOrganizationMembersHandler(conf, "owner"))

	org.GET("/teams", ListTeamsHandler(docs, "owner"))
	org.POST("/teams", CreateTeamHandler(docs, "owner"))
	org.GET("/teams/:name", GetTeamHandler(docs, "owner", "name"))
	org.DELETE("/teams/:name", DeleteTeamHandler(docs, "owner", "name"))

	org.GET("/connections", ListConnectionsHandler(docs, "owner", false))
	org.GET("/connections/names", ListConnectionsHandler(docs, "owner", true))
	org.POST("/connections", CreateConnectionHandler(docs, "owner"))
	org.GET("/connections/:uuid", GetConnectionHandler(docs, "owner", "uuid"))
	org.PUT("/connections/:uuid", UpdateConnectionHandler(docs, "owner", "uuid"))
	org.PATCH("/connections/:uuid", UpdateConnectionHandler(docs, "owner", "uuid"))
	org.DELETE("/connections/:uuid", DeleteConnectionHandler(docs, "owner", "uuid"))

	org.GET("/agents", ListAgentsHandler(docs, "owner", false))
	org.GET("/agents/names", ListAgentsHandler(docs, "owner", true))
	org.POST("/agents", CreateAgentHandler(docs, "owner"))
	org.GET("/agents/:uuid", GetAgentHandler(docs, "owner", "uuid"))
	org.PUT("/agents/:uuid", UpdateAgentHandler(docs, "owner", "uuid"))
	org.PATCH("/agents/:uuid", UpdateAgentHandler(docs, "owner", "uuid"))
	org.DELETE("/agents/:uuid", DeleteAgentHandler(docs, "owner", "uuid"))
	org.PATCH("/agents/:uuid/sync", SyncAgentHandler(docs, "owner", "uuid"))
	org.GET("/agents/:uuid/state", GetAgentStateHandler(docs, "owner", "uuid"))
	org.GET("/agents/:uuid/statuses", GetAgentStatusesHandler(docs, "owner", "uuid"))
	org.POST("/agents/:uuid/statuses", CreateAgentStatusHandler(docs, "owner", "uuid"))

	org.GET("/queues", ListQueuesHandler(docs, "owner", ""))
	org.GET("/agents/:agent/queues", ListQueuesHandler(docs, "owner", "agent"))
	org.POST("/agents/:agent/queues", CreateQueueHandler(docs, "owner", "agent"))
	org.GET("/agents/:agent/queues/:uuid", GetQueueHandler(docs, "owner", "agent", "uuid"))
	org.PUT("/agents/:agent/queues/:uuid", UpdateQueueHandler(docs, "owner", "agent", "uuid"))
	org.DELETE("/agents/:agent/queues/:uuid", DeleteQueueHandler(docs, "owner", "agent", "uuid"))

	org.GET("/models", ListModelsHandler(docs, "owner"))
	org.POST("/models", CreateModelHandler(docs, "owner"))
	org.GET("/models/:name", GetModelHandler(docs, "owner", "name"))
	org.PATCH("/models/:name", PatchModelHandler(docs, "owner", "name"))
	org.DELETE("/models/:name", DeleteModelHandler(docs, "owner", "name"))

	org.GET("/components", ListComponentsHandler(docs, "owner"))
	org.POST("/components", CreateComponentHandler(docs, "owner"))
	org.GET("/components/:name", GetComponentHandler(docs, "owner", "name"))
	org.DELETE("/components/:name", DeleteComponentHandler(docs, "owner", "name"))

	org.GET("/projects/list", ListProjectsHandler(docs, "owner"))
	org.POST("/projects/create", CreateProjectHandler(docs, "owner"))
	org.GET("/:project", GetProjectHandler(docs, "owner", "project"))
	org.PATCH("/:project", PatchProjectHandler(docs, "owner", "project"))
	org.DELETE("/:project", DeleteProjectHandler(docs, "owner", "project"))

	org.GET("/:project/runs", ListRunsHandler(docs, "owner", "project"))
	org.POST("/:project/runs", CreateRunHandler(docs, "owner", "project"))
	org.GET("/:project/runs/:uuid", GetRunHandler(docs, "owner", "project", "uuid"))
	org.DELETE("/:project/runs/:uuid", DeleteRunHandler(docs, "owner", "project", "uuid"))
	org.POST("/:project/runs/:uuid/stop", StopRunHandler(docs, "owner", "project", "uuid"))
	org.POST("/:project/runs/:uuid/approve", ApproveRunHandler(docs, "owner", "project", "uuid"))
	org.POST("/:project/runs/:uuid/restart", RestartRunHandler(docs, "owner", "project", "uuid"))
	org.GET("/:project/runs/:uuid/statuses", GetRunStatusesHandler(docs, "owner", "project", "uuid"))
	org.POST("/:project/runs/:uuid/statuses", CreateRunStatusHandler(docs, "owner", "project", "uuid"))
	org.GET("/:project/runs/:uuid/logs", GetRunLogsHandler(docs, "owner", "project", "uuid"))
	org.POST("/:project/runs/:uuid/logs", AppendRunLogsHandler(docs, "owner", "project", "uuid"))

}
