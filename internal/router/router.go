package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/roomify-io/roomify-server/internal/config"
	"github.com/roomify-io/roomify-server/internal/infra/authn"
	"github.com/roomify-io/roomify-server/internal/middleware"
	"github.com/roomify-io/roomify-server/internal/modules/handler"
	"github.com/roomify-io/roomify-server/internal/telemetry"
)

type RouterDeps struct {
	Config           *config.Config
	Log              *zap.Logger
	Verifier         authn.SessionVerifier
	ProjectHandler   *handler.ProjectHandler
	VisualizeHandler *handler.VisualizeHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if d.Config.Telemetry.Enabled && d.Config.Telemetry.OtlpEndpoint != "" {
		r.Use(telemetry.GinMiddleware(d.Config.App.Name))
		r.Use(telemetry.TraceIDMiddleware())
	}

	r.Use(middleware.ZapLogger(d.Log))
	r.Use(middleware.CORS())

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	api := r.Group("/api")
	{
		api.Use(middleware.UserAuth(d.Verifier))

		projects := api.Group("/projects")
		{
			projects.POST("/save", d.ProjectHandler.SaveProject)
			projects.GET("/list", d.ProjectHandler.ListProjects)
			projects.GET("/get", d.ProjectHandler.GetProject)

			projects.POST("/:id/visualize", d.VisualizeHandler.VisualizeProject)
		}
	}
	return r
}
