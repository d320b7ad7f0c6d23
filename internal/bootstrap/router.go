package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/strata-labs/strata-backend/internal/api/http"
	"github.com/strata-labs/strata-backend/internal/api/http/middleware"
	projectshttp "github.com/strata-labs/strata-backend/internal/projects/http"
	"github.com/strata-labs/strata-backend/internal/projects/repository"
	"github.com/strata-labs/strata-backend/internal/projects/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Store       repository.Store
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Store)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")

	projectService := service.NewProjectService(dep.Store)
	projectHandler := projectshttp.New(projectService)
	projectHandler.Register(api.Group("/projects"))

	return r
}
