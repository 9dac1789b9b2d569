package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	httpapi "github.com/credvault/credvault-backend/internal/api/http"
	"github.com/credvault/credvault-backend/internal/api/http/middleware"
	"github.com/credvault/credvault-backend/internal/auth"
	projectshttp "github.com/credvault/credvault-backend/internal/projects/http"
	"github.com/credvault/credvault-backend/internal/projects/repository"
	"github.com/credvault/credvault-backend/internal/projects/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	CORSOrigins []string
	DB          *pgxpool.Pool
	Verifier    auth.TokenVerifier
	Revocations *auth.RevocationList
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = dep.CORSOrigins
	corsCfg.AllowCredentials = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	projectRepo := repository.NewProjectRepository(dep.DB)
	projectSvc := service.NewProjectService(projectRepo)
	projectHandler := projectshttp.New(projectSvc)

	// every project route sits behind the bearer gate; health does not
	projectsGroup := r.Group("/projects")
	projectsGroup.Use(auth.Middleware(dep.Verifier, dep.Revocations))
	projectHandler.Register(projectsGroup)

	return r
}
