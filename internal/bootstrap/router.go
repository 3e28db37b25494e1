package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpapi "github.com/knitviz/di-graph-backend/internal/api/http"
	"github.com/knitviz/di-graph-backend/internal/api/http/middleware"
	dghttp "github.com/knitviz/di-graph-backend/internal/dependency_graph/http"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/service"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	Service        *service.Service
	CORSOrigins    []string
	MaxUploadBytes int64
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(corsConfig(dep.CORSOrigins)))
	r.Use(middleware.RequestIDMiddleware())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Service.Store(), dep.Service.Ready)
	healthHandler.RegisterRoutes(r)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	dghttp.New(dep.Service, dep.MaxUploadBytes).Register(api)

	return r
}
