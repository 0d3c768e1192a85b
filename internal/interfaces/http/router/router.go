package router

import (
	"github.com/gin-gonic/gin"
)

// RouteRegistrar is implemented by handlers that attach their routes to a group
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router mounts versioned API routes on a gin engine
type Router struct {
	api *gin.RouterGroup
}

// New creates a Router serving under /api/<version>
func New(engine *gin.Engine, version string) *Router {
	return &Router{api: engine.Group("/api/" + version)}
}

// Mount registers every given handler's routes under the API group
func (r *Router) Mount(registrars ...RouteRegistrar) {
	for _, registrar := range registrars {
		registrar.RegisterRoutes(r.api)
	}
}
