package http

import (
	"github.com/gin-gonic/gin"
)

// PublicRouteGroup registers routes that are reachable without authentication.
type PublicRouteGroup interface {
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

// ProtectedRouteGroup registers routes that sit behind the auth middleware.
type ProtectedRouteGroup interface {
	RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

var (
	_ PublicRouteGroup    = (*PackRoutes)(nil)
	_ ProtectedRouteGroup = (*PackRoutes)(nil)
	_ PublicRouteGroup    = (*AuthRoutes)(nil)
)
