package router

import (
	"github.com/gin-gonic/gin"

	"github.com/joefazee/prognos/internal/deps"
)

// MountFunc represents a function that mounts routes for a module
type MountFunc func(*gin.RouterGroup, *deps.Container)

type Mounter struct {
	container *deps.Container
	prefix    string
}

func NewMounter(container *deps.Container, prefix string) *Mounter {
	return &Mounter{container: container, prefix: prefix}
}

// Public routes - no authentication required
func (m *Mounter) Public(engine *gin.Engine, middleware ...gin.HandlerFunc) *RouteGroup {
	group := engine.Group(m.prefix, middleware...)
	return &RouteGroup{group: group, container: m.container}
}

type RouteGroup struct {
	group     *gin.RouterGroup
	container *deps.Container
}

// Mount provides a fluent interface for mounting modules. Modules are
// mounted in order, so later modules can read what earlier ones registered.
func (rg *RouteGroup) Mount(mountFuncs ...MountFunc) *RouteGroup {
	for _, mountFunc := range mountFuncs {
		mountFunc(rg.group, rg.container)
	}
	return rg
}

// Group creates a sub-group for organizing routes
func (rg *RouteGroup) Group(path string) *RouteGroup {
	return &RouteGroup{group: rg.group.Group(path), container: rg.container}
}

// With adds middleware to every route mounted afterwards
func (rg *RouteGroup) With(middleware ...gin.HandlerFunc) *RouteGroup {
	rg.group.Use(middleware...)
	return rg
}
