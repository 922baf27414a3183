package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kherrera/devfolio/internal/api/handlers"
	"github.com/kherrera/devfolio/internal/api/middleware"
)

type Deps struct {
	Auth    *handlers.AuthHandler
	Profile *handlers.ProfileHandler
	Skill   *handlers.SkillHandler
	Project *handlers.ProjectHandler
	Work    *handlers.WorkHandler
	Search  *handlers.SearchHandler
}

// RegisterRoutes mounts the public read surface and the admin-gated writes.
func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")

	api.POST("/auth/login", d.Auth.Login)

	// Public reads
	api.GET("/profile", d.Profile.Get)
	api.GET("/skills", d.Skill.List)
	api.GET("/skills/:id", d.Skill.Get)
	api.GET("/projects", d.Project.List)
	api.GET("/projects/:id", d.Project.Get)
	api.GET("/work", d.Work.List)
	api.GET("/work/:id", d.Work.Get)
	api.GET("/search", d.Search.Search)
	api.GET("/search/advanced", d.Search.AdvancedSearch)

	// Admin-only writes
	admin := api.Group("/")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())

	admin.PUT("/profile", d.Profile.Update)
	admin.POST("/skills", d.Skill.Create)
	admin.PUT("/skills/:id", d.Skill.Update)
	admin.DELETE("/skills/:id", d.Skill.Delete)
	admin.POST("/projects", d.Project.Create)
	admin.PUT("/projects/:id", d.Project.Update)
	admin.DELETE("/projects/:id", d.Project.Delete)
	admin.POST("/work", d.Work.Create)
	admin.PUT("/work/:id", d.Work.Update)
	admin.DELETE("/work/:id", d.Work.Delete)
}
