package web

import "github.com/gin-gonic/gin"

// NewRouter builds the gin engine with all API routes registered.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	api := r.Group("/api")

	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)

	authed := api.Group("")
	authed.Use(RequireAuth(h.Auth))

	authed.GET("/profile", h.Profile)
	authed.PUT("/profile", h.UpdateProfile)
	authed.PUT("/profile/password", h.ChangePassword)

	authed.GET("/tasks", h.ListTasks)
	authed.POST("/tasks", h.CreateTask)
	authed.GET("/tasks/:id", h.GetTask)
	authed.PUT("/tasks/:id", h.UpdateTask)
	authed.POST("/tasks/:id/complete", h.CompleteTask)
	authed.POST("/tasks/:id/status", h.UpdateTaskStatus)
	authed.DELETE("/tasks/:id", h.DeleteTask)
	authed.POST("/tasks/:id/restore", h.RestoreTask)

	authed.GET("/trash", h.ListTrash)
	authed.POST("/trash/purge", h.PurgeTrash)

	authed.GET("/categories", h.ListCategories)
	authed.POST("/categories", h.CreateCategory)
	authed.PUT("/categories/:id", h.RenameCategory)
	authed.DELETE("/categories/:id", h.DeleteCategory)

	return r
}
