package routes

import (
	"aerocode/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathLogin  = "/login"
	PathLogout = "/logout"
	PathMe     = "/me"
	PathUsers  = "/users"
	PathAudit  = "/audit"
)

func addAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler) {
	rg.POST(PathLogout, h.Logout)
	rg.GET(PathMe, h.Me)
}

func addUserRoutes(rg *gin.RouterGroup, h *handlers.UserHandler) {
	users := rg.Group(PathUsers)
	{
		users.GET("", h.ListUsers)
		users.POST("", h.CreateUser)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
	}
}

func addAuditRoutes(rg *gin.RouterGroup, h *handlers.AuditHandler) {
	rg.GET(PathAudit, h.ListRecords)
}
