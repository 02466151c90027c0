package routes

import (
	"aerocode/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathPing = "/ping"

func addPingRoutes(rg *gin.RouterGroup, h *handlers.HealthHandler) {
	rg.GET(PathPing, h.Ping)
}
