package routes

import (
	"github.com/Kweyu/resto-api/controllers"
	"github.com/Kweyu/resto-api/middlewares"
	"github.com/gin-gonic/gin"
)

func AuthRoutes(server *gin.Engine, auth *controllers.AuthController) {
	group := server.Group("/auth")
	{
		group.POST("/login", auth.Login)
		group.POST("/signup", middlewares.RequireAuth(), middlewares.RequireAdmin(), auth.Signup)
	}
}
