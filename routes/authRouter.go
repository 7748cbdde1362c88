package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Seabass5831/CS-546-Project-Song-Review/controllers"
)

func AuthRoutes(router *gin.Engine, users *controllers.UserController) {
	router.POST("/auth/signup", users.Signup())
	router.POST("/auth/login", users.Login())
}
