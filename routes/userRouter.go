package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Seabass5831/CS-546-Project-Song-Review/controllers"
	"github.com/Seabass5831/CS-546-Project-Song-Review/helpers"
	"github.com/Seabass5831/CS-546-Project-Song-Review/middleware"
)

func UserRoutes(router *gin.Engine, users *controllers.UserController, tokens *helpers.TokenMaker) {
	router.GET("/users/:user_id", users.GetByID())

	userGroup := router.Group("/users")
	userGroup.Use(middleware.Authentication(tokens))
	{
		userGroup.GET("", users.GetAll())
		userGroup.PUT("/:user_id", users.Update())
		userGroup.DELETE("/:user_id", users.Delete())
		userGroup.POST("/friends", users.AddFriend())
	}
}
