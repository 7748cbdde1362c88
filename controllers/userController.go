package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Seabass5831/CS-546-Project-Song-Review/helpers"
	"github.com/Seabass5831/CS-546-Project-Song-Review/repository"
)

// UserController serves signup, login and the user CRUD surface.
type UserController struct {
	users  *repository.Users
	tokens *helpers.TokenMaker
}

func NewUserController(users *repository.Users, tokens *helpers.TokenMaker) *UserController {
	return &UserController{users: users, tokens: tokens}
}

type signupRequest struct {
	Username       string   `json:"username" binding:"required"`
	FirstName      string   `json:"firstName" binding:"required"`
	LastName       string   `json:"lastName" binding:"required"`
	Email          string   `json:"email" binding:"required,email"`
	Password       string   `json:"password" binding:"required,min=6"`
	FavoriteGenres []string `json:"favoriteGenres" binding:"required"`
}

func (uc *UserController) Signup() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req signupRequest
		if !bindJSON(c, &req) {
			return
		}

		user, err := uc.users.Create(c.Request.Context(), req.Username, req.FirstName, req.LastName, req.Email, req.Password, req.FavoriteGenres)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusCreated, user)
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (uc *UserController) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if !bindJSON(c, &req) {
			return
		}
		ctx := c.Request.Context()

		user, err := uc.users.GetByEmail(ctx, req.Email)
		if err != nil {
			// Do not reveal whether the email exists.
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}

		ok, err := uc.users.ValidateCredentials(ctx, user.ID.Hex(), req.Password)
		if err != nil {
			abortWithError(c, err)
			return
		}
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}

		token, refreshToken, err := uc.tokens.GenerateTokens(user.Email, user.Username, user.ID.Hex())
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user":          user,
			"token":         token,
			"refresh_token": refreshToken,
		})
	}
}

func (uc *UserController) GetAll() gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := uc.users.GetAll(c.Request.Context())
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

func (uc *UserController) GetByID() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := uc.users.GetByID(c.Request.Context(), c.Param("user_id"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

type updateUserRequest struct {
	FirstName     string   `json:"firstName" binding:"required"`
	LastName      string   `json:"lastName" binding:"required"`
	Email         string   `json:"email" binding:"required,email"`
	Password      string   `json:"password" binding:"required,min=6"`
	ListenedSongs []string `json:"listenedSongs"`
	ReviewsPosted []string `json:"reviewsPosted"`
}

func (uc *UserController) Update() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateUserRequest
		if !bindJSON(c, &req) {
			return
		}

		user, err := uc.users.Update(c.Request.Context(), c.Param("user_id"), req.FirstName, req.LastName, req.Email, req.Password, req.ListenedSongs, req.ReviewsPosted)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func (uc *UserController) Delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := uc.users.Remove(c.Request.Context(), c.Param("user_id")); err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	}
}

type addFriendRequest struct {
	FriendUsername string `json:"friendUsername" binding:"required"`
}

// AddFriend adds a friend to the authenticated user's list.
func (uc *UserController) AddFriend() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req addFriendRequest
		if !bindJSON(c, &req) {
			return
		}

		user, err := uc.users.AddFriendByUsername(c.Request.Context(), userID, req.FriendUsername)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
