package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Seabass5831/CS-546-Project-Song-Review/controllers"
	"github.com/Seabass5831/CS-546-Project-Song-Review/helpers"
	"github.com/Seabass5831/CS-546-Project-Song-Review/repository"
	"github.com/Seabass5831/CS-546-Project-Song-Review/repository/repotest"
	"github.com/Seabass5831/CS-546-Project-Song-Review/routes"
)

func newTestRouter() (*gin.Engine, *helpers.TokenMaker) {
	gin.SetMode(gin.TestMode)

	users := repository.NewUsers(repotest.NewCollection([]string{"email"}, []string{"username"}))
	tokens := helpers.NewTokenMaker("test-secret")
	uc := controllers.NewUserController(users, tokens)

	router := gin.New()
	routes.AuthRoutes(router, uc)
	routes.UserRoutes(router, uc, tokens)
	return router, tokens
}

func doJSON(router *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

var signupBody = gin.H{
	"username":       "u1",
	"firstName":      "Uma",
	"lastName":       "One",
	"email":          "u1@x.com",
	"password":       "password",
	"favoriteGenres": []string{"pop"},
}

func TestSignupAndLogin(t *testing.T) {
	router, _ := newTestRouter()

	w := doJSON(router, http.MethodPost, "/auth/signup", signupBody, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID             string `json:"id"`
		HashedPassword string `json:"hashedPassword"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Empty(t, created.HashedPassword, "password hash must not be serialized")

	w = doJSON(router, http.MethodPost, "/auth/login", gin.H{"email": "u1@x.com", "password": "password"}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var login struct {
		Token        string `json:"token"`
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	assert.NotEmpty(t, login.Token)
	assert.NotEmpty(t, login.RefreshToken)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router, _ := newTestRouter()

	w := doJSON(router, http.MethodPost, "/auth/signup", signupBody, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodPost, "/auth/login", gin.H{"email": "u1@x.com", "password": "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodPost, "/auth/login", gin.H{"email": "ghost@x.com", "password": "password"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSignupDuplicateEmailConflicts(t *testing.T) {
	router, _ := newTestRouter()

	w := doJSON(router, http.MethodPost, "/auth/signup", signupBody, "")
	require.Equal(t, http.StatusCreated, w.Code)

	second := gin.H{}
	for k, v := range signupBody {
		second[k] = v
	}
	second["username"] = "u2"
	w = doJSON(router, http.MethodPost, "/auth/signup", second, "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSignupRejectsInvalidBody(t *testing.T) {
	router, _ := newTestRouter()

	w := doJSON(router, http.MethodPost, "/auth/signup", gin.H{"username": "u1"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	router, tokens := newTestRouter()

	w := doJSON(router, http.MethodGet, "/users", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodPost, "/auth/signup", signupBody, "")
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	token, _, err := tokens.GenerateTokens("u1@x.com", "u1", created.ID)
	require.NoError(t, err)

	w = doJSON(router, http.MethodGet, "/users", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAddFriendFlow(t *testing.T) {
	router, tokens := newTestRouter()

	w := doJSON(router, http.MethodPost, "/auth/signup", signupBody, "")
	require.Equal(t, http.StatusCreated, w.Code)
	var alice struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &alice))

	bob := gin.H{}
	for k, v := range signupBody {
		bob[k] = v
	}
	bob["username"] = "bob"
	bob["email"] = "bob@x.com"
	w = doJSON(router, http.MethodPost, "/auth/signup", bob, "")
	require.Equal(t, http.StatusCreated, w.Code)

	token, _, err := tokens.GenerateTokens("u1@x.com", "u1", alice.ID)
	require.NoError(t, err)

	w = doJSON(router, http.MethodPost, "/users/friends", gin.H{"friendUsername": "bob"}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Adding the same friend twice conflicts.
	w = doJSON(router, http.MethodPost, "/users/friends", gin.H{"friendUsername": "bob"}, token)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Unknown friend is a 404.
	w = doJSON(router, http.MethodPost, "/users/friends", gin.H{"friendUsername": "ghost"}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
