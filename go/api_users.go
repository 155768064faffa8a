package stockroomserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userhttpmapper "github.com/stockroom/stockroom-api/internal/domains/users/adapters/http/mapper"
	userports "github.com/stockroom/stockroom-api/internal/domains/users/ports"
)

// UserAPI wires HTTP transport with the users bounded context service.
type UserAPI struct {
	service userports.Service
}

// NewUserAPI creates a UserAPI backed by the provided service.
func NewUserAPI(service userports.Service) UserAPI {
	return UserAPI{service: service}
}

// Post /v1/users
// Create user
func (api *UserAPI) CreateUser(c *gin.Context) {
	var payload userhttpmapper.User
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	user, err := userhttpmapper.ToDomainUser(payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	saved, err := api.service.CreateUser(c.Request.Context(), user)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, userhttpmapper.FromDomainUser(saved))
}

// Post /v1/users/createWithList
// Creates list of users with given input array
func (api *UserAPI) CreateUsersWithListInput(c *gin.Context) {
	var payload []userhttpmapper.User
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	users, err := userhttpmapper.ToDomainUsers(payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	created, err := api.service.CreateUsers(c.Request.Context(), users)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, userhttpmapper.FromDomainUsers(created))
}

// Get /v1/users/:username
// Get user by user name
func (api *UserAPI) GetUserByName(c *gin.Context) {
	username, ok := requireParam(c, "username")
	if !ok {
		return
	}
	user, err := api.service.GetByUsername(c.Request.Context(), username)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, userhttpmapper.FromDomainUser(user))
}

// Put /v1/users/:username
// Update user
func (api *UserAPI) UpdateUser(c *gin.Context) {
	username, ok := requireParam(c, "username")
	if !ok {
		return
	}
	var payload userhttpmapper.User
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	user, err := userhttpmapper.ToDomainUser(payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	updated, err := api.service.Update(c.Request.Context(), username, user)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, userhttpmapper.FromDomainUser(updated))
}

// Delete /v1/users/:username
// Delete user
func (api *UserAPI) DeleteUser(c *gin.Context) {
	username, ok := requireParam(c, "username")
	if !ok {
		return
	}
	if err := api.service.Delete(c.Request.Context(), username); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Post /v1/sessions
// Logs user into the system
func (api *UserAPI) LoginUser(c *gin.Context) {
	var payload loginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	token, err := api.service.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Delete /v1/sessions
// Logs out the session identified by the username query parameter
func (api *UserAPI) LogoutUser(c *gin.Context) {
	username := c.Query("username")
	if username != "" {
		api.service.Logout(c.Request.Context(), username)
	}
	c.Status(http.StatusNoContent)
}
