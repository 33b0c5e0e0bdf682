package handlers

import (
	"net/http"
	"strconv"

	"jobly/internal/domain/models"
	"jobly/internal/http/middleware"
	"jobly/internal/repositories"
	"jobly/internal/services"
	"jobly/internal/utils"

	"github.com/gin-gonic/gin"
)

type userCreateRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	IsAdmin   bool   `json:"isAdmin"`
}

// POST /api/users (admin)
// Admin-provisioned account creation; unlike /auth/register the new user may
// itself be an admin. Returns the user plus a token for them.
func CreateUser(c *gin.Context) {
	var req userCreateRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.NewAuthService()
	hash, err := svc.HashPassword(req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	user, err := repositories.UserRepository{}.Create(models.User{
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		IsAdmin:      req.IsAdmin,
		PasswordHash: hash,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	token, err := svc.CreateToken(user)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "user", "create", "username="+user.Username)
	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

// GET /api/users (admin)
func GetUsers(c *gin.Context) {
	users, err := repositories.UserRepository{}.FindAll()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// GET /api/users/:username (self or admin)
func GetUser(c *gin.Context) {
	user, err := repositories.UserRepository{}.Get(c.Param("username"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// PATCH /api/users/:username (self or admin)
// Username and the admin flag cannot be changed here.
func UpdateUser(c *gin.Context) {
	var req repositories.UserUpdate
	if !BindSparseJSON(c, &req, "username", "isAdmin") {
		return
	}

	if req.Password != nil {
		hash, err := services.NewAuthService().HashPassword(*req.Password)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		req.Password = &hash
	}

	user, err := repositories.UserRepository{}.Update(c.Param("username"), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "user", "update", "username="+user.Username)
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// DELETE /api/users/:username (self or admin)
func DeleteUser(c *gin.Context) {
	username := c.Param("username")
	if err := (repositories.UserRepository{}).Delete(username); err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "user", "delete", "username="+username)
	c.JSON(http.StatusOK, gin.H{"deleted": username})
}

// POST /api/users/:username/jobs/:id (self or admin)
func ApplyToJob(c *gin.Context) {
	username := c.Param("username")
	id, ok := jobIDParam(c)
	if !ok {
		return
	}

	if err := (repositories.UserRepository{}).Apply(username, id); err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "user", "apply", "username="+username+" job_id="+strconv.FormatInt(id, 10))
	c.JSON(http.StatusCreated, gin.H{"applied": id})
}
