package handlers

import (
	"net/http"

	"jobly/internal/domain"
	"jobly/internal/domain/models"
	"jobly/internal/http/middleware"
	"jobly/internal/repositories"
	"jobly/internal/services"
	"jobly/internal/utils"

	"github.com/gin-gonic/gin"
)

type tokenRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/token
func Token(c *gin.Context) {
	var req tokenRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.NewAuthService()
	user, err := repositories.UserRepository{}.GetWithPassword(req.Username)
	if err != nil {
		if domain.IsNotFound(err) {
			RespondDomainError(c, domain.UnauthorizedError{Msg: "invalid username/password"})
			return
		}
		RespondDomainError(c, err)
		return
	}
	if err := svc.CheckPassword(user.PasswordHash, req.Password); err != nil {
		RespondDomainError(c, err)
		return
	}

	token, err := svc.CreateToken(user)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

type registerRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
}

// POST /api/auth/register
// Self-service signup; the created account is never an admin.
func Register(c *gin.Context) {
	var req registerRequest
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
		IsAdmin:      false,
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

	utils.LogEvent(middleware.GetRequestID(c), "auth", "register", "username="+user.Username)
	c.JSON(http.StatusCreated, gin.H{"token": token})
}
