package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/localdir-backend/internal/app/service"
	apperrors "github.com/ikkim/localdir-backend/internal/errors"
	"github.com/ikkim/localdir-backend/internal/middleware"
)

type UserController struct {
	userService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// CreateUser 사용자 생성
// POST /api/v1/users
func (ctrl *UserController) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "invalid user payload")
		return
	}

	user, err := ctrl.userService.CreateUser(req.Name, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailExists):
			apperrors.Conflict(c, apperrors.UserEmailExists, "this email is already registered")
		case errors.Is(err, service.ErrInvalidUserArg):
			apperrors.BadRequest(c, apperrors.ValidationRequired, "name and email are required")
		default:
			apperrors.Internal(c, err, "create user")
		}
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetMe 현재 사용자 조회
// GET /api/v1/users/me
func (ctrl *UserController) GetMe(c *gin.Context) {
	userID := middleware.GetUserID(c)

	user, err := ctrl.userService.GetUser(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			apperrors.NotFound(c, apperrors.UserNotFound, "user not found")
			return
		}
		apperrors.Internal(c, err, "get user")
		return
	}

	c.JSON(http.StatusOK, user)
}
