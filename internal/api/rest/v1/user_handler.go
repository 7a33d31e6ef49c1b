package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/manavaditya8-pixel/cropGPT/internal/domain/users"
)

// UserHandler defines the interface for handling farmer accounts
type UserHandler interface {
	Register(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	GetByPhone(ctx *gin.Context)
	UpdateProfile(ctx *gin.Context)
	RecordLogin(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// userHandler struct holds the services
type userHandler struct {
	userService users.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService users.UserService) UserHandler {
	return &userHandler{
		userService: userService,
	}
}

// Register creates a farmer account keyed by phone number
func (handler *userHandler) Register(ctx *gin.Context) {
	var request RegisterUserRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request: %v", err)})
		return
	}

	user, err := handler.userService.Register(ctx, request.PhoneNumber, request.Name, request.PreferredLanguage)
	if err != nil {
		if errors.Is(err, users.ErrPhoneTaken) {
			ctx.JSON(http.StatusConflict, ErrorResponse{Message: err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error registering user: %v", err)})
		return
	}

	ctx.JSON(http.StatusCreated, NewUserResponse(user))
}

// GetByID fetches a farmer account by its id
func (handler *userHandler) GetByID(ctx *gin.Context) {
	user, err := handler.userService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error fetching user: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, NewUserResponse(user))
}

// GetByPhone fetches a farmer account by phone number
func (handler *userHandler) GetByPhone(ctx *gin.Context) {
	phone := ctx.Query("phone")
	if phone == "" {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "phone query parameter is required"})
		return
	}

	user, err := handler.userService.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error fetching user: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, NewUserResponse(user))
}

// UpdateProfile applies the provided profile fields
func (handler *userHandler) UpdateProfile(ctx *gin.Context) {
	var request UpdateUserRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request: %v", err)})
		return
	}

	update := users.ProfileUpdate{
		Name:              request.Name,
		Email:             request.Email,
		PreferredLanguage: request.PreferredLanguage,
		LocationState:     request.LocationState,
		LocationDistrict:  request.LocationDistrict,
		LandSizeHectares:  request.LandSizeHectares,
		PrimaryCrops:      request.PrimaryCrops,
	}

	user, err := handler.userService.UpdateProfile(ctx, ctx.Param("id"), update)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error updating profile: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, NewUserResponse(user))
}

// RecordLogin stamps the user's last login time
func (handler *userHandler) RecordLogin(ctx *gin.Context) {
	if err := handler.userService.RecordLogin(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, users.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error recording login: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: "login recorded"})
}

// DeleteByID removes a farmer account
func (handler *userHandler) DeleteByID(ctx *gin.Context) {
	userID := ctx.Param("id")
	if err := handler.userService.DeleteByID(ctx, userID); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error deleting user: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: fmt.Sprintf("deleted user %s", userID)})
}
