package controllers

import (
	"net/http"

	"gin-storefront/apperrors"
	"gin-storefront/constants"
	"gin-storefront/dto"
	"gin-storefront/services"

	"github.com/gin-gonic/gin"
)

type IUserController interface {
	Me(ctx *gin.Context)
	FindAll(ctx *gin.Context)
	UpdatePermissions(ctx *gin.Context)
}

type UserController struct {
	service services.IUserService
}

func NewUserController(service services.IUserService) IUserController {
	return &UserController{service: service}
}

// Me returns the caller's own record, or null for anonymous callers. This is
// the one identity-aware read that does not fail without a session.
func (c *UserController) Me(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusOK, gin.H{"data": nil})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": user})
}

func (c *UserController) FindAll(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		respondError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	users, err := c.service.FindAll(user)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": users})
}

func (c *UserController) UpdatePermissions(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		respondError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	var input dto.UpdatePermissionsInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	updatedUser, err := c.service.UpdatePermissions(user, input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": updatedUser})
}
