package controllers

import (
	"log"
	"net/http"
	"strings"

	"gin-storefront/constants"
	"gin-storefront/dto"
	"gin-storefront/middlewares"
	"gin-storefront/services"

	"github.com/gin-gonic/gin"
)

type IAuthController interface {
	Signup(ctx *gin.Context)
	Signin(ctx *gin.Context)
	Signout(ctx *gin.Context)
	RequestReset(ctx *gin.Context)
	ResetPassword(ctx *gin.Context)
}

type AuthController struct {
	service services.IAuthService
}

func NewAuthController(service services.IAuthService) IAuthController {
	return &AuthController{service: service}
}

func setSessionCookie(ctx *gin.Context, token string) {
	ctx.SetCookie(middlewares.SessionCookie, token, int(services.SessionLifetime.Seconds()), "/", "", false, true)
}

func clearSessionCookie(ctx *gin.Context) {
	ctx.SetCookie(middlewares.SessionCookie, "", -1, "/", "", false, true)
}

func (c *AuthController) Signup(ctx *gin.Context) {
	var input dto.SignupInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := c.service.Signup(input.Name, input.Email, input.Password)
	if err != nil {
		log.Printf("Signup error: %v", err)
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "UNIQUE constraint") {
			ctx.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
			return
		}
		respondError(ctx, err)
		return
	}

	setSessionCookie(ctx, token)
	ctx.JSON(http.StatusCreated, gin.H{"data": user})
}

func (c *AuthController) Signin(ctx *gin.Context) {
	var input dto.SigninInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := c.service.Signin(input.Email, input.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}

	setSessionCookie(ctx, token)
	ctx.JSON(http.StatusOK, gin.H{"data": user})
}

func (c *AuthController) Signout(ctx *gin.Context) {
	clearSessionCookie(ctx)
	ctx.JSON(http.StatusOK, gin.H{"message": constants.MsgSignout})
}

func (c *AuthController) RequestReset(ctx *gin.Context) {
	var input dto.RequestResetInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.service.RequestReset(input.Email); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": constants.MsgResetRequested})
}

func (c *AuthController) ResetPassword(ctx *gin.Context) {
	var input dto.ResetPasswordInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := c.service.ResetPassword(input.ResetToken, input.Password, input.ConfirmPassword)
	if err != nil {
		respondError(ctx, err)
		return
	}

	setSessionCookie(ctx, token)
	ctx.JSON(http.StatusOK, gin.H{"data": user})
}
