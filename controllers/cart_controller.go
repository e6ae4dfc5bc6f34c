package controllers

import (
	"net/http"
	"strconv"

	"gin-storefront/apperrors"
	"gin-storefront/constants"
	"gin-storefront/dto"
	"gin-storefront/services"

	"github.com/gin-gonic/gin"
)

type ICartController interface {
	Add(ctx *gin.Context)
	Remove(ctx *gin.Context)
}

type CartController struct {
	service services.ICartService
}

func NewCartController(service services.ICartService) ICartController {
	return &CartController{service: service}
}

func (c *CartController) Add(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		respondError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	var input dto.AddToCartInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	cartItem, err := c.service.AddToCart(user.ID, input.ItemID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": cartItem})
}

func (c *CartController) Remove(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		respondError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	cartItemID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	removed, err := c.service.RemoveFromCart(uint(cartItemID), user.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": removed})
}
