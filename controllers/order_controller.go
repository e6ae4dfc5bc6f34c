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

type IOrderController interface {
	Create(ctx *gin.Context)
	FindByID(ctx *gin.Context)
	FindMine(ctx *gin.Context)
}

type OrderController struct {
	service services.IOrderService
}

func NewOrderController(service services.IOrderService) IOrderController {
	return &OrderController{service: service}
}

func (c *OrderController) Create(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		respondError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	var input dto.CreateOrderInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	order, err := c.service.Create(user.ID, input.Token)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"data": order})
}

func (c *OrderController) FindByID(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		respondError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	orderID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	order, err := c.service.FindByID(uint(orderID), user)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": order})
}

func (c *OrderController) FindMine(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		respondError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	orders, err := c.service.FindByUser(user.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": orders})
}
