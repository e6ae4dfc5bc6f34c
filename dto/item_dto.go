package dto

import "gin-storefront/models"

type CreateItemInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Image       string `json:"image"`
	LargeImage  string `json:"largeImage"`
	Price       uint   `json:"price" binding:"required,gt=0"`
}

type UpdateItemInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	LargeImage  *string `json:"largeImage"`
	Price       *uint   `json:"price" binding:"omitempty,gt=0"`
}

// ItemsConnection carries one page of items together with the total catalog
// size, so clients can render pagination.
type ItemsConnection struct {
	Items      []models.Item `json:"items"`
	TotalCount int64         `json:"totalCount"`
}
