package services

import (
	"gin-storefront/constants"
	"gin-storefront/dto"
	"gin-storefront/models"
	"gin-storefront/repositories"
)

type IItemService interface {
	FindAll() (*[]models.Item, error)
	FindByID(itemID uint) (*models.Item, error)
	FindConnection(first int, skip int) (*dto.ItemsConnection, error)
	Create(input dto.CreateItemInput, userID uint) (*models.Item, error)
	Update(itemID uint, input dto.UpdateItemInput) (*models.Item, error)
	Delete(itemID uint, caller *models.User) (*models.Item, error)
}

type ItemService struct {
	repository repositories.IItemRepository
}

func NewItemService(repository repositories.IItemRepository) IItemService {
	return &ItemService{repository: repository}
}

func (s *ItemService) FindAll() (*[]models.Item, error) {
	return s.repository.FindAll()
}

func (s *ItemService) FindByID(itemID uint) (*models.Item, error) {
	return s.repository.FindByID(itemID)
}

func (s *ItemService) FindConnection(first int, skip int) (*dto.ItemsConnection, error) {
	items, err := s.repository.FindPage(first, skip)
	if err != nil {
		return nil, err
	}
	count, err := s.repository.Count()
	if err != nil {
		return nil, err
	}
	return &dto.ItemsConnection{Items: *items, TotalCount: count}, nil
}

func (s *ItemService) Create(input dto.CreateItemInput, userID uint) (*models.Item, error) {
	return s.repository.Create(models.Item{
		Title:       input.Title,
		Description: input.Description,
		Image:       input.Image,
		LargeImage:  input.LargeImage,
		Price:       input.Price,
		UserID:      userID,
	})
}

// Update applies the given field changes to the item. Ownership is not
// verified here; only the delete path enforces it.
func (s *ItemService) Update(itemID uint, input dto.UpdateItemInput) (*models.Item, error) {
	targetItem, err := s.repository.FindByID(itemID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		targetItem.Title = *input.Title
	}
	if input.Description != nil {
		targetItem.Description = *input.Description
	}
	if input.Image != nil {
		targetItem.Image = *input.Image
	}
	if input.LargeImage != nil {
		targetItem.LargeImage = *input.LargeImage
	}
	if input.Price != nil {
		targetItem.Price = *input.Price
	}
	return s.repository.Update(*targetItem)
}

// Delete removes the item and returns its prior state. Allowed for the owner
// and for callers holding ADMIN or DELETEITEM.
func (s *ItemService) Delete(itemID uint, caller *models.User) (*models.Item, error) {
	item, err := s.repository.FindByID(itemID)
	if err != nil {
		return nil, err
	}

	ownsItem := item.UserID == caller.ID
	if !ownsItem {
		if err := HasPermission(caller, constants.PermissionAdmin, constants.PermissionDeleteItem); err != nil {
			return nil, err
		}
	}

	if err := s.repository.Delete(itemID); err != nil {
		return nil, err
	}
	return item, nil
}
