package services

import (
	"gin-storefront/constants"
	"gin-storefront/dto"
	"gin-storefront/models"
	"gin-storefront/repositories"
)

type IUserService interface {
	FindAll(caller *models.User) (*[]models.User, error)
	UpdatePermissions(caller *models.User, input dto.UpdatePermissionsInput) (*models.User, error)
}

type UserService struct {
	repository repositories.IUserRepository
}

func NewUserService(repository repositories.IUserRepository) IUserService {
	return &UserService{repository: repository}
}

func (s *UserService) FindAll(caller *models.User) (*[]models.User, error) {
	if err := HasPermission(caller, constants.PermissionAdmin, constants.PermissionUpdate); err != nil {
		return nil, err
	}
	return s.repository.FindAll()
}

func (s *UserService) UpdatePermissions(caller *models.User, input dto.UpdatePermissionsInput) (*models.User, error) {
	if err := HasPermission(caller, constants.PermissionAdmin, constants.PermissionUpdate); err != nil {
		return nil, err
	}
	return s.repository.UpdatePermissions(input.UserID, input.Permissions)
}
