package dto

type UpdatePermissionsInput struct {
	UserID      uint     `json:"userId" binding:"required"`
	Permissions []string `json:"permissions" binding:"required"`
}
