package dto

import (
	"github.com/harborview/marina-api/internal/models"
)

// UserDTO represents a user in API responses. The identity subject is
// stripped here and never leaves the server.
type UserDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// ToUserDTO shapes a user for a response
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:   user.ID,
		Name: user.Name,
	}
}

// ToUserDTOs shapes a slice of users
func ToUserDTOs(users []models.User) []UserDTO {
	items := make([]UserDTO, 0, len(users))
	for _, user := range users {
		items = append(items, ToUserDTO(user))
	}
	return items
}
