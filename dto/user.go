package dto

import "github.com/AquaPirot/pirotskevesti/model"

// UserResponse is the owner shape denormalized into every record response.
type UserResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func ToUserResponse(user model.User) UserResponse {
	return UserResponse{
		ID:   user.ID,
		Name: user.Name,
	}
}
