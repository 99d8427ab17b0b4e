package request

import "thecodecup/internal/domain/entities"

type PromoCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

type ProfileRequest struct {
	FullName    string `json:"full_name" binding:"required"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	Address     string `json:"address"`
}

func (r ProfileRequest) ToEntity() entities.UserProfile {
	return entities.UserProfile{
		FullName:    r.FullName,
		PhoneNumber: r.PhoneNumber,
		Email:       r.Email,
		Address:     r.Address,
	}
}

// NotificationsRequest uses a pointer so an explicit false is not mistaken
// for a missing field.
type NotificationsRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}
