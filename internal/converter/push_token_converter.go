package converter

import (
	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/entity"
)

// PushTokenToResponse converts a PushToken entity to its response DTO
func PushTokenToResponse(token *entity.PushToken) *dto.PushTokenResponse {
	if token == nil {
		return nil
	}
	return &dto.PushTokenResponse{
		ID:        token.ID,
		UserID:    token.UserID,
		Token:     token.Token,
		Platform:  string(token.Platform),
		IsActive:  token.IsActive,
		CreatedAt: token.CreatedAt,
		UpdatedAt: token.UpdatedAt,
	}
}
