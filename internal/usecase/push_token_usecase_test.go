package usecase

import (
	"testing"

	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterTokenAssignsCaller(t *testing.T) {
	pushTokenRepo := new(MockPushTokenRepository)
	uc := NewPushTokenUsecase(testLogger(), pushTokenRepo)
	caller := uuid.New()

	pushTokenRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(tok *entity.PushToken) bool {
		return tok.UserID == caller &&
			tok.Token == "fcm-device-token" &&
			tok.Platform == entity.PlatformAndroid &&
			tok.IsActive
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.PushToken).ID = uuid.New()
	}).Return(nil)

	resp, err := uc.RegisterToken(authedContext(caller, entity.RolePaciente), &dto.RegisterPushTokenRequest{
		Token:    "fcm-device-token",
		Platform: "android",
	})

	require.NoError(t, err)
	assert.Equal(t, caller, resp.UserID)
	assert.True(t, resp.IsActive)
	pushTokenRepo.AssertExpectations(t)
}

func TestDeleteToken(t *testing.T) {
	pushTokenRepo := new(MockPushTokenRepository)
	uc := NewPushTokenUsecase(testLogger(), pushTokenRepo)
	caller := uuid.New()
	tokenID := uuid.New()

	pushTokenRepo.On("FindByID", mock.Anything, tokenID).
		Return(&entity.PushToken{ID: tokenID, UserID: caller}, nil)
	pushTokenRepo.On("Delete", mock.Anything, tokenID).Return(nil)

	err := uc.DeleteToken(authedContext(caller, entity.RolePaciente), tokenID)

	require.NoError(t, err)
	pushTokenRepo.AssertExpectations(t)
}

func TestDeleteTokenNotOwner(t *testing.T) {
	pushTokenRepo := new(MockPushTokenRepository)
	uc := NewPushTokenUsecase(testLogger(), pushTokenRepo)
	tokenID := uuid.New()

	pushTokenRepo.On("FindByID", mock.Anything, tokenID).
		Return(&entity.PushToken{ID: tokenID, UserID: uuid.New()}, nil)

	// Even admins cannot delete another user's token.
	err := uc.DeleteToken(authedContext(uuid.New(), entity.RoleAdmin), tokenID)

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	pushTokenRepo.AssertNotCalled(t, "Delete")
}

func TestDeleteTokenMissing(t *testing.T) {
	pushTokenRepo := new(MockPushTokenRepository)
	uc := NewPushTokenUsecase(testLogger(), pushTokenRepo)
	tokenID := uuid.New()

	pushTokenRepo.On("FindByID", mock.Anything, tokenID).Return(nil, nil)

	err := uc.DeleteToken(authedContext(uuid.New(), entity.RolePaciente), tokenID)

	assert.ErrorIs(t, err, apperrors.ErrPushTokenNotFound)
}
