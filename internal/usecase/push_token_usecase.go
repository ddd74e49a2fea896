package usecase

import (
	"context"

	"clinic-booking-api/internal/converter"
	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/internal/domain/repository"
	"clinic-booking-api/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type PushTokenUsecase interface {
	RegisterToken(ctx context.Context, req *dto.RegisterPushTokenRequest) (*dto.PushTokenResponse, error)
	DeleteToken(ctx context.Context, id uuid.UUID) error
}

type pushTokenUsecase struct {
	log           *logrus.Logger
	pushTokenRepo repository.PushTokenRepository
}

func NewPushTokenUsecase(log *logrus.Logger, pushTokenRepo repository.PushTokenRepository) PushTokenUsecase {
	return &pushTokenUsecase{
		log:           log,
		pushTokenRepo: pushTokenRepo,
	}
}

// RegisterToken upserts by token value: a token already registered by another
// user is reassigned to the caller rather than rejected.
func (u *pushTokenUsecase) RegisterToken(ctx context.Context, req *dto.RegisterPushTokenRequest) (*dto.PushTokenResponse, error) {
	callerID, _, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	token := &entity.PushToken{
		UserID:   callerID,
		Token:    req.Token,
		Platform: entity.Platform(req.Platform),
		IsActive: true,
	}

	if err := u.pushTokenRepo.Upsert(ctx, token); err != nil {
		u.log.Warnf("Failed to register push token: %+v", err)
		return nil, err
	}

	return converter.PushTokenToResponse(token), nil
}

// DeleteToken removes a token; only the current owner may do so.
func (u *pushTokenUsecase) DeleteToken(ctx context.Context, id uuid.UUID) error {
	callerID, _, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	token, err := u.pushTokenRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find push token %s: %+v", id, err)
		return err
	}
	if token == nil {
		return apperrors.ErrPushTokenNotFound
	}

	if token.UserID != callerID {
		return apperrors.ErrForbidden
	}

	if err := u.pushTokenRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete push token %s: %+v", id, err)
		return err
	}

	return nil
}
