package repository

import (
	"context"
	"errors"

	"clinic-booking-api/internal/domain/entity"
	domainRepo "clinic-booking-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type pushTokenRepository struct {
	db *gorm.DB
}

func NewPushTokenRepository(db *gorm.DB) domainRepo.PushTokenRepository {
	return &pushTokenRepository{db: db}
}

// Upsert claims the token for the registering user. The unique index on the
// token column makes the reassignment atomic.
func (r *pushTokenRepository) Upsert(ctx context.Context, token *entity.PushToken) error {
	return r.db.WithContext(ctx).Clauses(
		clause.OnConflict{
			Columns:   []clause.Column{{Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{"user_id", "platform", "is_active", "updated_at"}),
		},
		clause.Returning{},
	).Create(token).Error
}

func (r *pushTokenRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PushToken, error) {
	var token entity.PushToken
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &token, nil
}

func (r *pushTokenRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.PushToken{}).Error
}
