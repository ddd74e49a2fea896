package usecase

import (
	"context"
	"testing"

	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateUserWithRole(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewUserUsecase(testLogger(), userRepo)

	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Role == entity.RoleMedico && u.IsActive
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.User).ID = uuid.New()
	}).Return(nil)

	resp, err := uc.CreateUser(context.Background(), &dto.CreateUserRequest{
		FullName: "Dr. Carlos Lima",
		Email:    "carlos@example.com",
		Password: "hunter2secret",
		Role:     "MEDICO",
	})

	require.NoError(t, err)
	assert.Equal(t, "MEDICO", resp.Role)
	userRepo.AssertExpectations(t)
}

func TestCreateUserInvalidRole(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewUserUsecase(testLogger(), userRepo)

	_, err := uc.CreateUser(context.Background(), &dto.CreateUserRequest{
		FullName: "Nobody",
		Email:    "nobody@example.com",
		Password: "hunter2secret",
		Role:     "SUPERUSER",
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
	userRepo.AssertNotCalled(t, "Create")
}

func TestUpdateUserPartial(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewUserUsecase(testLogger(), userRepo)
	id := uuid.New()
	newPassword := "freshpassword"
	inactive := false

	userRepo.On("FindByID", mock.Anything, id).
		Return(&entity.User{
			ID:       id,
			FullName: "Ana Souza",
			Email:    "ana@example.com",
			Password: "old-hash",
			Role:     entity.RolePaciente,
			IsActive: true,
		}, nil)
	userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.FullName == "Ana Souza" &&
			!u.IsActive &&
			bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(newPassword)) == nil
	})).Return(nil)

	resp, err := uc.UpdateUser(context.Background(), id, &dto.UpdateUserRequest{
		Password: &newPassword,
		IsActive: &inactive,
	})

	require.NoError(t, err)
	assert.False(t, resp.IsActive)
	assert.Equal(t, "Ana Souza", resp.FullName)
	userRepo.AssertExpectations(t)
}

func TestUpdateUserNotFound(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewUserUsecase(testLogger(), userRepo)
	id := uuid.New()

	userRepo.On("FindByID", mock.Anything, id).Return(nil, nil)

	_, err := uc.UpdateUser(context.Background(), id, &dto.UpdateUserRequest{})

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewUserUsecase(testLogger(), userRepo)
	id := uuid.New()

	userRepo.On("FindByID", mock.Anything, id).
		Return(&entity.User{ID: id}, nil)
	userRepo.On("Delete", mock.Anything, id).Return(nil)

	err := uc.DeleteUser(context.Background(), id)

	require.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestDeleteUserNotFound(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewUserUsecase(testLogger(), userRepo)
	id := uuid.New()

	userRepo.On("FindByID", mock.Anything, id).Return(nil, nil)

	err := uc.DeleteUser(context.Background(), id)

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	userRepo.AssertNotCalled(t, "Delete")
}
