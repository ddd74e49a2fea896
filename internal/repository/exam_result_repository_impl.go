package repository

import (
	"context"
	"errors"

	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/internal/domain/policy"
	domainRepo "clinic-booking-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type examResultRepository struct {
	db *gorm.DB
}

func NewExamResultRepository(db *gorm.DB) domainRepo.ExamResultRepository {
	return &examResultRepository{db: db}
}

func (r *examResultRepository) Create(ctx context.Context, result *entity.ExamResult) error {
	return r.db.WithContext(ctx).Create(result).Error
}

func (r *examResultRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ExamResult, error) {
	var result entity.ExamResult
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Where("id = ?", id).
		First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *examResultRepository) FindAll(ctx context.Context, scope policy.ListScope) ([]entity.ExamResult, error) {
	var results []entity.ExamResult
	query := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor")
	if scope.PatientID != nil {
		query = query.Where("patient_id = ?", *scope.PatientID)
	}
	if scope.DoctorID != nil {
		query = query.Where("doctor_id = ?", *scope.DoctorID)
	}
	err := query.Order("published_at DESC").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
