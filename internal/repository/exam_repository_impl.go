package repository

import (
	"context"
	"errors"
	"time"

	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/internal/domain/policy"
	domainRepo "clinic-booking-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type examRepository struct {
	db *gorm.DB
}

func NewExamRepository(db *gorm.DB) domainRepo.ExamRepository {
	return &examRepository{db: db}
}

func (r *examRepository) Create(ctx context.Context, exam *entity.Exam) error {
	return r.db.WithContext(ctx).Create(exam).Error
}

func (r *examRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Exam, error) {
	var exam entity.Exam
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Preload("Results").
		Where("id = ?", id).
		First(&exam).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &exam, nil
}

func (r *examRepository) FindAll(ctx context.Context, scope policy.ListScope) ([]entity.Exam, error) {
	var exams []entity.Exam
	query := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor")
	if scope.PatientID != nil {
		query = query.Where("patient_id = ?", *scope.PatientID)
	}
	if scope.DoctorID != nil {
		query = query.Where("doctor_id = ?", *scope.DoctorID)
	}
	err := query.Order("scheduled_at ASC").Find(&exams).Error
	if err != nil {
		return nil, err
	}
	return exams, nil
}

func (r *examRepository) CountAtSlot(ctx context.Context, doctorID uuid.UUID, scheduledAt time.Time, includeCanceled bool) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entity.Exam{}).
		Where("doctor_id = ? AND scheduled_at = ?", doctorID, scheduledAt)
	if !includeCanceled {
		query = query.Where("status != ?", entity.BookingStatusCanceled)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *examRepository) Update(ctx context.Context, exam *entity.Exam) error {
	return r.db.WithContext(ctx).Save(exam).Error
}

func (r *examRepository) Cancel(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Exam{}).
		Where("id = ? AND status != ?", id, entity.BookingStatusCanceled).
		Update("status", entity.BookingStatusCanceled)
	return result.RowsAffected, result.Error
}
