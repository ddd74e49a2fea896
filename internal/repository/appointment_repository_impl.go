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

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Where("id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(ctx context.Context, scope policy.ListScope) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	query := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor")
	if scope.PatientID != nil {
		query = query.Where("patient_id = ?", *scope.PatientID)
	}
	if scope.DoctorID != nil {
		query = query.Where("doctor_id = ?", *scope.DoctorID)
	}
	err := query.Order("scheduled_at ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) CountAtSlot(ctx context.Context, doctorID uuid.UUID, scheduledAt time.Time, includeCanceled bool) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("doctor_id = ? AND scheduled_at = ?", doctorID, scheduledAt)
	if !includeCanceled {
		query = query.Where("status != ?", entity.BookingStatusCanceled)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Save(appointment).Error
}

// Cancel is conditional so a repeated cancel affects zero rows instead of
// erroring.
func (r *appointmentRepository) Cancel(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("id = ? AND status != ?", id, entity.BookingStatusCanceled).
		Update("status", entity.BookingStatusCanceled)
	return result.RowsAffected, result.Error
}
