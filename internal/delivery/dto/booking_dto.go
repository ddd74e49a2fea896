package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID uuid.UUID `json:"patient_id" validate:"required"`
	DoctorID  uuid.UUID `json:"doctor_id" validate:"required"`
	Date      string    `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string    `json:"time" validate:"required,datetime=15:04"`
	Detail    string    `json:"detail" validate:"omitempty"`
}

type CreateExamRequest struct {
	Name      string    `json:"name" validate:"required,min=2"`
	PatientID uuid.UUID `json:"patient_id" validate:"required"`
	DoctorID  uuid.UUID `json:"doctor_id" validate:"required"`
	Date      string    `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string    `json:"time" validate:"required,datetime=15:04"`
	Detail    string    `json:"detail" validate:"omitempty"`
}

// UpdateBookingRequest updates only the supplied fields.
type UpdateBookingRequest struct {
	Status *string `json:"status"`
	Detail *string `json:"detail"`
}

// Response DTOs

type AppointmentResponse struct {
	ID          uuid.UUID    `json:"id"`
	PatientID   uuid.UUID    `json:"patient_id"`
	DoctorID    uuid.UUID    `json:"doctor_id"`
	Date        string       `json:"date"`
	Time        string       `json:"time"`
	ScheduledAt time.Time    `json:"scheduled_at"`
	Detail      string       `json:"detail,omitempty"`
	Status      string       `json:"status"`
	Patient     *UserSummary `json:"patient,omitempty"`
	Doctor      *UserSummary `json:"doctor,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type ExamResponse struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	PatientID   uuid.UUID            `json:"patient_id"`
	DoctorID    uuid.UUID            `json:"doctor_id"`
	Date        string               `json:"date"`
	Time        string               `json:"time"`
	ScheduledAt time.Time            `json:"scheduled_at"`
	Detail      string               `json:"detail,omitempty"`
	Status      string               `json:"status"`
	Patient     *UserSummary         `json:"patient,omitempty"`
	Doctor      *UserSummary         `json:"doctor,omitempty"`
	Results     []ExamResultResponse `json:"results,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}
