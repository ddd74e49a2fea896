package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateExamResultRequest struct {
	ExamID    uuid.UUID `json:"exame_id" validate:"required"`
	PatientID uuid.UUID `json:"patient_id" validate:"required"`
	DoctorID  uuid.UUID `json:"doctor_id" validate:"required"`
	Detail    string    `json:"detail" validate:"required"`
	FileURL   string    `json:"file_url" validate:"omitempty,url"`
}

// Response DTOs

type ExamResultResponse struct {
	ID          uuid.UUID    `json:"id"`
	ExamID      uuid.UUID    `json:"exame_id"`
	PatientID   uuid.UUID    `json:"patient_id"`
	DoctorID    uuid.UUID    `json:"doctor_id"`
	Detail      string       `json:"detail"`
	FileURL     string       `json:"file_url,omitempty"`
	Patient     *UserSummary `json:"patient,omitempty"`
	Doctor      *UserSummary `json:"doctor,omitempty"`
	PublishedAt time.Time    `json:"published_at"`
}
