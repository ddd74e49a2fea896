package entity

import (
	"time"

	"github.com/google/uuid"
)

// Appointment (consulta) holds at most one active booking per
// (doctor, scheduled_at) slot; the partial unique index uniq_active_consulta_slot
// enforces that at the storage layer.
type Appointment struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID   uuid.UUID     `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID    uuid.UUID     `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Date        time.Time     `gorm:"type:date;not null" json:"date"`
	TimeOfDay   string        `gorm:"type:varchar(5);not null" json:"time_of_day"`
	ScheduledAt time.Time     `gorm:"not null;index" json:"scheduled_at"`
	Detail      string        `gorm:"type:text" json:"detail"`
	Status      BookingStatus `gorm:"type:varchar(20);not null;default:'SCHEDULED';index" json:"status"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	Patient User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  User `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "consultas"
}

func (a *Appointment) IsCanceled() bool {
	return a.Status == BookingStatusCanceled
}
