package entity

import (
	"time"

	"github.com/google/uuid"
)

// Exam (exame) shares the appointment booking shape plus a name and the
// results attached once performed.
type Exam struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string        `gorm:"type:varchar(255);not null" json:"name"`
	PatientID   uuid.UUID     `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID    uuid.UUID     `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Date        time.Time     `gorm:"type:date;not null" json:"date"`
	TimeOfDay   string        `gorm:"type:varchar(5);not null" json:"time_of_day"`
	ScheduledAt time.Time     `gorm:"not null;index" json:"scheduled_at"`
	Detail      string        `gorm:"type:text" json:"detail"`
	Status      BookingStatus `gorm:"type:varchar(20);not null;default:'SCHEDULED';index" json:"status"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	Patient User         `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  User         `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Results []ExamResult `gorm:"foreignKey:ExamID" json:"results,omitempty"`
}

func (Exam) TableName() string {
	return "exames"
}

func (e *Exam) IsCanceled() bool {
	return e.Status == BookingStatusCanceled
}
