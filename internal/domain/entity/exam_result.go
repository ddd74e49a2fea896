package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExamResult (resultado de exame) is append-only: no update or delete is
// exposed through the API once published.
type ExamResult struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ExamID      uuid.UUID `gorm:"type:uuid;not null;index" json:"exam_id"`
	PatientID   uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID    uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Detail      string    `gorm:"type:text;not null" json:"detail"`
	FileURL     string    `gorm:"type:text" json:"file_url,omitempty"`
	PublishedAt time.Time `gorm:"not null;index" json:"published_at"`

	Exam    Exam `gorm:"foreignKey:ExamID" json:"exam,omitempty"`
	Patient User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  User `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (ExamResult) TableName() string {
	return "resultados_exames"
}
